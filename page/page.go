// Package page reads the tables of a saved portfolio page and writes the
// derived columns back into it.
package page

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/etnz/crossref"
	"golang.org/x/net/html"
)

// PortfolioTitle is contained in the title of the portfolio page.
const PortfolioTitle = "My Portfolio"

// Document is a parsed portfolio page.
type Document struct {
	doc    *goquery.Document
	tables map[crossref.TableID]*table
}

// table is a snapshot of the rows of a table, taken before any change.
type table struct {
	header *goquery.Selection
	rows   []*goquery.Selection
}

// Load parses an HTML page.
func Load(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse page: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Title returns the page title.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// IsPortfolio reports whether the page is the portfolio page. Other pages
// of the site share the same URLs.
func (d *Document) IsPortfolio() bool {
	return strings.Contains(d.Title(), PortfolioTitle)
}

// find locates the table of id: the "full-details-data" table next to the
// heading of that id.
//
//	<div class="page-sub-section">
//	   <h4 id="long-stock">...
//	   <table class="full-details-data">...
//	</div>
func (d *Document) find(id crossref.TableID) (*table, error) {
	if t, ok := d.tables[id]; ok {
		return t, nil
	}
	heading := d.doc.Find("#" + string(id)).First()
	if heading.Length() == 0 {
		return nil, fmt.Errorf("%w: no element #%s", crossref.ErrStructure, id)
	}
	tbl := heading.Parent().Find(".full-details-data").First()
	if tbl.Length() == 0 {
		return nil, fmt.Errorf("%w: no table next to #%s", crossref.ErrStructure, id)
	}
	header := tbl.Find("thead").First().Find("tr").First()
	if header.Length() == 0 {
		return nil, fmt.Errorf("%w: no header row in #%s", crossref.ErrStructure, id)
	}
	body := tbl.Find("tbody").First()
	if body.Length() == 0 {
		return nil, fmt.Errorf("%w: no body in #%s", crossref.ErrStructure, id)
	}
	t := &table{header: header}
	body.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		t.rows = append(t.rows, tr)
	})
	if d.tables == nil {
		d.tables = make(map[crossref.TableID]*table)
	}
	d.tables[id] = t
	return t, nil
}

// Tables snapshots the body rows of the four tables.
func (d *Document) Tables() (crossref.Page, error) {
	var p crossref.Page
	for _, t := range []struct {
		id   crossref.TableID
		rows *[]crossref.Row
	}{
		{crossref.TableOrders, &p.Orders},
		{crossref.TableLong, &p.Long},
		{crossref.TableShort, &p.Short},
		{crossref.TableWatch, &p.Watch},
	} {
		tbl, err := d.find(t.id)
		if err != nil {
			return crossref.Page{}, err
		}
		for _, tr := range tbl.rows {
			*t.rows = append(*t.rows, snapshot(tr))
		}
	}
	return p, nil
}

// snapshot reads the cells of a body row.
func snapshot(tr *goquery.Selection) crossref.Row {
	var cells []crossref.Cell
	tr.ChildrenFiltered("td").Each(func(_ int, td *goquery.Selection) {
		c := crossref.TextCell(td.Text())
		if price := td.Find(".price").First(); price.Length() > 0 {
			c = crossref.Cell{Text: c.Text, Price: price.Text(), Priced: true}
		}
		cells = append(cells, c)
	})
	symbol := tr.Find(".symbol").First()
	if symbol.Length() == 0 {
		return crossref.NewPlaceholderRow(cells...)
	}
	return crossref.NewRow(symbol.Text(), cells...)
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("cannot render page: %w", err)
		}
	}
	return nil
}
