package page

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/etnz/crossref"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Styles are the rules of the classes put on derived cells.
const Styles = `td.custom-orders-increase-portfolio {
    font-weight: bold;
}
td.custom-orders-highlighted {
    text-decoration: underline;
}
td.custom-holdings-price {
    color: #0061E4;
}
td.custom-notes {
    padding: 0px !important;
}
textarea.custom-notes {
    height: 100px !important;
    width: 200px !important;
    margin: 0px !important;
    margin-left: 0px !important;
}`

// InjectStyles appends the style rules to the document head. Calling it
// twice adds the rules twice, which browsers tolerate.
func (d *Document) InjectStyles() error {
	head := d.doc.Find("head").First()
	if head.Length() == 0 {
		return fmt.Errorf("%w: no head", crossref.ErrStructure)
	}
	style := element(atom.Style, html.Attribute{Key: "type", Val: "text/css"})
	style.AppendChild(&html.Node{Type: html.TextNode, Data: Styles})
	head.AppendNodes(style)
	return nil
}

// Apply writes the plan into the document. The rows are the ones
// snapshot by Tables, whatever changes were made since.
func (d *Document) Apply(plan *crossref.Plan) error {
	for _, tp := range plan.Tables {
		t, err := d.find(tp.Table)
		if err != nil {
			return err
		}
		for _, h := range tp.Headers {
			insertAt(t.header, h.Index, header(h))
		}
		for _, rp := range tp.Rows {
			if rp.Row < 0 || rp.Row >= len(t.rows) {
				return fmt.Errorf("%w: no row %d in #%s", crossref.ErrStructure, rp.Row, tp.Table)
			}
			if err := applyRow(t.rows[rp.Row], rp); err != nil {
				return fmt.Errorf("#%s %s: %w", tp.Table, rp.Symbol, err)
			}
		}
	}
	return nil
}

func applyRow(tr *goquery.Selection, rp crossref.RowPlan) error {
	tds := tr.ChildrenFiltered("td")
	for _, dec := range rp.Decorations {
		td := tds.Eq(dec.Index)
		if td.Length() == 0 {
			return fmt.Errorf("%w: no cell %d to decorate", crossref.ErrStructure, dec.Index)
		}
		td.AddClass(dec.Tags...)
	}
	for _, ins := range rp.Insertions {
		insertAt(tr, ins.Index, cell(ins.Cell))
	}
	return nil
}

// insertAt inserts n before the child of parent at index, or appends it.
func insertAt(parent *goquery.Selection, index int, n *html.Node) {
	if next := parent.Children().Eq(index); next.Length() > 0 {
		next.BeforeNodes(n)
		return
	}
	parent.AppendNodes(n)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func class(names []string) html.Attribute {
	return html.Attribute{Key: "class", Val: strings.Join(names, " ")}
}

func header(h crossref.Header) *html.Node {
	th := element(atom.Th, class([]string{h.Align}))
	if h.Span > 0 {
		th.Attr = append(th.Attr, html.Attribute{Key: "colspan", Val: strconv.Itoa(h.Span)})
	}
	th.AppendChild(&html.Node{Type: html.TextNode, Data: h.Text})
	return th
}

// cell renders a derived cell. Notes cells hold the teaser and a hidden
// editor keyed by the note key. The teaser carries the glyph it shows
// while the editor is open.
func cell(c crossref.Derived) *html.Node {
	td := element(atom.Td, class(c.Classes()))
	if c.Note == nil {
		if c.Value != "" {
			td.AppendChild(&html.Node{Type: html.TextNode, Data: c.Value})
		}
		return td
	}
	teaser := element(atom.Div, html.Attribute{Key: "data-open-teaser", Val: crossref.TeaserOpen})
	teaser.AppendChild(&html.Node{Type: html.TextNode, Data: c.Note.Teaser})
	editor := element(atom.Textarea,
		class(c.Classes()),
		html.Attribute{Key: "style", Val: "display: none"},
		html.Attribute{Key: "data-note-key", Val: string(c.Note.Key)},
	)
	editor.AppendChild(&html.Node{Type: html.TextNode, Data: c.Note.Text})
	td.AppendChild(teaser)
	td.AppendChild(editor)
	return td
}
