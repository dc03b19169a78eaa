// Package crossref cross-references the tables of a trading site's
// portfolio page. The page shows four independent tables: stock held long,
// stock held short, active orders and the watch list. This package reads
// them and computes, for every row, what the other tables know about the
// same stock.
//
// The core functionalities include:
//   - Row Extraction: reading symbols, signed quantities and prices out of
//     a snapshot of a table row.
//   - Aggregation: building the long and short holdings and the net buy and
//     sell demand per symbol.
//   - Emphasis: deciding whether an order grows the portfolio, closes a
//     position exactly, or probably needs editing.
//   - Column Synthesis: deriving the cells to add to each row.
//   - Notes: a stable key per (symbol, table) pair so that a free-text note
//     survives across visits, and the sweep of notes no longer on the page.
//
// Reconcile ties them together and returns a Plan, a pure description of
// the changes to apply to the page. Applying it is the job of the page
// package, persisting notes is the job of the store package.
package crossref
