// Package arcs provides the data model, persistence and export layers of the
// ARCS quote manager. It is designed to be local-first and auditable: the
// whole collection of quotes lives in a single human-readable JSON file.
//
// The core functionalities include:
//   - Quote Model: quotes made of header metadata (PO number, notes,
//     suppliers) and ordered line items, with totals and margins always
//     recomputed from quantities and prices.
//   - Quote Store: an ordered, id-indexed collection persisted wholesale to
//     disk on every save, using an atomic write-to-temp-then-rename replace.
//   - Import/Export: single quotes exported as JSON documents that import
//     back into any store.
//   - Purchasing View: per-quote aggregation of parts by supplier for
//     ordering.
//
// This package serves as the foundational logic for the `arcs` command-line
// tool; document export to PDF and HTML lives in the exporter package.
package arcs
