// Package fruitbook provides the core bookkeeping logic for a small
// fruit-trading business: an append-only ledger of purchases and sales, a
// derived warehouse inventory valued at weighted-average cost, registries of
// supplier and customer contacts, and periodic trading reports.
//
// The core functionalities include:
//   - Ledger Management: Recording purchase and sale transactions in an
//     immutable, chronological record. The ledger is the single source of
//     truth; every other view is derived from it.
//   - Inventory Projection: An incrementally maintained view of the warehouse,
//     one entry per product, carrying the current quantity, the blended
//     average unit cost, and the total cost of goods held.
//   - Contact Registries: The latest known phone number and last-transaction
//     date of every supplier and customer, updated as a side effect of
//     recording transactions.
//   - Reporting: Read-only aggregation of sales, costs, profit and
//     transaction counts over a time-filtered slice of the ledger.
//   - Data Persistence: Encoding and decoding of all business data to and
//     from a flat key-value store in human-readable JSON formats.
//
// This package serves as the foundational logic for the `meva` command-line
// tool, which plays the role of the presentation layer: it collects and trims
// input, parses numbers, and formats the core's output for the terminal.
package fruitbook
