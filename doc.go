// Package restaurant implements a small restaurant ordering ledger.
//
// A session works on three lists:
//   - Catalog: the menu items, read once from an "id,name,price" text file.
//   - OrderLedger: the placed orders, which can be cancelled but never deleted.
//     Each order snapshots the name and price of its items, and its total is
//     computed once at placement.
//   - CollectionLedger: the revenue collected per day, looked up by exact date.
//
// Ledgers are persisted as whole JSONL snapshots in a Store: every save
// rewrites the full list. Restaurant owns the three lists and implements the
// operations driven by the interactive session and the `rms` command.
package restaurant
