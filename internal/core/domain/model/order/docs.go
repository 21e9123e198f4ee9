// Package order contains the Order aggregate and its lifecycle.
//
// An Order tracks one customer purchase request end-to-end, from admission
// (out of an ingested document or a manual submission) to payment
// collection. The package provides:
//
//   - Order: the aggregate root, mutated only through transition methods
//   - LineItem: a product line owned by its order, with a derived subtotal
//   - Status: the forward-only lifecycle state machine with a declared
//     transition table
//
// Money is decimal throughout (github.com/shopspring/decimal): the total is
// always the exact sum of the line-item subtotals, and the commission is
// exactly 8% of the total, computed when the order is charged.
package order
