// Package cart turns a flat list of requested items into per-seller groups.
//
// GroupBySeller is a pure fold: given the products and sellers fetched beforehand,
// it validates availability and produces an immutable, ordered slice of
// SellerGroup values whose subtotals sum to the cart subtotal.
package cart
