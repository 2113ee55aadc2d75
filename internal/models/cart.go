package models

// CartEntry is one item in a user's cart. Name, Price and Image are
// snapshots of the product taken at add time, not references: later
// catalog changes do not alter entries already in a cart.
type CartEntry struct {
	CartItemID string  `json:"cartItemId"`
	ProductID  int64   `json:"productId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
}
