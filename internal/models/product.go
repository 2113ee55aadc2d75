package models

// Product is a catalog entry. The catalog is static: seeded at startup,
// read-only, never mutated by any request.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}
