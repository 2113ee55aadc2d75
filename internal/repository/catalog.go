package repository

import "github.com/gowrishgalaxy/Drobo-mrit/internal/models"

// Catalog is the static product catalog: seeded once at startup and
// read-only afterwards. No operation mutates it.
type Catalog struct {
	products []models.Product
	byID     map[int64]models.Product
}

// NewCatalog builds a catalog from the given products.
func NewCatalog(products []models.Product) *Catalog {
	byID := make(map[int64]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Products returns all catalog entries.
func (c *Catalog) Products() []models.Product {
	return append([]models.Product{}, c.products...)
}

// FindProduct looks up a product by id.
func (c *Catalog) FindProduct(id int64) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// DefaultProducts is the catalog the service ships with.
func DefaultProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "DJI Air 3S Pro", Price: 1299, Image: "https://images.pexels.com/photos/4195300/pexels-photo-4195300.jpeg?auto=compress&cs=tinysrgb&w=400"},
		{ID: 2, Name: "Autel EVO Max 4T", Price: 1599, Image: "https://images.pexels.com/photos/4195325/pexels-photo-4195325.jpeg?auto=compress&cs=tinysrgb&w=400"},
		{ID: 3, Name: "Skydio 3", Price: 2499, Image: "https://images.pexels.com/photos/4195326/pexels-photo-4195326.jpeg?auto=compress&cs=tinysrgb&w=400"},
		{ID: 4, Name: "DJI Mini 4 Pro", Price: 759, Image: "https://images.pexels.com/photos/4195327/pexels-photo-4195327.jpeg?auto=compress&cs=tinysrgb&w=400"},
		{ID: 5, Name: "Freefly Alta X", Price: 3299, Image: "https://images.pexels.com/photos/4195328/pexels-photo-4195328.jpeg?auto=compress&cs=tinysrgb&w=400"},
		{ID: 6, Name: "DJI Avata 3", Price: 899, Image: "https://images.pexels.com/photos/4195329/pexels-photo-4195329.jpeg?auto=compress&cs=tinysrgb&w=400"},
		{ID: 7, Name: "Parrot Anafi AI", Price: 799, Image: "https://images.pexels.com/photos/4195330/pexels-photo-4195330.jpeg?auto=compress&cs=tinysrgb&w=400"},
		{ID: 8, Name: "DJI Air 3", Price: 999, Image: "https://images.pexels.com/photos/4195331/pexels-photo-4195331.jpeg?auto=compress&cs=tinysrgb&w=400"},
	}
}
