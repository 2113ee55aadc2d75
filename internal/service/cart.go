package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/apperrors"
	"github.com/gowrishgalaxy/Drobo-mrit/internal/models"
)

// Products returns the static catalog.
func (s *Service) Products(ctx context.Context) []models.Product {
	return s.catalog.Products()
}

// GetCart returns the user's cart, empty if never populated.
func (s *Service) GetCart(ctx context.Context, userID string) []models.CartEntry {
	return s.carts.Get(userID)
}

// AddToCart snapshots the product into a new cart entry and returns the
// updated cart. The entry copies the product's fields at add time, so
// later catalog changes never reach existing carts.
func (s *Service) AddToCart(ctx context.Context, userID string, productID int64) ([]models.CartEntry, error) {
	product, ok := s.catalog.FindProduct(productID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	entry := models.CartEntry{
		CartItemID: uuid.NewString(),
		ProductID:  product.ID,
		Name:       product.Name,
		Price:      product.Price,
		Image:      product.Image,
	}

	cart := s.carts.Add(userID, entry)
	s.log.Infof("User %s added product %d to cart", userID, productID)
	return cart, nil
}

// RemoveFromCart drops the matching entry from the user's cart and returns
// the updated cart. Removing an absent item is a no-op.
func (s *Service) RemoveFromCart(ctx context.Context, userID, cartItemID string) []models.CartEntry {
	return s.carts.Remove(userID, cartItemID)
}
