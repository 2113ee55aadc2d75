package repository

import (
	"sync"

	"github.com/gowrishgalaxy/Drobo-mrit/internal/models"
)

// CartStore holds every user's cart, keyed by user id. It is deliberately
// in-memory only, regardless of which Store backs the rest of the service:
// carts are created empty when the process starts (or at signup), mutate
// in place, and are gone when the process stops. Nothing is persisted.
type CartStore struct {
	mu    sync.Mutex
	carts map[string][]models.CartEntry
}

// NewCartStore initializes an empty cart store.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string][]models.CartEntry)}
}

// Init creates an empty cart for the user if none exists yet.
func (s *CartStore) Init(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[userID]; !ok {
		s.carts[userID] = []models.CartEntry{}
	}
}

// Get returns the user's cart, empty if never populated.
func (s *CartStore) Get(userID string) []models.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(userID)
}

// Add appends an entry to the user's cart and returns the updated cart.
func (s *CartStore) Add(userID string, entry models.CartEntry) []models.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = append(s.carts[userID], entry)
	return s.snapshot(userID)
}

// Remove drops any entry matching cartItemID from the user's cart and
// returns the updated cart. Removing an absent item is a no-op.
func (s *CartStore) Remove(userID, cartItemID string) []models.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	kept := cart[:0]
	for _, entry := range cart {
		if entry.CartItemID != cartItemID {
			kept = append(kept, entry)
		}
	}
	s.carts[userID] = kept
	return s.snapshot(userID)
}

// snapshot copies the cart so callers never alias internal state.
// Callers must hold s.mu.
func (s *CartStore) snapshot(userID string) []models.CartEntry {
	return append([]models.CartEntry{}, s.carts[userID]...)
}
