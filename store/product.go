package store

import (
	"github.com/google/uuid"

	"github.com/LaryssaDev/site-para-gueto-fya/models"
)

// Products returns the catalog in display order.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.products))
	for i, p := range s.products {
		out[i] = copyProduct(p)
	}
	return out
}

// ProductByID looks a catalog entry up.
func (s *Store) ProductByID(id string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.findProduct(id)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return copyProduct(p), nil
}

// AddProduct appends a product to the catalog, assigning an id when the
// caller left it empty, and returns the stored entry.
func (s *Store) AddProduct(p models.Product) models.Product {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, copyProduct(p))
	s.persistProducts()
	return p
}

// UpdateProduct replaces the catalog entry with the same id. Orders that
// reference the product keep their own copy and are unaffected.
func (s *Store) UpdateProduct(p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = copyProduct(p)
			s.persistProducts()
			return nil
		}
	}
	return ErrProductNotFound
}

// RemoveProduct deletes a catalog entry. Removing an unknown id is a
// no-op.
func (s *Store) RemoveProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persistProducts()
			return
		}
	}
}
