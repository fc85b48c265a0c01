// Package store holds the whole shop state — catalog, cart and order
// history — behind a single mutation interface. Every mutation is mirrored
// to a named-slot KV store as a whole-collection JSON snapshot, so a
// restart picks up exactly where the last write left off.
package store

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/LaryssaDev/site-para-gueto-fya/models"
)

// Store is the single owner of the shop collections. Handlers run
// concurrently under gin, so all access goes through the mutex.
type Store struct {
	mu sync.Mutex
	kv KV

	products []models.Product
	cart     []models.CartItem
	orders   []models.Order // newest first

	onNewOrder func(models.Order)
	now        func() time.Time
}

// New loads the three collections from kv. A slot that is missing or does
// not parse falls back silently: the bundled catalog for products, empty
// for cart and orders.
func New(kv KV) *Store {
	s := &Store{
		kv:  kv,
		now: time.Now,
	}

	if !loadSlot(kv, KeyProducts, &s.products) {
		s.products = SeedProducts()
	}
	loadSlot(kv, KeyCart, &s.cart)
	loadSlot(kv, KeyOrders, &s.orders)

	return s
}

// OnNewOrder registers a callback fired after each successfully placed
// order. Used by the admin websocket feed.
func (s *Store) OnNewOrder(fn func(models.Order)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onNewOrder = fn
}

func loadSlot(kv KV, key string, dst any) bool {
	data, err := kv.Load(key)
	if err != nil {
		log.Printf("⚠️ Failed to load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("⚠️ Corrupt snapshot in %s, starting fresh: %v", key, err)
		return false
	}
	return true
}

// persist is called with the mutex held, right after each mutation.
// Last writer wins; a failed write is logged and the in-memory state
// stays authoritative for the rest of the session.
func (s *Store) persist(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("❌ Failed to encode %s: %v", key, err)
		return
	}
	if err := s.kv.Save(key, data); err != nil {
		log.Printf("❌ Failed to save %s: %v", key, err)
	}
}

func (s *Store) persistProducts() { s.persist(KeyProducts, s.products) }
func (s *Store) persistCart()     { s.persist(KeyCart, s.cart) }
func (s *Store) persistOrders()   { s.persist(KeyOrders, s.orders) }
