package store

// KV is the named-slot snapshot store the shop state is mirrored to.
// Load returns nil data (and no error) when a slot has never been written.
type KV interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// Slot keys. Each holds one whole collection as a JSON array.
const (
	KeyProducts = "gueto_products"
	KeyCart     = "gueto_cart"
	KeyOrders   = "gueto_orders"
)

// MemoryKV is an in-process KV, used in tests and as a fallback when no
// database is configured.
type MemoryKV struct {
	slots map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{slots: make(map[string][]byte)}
}

func (m *MemoryKV) Load(key string) ([]byte, error) {
	return m.slots[key], nil
}

func (m *MemoryKV) Save(key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	m.slots[key] = cp
	return nil
}
