// ABOUTME: Key-value persistence gateway contract and in-memory implementation.
// ABOUTME: Stores are serialized whole under a fixed key per store type.
package store

// Persistence keys, one per store type. The names match the browser
// localStorage keys the original data lived under, so an imported payload
// round-trips unchanged.
const (
	MoodKey    = "moodData"
	JournalKey = "journalEntries"
)

// Gateway is a text-oriented key-value persistence backend. A missing key is
// not an error: it means an empty store.
type Gateway interface {
	// Get returns the value for key, with ok=false when the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set writes the value for key, replacing any previous value.
	Set(key, value string) error

	// Close releases any resources held by the gateway.
	Close() error
}

// MemoryGateway is a map-backed Gateway for tests and ephemeral sessions.
type MemoryGateway struct {
	values map[string]string
}

// NewMemoryGateway creates an empty in-memory gateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{values: make(map[string]string)}
}

// Get returns the stored value for key.
func (g *MemoryGateway) Get(key string) (string, bool, error) {
	v, ok := g.values[key]
	return v, ok, nil
}

// Set stores the value for key.
func (g *MemoryGateway) Set(key, value string) error {
	g.values[key] = value
	return nil
}

// Close is a no-op.
func (g *MemoryGateway) Close() error { return nil }
