// ABOUTME: JSON serialization of entry stores through the persistence gateway.
// ABOUTME: Hydration degrades to an empty store on missing or malformed data.
package store

import (
	"encoding/json"
	"fmt"
)

// Load hydrates the store from the gateway value under key. A missing key
// means an empty store. Malformed stored text also hydrates empty: for a
// single local replica there is no recovery path, so losing the data beats
// refusing to start.
func Load[T Record](g Gateway, key string, s *EntryStore[T]) error {
	value, ok, err := g.Get(key)
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", key, err)
	}
	if !ok {
		s.Hydrate(nil)
		return nil
	}

	var records []T
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		s.Hydrate(nil)
		return nil
	}
	s.Hydrate(records)
	return nil
}

// Save serializes the whole store and writes it to the gateway under key.
func Save[T Record](g Gateway, key string, s *EntryStore[T]) error {
	data, err := json.Marshal(s.All())
	if err != nil {
		return fmt.Errorf("failed to serialize %q: %w", key, err)
	}
	if err := g.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}
