// ABOUTME: Generic append-only entry store for date-stamped records.
// ABOUTME: Insertion order is the contract; FindByDate resolves same-day duplicates last-wins.
package store

// Record is any date-stamped entry. Day returns the calendar date in
// 2006-01-02 form, fixed at construction time.
type Record interface {
	Day() string
}

// EntryStore is an ordered, append-only log of records. It is owned by a
// single process for its lifetime and mutated only via Append and Hydrate.
type EntryStore[T Record] struct {
	records []T
}

// NewEntryStore creates an empty store.
func NewEntryStore[T Record]() *EntryStore[T] {
	return &EntryStore[T]{}
}

// Append adds a record as the new last element. It never fails; validation
// belongs to the caller.
func (s *EntryStore[T]) Append(record T) {
	s.records = append(s.records, record)
}

// All returns the records in append order. The returned slice is a read-only
// view; callers must not rely on it staying current across appends.
func (s *EntryStore[T]) All() []T {
	return s.records
}

// Len returns the number of records.
func (s *EntryStore[T]) Len() int {
	return len(s.records)
}

// FindByDate returns the last-appended record whose date equals the query
// date. When multiple records share a day the newest append wins, which is
// what trend derivation relies on to pick one mood per day.
func (s *EntryStore[T]) FindByDate(date string) (T, bool) {
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].Day() == date {
			return s.records[i], true
		}
	}
	var zero T
	return zero, false
}

// Hydrate replaces the store's contents wholesale. Used once at startup to
// load persisted records; it never merges.
func (s *EntryStore[T]) Hydrate(records []T) {
	s.records = records
}
