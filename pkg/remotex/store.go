package remotex

import "sync"

// ─── Events ───────────────────────────────────────────────────────────────────

// EventKind identifies which store operation produced an [Event].
type EventKind string

const (
	// EventLoading is emitted by [Store.ToLoading].
	EventLoading EventKind = "loading"
	// EventMerged is emitted by [Store.MergeResponse].
	EventMerged EventKind = "merged"
	// EventUpdated is emitted by [Store.Update] when the new value is kept.
	EventUpdated EventKind = "updated"
	// EventRemoved is emitted when a write reverted a key to NeverAsked and
	// the key was deleted.
	EventRemoved EventKind = "removed"
)

// Event describes one completed store write.
type Event struct {
	Kind  EventKind
	Key   any
	Phase Phase
}

// Hook receives an [Event] after every store write. Hooks run on the
// calling goroutine, outside the store's lock, so a slow hook delays its
// caller but never other readers or writers.
type Hook func(Event)

type storeOptions struct {
	hook Hook
}

// StoreOption configures a [Store].
type StoreOption func(*storeOptions)

// WithHook installs a hook invoked after every store write, typically to
// log lifecycle changes or feed metrics.
func WithHook(h Hook) StoreOption {
	return func(o *storeOptions) {
		o.hook = h
	}
}

// ─── Store ────────────────────────────────────────────────────────────────────

// Store applies the [Recyclable] transitions to values held under keys, so
// one container tracks the lifecycle of many resources. An absent key reads
// as NeverAsked, and a write that reverts a key to NeverAsked deletes the
// key instead of storing it, keeping the map proportional to resources with
// at least one fetch attempt.
//
// Safe for concurrent use. Entries are immutable values, so nothing read
// from the store can be corrupted by later writes. Racing writers for the
// same key are not ordered: the last write wins, exactly as with a bare
// [Recyclable] cell.
type Store[K comparable, T, C, V any] struct {
	mu      sync.RWMutex
	entries map[K]Recyclable[T, C, V]
	hook    Hook
}

// NewStore builds an empty [Store].
func NewStore[K comparable, T, C, V any](opts ...StoreOption) *Store[K, T, C, V] {
	var o storeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[K, T, C, V]{
		entries: make(map[K]Recyclable[T, C, V]),
		hook:    o.hook,
	}
}

// Get returns the lifecycle state under key, NeverAsked when the key is
// absent. Total: there is no miss case.
func (s *Store[K, T, C, V]) Get(key K) Recyclable[T, C, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[key]
}

// Update reads the state under key (NeverAsked when absent), applies f and
// writes the result back. A result of NeverAsked deletes the key instead
// of being stored. Returns the new state.
func (s *Store[K, T, C, V]) Update(key K, f func(Recyclable[T, C, V]) Recyclable[T, C, V]) Recyclable[T, C, V] {
	return s.apply(key, EventUpdated, f)
}

// ToLoading applies [Recyclable.ToLoading] to the state under key and
// returns the new state.
func (s *Store[K, T, C, V]) ToLoading(key K) Recyclable[T, C, V] {
	return s.apply(key, EventLoading, Recyclable[T, C, V].ToLoading)
}

// MergeResponse folds a completed fetch outcome into the state under key
// and returns the new state. An absent key starts from NeverAsked, which
// makes this [RecyclableFromResponse] for first-time keys.
func (s *Store[K, T, C, V]) MergeResponse(key K, resp Response[T, C, V]) Recyclable[T, C, V] {
	return s.apply(key, EventMerged, func(r Recyclable[T, C, V]) Recyclable[T, C, V] {
		return r.MergeResponse(resp)
	})
}

// Len returns the number of stored keys. Keys in the NeverAsked state are
// never stored, so this counts resources with at least one fetch attempt.
func (s *Store[K, T, C, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Keys returns the stored keys in no particular order.
func (s *Store[K, T, C, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]K, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

// Snapshot returns a copy of the current contents. The copy is detached:
// later store writes do not affect it.
func (s *Store[K, T, C, V]) Snapshot() map[K]Recyclable[T, C, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[K]Recyclable[T, C, V], len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// apply performs one locked read-transform-write and emits the event after
// releasing the lock.
func (s *Store[K, T, C, V]) apply(key K, kind EventKind, f func(Recyclable[T, C, V]) Recyclable[T, C, V]) Recyclable[T, C, V] {
	s.mu.Lock()
	next := f(s.entries[key]) // absent key reads as the zero value, NeverAsked
	if next.IsNeverAsked() {
		delete(s.entries, key)
		kind = EventRemoved
	} else {
		s.entries[key] = next
	}
	hook := s.hook
	s.mu.Unlock()

	if hook != nil {
		hook(Event{Kind: kind, Key: key, Phase: next.phase})
	}
	return next
}
