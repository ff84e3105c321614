// Package collection provides the ordered, copy-on-write store shared by the
// in-memory repositories.
package collection

import "sync"

// List is an ordered collection keyed by K. Values are cloned on the way in
// and on the way out, so callers never hold a reference into the store.
// It is safe for concurrent use.
type List[K comparable, V any] struct {
	mu    sync.RWMutex
	items []V
	key   func(V) K
	clone func(V) V
}

// New builds a List holding clones of seed in the given order.
func New[K comparable, V any](key func(V) K, clone func(V) V, seed ...V) *List[K, V] {
	items := make([]V, 0, len(seed))
	for _, v := range seed {
		items = append(items, clone(v))
	}
	return &List[K, V]{items: items, key: key, clone: clone}
}

// Insert adds v at the front or the back. It reports false, leaving the list
// unchanged, when the key is taken or conflict matches an existing value.
func (l *List[K, V]) Insert(v V, front bool, conflict func(existing V) bool) bool {
	k := l.key(v)
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, it := range l.items {
		if l.key(it) == k || (conflict != nil && conflict(it)) {
			return false
		}
	}
	cp := l.clone(v)
	if front {
		l.items = append([]V{cp}, l.items...)
	} else {
		l.items = append(l.items, cp)
	}
	return true
}

func (l *List[K, V]) Get(k K) (V, bool) {
	return l.Find(func(v V) bool { return l.key(v) == k })
}

// Find returns the first value matching pred.
func (l *List[K, V]) Find(pred func(V) bool) (V, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, it := range l.items {
		if pred(it) {
			return l.clone(it), true
		}
	}
	var zero V
	return zero, false
}

// Filter returns clones of every value matching pred, in list order.
// A nil pred matches everything.
func (l *List[K, V]) Filter(pred func(V) bool) []V {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]V, 0, len(l.items))
	for _, it := range l.items {
		if pred == nil || pred(it) {
			out = append(out, l.clone(it))
		}
	}
	return out
}

// Update runs fn against a copy of the value stored under k while holding the
// write lock and stores the copy if fn succeeds. ok is false when k is absent.
// The key of the value must not be changed by fn.
func (l *List[K, V]) Update(k K, fn func(*V) error) (out V, ok bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, it := range l.items {
		if l.key(it) != k {
			continue
		}
		cp := l.clone(it)
		if err := fn(&cp); err != nil {
			return out, true, err
		}
		l.items[i] = l.clone(cp)
		return cp, true, nil
	}
	return out, false, nil
}

// Delete removes the value stored under k and reports whether it existed.
func (l *List[K, V]) Delete(k K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, it := range l.items {
		if l.key(it) == k {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *List[K, V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}
