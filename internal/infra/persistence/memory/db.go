// Package memory is an in-process document store with change notifications.
// It backs local development and tests with the same query semantics as the
// Firestore repositories.
package memory

import (
	"sort"
	"sync"
	"time"
)

// DB holds collections of documents keyed by id.
type DB struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
	listeners   map[string]map[int]chan struct{}
	nextID      int
	now         func() time.Time
}

// NewDB creates an empty document store.
func NewDB() *DB {
	return &DB{
		collections: make(map[string]map[string]map[string]any),
		listeners:   make(map[string]map[int]chan struct{}),
		now:         time.Now,
	}
}

// SetClock replaces the clock used for server-assigned timestamps.
func (db *DB) SetClock(now func() time.Time) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.now = now
}

// Put replaces a whole document.
func (db *DB) Put(collection, id string, data map[string]any) {
	db.mu.Lock()
	db.putLocked(collection, id, data)
	db.mu.Unlock()

	db.notify(collection)
}

func (db *DB) putLocked(collection, id string, data map[string]any) {
	docs, ok := db.collections[collection]
	if !ok {
		docs = make(map[string]map[string]any)
		db.collections[collection] = docs
	}
	docs[id] = cloneMap(data)
}

// Get returns a copy of a document.
func (db *DB) Get(collection, id string) (map[string]any, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	doc, ok := db.collections[collection][id]
	if !ok {
		return nil, false
	}

	return cloneMap(doc), true
}

// Delete removes a document and reports whether it existed.
func (db *DB) Delete(collection, id string) bool {
	db.mu.Lock()
	_, ok := db.collections[collection][id]
	delete(db.collections[collection], id)
	db.mu.Unlock()

	if ok {
		db.notify(collection)
	}

	return ok
}

// Mutate runs fn on a copy of the document under the write lock and stores the
// result. fn sees exists=false for a missing document; returning a nil map
// leaves the collection unchanged.
func (db *DB) Mutate(collection, id string, fn func(doc map[string]any, exists bool) (map[string]any, error)) error {
	db.mu.Lock()

	current, exists := db.collections[collection][id]
	next, err := fn(cloneMap(current), exists)
	if err != nil || next == nil {
		db.mu.Unlock()

		return err
	}
	db.putLocked(collection, id, next)
	db.mu.Unlock()

	db.notify(collection)

	return nil
}

// Document is a snapshot of one stored document.
type Document struct {
	ID   string
	Data map[string]any
}

// Query returns copies of the documents matching match, ordered by id.
func (db *DB) Query(collection string, match func(map[string]any) bool) []Document {
	db.mu.RLock()
	defer db.mu.RUnlock()

	docs := db.collections[collection]
	result := make([]Document, 0, len(docs))
	for id, data := range docs {
		if match == nil || match(data) {
			result = append(result, Document{ID: id, Data: cloneMap(data)})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result
}

// Now returns the current server time.
func (db *DB) Now() time.Time {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.now()
}

// Listen registers for change notifications on a collection. The returned
// channel receives a value after every write, coalescing bursts.
func (db *DB) Listen(collection string) (<-chan struct{}, func()) {
	db.mu.Lock()
	defer db.mu.Unlock()

	id := db.nextID
	db.nextID++

	ch := make(chan struct{}, 1)
	if db.listeners[collection] == nil {
		db.listeners[collection] = make(map[int]chan struct{})
	}
	db.listeners[collection][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			db.mu.Lock()
			delete(db.listeners[collection], id)
			db.mu.Unlock()
		})
	}

	return ch, cancel
}

func (db *DB) notify(collection string) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, ch := range db.listeners[collection] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}

		return out
	default:
		return v
	}
}
