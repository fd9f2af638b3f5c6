package registry

import (
	"sync"

	"paraqa/internal/domain"
	"paraqa/internal/port"
)

// MemoryRegistry holds stores in memory for the lifetime of the
// process. All reads hand out copies, so callers always see a
// consistent snapshot even when uploads happen concurrently.
type MemoryRegistry struct {
	mu      sync.RWMutex
	chunker port.Chunker
	stores  map[string]domain.Store
	order   []string
}

func NewMemoryRegistry(chunker port.Chunker) *MemoryRegistry {
	return &MemoryRegistry{
		chunker: chunker,
		stores:  make(map[string]domain.Store),
	}
}

// Put chunks text and registers the store under id. An existing id is
// overwritten in place: re-uploading a document refreshes its chunk set
// without changing the store's position in List order.
func (r *MemoryRegistry) Put(id, name, text string) domain.Store {
	chunks := r.chunker.Split(text, name)
	for i := range chunks {
		chunks[i].StoreID = id
	}
	store := domain.Store{ID: id, Name: name, Chunks: chunks}

	r.mu.Lock()
	if _, exists := r.stores[id]; !exists {
		r.order = append(r.order, id)
	}
	r.stores[id] = store
	r.mu.Unlock()

	return copyStore(store)
}

func (r *MemoryRegistry) Get(id string) (domain.Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	store, ok := r.stores[id]
	if !ok {
		return domain.Store{}, false
	}
	return copyStore(store), true
}

// List returns all stores in insertion order.
func (r *MemoryRegistry) List() []domain.Store {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stores := make([]domain.Store, 0, len(r.order))
	for _, id := range r.order {
		if store, ok := r.stores[id]; ok {
			stores = append(stores, copyStore(store))
		}
	}
	return stores
}

func (r *MemoryRegistry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stores[id]; !ok {
		return
	}
	delete(r.stores, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *MemoryRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores = make(map[string]domain.Store)
	r.order = nil
}

func copyStore(store domain.Store) domain.Store {
	chunks := make([]domain.Chunk, len(store.Chunks))
	copy(chunks, store.Chunks)
	store.Chunks = chunks
	return store
}
