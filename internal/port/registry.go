package port

import "paraqa/internal/domain"

// Registry is the in-memory collection of stores. It exists once per
// running instance and has no persistence across restarts.
type Registry interface {
	// Put chunks the raw text and inserts the resulting store under id,
	// replacing any prior store with the same id.
	Put(id, name, text string) domain.Store

	// Get looks up a store by id. Absence is not an error.
	Get(id string) (domain.Store, bool)

	// List returns all registered stores in insertion order.
	List() []domain.Store

	// Remove deletes the store and its chunks. Removing an absent id is
	// a no-op.
	Remove(id string)

	// Clear empties the registry.
	Clear()
}
