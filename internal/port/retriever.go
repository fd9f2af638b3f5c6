package port

import "paraqa/internal/domain"

// Retriever ranks chunks from the selected stores against a query.
type Retriever interface {
	// Search returns at most topK scored chunks, best first. Unknown
	// store ids are skipped silently; an empty query yields no results.
	Search(query string, storeIDs []string, topK int) []domain.ScoredChunk
}
