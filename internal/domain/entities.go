package domain

// Chunk is one paragraph-granularity unit of retrievable text.
type Chunk struct {
	ID       string
	StoreID  string
	Content  string
	Source   string
	Position int

	// Embedding is reserved for semantic scoring. The live ranking path
	// never populates it; see retriever.CosineSimilarity.
	Embedding []float32
}

// Store is a named collection of chunks derived from one uploaded document.
type Store struct {
	ID     string
	Name   string
	Chunks []Chunk
}

type ScoredChunk struct {
	Chunk Chunk
	Score float64
}

// SearchReport is the outcome of one search action: the ranked chunks
// plus the synthesized answer (or an informational substitute).
type SearchReport struct {
	Query   string
	Answer  string
	Results []ScoredChunk

	// Stale is set when a newer search superseded this one while its
	// answer was still in flight. Ranked results stay valid; the answer
	// is discarded.
	Stale bool
}
