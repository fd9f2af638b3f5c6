package retriever

import (
	"sort"

	"paraqa/internal/adapter/analyzer"
	"paraqa/internal/domain"
	"paraqa/internal/port"
)

// LexicalRetriever ranks chunks by lexical overlap with the query: the
// fraction of query tokens with a substring-containment match against
// some content token. Scores are in [0,1].
type LexicalRetriever struct {
	registry port.Registry
}

func NewLexicalRetriever(registry port.Registry) *LexicalRetriever {
	return &LexicalRetriever{registry: registry}
}

// Search scores every chunk in the selected stores and returns at most
// topK matches, best first. Chunks that match nothing are excluded, not
// ranked last. Ties keep encounter order (storeIDs order, then chunk
// position) so repeated searches are reproducible. Read-only over
// registry state.
func (r *LexicalRetriever) Search(query string, storeIDs []string, topK int) []domain.ScoredChunk {
	queryTokens := analyzer.Tokenize(query)
	if len(queryTokens) == 0 || topK <= 0 {
		return nil
	}

	var results []domain.ScoredChunk
	for _, id := range storeIDs {
		store, ok := r.registry.Get(id)
		if !ok {
			continue
		}
		for _, chunk := range store.Chunks {
			score := overlap(queryTokens, analyzer.Tokenize(chunk.Content))
			if score > 0 {
				results = append(results, domain.ScoredChunk{Chunk: chunk, Score: score})
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// Similarity computes the lexical overlap score for a single
// query/text pair. Zero-token queries score 0.
func Similarity(query, text string) float64 {
	queryTokens := analyzer.Tokenize(query)
	if len(queryTokens) == 0 {
		return 0
	}
	return overlap(queryTokens, analyzer.Tokenize(text))
}

func overlap(queryTokens, contentTokens []string) float64 {
	matched := 0
	for _, qt := range queryTokens {
		for _, ct := range contentTokens {
			if analyzer.Match(qt, ct) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(queryTokens))
}
