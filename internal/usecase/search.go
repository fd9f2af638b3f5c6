package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"paraqa/internal/domain"
	"paraqa/internal/port"
)

// Fixed user-visible substitutes for the answer. The search flow never
// surfaces a raw synthesizer fault: ranked results stay valid and one
// of these messages takes the answer's place.
const (
	NotConfiguredMessage   = "Configure sua chave da API OpenAI para gerar respostas automáticas."
	SynthesisFailedMessage = "Erro ao gerar resposta com LLM. Verifique sua chave da API OpenAI."
)

// SearchUseCase orchestrates one search action: rank, then optionally
// synthesize an answer over the top-ranked chunks.
type SearchUseCase struct {
	retriever   port.Retriever
	synthesizer port.Synthesizer
	generation  atomic.Uint64
}

func NewSearchUseCase(retriever port.Retriever, synthesizer port.Synthesizer) *SearchUseCase {
	return &SearchUseCase{
		retriever:   retriever,
		synthesizer: synthesizer,
	}
}

// Rank runs retrieval only, without touching the synthesizer.
func (u *SearchUseCase) Rank(query string, storeIDs []string, topK int) []domain.ScoredChunk {
	return u.retriever.Search(query, storeIDs, topK)
}

// Search ranks chunks from the selected stores and, when a synthesizer
// is configured and results exist, asks it for an answer.
//
// Each call takes a generation token; if a newer search starts while
// the synthesizer call is in flight, the late answer is discarded and
// the report marked stale. An empty query or empty store selection is a
// no-op, not an error.
func (u *SearchUseCase) Search(ctx context.Context, query string, storeIDs []string, topK int, temperature float64) (domain.SearchReport, error) {
	report := domain.SearchReport{Query: query}
	if strings.TrimSpace(query) == "" || len(storeIDs) == 0 {
		return report, nil
	}

	token := u.generation.Add(1)
	report.Results = u.retriever.Search(query, storeIDs, topK)

	if !u.synthesizer.Available() {
		report.Answer = NotConfiguredMessage
		return report, nil
	}
	if len(report.Results) == 0 {
		return report, nil
	}

	chunks := make([]domain.Chunk, len(report.Results))
	for i, result := range report.Results {
		chunks[i] = result.Chunk
	}

	answer, err := u.synthesizer.Answer(ctx, query, chunks, temperature)

	if u.generation.Load() != token {
		// A newer search was issued while this answer was in flight.
		report.Stale = true
		return report, nil
	}
	if err != nil {
		slog.Warn("answer synthesis failed", "error", err)
		report.Answer = SynthesisFailedMessage
		return report, nil
	}

	report.Answer = answer
	return report, nil
}
