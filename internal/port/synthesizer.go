package port

import (
	"context"

	"paraqa/internal/domain"
)

// Synthesizer turns a query plus context chunks into a prose answer via
// an external text-generation service.
type Synthesizer interface {
	// Available reports whether the service is configured. Callers must
	// not call Answer when it returns false.
	Available() bool

	// Answer generates an answer grounded on the chunk contents.
	// Temperature is in [0,1].
	Answer(ctx context.Context, query string, chunks []domain.Chunk, temperature float64) (string, error)
}
