package port

import "paraqa/internal/domain"

type Chunker interface {
	Split(text, source string) []domain.Chunk
}
