package chunker

import (
	"fmt"
	"regexp"
	"strings"

	"paraqa/internal/domain"
)

// Paragraph boundaries are runs of whitespace containing at least one
// line break on each side ("double newline", tolerant of trailing
// spaces on the blank line).
var paragraphBoundary = regexp.MustCompile(`\n\s*\n`)

// ParagraphChunker splits raw document text into paragraph chunks.
type ParagraphChunker struct{}

func NewParagraphChunker() *ParagraphChunker {
	return &ParagraphChunker{}
}

// Split cuts text on blank-line boundaries, trims each segment and
// drops the empty ones. Positions are 1-based ordinals among the
// retained segments; ids are derived from the source label and the
// position. Pure: never fails, empty input yields no chunks.
func (c *ParagraphChunker) Split(text, source string) []domain.Chunk {
	segments := paragraphBoundary.Split(text, -1)

	chunks := make([]domain.Chunk, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		position := len(chunks) + 1
		chunks = append(chunks, domain.Chunk{
			ID:       fmt.Sprintf("%s_%d", source, position),
			Content:  segment,
			Source:   source,
			Position: position,
		})
	}

	return chunks
}
