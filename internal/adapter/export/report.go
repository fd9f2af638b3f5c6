package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"paraqa/internal/domain"
)

const (
	reportHeader = "RAG - Resultados da Pesquisa"
	filePrefix   = "rag-results-"
	fileExt      = ".txt"
)

// Write renders a search report as plain text: the query, the answer
// (possibly empty) and every ranked chunk with its ordinal, source,
// score to 4 decimal places, paragraph position and full content.
func Write(w io.Writer, report domain.SearchReport) error {
	if _, err := fmt.Fprintf(w, "%s\n\nPergunta: %s\n\nResposta LLM:\n%s\n\nDocumentos Recuperados:\n", reportHeader, report.Query, report.Answer); err != nil {
		return err
	}
	for i, result := range report.Results {
		_, err := fmt.Fprintf(w, "\n%d. %s (Score: %.4f)\nParágrafo: %d\nConteúdo: %s\n",
			i+1, result.Chunk.Source, result.Score, result.Chunk.Position, result.Chunk.Content)
		if err != nil {
			return err
		}
	}
	return nil
}

// FileName builds the one-shot artifact name: fixed prefix, millisecond
// timestamp, fixed extension.
func FileName(now time.Time) string {
	return fmt.Sprintf("%s%d%s", filePrefix, now.UnixMilli(), fileExt)
}

// Save writes the report into dir and returns the file path.
func Save(dir string, report domain.SearchReport) (string, error) {
	path := filepath.Join(dir, FileName(time.Now()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := Write(f, report); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
