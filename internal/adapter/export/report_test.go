package export

import (
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"paraqa/internal/domain"
)

func sampleReport() domain.SearchReport {
	return domain.SearchReport{
		Query:  "o que é consciência?",
		Answer: "A consciência é o objeto de estudo.",
		Results: []domain.ScoredChunk{
			{
				Chunk: domain.Chunk{
					ID:       "livro.txt_3",
					Content:  "Conscienciologia estuda a consciência.",
					Source:   "livro.txt",
					Position: 3,
				},
				Score: 0.5,
			},
		},
	}
}

func TestWriteFormat(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, sampleReport()); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	for _, want := range []string{
		"Pergunta: o que é consciência?",
		"Resposta LLM:\nA consciência é o objeto de estudo.",
		"Documentos Recuperados:",
		"1. livro.txt (Score: 0.5000)",
		"Parágrafo: 3",
		"Conteúdo: Conscienciologia estuda a consciência.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q in:\n%s", want, out)
		}
	}
}

func TestWriteEmptyAnswer(t *testing.T) {
	report := sampleReport()
	report.Answer = ""

	var b strings.Builder
	if err := Write(&b, report); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "Resposta LLM:\n\n") {
		t.Error("expected answer section present even when empty")
	}
}

func TestFileName(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	name := FileName(now)

	if name != "rag-results-1700000000000.txt" {
		t.Errorf("unexpected file name: %q", name)
	}
	if !regexp.MustCompile(`^rag-results-\d+\.txt$`).MatchString(name) {
		t.Errorf("file name %q does not match the fixed pattern", name)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, sampleReport())
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Pergunta: o que é consciência?") {
		t.Error("saved report missing query")
	}
}
