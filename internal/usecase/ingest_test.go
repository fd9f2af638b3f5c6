package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"paraqa/internal/adapter/chunker"
	"paraqa/internal/adapter/fs"
	"paraqa/internal/adapter/registry"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newIngestFixture() (*registry.MemoryRegistry, *IngestUseCase) {
	reg := registry.NewMemoryRegistry(chunker.NewParagraphChunker())
	walker := fs.NewWalker([]string{"**/*.txt", "**/*.md"}, nil)
	return reg, NewIngestUseCase(reg, walker)
}

func TestIngestFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "livro.txt", "first paragraph\n\nsecond paragraph")
	reg, uc := newIngestFixture()

	store, err := uc.IngestFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Name != "livro.txt" {
		t.Errorf("expected store named after the file, got %q", store.Name)
	}
	if len(store.Chunks) != 2 {
		t.Errorf("expected 2 chunks, got %d", len(store.Chunks))
	}
	if _, ok := reg.Get(store.ID); !ok {
		t.Error("store not registered")
	}
}

func TestIngestFileRejectsOtherTypes(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.csv", "a,b,c")
	_, uc := newIngestFixture()

	if _, err := uc.IngestFile(path); err == nil {
		t.Error("expected an error for a non-text file type")
	}
}

func TestIngestFileStableStoreID(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "livro.txt", "hello")
	reg, uc := newIngestFixture()

	first, _ := uc.IngestFile(path)
	second, _ := uc.IngestFile(path)

	if first.ID != second.ID {
		t.Errorf("re-ingesting the same path produced a new id: %q vs %q", first.ID, second.ID)
	}
	if len(reg.List()) != 1 {
		t.Errorf("expected a single store after re-ingest, got %d", len(reg.List()))
	}
}

func TestIngestDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha\n\nbeta")
	writeFile(t, dir, "b.md", "gamma")
	writeFile(t, dir, "c.json", "{}") // not matched by the walker

	reg, uc := newIngestFixture()

	var calls int
	result, err := uc.IngestDir(dir, func(processed, total int, currentFile string) {
		calls++
		if total != 2 {
			t.Errorf("expected 2 discovered files, got total=%d", total)
		}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FilesIngested != 2 {
		t.Errorf("expected 2 files ingested, got %d", result.FilesIngested)
	}
	if result.ChunksCreated != 3 {
		t.Errorf("expected 3 chunks, got %d", result.ChunksCreated)
	}
	if len(result.StoreIDs) != 2 {
		t.Errorf("expected 2 store ids, got %d", len(result.StoreIDs))
	}
	if calls == 0 {
		t.Error("progress callback never invoked")
	}
	if len(reg.List()) != 2 {
		t.Errorf("expected 2 registered stores, got %d", len(reg.List()))
	}
}

func TestIngestible(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.txt", true},
		{"A.TXT", true},
		{"notes.md", true},
		{"data.csv", false},
		{"archive.tar.gz", false},
		{"noextension", false},
	}
	for _, tt := range tests {
		if got := Ingestible(tt.path); got != tt.want {
			t.Errorf("Ingestible(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
