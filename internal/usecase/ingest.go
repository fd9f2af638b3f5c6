package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"paraqa/internal/domain"
	"paraqa/internal/port"
)

// IngestUseCase loads text documents into the store registry.
type IngestUseCase struct {
	registry port.Registry
	walker   port.FileWalker
}

func NewIngestUseCase(registry port.Registry, walker port.FileWalker) *IngestUseCase {
	return &IngestUseCase{
		registry: registry,
		walker:   walker,
	}
}

// IngestResult summarizes one ingestion run.
type IngestResult struct {
	FilesIngested int
	FilesSkipped  int
	ChunksCreated int
	StoreIDs      []string
	Errors        []string
}

// ProgressFunc reports ingestion progress for display.
type ProgressFunc func(processed, total int, currentFile string)

// IngestFile chunks a single document and registers it under an id
// derived from its path. Only plain-text and Markdown files are
// accepted.
func (u *IngestUseCase) IngestFile(path string) (domain.Store, error) {
	if !Ingestible(path) {
		return domain.Store{}, fmt.Errorf("unsupported file type: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Store{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	name := filepath.Base(path)
	store := u.registry.Put(storeID(path), name, string(data))
	slog.Debug("ingested document", "file", name, "chunks", len(store.Chunks))
	return store, nil
}

// IngestDir walks root with the configured patterns and ingests every
// matching document. Files that fail are recorded and skipped rather
// than aborting the run.
func (u *IngestUseCase) IngestDir(root string, progress ProgressFunc) (*IngestResult, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	result := &IngestResult{}
	for i, file := range files {
		if progress != nil {
			progress(i+1, len(files), file.Path)
		}

		if !Ingestible(file.Path) {
			result.FilesSkipped++
			continue
		}

		store, err := u.IngestFile(file.Path)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			result.FilesSkipped++
			continue
		}
		result.FilesIngested++
		result.ChunksCreated += len(store.Chunks)
		result.StoreIDs = append(result.StoreIDs, store.ID)
	}

	return result, nil
}

// Ingestible reports whether a path looks like an acceptable upload:
// plain text or Markdown, by extension. No other validation.
func Ingestible(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return true
	}
	return false
}

func storeID(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:8])
}
