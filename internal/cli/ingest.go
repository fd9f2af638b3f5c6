package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"paraqa/config"
	"paraqa/internal/adapter/chunker"
	"paraqa/internal/adapter/fs"
	"paraqa/internal/adapter/registry"
	"paraqa/internal/usecase"
)

// buildRegistry constructs the process-lifetime registry and loads the
// given files and directories into it, in argument order. Returns the
// registry and the ingested store ids.
func buildRegistry(cfg *config.Config, paths []string) (*registry.MemoryRegistry, []string, error) {
	reg := registry.NewMemoryRegistry(chunker.NewParagraphChunker())
	walker := fs.NewWalker(cfg.Ingest.Includes, cfg.Ingest.Excludes)
	ingestUC := usecase.NewIngestUseCase(reg, walker)

	var storeIDs []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot read %s: %w", path, err)
		}

		if info.IsDir() {
			result, err := ingestUC.IngestDir(path, dirProgress())
			if err != nil {
				return nil, nil, fmt.Errorf("failed to ingest %s: %w", path, err)
			}
			for _, msg := range result.Errors {
				fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
			}
			storeIDs = append(storeIDs, result.StoreIDs...)
			continue
		}

		store, err := ingestUC.IngestFile(path)
		if err != nil {
			return nil, nil, err
		}
		storeIDs = append(storeIDs, store.ID)
	}

	if len(storeIDs) == 0 {
		return nil, nil, fmt.Errorf("no documents ingested (accepted types: .txt, .md)")
	}
	return reg, storeIDs, nil
}

// dirProgress renders an ingestion progress bar once the file total is
// known, in the house style.
func dirProgress() usecase.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(processed, total int, currentFile string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Ingesting[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Describe(fmt.Sprintf("[cyan]Ingesting[reset] %s", filepath.Base(currentFile)))
		bar.Set(processed)
	}
}
