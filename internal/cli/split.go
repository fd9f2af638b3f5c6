package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"paraqa/internal/adapter/chunker"
)

var splitJSON bool

var splitCmd = &cobra.Command{
	Use:   "split <file>",
	Short: "Show how a document is chunked into paragraphs",
	Long: `Split one document into paragraph chunks and print them, without
building a registry. Useful to inspect chunk boundaries before
searching.

Examples:
  paraqa split livro.txt
  paraqa split notes.md --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().BoolVar(&splitJSON, "json", false, "output as JSON")
}

func runSplit(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", args[0], err)
	}

	chunks := chunker.NewParagraphChunker().Split(string(data), filepath.Base(args[0]))

	if splitJSON {
		out, err := json.MarshalIndent(chunks, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("%d paragraphs\n\n", len(chunks))
	for _, chunk := range chunks {
		fmt.Printf("--- ¶%d (%s) ---\n%s\n\n", chunk.Position, chunk.ID, chunk.Content)
	}
	return nil
}
