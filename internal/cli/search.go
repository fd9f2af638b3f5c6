package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"paraqa/internal/adapter/retriever"
	"paraqa/internal/domain"
)

var (
	searchQuery string
	searchTopK  int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [files or directories...]",
	Short: "Rank paragraphs against a query",
	Long: `Ingest the given documents and rank their paragraphs against the query
using the lexical overlap score. No LLM call is made.

Examples:
  paraqa search -q "consciência" livro.txt
  paraqa search -q "projeção consciente" docs/ --top-k 5 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "search query (required)")
	searchCmd.Flags().IntVarP(&searchTopK, "top-k", "k", 0, "number of results (default from config)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	searchCmd.MarkFlagRequired("query")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	reg, storeIDs, err := buildRegistry(cfg, args)
	if err != nil {
		return err
	}

	topK := cfg.Retrieve.TopK
	if searchTopK > 0 {
		topK = searchTopK
	}

	lexical := retriever.NewLexicalRetriever(reg)
	results := lexical.Search(searchQuery, storeIDs, topK)

	if searchJSON {
		return printResultsJSON(results)
	}
	printResults(searchQuery, results)
	return nil
}

// searchResult is the flattened JSON shape for CLI output.
type searchResult struct {
	Source    string  `json:"source"`
	Paragraph int     `json:"paragraph"`
	Score     float64 `json:"score"`
	Content   string  `json:"content"`
}

func printResultsJSON(results []domain.ScoredChunk) error {
	out := make([]searchResult, len(results))
	for i, r := range results {
		out[i] = searchResult{
			Source:    r.Chunk.Source,
			Paragraph: r.Chunk.Position,
			Score:     r.Score,
			Content:   r.Chunk.Content,
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printResults(query string, results []domain.ScoredChunk) {
	if len(results) == 0 {
		fmt.Println("No results found.")
		return
	}
	fmt.Printf("Found %d results for: %s\n\n", len(results), query)
	for i, r := range results {
		fmt.Printf("--- [%d] %s ¶%d (score: %.4f) ---\n", i+1, r.Chunk.Source, r.Chunk.Position, r.Score)
		fmt.Println(r.Chunk.Content)
		fmt.Println()
	}
}
