package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"paraqa/internal/adapter/export"
	"paraqa/internal/adapter/llm"
	"paraqa/internal/adapter/retriever"
	"paraqa/internal/usecase"
)

var (
	askQuery       string
	askTopK        int
	askTemperature float64
	askExportDir   string
)

var askCmd = &cobra.Command{
	Use:   "ask [files or directories...]",
	Short: "Rank paragraphs and synthesize an answer",
	Long: `Ingest the given documents, rank their paragraphs against the query and
ask the configured OpenAI model to answer based on the top-ranked
paragraphs. Without an API key the ranked results are still shown,
together with a note that answer generation is not configured.

Examples:
  paraqa ask -q "o que é projeção consciente?" docs/
  paraqa ask -q "what is a chunk?" notes.md --temperature 0.3 --export .`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVarP(&askQuery, "query", "q", "", "question to answer (required)")
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "number of context paragraphs (default from config)")
	askCmd.Flags().Float64VarP(&askTemperature, "temperature", "t", -1, "sampling temperature in [0,1] (default from config)")
	askCmd.Flags().StringVar(&askExportDir, "export", "", "write a plain-text report into this directory")
	askCmd.MarkFlagRequired("query")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	reg, storeIDs, err := buildRegistry(cfg, args)
	if err != nil {
		return err
	}

	topK := cfg.Retrieve.TopK
	if askTopK > 0 {
		topK = askTopK
	}
	temperature := cfg.LLM.Temperature
	if askTemperature >= 0 {
		temperature = askTemperature
	}

	synth := llm.New(cfg.LLM.APIKeyEnv, llm.Options{
		Model:        cfg.LLM.Model,
		SystemPrompt: cfg.LLM.SystemPrompt,
		MaxTokens:    cfg.LLM.MaxTokens,
	})
	searchUC := usecase.NewSearchUseCase(retriever.NewLexicalRetriever(reg), synth)

	report, err := searchUC.Search(cmd.Context(), askQuery, storeIDs, topK, temperature)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if report.Answer != "" {
		fmt.Printf("Resposta:\n%s\n\n", report.Answer)
	}
	printResults(report.Query, report.Results)

	if askExportDir != "" {
		path, err := export.Save(askExportDir, report)
		if err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", path)
	}
	return nil
}
