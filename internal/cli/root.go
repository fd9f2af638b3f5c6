package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"paraqa/config"
	"paraqa/internal/platform/logger"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "paraqa",
	Short: "Paragraph-store retrieval QA over plain-text documents",
	Long: `paraqa splits plain-text and Markdown documents into paragraph chunks,
ranks them against a free-text query using a lexical overlap heuristic,
and optionally asks an OpenAI chat model to synthesize a prose answer
from the top-ranked paragraphs.

Example usage:
  paraqa search -q "consciência" docs/           # Rank paragraphs
  paraqa ask -q "o que é projeção?" docs/        # Rank and answer
  paraqa split livro.txt                         # Show the chunking`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env next to the working directory may carry the API key.
		_ = godotenv.Load()

		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			wd, wdErr := os.Getwd()
			if wdErr != nil {
				return fmt.Errorf("failed to get working directory: %w", wdErr)
			}
			cfg, err = config.LoadFromDir(wd)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./paraqa.yaml)")
}

func GetConfig() *config.Config {
	return cfg
}
