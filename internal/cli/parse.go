package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"weave/internal/adapter/lexer"
	"weave/internal/usecase"
)

var parseLanguage string

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print a file's block structure as JSON",
	Long: `Parse classifies a single source file into code and documentation
blocks and prints them as JSON.

Examples:
  weave parse main.go
  weave parse --language python build.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseLanguage, "language", "l", "", "force a language instead of resolving it")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	table, err := lexer.NewTable()
	if err != nil {
		return fmt.Errorf("failed to build language table: %w", err)
	}

	language := cfg.Lexer.Language
	if parseLanguage != "" {
		language = parseLanguage
	}
	loadUC := usecase.NewLoadUseCase(table, language, cfg.Lexer.Fallback)

	doc, err := loadUC.Load(args[0])
	if err != nil {
		return err
	}

	out := struct {
		Path   string      `json:"path"`
		Lang   string      `json:"lang"`
		Blocks interface{} `json:"blocks"`
	}{
		Path:   doc.Path,
		Lang:   doc.Lang,
		Blocks: doc.Blocks,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
