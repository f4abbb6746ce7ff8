package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"weave/config"
	"weave/internal/adapter/fs"
	"weave/internal/adapter/lexer"
	"weave/internal/adapter/store"
	"weave/internal/usecase"
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Build the documentation coverage index",
	Long: `Index classifies files in the specified directory and records how
much of each file is documentation. The index is stored in .weave/index.db
within the target directory; unchanged files are skipped on re-runs.

Examples:
  weave index .                 # Index current directory
  weave index /path/to/project  # Index specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	path, err := resolveTargetDir(args)
	if err != nil {
		return err
	}

	cfg := GetConfig()

	if err := config.EnsureWeaveDir(path); err != nil {
		return fmt.Errorf("failed to create .weave directory: %w", err)
	}

	dbPath := config.IndexDBPath(path)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index store: %w", err)
	}
	defer st.Close()

	table, err := lexer.NewTable()
	if err != nil {
		return fmt.Errorf("failed to build language table: %w", err)
	}

	walker := fs.NewWalker(cfg.Index.Includes, cfg.Index.Excludes)
	loadUC := usecase.NewLoadUseCase(table, cfg.Lexer.Language, cfg.Lexer.Fallback)
	indexUC := usecase.NewIndexUseCase(st, walker, loadUC)

	fmt.Printf("Scanning %s...\n", path)

	result, err := indexUC.Index(path, newProgress("Indexing"))
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	fmt.Printf("\nIndexing complete:\n")
	fmt.Printf("  Files indexed: %d\n", result.FilesIndexed)
	fmt.Printf("  Files skipped: %d (unchanged)\n", result.FilesSkipped)
	fmt.Printf("  Files deleted: %d (removed)\n", result.FilesDeleted)
	if result.FilesUnknown > 0 {
		fmt.Printf("  Unknown files: %d\n", result.FilesUnknown)
	}

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	fmt.Printf("\nIndex stored at: %s\n", dbPath)
	return nil
}
