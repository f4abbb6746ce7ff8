package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weave/config"
	"weave/internal/adapter/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats [path]",
	Short: "Show documentation coverage statistics",
	Long: `Stats prints the aggregate coverage recorded by 'weave index': how
many files and blocks are indexed and what share of lines is documentation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	path, err := resolveTargetDir(args)
	if err != nil {
		return err
	}

	dbPath := config.IndexDBPath(path)
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("no index found at %s; run 'weave index' first", dbPath)
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index store: %w", err)
	}
	defer st.Close()

	stats, err := st.GetStats()
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}

	fmt.Printf("Documentation coverage:\n")
	fmt.Printf("  Files indexed: %d\n", stats.TotalDocs)
	fmt.Printf("  Blocks:        %d\n", stats.TotalBlocks)
	fmt.Printf("  Code lines:    %d\n", stats.CodeLines)
	fmt.Printf("  Doc lines:     %d\n", stats.DocLines)
	fmt.Printf("  Doc ratio:     %.1f%%\n", stats.DocLineRatio*100)
	if stats.UnknownFiles > 0 {
		fmt.Printf("  Unknown files: %d\n", stats.UnknownFiles)
	}
	return nil
}
