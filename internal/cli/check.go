package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"weave/internal/adapter/fs"
	"weave/internal/adapter/lexer"
	"weave/internal/usecase"
)

var checkWrite bool

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Verify that files round trip losslessly",
	Long: `Check classifies every matching file and serializes it back, then
compares the result with the bytes on disk. Files whose comments are not in
canonical form are listed as rewrites.

Examples:
  weave check .                 # Check current directory
  weave check /path/to/project  # Check specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkWrite, "write", "w", false, "rewrite non-canonical files in place")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, err := resolveTargetDir(args)
	if err != nil {
		return err
	}

	cfg := GetConfig()

	table, err := lexer.NewTable()
	if err != nil {
		return fmt.Errorf("failed to build language table: %w", err)
	}

	walker := fs.NewWalker(cfg.Index.Includes, cfg.Index.Excludes)
	loadUC := usecase.NewLoadUseCase(table, cfg.Lexer.Language, cfg.Lexer.Fallback)
	saveUC := usecase.NewSaveUseCase(table)
	checkUC := usecase.NewCheckUseCase(walker, loadUC, saveUC)

	fmt.Printf("Checking %s...\n", path)

	result, err := checkUC.Check(path, checkWrite, newProgress("Checking"))
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	fmt.Printf("\nCheck complete:\n")
	fmt.Printf("  Files checked: %d\n", result.FilesChecked)
	fmt.Printf("  Files skipped: %d (unknown language)\n", result.FilesSkipped)
	fmt.Printf("  Rewrites:      %d\n", len(result.Rewrites))

	if len(result.Rewrites) > 0 {
		if checkWrite {
			fmt.Printf("\nRewritten files:\n")
		} else {
			fmt.Printf("\nFiles that would be rewritten on save:\n")
		}
		for _, p := range result.Rewrites {
			fmt.Printf("  - %s\n", p)
		}
	}
	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	return nil
}

// resolveTargetDir picks the directory a command operates on: the positional
// argument when given, the --dir flag otherwise.
func resolveTargetDir(args []string) (string, error) {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return "", fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", path)
	}
	return path, nil
}

// newProgress builds a progress callback backed by a terminal progress bar.
// The bar is created lazily, once the total is known.
func newProgress(description string) usecase.ProgressFunc {
	var bar *progressbar.ProgressBar
	var mu sync.Mutex

	return func(processed, total int, currentFile string) {
		mu.Lock()
		defer mu.Unlock()

		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset]", description)),
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
		bar.Set(processed)
	}
}
