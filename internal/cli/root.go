package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weave/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "weave",
	Short: "Weave - classify source files into code and documentation blocks",
	Long: `Weave is a CLI tool for literate programming: it splits source files
into alternating code and documentation blocks (comments written in the
language's own delimiters), and serializes edited blocks back to plain
source.

Example usage:
  weave parse main.go           # Print a file's block structure as JSON
  weave check .                 # Verify files round trip losslessly
  weave index .                 # Build the documentation coverage index
  weave stats                   # Show coverage statistics`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./weave.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
