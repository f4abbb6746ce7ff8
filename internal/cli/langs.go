package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"weave/internal/adapter/lexer"
)

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List supported languages",
	RunE:  runLangs,
}

func init() {
	rootCmd.AddCommand(langsCmd)
}

func runLangs(cmd *cobra.Command, args []string) error {
	table, err := lexer.NewTable()
	if err != nil {
		return fmt.Errorf("failed to build language table: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LANGUAGE\tEXTENSIONS\tCOMMENTS")
	for _, lx := range table.Languages() {
		var delims []string
		delims = append(delims, lx.InlineComments...)
		for _, bd := range lx.BlockComments {
			delims = append(delims, bd.Opening+" "+bd.Closing)
		}
		comments := strings.Join(delims, ", ")
		if lx.DocOnly {
			comments = "(document)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", lx.Name, strings.Join(lx.Extensions, " "), comments)
	}
	return w.Flush()
}
