package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lox/internal"
)

var (
	parseFormat string
	maxDepth    int
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the syntax tree of an expression",
	Long: `Scans and parses a single expression from a file, or from standard
input without one, and prints its syntax tree.

Formats:
  sexpr  - fully parenthesized prefix notation (default)
  rpn    - reverse Polish notation`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var mode internal.Mode
		switch parseFormat {
		case "sexpr":
			mode = internal.ModeAST
		case "rpn":
			mode = internal.ModeRPN
		default:
			return fmt.Errorf("unknown format %q", parseFormat)
		}
		return runParse(cmd, args, mode)
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "sexpr", "output format (sexpr, rpn)")
	parseCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum nesting depth (default from config)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string, mode internal.Mode) error {
	absPath, source, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	return run(cmd, absPath, source, internal.Options{
		Mode:     mode,
		MaxDepth: maxDepth,
	})
}
