package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lox/internal"
)

var tokensFormat string

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream of a source",
	Long: `Scans a file, or standard input without one, and prints every token.
Lexical errors are reported after the tokens that could be scanned.

Formats:
  text  - one token per line (default)
  yaml  - a YAML sequence of type, lexeme, literal and line`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var mode internal.Mode
		switch tokensFormat {
		case "text":
			mode = internal.ModeTokens
		case "yaml":
			mode = internal.ModeTokensYAML
		default:
			return fmt.Errorf("unknown format %q", tokensFormat)
		}

		absPath, source, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		return run(cmd, absPath, source, internal.Options{Mode: mode})
	},
}

func init() {
	tokensCmd.Flags().StringVarP(&tokensFormat, "format", "f", "text", "output format (text, yaml)")
	rootCmd.AddCommand(tokensCmd)
}
