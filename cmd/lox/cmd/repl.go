package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"lox/internal"
)

const replHelp = `Enter an expression to print its syntax tree.
  :ast     print trees in prefix notation
  :rpn     print trees in reverse Polish notation
  :tokens  print the token stream
  :quit    leave`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.REPL.HistoryFile
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		f, err := os.Create(histPath)
		if err != nil {
			logger.WithError(err).WithField("file", histPath).Warn("cannot save history")
			return
		}
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}()

	out := cmd.OutOrStdout()
	p := newPrinter(cmd)
	opts := internal.Options{
		Mode:     internal.ModeAST,
		MaxDepth: cfg.Parser.MaxDepth,
		Logger:   logger,
	}

	for {
		line, err := ln.Prompt(cfg.REPL.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(code, ":") {
			switch strings.ToLower(code) {
			case ":quit":
				return nil
			case ":ast":
				opts.Mode = internal.ModeAST
			case ":rpn":
				opts.Mode = internal.ModeRPN
			case ":tokens":
				opts.Mode = internal.ModeTokens
			default:
				fmt.Fprintln(out, replHelp)
			}
			continue
		}

		// Errors were printed already; the prompt stays open.
		internal.RunSource("<repl>", line, p, opts)
	}
}
