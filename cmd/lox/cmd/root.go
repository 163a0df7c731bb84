package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lox/internal"
	"lox/internal/config"
)

var (
	cfgFile  string
	logLevel string
	noColor  bool

	cfg    = config.Default()
	logger = logrus.New()
)

// errRunFailed is returned after the diagnostics were already printed
var errRunFailed = errors.New("run failed")

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "Scanner and parser for Lox expressions",
	Long: `lox turns Lox expressions into tokens and syntax trees.

With a script argument the expression in the file is parsed and its
tree printed. Without arguments an interactive prompt is started.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runParse(cmd, args, internal.ModeAST)
		}
		return runREPL(cmd)
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errRunFailed) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $LOX_CONFIG or ./lox.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides the config file)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured diagnostics")
}

// setup loads the configuration and prepares the logger for every command
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.General.LogLevel = logLevel
	}
	if noColor {
		c.General.NoColor = true
	}
	if err := c.Validate(); err != nil {
		return err
	}

	level, _ := logrus.ParseLevel(c.General.LogLevel)
	logger.SetLevel(level)
	logger.SetOutput(cmd.ErrOrStderr())
	if c.General.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: c.General.NoColor})
	}

	cfg = c
	logger.WithFields(logrus.Fields{
		"command":   cmd.Name(),
		"max_depth": cfg.Parser.MaxDepth,
	}).Debug("configuration loaded")
	return nil
}

// readSource reads the script named by args, or standard input without one
func readSource(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 {
		b, err := ioutil.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("cannot read standard input: %w", err)
		}
		return "<stdin>", string(b), nil
	}

	absPath, err := filepath.Abs(args[0])
	if err != nil {
		return "", "", err
	}
	b, err := ioutil.ReadFile(absPath)
	if err != nil {
		return "", "", fmt.Errorf("cannot read script: %w", err)
	}
	return absPath, string(b), nil
}

func run(cmd *cobra.Command, absPath, source string, opts internal.Options) error {
	opts.Logger = logger
	if opts.MaxDepth == 0 {
		opts.MaxDepth = cfg.Parser.MaxDepth
	}
	if !internal.RunSource(absPath, source, newPrinter(cmd), opts) {
		return errRunFailed
	}
	return nil
}

func printError(w io.Writer, err error) {
	p := stdPrinter{out: w, errOut: w, color: newColor(w)}
	p.Fprintf(os.Stderr, "Error: %v\n", err)
}
