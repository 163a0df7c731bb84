package internal

import (
	"io"
	"io/ioutil"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Mode selects what a run prints
type Mode int

const (
	// ModeAST prints the tree in prefix notation
	ModeAST Mode = iota
	// ModeRPN prints the tree in reverse Polish notation
	ModeRPN
	// ModeTokens prints one token per line
	ModeTokens
	// ModeTokensYAML prints the token stream as a YAML sequence
	ModeTokensYAML
)

// Options tune RunSource
type Options struct {
	Mode     Mode
	MaxDepth int
	Logger   logrus.FieldLogger
}

// RunSourceWithPrinter scans and parses source and prints its tree
func RunSourceWithPrinter(absPath, source string, p IPrinter) bool {
	return RunSource(absPath, source, p, Options{})
}

// RunSource runs the front end over source and prints the result selected
// by opts.Mode through p. Errors are printed through p as well; the return
// value reports whether the run was free of errors.
func RunSource(absPath, source string, p IPrinter, opts Options) bool {
	state := &interpreterState{
		absPath: absPath,
		source:  source,
		errors:  make([]parseError, 0),
		logger:  p,
	}
	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}
	log = log.WithField("file", absPath)

	tokens, err := Scan(source)
	state.tokens = tokens
	if err != nil {
		state.addErrors(err)
	}
	log.WithFields(logrus.Fields{
		"tokens": len(tokens),
		"errors": len(state.errors),
	}).Debug("scanned source")

	switch opts.Mode {
	case ModeTokens, ModeTokensYAML:
		if err := printTokens(p, tokens, opts.Mode); err != nil {
			log.WithError(err).Error("cannot print tokens")
			state.setError(err, 0)
		}
		return !state.PrintErrors()
	}

	if state.PrintErrors() {
		return false
	}

	state.expr, err = ParseWithDepth(tokens, opts.MaxDepth)
	if err != nil {
		log.WithError(err).Debug("parse failed")
		state.addErrors(err)
		state.PrintErrors()
		return false
	}

	switch opts.Mode {
	case ModeRPN:
		p.Println(RPNPrinter{}.Print(state.expr))
	default:
		p.Println(Printer{}.Print(state.expr))
	}
	return true
}

type tokenRecord struct {
	Type    string      `yaml:"type"`
	Lexeme  string      `yaml:"lexeme"`
	Literal interface{} `yaml:"literal,omitempty"`
	Line    int         `yaml:"line"`
}

func printTokens(p IPrinter, tokens []Token, mode Mode) error {
	if mode == ModeTokens {
		for _, tk := range tokens {
			p.Println(tk.String())
		}
		return nil
	}

	records := make([]tokenRecord, len(tokens))
	for i, tk := range tokens {
		records[i] = tokenRecord{
			Type:   tk.Type.String(),
			Lexeme: tk.Lexeme,
			Line:   tk.Line,
		}
		if value, ok := tk.Literal(); ok {
			records[i].Literal = literalData(value)
		}
	}
	out, err := yaml.Marshal(records)
	if err != nil {
		return err
	}
	p.Println(strings.TrimRight(string(out), "\n"))
	return nil
}

func literalData(v Value) interface{} {
	switch v.Kind() {
	case StringValue:
		s, _ := v.AsString()
		return s
	case NumberValue:
		n, _ := v.AsNumber()
		return n
	case BoolValue:
		b, _ := v.AsBool()
		return b
	}
	return nil
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.Out = ioutil.Discard
	return logger
}
