package internal

import (
	"errors"
	"os"
)

type parseError struct {
	err  error
	line int
}

// interpreterState stores the state of a single run
type interpreterState struct {
	absPath string
	source  string
	errors  []parseError
	tokens  []Token
	expr    Expr
	logger  IPrinter
}

func (s *interpreterState) setError(err error, line int) {
	s.errors = append(s.errors, parseError{
		err:  err,
		line: line,
	})
}

// addErrors records err, expanding an ErrorList into its elements
func (s *interpreterState) addErrors(err error) {
	var list ErrorList
	if errors.As(err, &list) {
		for _, e := range list {
			s.addErrors(e)
		}
		return
	}
	line := 0
	var pe positioned
	if errors.As(err, &pe) {
		line = pe.position()
		err = errors.New(pe.detail())
	}
	s.setError(err, line)
}

// Valid returns true if the state holds no errors
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// PrintErrors prints all errors and reports whether there were any
func (s *interpreterState) PrintErrors() bool {
	for _, e := range s.errors {
		s.logger.Fprintf(os.Stderr, "Error on line %d\n\t%v\n", e.line, e.err)
	}
	return !s.Valid()
}
