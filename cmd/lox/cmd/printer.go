package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/spf13/cobra"
)

// stdPrinter writes results to out and diagnostics, in red, to errOut
type stdPrinter struct {
	out    io.Writer
	errOut io.Writer
	color  *color.Color
}

func newPrinter(cmd *cobra.Command) stdPrinter {
	return stdPrinter{
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
		color:  newColor(cmd.ErrOrStderr()),
	}
}

// newColor colours output only for a terminal and only when allowed
func newColor(w io.Writer) *color.Color {
	c := color.New()
	c.SetOutput(w)
	if cfg.General.NoColor {
		c.Disable()
	}
	return c
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.out, a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	msg := fmt.Sprintf(format, a...)
	trimmed := strings.TrimSuffix(msg, "\n")
	return fmt.Fprint(s.writer(w), s.color.Red(trimmed)+msg[len(trimmed):])
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.writer(w), s.color.Red(fmt.Sprint(a...)))
}

func (s stdPrinter) writer(w io.Writer) io.Writer {
	switch w {
	case os.Stderr:
		return s.errOut
	case os.Stdout:
		return s.out
	}
	return w
}
