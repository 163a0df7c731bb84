package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lox/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfig, "")
	cfgFile, logLevel, noColor = "", "", false
	parseFormat, tokensFormat, maxDepth = "sexpr", "text", 0

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseCommand(t *testing.T) {
	out, errOut, err := execute(t, "(5 - (3 - 1)) + -1", "parse")
	if err != nil {
		t.Fatalf("parse failed: %v\n%s", err, errOut)
	}
	if out != "(+ (group (- 5 (group (- 3 1)))) (- 1))\n" {
		t.Errorf("Unexpected output %q", out)
	}

	out, _, err = execute(t, "(1 + 2) * 3", "parse", "--format", "rpn")
	if err != nil || out != "1 2 + 3 *\n" {
		t.Errorf("Unexpected RPN output %q, %v", out, err)
	}

	if _, _, err := execute(t, "1", "parse", "--format", "json"); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("Expected unknown format error instead of %v", err)
	}
}

func TestScriptArgument(t *testing.T) {
	path := writeFile(t, "expr.lox", "// comment\n1 - 2 - 3\n")
	out, errOut, err := execute(t, "", path)
	if err != nil {
		t.Fatalf("script failed: %v\n%s", err, errOut)
	}
	if out != "(- (- 1 2) 3)\n" {
		t.Errorf("Unexpected output %q", out)
	}

	_, _, err = execute(t, "", filepath.Join(t.TempDir(), "missing.lox"))
	if err == nil || !strings.Contains(err.Error(), "cannot read script") {
		t.Errorf("Expected read error instead of %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	out, errOut, err := execute(t, "(1 + 2", "parse")
	if !errors.Is(err, errRunFailed) {
		t.Errorf("Expected errRunFailed instead of %v", err)
	}
	if out != "" {
		t.Errorf("No tree expected, found %q", out)
	}
	if errOut != "Error on line 1\n\tExpect ')' after expression, found end of input\n" {
		t.Errorf("Unexpected diagnostics %q", errOut)
	}

	_, errOut, err = execute(t, "((1))", "parse", "--max-depth", "1")
	if !errors.Is(err, errRunFailed) || !strings.Contains(errOut, "(limit 1)") {
		t.Errorf("Expected depth error, found %v %q", err, errOut)
	}
}

func TestTokensCommand(t *testing.T) {
	out, _, err := execute(t, "1 <= x", "tokens")
	if err != nil {
		t.Fatal(err)
	}
	if out != "NUMBER 1 Number(1)\nLESS_EQUAL <=\nIDENTIFIER x\nEOF \n" {
		t.Errorf("Unexpected output %q", out)
	}

	out, _, err = execute(t, "\"a\"", "tokens", "-f", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "type: STRING") || !strings.Contains(out, "literal: a") {
		t.Errorf("Unexpected YAML output %q", out)
	}

	out, errOut, err := execute(t, "1 ?", "tokens")
	if !errors.Is(err, errRunFailed) {
		t.Errorf("Expected errRunFailed instead of %v", err)
	}
	if out != "NUMBER 1 Number(1)\nEOF \n" || !strings.Contains(errOut, "Unexpected character '?'") {
		t.Errorf("Unexpected output %q %q", out, errOut)
	}
}

func TestConfigFlag(t *testing.T) {
	path := writeFile(t, "lox.toml", "[parser]\nmax_depth = 1\n")
	_, errOut, err := execute(t, "((1))", "--config", path, "parse")
	if !errors.Is(err, errRunFailed) || !strings.Contains(errOut, "(limit 1)") {
		t.Errorf("Expected depth error from config, found %v %q", err, errOut)
	}

	bad := writeFile(t, "bad.toml", "[general]\nlog_format = \"xml\"\n")
	if _, _, err := execute(t, "1", "--config", bad, "parse"); err == nil {
		t.Error("Invalid config should fail")
	}
}

func TestLogLevelFlag(t *testing.T) {
	_, errOut, err := execute(t, "1", "--log-level", "debug", "parse")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut, "configuration loaded") || !strings.Contains(errOut, "scanned source") {
		t.Errorf("Expected debug logs, found %q", errOut)
	}

	if _, _, err := execute(t, "1", "--log-level", "chatty", "parse"); err == nil {
		t.Error("Invalid log level should fail")
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "lox v"+Version+"\n") {
		t.Errorf("Unexpected output %q", out)
	}
}
