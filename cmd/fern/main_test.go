package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCLIHelp(t *testing.T) {
	if err := runCLI([]string{"fern", "help"}); err != nil {
		t.Fatalf("runCLI help failed: %v", err)
	}
}

func TestRunCLIInvalidCommand(t *testing.T) {
	err := runCLI([]string{"fern", "unknown"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIWithoutCommand(t *testing.T) {
	err := runCLI([]string{"fern"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
}

func TestTokensCommandPrintsStream(t *testing.T) {
	path := writeSource(t, "let x = +42 in x")

	out, err := captureStdout(t, func() error {
		return tokensCommand([]string{path})
	})
	if err != nil {
		t.Fatalf("tokens command failed: %v", err)
	}

	for _, want := range []string{
		"1:1\tKeyword\tlet",
		"1:5\tLabel\tx",
		"1:9\tNaturalLit\t+42",
		"EOF",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTokensCommandJSON(t *testing.T) {
	path := writeSource(t, `"hi" ./a`)

	out, err := captureStdout(t, func() error {
		return tokensCommand([]string{"-json", path})
	})
	if err != nil {
		t.Fatalf("tokens -json failed: %v", err)
	}

	var entries []struct {
		Type   string `json:"type"`
		Line   int    `json:"line"`
		Column int    `json:"column"`
		Start  int    `json:"start"`
		End    int    `json:"end"`
		Value  string `json:"value"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Type != "TextLit" || entries[0].Value != `"hi"` {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Type != "File" || entries[1].Value != "a" || entries[1].Column != 6 {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
	if entries[2].Type != "EOF" {
		t.Fatalf("unexpected last entry: %+v", entries[2])
	}
}

func TestTokensCommandReportsLexicalError(t *testing.T) {
	path := writeSource(t, "let `")

	_, err := captureStdout(t, func() error {
		return tokensCommand([]string{path})
	})
	if err == nil {
		t.Fatalf("expected lexical error")
	}
	if !strings.Contains(err.Error(), "unmatched character") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "--> line 1, column 5") {
		t.Fatalf("expected code frame in error:\n%v", err)
	}
}

func TestTokensCommandMissingPath(t *testing.T) {
	if err := tokensCommand(nil); err == nil {
		t.Fatalf("expected path error")
	}
}

func writeSource(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.fern")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()
	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, copyErr := io.Copy(&buf, r); copyErr != nil {
		t.Fatalf("read stdout: %v", copyErr)
	}
	_ = r.Close()
	return buf.String(), runErr
}
