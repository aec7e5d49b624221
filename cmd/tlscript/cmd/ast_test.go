package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunASTValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.tl")
	if err := os.WriteFile(path, []byte(`int x = 1 + 2;`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out := captureStdout(t, func() {
		if err := runAST(astCmd, []string{path}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	var tree map[string]any
	if err := json.Unmarshal([]byte(out), &tree); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if tree["kind"] != "program" {
		t.Errorf("got kind %v, want %q", tree["kind"], "program")
	}
}

func TestRunASTParseErrorReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.tl")
	if err := os.WriteFile(path, []byte(`int ;`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := runAST(astCmd, []string{path}); err == nil {
		t.Fatal("expected parse error to surface as a command error")
	}
}

func TestRunASTMissingFileReturnsError(t *testing.T) {
	err := runAST(astCmd, []string{filepath.Join(t.TempDir(), "missing.tl")})
	if err == nil {
		t.Fatal("expected missing file to error")
	}
	if !strings.Contains(err.Error(), "failed to read file") {
		t.Errorf("got %q, want it to mention the read failure", err.Error())
	}
}
