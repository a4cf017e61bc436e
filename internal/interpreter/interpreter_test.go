package interpreter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/notch-ai/pyprobe/internal/execx"
)

// writeStub drops an executable shell script into dir posing as a python
// binary.
func writeStub(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeStub(t, dir, "python3", "exit 0")
	t.Setenv("PATH", dir)

	path, err := Discover(nil)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if path != filepath.Join(dir, "python3") {
		t.Errorf("unexpected path: %s", path)
	}
}

func TestDiscoverOrder(t *testing.T) {
	dir := t.TempDir()
	writeStub(t, dir, "python3", "exit 0")
	writeStub(t, dir, "python", "exit 0")
	t.Setenv("PATH", dir)

	// Candidate order decides, not what happens to exist.
	path, err := Discover([]string{"python", "python3"})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if filepath.Base(path) != "python" {
		t.Errorf("expected python first, got %s", path)
	}
}

func TestDiscoverNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := Discover(nil)
	if err == nil {
		t.Fatal("expected error when nothing is on PATH")
	}
	if !strings.Contains(err.Error(), "no python interpreter found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDiscoverAllDeduplicates(t *testing.T) {
	dir := t.TempDir()
	writeStub(t, dir, "python3", "exit 0")
	writeStub(t, dir, "python", "exit 0")
	t.Setenv("PATH", dir)

	paths := DiscoverAll([]string{"python3", "python", "python3"})
	if len(paths) != 2 {
		t.Fatalf("expected 2 unique interpreters, got %d: %v", len(paths), paths)
	}
}

func TestInspect(t *testing.T) {
	run := func(ctx context.Context, name string, args ...string) (*execx.CmdResult, error) {
		return &execx.CmdResult{
			Stdout: `{"version": "3.11.4", "implementation": "CPython", "executable": "/usr/bin/python3"}` + "\n",
		}, nil
	}

	info, err := Inspect(context.Background(), run, "/usr/bin/python3")
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if info.Version != "3.11.4" {
		t.Errorf("unexpected version: %s", info.Version)
	}
	if info.Implementation != "CPython" {
		t.Errorf("unexpected implementation: %s", info.Implementation)
	}
	if info.Executable != "/usr/bin/python3" {
		t.Errorf("unexpected executable: %s", info.Executable)
	}
}

func TestInspectRealStub(t *testing.T) {
	dir := t.TempDir()
	path := writeStub(t, dir, "python3",
		`echo '{"version": "3.12.0", "implementation": "CPython", "executable": "'$0'"}'`)

	info, err := Inspect(context.Background(), execx.Run, path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if info.Version != "3.12.0" {
		t.Errorf("unexpected version: %s", info.Version)
	}
}

func TestInspectNonZeroExit(t *testing.T) {
	run := func(ctx context.Context, name string, args ...string) (*execx.CmdResult, error) {
		return &execx.CmdResult{ExitCode: 1, Stderr: "SyntaxError: invalid syntax\n"}, nil
	}

	_, err := Inspect(context.Background(), run, "/usr/bin/python3")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if !strings.Contains(err.Error(), "SyntaxError") {
		t.Errorf("error should carry the interpreter diagnostic: %v", err)
	}
}

func TestInspectGarbageOutput(t *testing.T) {
	run := func(ctx context.Context, name string, args ...string) (*execx.CmdResult, error) {
		return &execx.CmdResult{Stdout: "not json\n"}, nil
	}

	_, err := Inspect(context.Background(), run, "/usr/bin/python3")
	if err == nil {
		t.Fatal("expected error for unparseable output")
	}
}
