package interpreter

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/notch-ai/pyprobe/internal/execx"
	"github.com/tidwall/gjson"
)

// DefaultCandidates is the PATH lookup order when no config overrides it.
var DefaultCandidates = []string{"python3", "python"}

// Info describes a discovered Python interpreter.
type Info struct {
	Path           string
	Version        string // "<major>.<minor>.<patch>"
	Implementation string // e.g. "CPython"
	Executable     string // sys.executable as the interpreter reports it
}

// inspectScript makes the interpreter describe itself as one JSON line.
const inspectScript = `import json, platform, sys
print(json.dumps({"version": "%d.%d.%d" % sys.version_info[:3], "implementation": platform.python_implementation(), "executable": sys.executable}))`

// Discover returns the first candidate resolvable on PATH.
func Discover(candidates []string) (string, error) {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no python interpreter found in PATH (tried %s)", strings.Join(candidates, ", "))
}

// DiscoverAll returns every candidate resolvable on PATH, deduplicated by
// resolved path so python3 and a python symlink to it count once.
func DiscoverAll(candidates []string) []string {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}

	seen := make(map[string]bool)
	var paths []string
	for _, name := range candidates {
		path, err := exec.LookPath(name)
		if err != nil || seen[path] {
			continue
		}
		seen[path] = true
		paths = append(paths, path)
	}
	return paths
}

// Inspect runs the interpreter at path and parses its self-description.
func Inspect(ctx context.Context, run execx.Runner, path string) (*Info, error) {
	res, err := run(ctx, path, "-c", inspectScript)
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", path, err)
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("%s exited with status %d: %s", path, res.ExitCode, execx.LastLine(res.Stderr))
	}

	out := strings.TrimSpace(res.Stdout)
	version := gjson.Get(out, "version")
	if !version.Exists() || version.String() == "" {
		return nil, fmt.Errorf("unexpected output from %s: %q", path, out)
	}

	return &Info{
		Path:           path,
		Version:        version.String(),
		Implementation: gjson.Get(out, "implementation").String(),
		Executable:     gjson.Get(out, "executable").String(),
	}, nil
}
