package probe

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/notch-ai/pyprobe/internal/execx"
	"github.com/notch-ai/pyprobe/internal/interpreter"
)

const (
	// DefaultModule is the import name of the SDK the probe checks for.
	DefaultModule = "claude_code_sdk"
	// DefaultDistribution is the SDK's name in package metadata, which
	// differs from the import name the way pip names usually do.
	DefaultDistribution = "claude-code-sdk"
	// DefaultTimeout bounds the whole probe run.
	DefaultTimeout = 10 * time.Second
)

// Module names are dotted Python identifiers; anything else never reaches
// the interpreter.
var moduleNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Options configures a Prober. Zero values fall back to the defaults above.
type Options struct {
	Interpreter  string   // path to the python binary; discovered when empty
	Candidates   []string // PATH lookup order when Interpreter is empty
	Module       string   // import name to probe
	Distribution string   // metadata name for the version fallback
	Timeout      time.Duration
	Runner       execx.Runner // test seam; defaults to execx.Run
}

// Prober runs the single-shot runtime check: find the interpreter, read its
// version, attempt the SDK import, resolve the SDK version.
type Prober struct {
	interpreter  string
	candidates   []string
	module       string
	distribution string
	timeout      time.Duration
	run          execx.Runner
}

// New creates a prober, filling in defaults for any unset option.
func New(opts Options) *Prober {
	p := &Prober{
		interpreter:  opts.Interpreter,
		candidates:   opts.Candidates,
		module:       opts.Module,
		distribution: opts.Distribution,
		timeout:      opts.Timeout,
		run:          opts.Runner,
	}
	if p.module == "" {
		p.module = DefaultModule
	}
	if p.distribution == "" {
		p.distribution = DefaultDistribution
	}
	if p.timeout <= 0 {
		p.timeout = DefaultTimeout
	}
	if p.run == nil {
		p.run = execx.Run
	}
	return p
}

// Run executes the probe and always returns a well-formed report. Every
// failure mode becomes report data; nothing propagates out.
func (p *Prober) Run(ctx context.Context) Report {
	report := NewReport()

	if !moduleNamePattern.MatchString(p.module) {
		report.Fail(fmt.Sprintf("Error: invalid module name %q", p.module))
		return report
	}

	path := p.interpreter
	if path == "" {
		found, err := interpreter.Discover(p.candidates)
		if err != nil {
			report.Fail("Error: " + err.Error())
			return report
		}
		path = found
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	info, err := interpreter.Inspect(ctx, p.run, path)
	if err != nil {
		report.Fail("Error: " + err.Error())
		return report
	}
	report.PythonVersion = info.Version

	res, err := p.run(ctx, path, "-c", fmt.Sprintf("import %s", p.module))
	if err != nil {
		report.Fail("Error: " + err.Error())
		return report
	}
	if res.ExitCode != 0 {
		report.Fail(classifyImportFailure(res.Stderr))
		return report
	}

	report.Pass()
	report.SDKVersion = p.resolveSDKVersion(ctx, path)

	return report
}

// classifyImportFailure turns the interpreter's stderr into the report's
// error string. ModuleNotFoundError is a subclass of ImportError, so both
// map to the ImportError prefix with the class name dropped; any other
// exception keeps its class name under the generic prefix.
func classifyImportFailure(stderr string) string {
	line := execx.LastLine(stderr)
	if line == "" {
		return "Error: import check failed with no diagnostic output"
	}
	for _, class := range []string{"ModuleNotFoundError: ", "ImportError: "} {
		if strings.HasPrefix(line, class) {
			return "ImportError: " + strings.TrimPrefix(line, class)
		}
	}
	return "Error: " + line
}
