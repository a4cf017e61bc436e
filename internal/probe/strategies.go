package probe

import (
	"context"
	"fmt"
	"strings"
)

// versionStrategy is one way of asking the interpreter for the SDK's
// version. Strategies run in order; the first non-empty answer wins.
type versionStrategy struct {
	name   string
	script func(p *Prober) string
}

var versionStrategies = []versionStrategy{
	{
		// The attribute the SDK exposes directly, when it has one.
		name: "module attribute",
		script: func(p *Prober) string {
			return fmt.Sprintf(`import %s; print(getattr(%s, "__version__", ""))`, p.module, p.module)
		},
	},
	{
		// Installed distribution metadata, for SDKs that don't carry
		// __version__.
		name: "distribution metadata",
		script: func(p *Prober) string {
			return fmt.Sprintf(`from importlib.metadata import version; print(version(%q))`, p.distribution)
		},
	},
}

// resolveSDKVersion walks the strategy chain. Strategy failures are
// swallowed: an importable SDK with an indeterminate version is still a
// successful probe, just one that reports "unknown".
func (p *Prober) resolveSDKVersion(ctx context.Context, path string) string {
	for _, s := range versionStrategies {
		res, err := p.run(ctx, path, "-c", s.script(p))
		if err != nil || res.ExitCode != 0 {
			continue
		}
		if v := strings.TrimSpace(res.Stdout); v != "" {
			return v
		}
	}
	return VersionUnknown
}
