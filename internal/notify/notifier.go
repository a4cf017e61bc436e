package notify

import (
	"fmt"

	"github.com/martinlindhe/notify"
	"github.com/notch-ai/pyprobe/internal/probe"
)

// Notifier sends desktop notifications for probe outcomes
type Notifier struct {
	enabled bool
}

// NewNotifier creates a new notifier instance
func NewNotifier(enabled bool) *Notifier {
	return &Notifier{
		enabled: enabled,
	}
}

// NotifyReport sends a desktop notification describing a finished probe run.
func (n *Notifier) NotifyReport(report probe.Report) error {
	if !n.enabled {
		return nil
	}

	if report.Success {
		title := "✅ Python runtime ready"
		message := fmt.Sprintf("Python %s, SDK %s", report.PythonVersion, report.SDKVersion)
		notify.Notify("pyprobe", title, message, "")
		return nil
	}

	title := "⚠️  Python runtime check failed"
	message := "probe failed"
	if report.Error != nil {
		message = *report.Error
	}
	notify.Notify("pyprobe", title, message, "")

	return nil
}
