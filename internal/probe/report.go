package probe

import (
	"encoding/json"
	"time"
)

// ImportStatus mirrors the success flag for consumers that prefer an
// explicit enum over a boolean.
type ImportStatus string

const (
	ImportSuccess ImportStatus = "SUCCESS"
	ImportFailure ImportStatus = "FAILURE"
)

// VersionUnknown is reported when neither version strategy resolves.
const VersionUnknown = "unknown"

// Report is the single result object the probe writes to stdout. Field names
// and types are a compatibility contract with the calling process; changing
// them breaks every consumer.
type Report struct {
	Success       bool         `json:"success"`
	PythonVersion string       `json:"pythonVersion"`
	SDKVersion    string       `json:"sdkVersion"`
	ImportStatus  ImportStatus `json:"importStatus"`
	Error         *string      `json:"error"`
	Timestamp     int64        `json:"timestamp"`
}

// NewReport returns a report in its initial failed state, timestamped now.
// The probe flips it to success as the checks pass.
func NewReport() Report {
	return Report{
		Success:       false,
		PythonVersion: "0.0.0",
		SDKVersion:    VersionUnknown,
		ImportStatus:  ImportFailure,
		Error:         nil,
		Timestamp:     time.Now().UnixMilli(),
	}
}

// Fail marks the report as failed with a human-readable cause.
func (r *Report) Fail(message string) {
	r.Success = false
	r.ImportStatus = ImportFailure
	r.Error = &message
}

// Pass marks the report as successful and clears any error.
func (r *Report) Pass() {
	r.Success = true
	r.ImportStatus = ImportSuccess
	r.Error = nil
}

// Line serializes the report to the single-line JSON form the caller parses.
func (r Report) Line() (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
