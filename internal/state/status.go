package state

import "github.com/glfs/glfs-client/internal/api"

// Severity classifies a status line.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// StatusLine is the single shared line of user feedback. Writers replace it
// wholesale; the last write wins.
type StatusLine struct {
	Message  string
	Severity Severity
}

// Status builds a status line, defaulting the severity to info.
func Status(message string, severity Severity) StatusLine {
	if severity == "" {
		severity = SeverityInfo
	}
	return StatusLine{Message: message, Severity: severity}
}

// ResultStatus reports r's own message: success when ok, error otherwise.
func ResultStatus(r api.Result) StatusLine {
	if r.OK() {
		return Status(r.Message, SeveritySuccess)
	}
	return Status(r.Message, SeverityError)
}

// LoaderStatus is the last known MaterialBinLoader state shown on the home
// view. Class carries the raw backend status (ok, missing, error).
type LoaderStatus struct {
	Message string
	Class   string
}

// Known reports whether a status check has completed.
func (l LoaderStatus) Known() bool {
	return l.Class != ""
}

// Severity maps the loader class onto a status severity.
func (l LoaderStatus) Severity() Severity {
	switch l.Class {
	case api.StatusOK:
		return SeveritySuccess
	case api.StatusError:
		return SeverityError
	default:
		return SeverityInfo
	}
}
