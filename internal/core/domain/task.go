package domain

import (
	"path"
	"path/filepath"
)

// Task is a unit of work in the asset pipeline.
type Task struct {
	Name string
	// Inputs are glob patterns relative to the project root.
	Inputs       []string
	Output       OutputContract
	Dependencies []string
	// Reload marks tasks whose completion refreshes connected browsers.
	Reload bool
	// Advisory tasks report their findings and never fail.
	Advisory bool
}

// OutputContract declares what a task writes.
// Files are names or patterns under Dir; a task that writes nothing has an
// empty contract.
type OutputContract struct {
	Dir   string
	Files []string
}

// Claims returns the slash-separated output patterns claimed by the contract.
func (o OutputContract) Claims() []string {
	claims := make([]string, 0, len(o.Files))
	for _, f := range o.Files {
		claims = append(claims, path.Join(filepath.ToSlash(o.Dir), f))
	}
	return claims
}

// Empty reports whether the contract claims no output.
func (o OutputContract) Empty() bool {
	return len(o.Files) == 0
}

// WatchRule ties a group of source patterns to the series of tasks that
// re-runs when one of them changes.
type WatchRule struct {
	Patterns []string
	Tasks    []string
}

// Severity classifies a diagnostic.
type Severity uint8

const (
	// SeverityWarning is an advisory finding.
	SeverityWarning Severity = iota
	// SeverityError is a failed transform that did not stop the run.
	SeverityError
)

// String returns the lower case name of the severity.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is a non-fatal problem reported by a task.
type Diagnostic struct {
	Task     string
	Severity Severity
	Message  string
}
