package core

import (
	"fmt"
	"strings"
)

// ValidationError names the field that failed interactive admission checks.
// It is recoverable at the call site; no write happens before validation
// passes.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateNameError reports a project name collision at creation time.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("project %q already exists", e.Name)
}

// ImportFormatError reports a structurally malformed import batch. The whole
// batch is rejected; nothing is appended.
type ImportFormatError struct {
	Missing []string
}

func (e *ImportFormatError) Error() string {
	return fmt.Sprintf("import batch missing required columns: %s", strings.Join(e.Missing, ", "))
}
