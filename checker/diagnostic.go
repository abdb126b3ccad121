package checker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/t14raptor/go-stmt/ast"
)

var (
	ErrBreakOutside      = errors.New("break statement not within a loop or switch")
	ErrContinueOutside   = errors.New("continue statement not within a loop")
	ErrCaseOutside       = errors.New("case label not within a switch statement")
	ErrDefaultOutside    = errors.New("default label not within a switch statement")
	ErrUnreachable       = errors.New("unreachable statement")
	ErrRangeNotEvaluated = errors.New("compile-time range bounds are not evaluated")
)

var codes = map[error]string{
	ErrBreakOutside:      "break-outside",
	ErrContinueOutside:   "continue-outside",
	ErrCaseOutside:       "case-outside",
	ErrDefaultOutside:    "default-outside",
	ErrUnreachable:       "unreachable",
	ErrRangeNotEvaluated: "range-not-evaluated",
}

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// ParseSeverity accepts the names printed by Severity.String.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	}
	return 0, fmt.Errorf("checker: unknown severity %q", name)
}

// Diagnostic is one finding, reported against the statement it concerns.
type Diagnostic struct {
	Node     ast.NodeID
	Kind     ast.Kind
	From, To ast.Idx
	Severity Severity
	Err      error
}

// Error names the statement by kind and node id. From and To are packed
// source offsets, so turning them into line and column is left to callers.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s statement #%d: %s: %v", d.Kind, d.Node, d.Severity, d.Err)
}

func (d Diagnostic) Unwrap() error { return d.Err }

// Code returns a short stable name for the kind of finding.
func (d Diagnostic) Code() string {
	for sentinel, code := range codes {
		if errors.Is(d.Err, sentinel) {
			return code
		}
	}
	return "unknown"
}

// Diagnostics is the result of a check. As an error it unwraps to every
// diagnostic it holds.
type Diagnostics []Diagnostic

func (ds Diagnostics) Error() string {
	msgs := make([]string, len(ds))
	for i, d := range ds {
		msgs[i] = d.Error()
	}
	return strings.Join(msgs, "\n")
}

func (ds Diagnostics) Unwrap() []error {
	errs := make([]error, len(ds))
	for i, d := range ds {
		errs[i] = d
	}
	return errs
}

// Count returns how many diagnostics have severity s.
func (ds Diagnostics) Count(s Severity) int {
	n := 0
	for _, d := range ds {
		if d.Severity == s {
			n++
		}
	}
	return n
}

// Err returns the error-severity diagnostics as an error, or nil when
// there are none.
func (ds Diagnostics) Err() error {
	var errs Diagnostics
	for _, d := range ds {
		if d.Severity == SeverityError {
			errs = append(errs, d)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
