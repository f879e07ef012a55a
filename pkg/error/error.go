package error

import (
	"fmt"
	"runtime"
	"strings"
)

// ErrorCategory classifies errors by who is expected to act on them.
type ErrorCategory int

const (
	// ErrCategoryContract represents a caller bug: a required argument was
	// absent or otherwise unusable. Errors in this category are raised with
	// panic and are never returned from a scan.
	ErrCategoryContract ErrorCategory = iota

	// ErrCategoryLexical represents input the scanner could not classify.
	// The scanner itself only tags such input as Unknown; collaborators
	// turn those tokens into errors of this category.
	ErrCategoryLexical

	// ErrCategorySystem represents failures of the environment, such as an
	// input stream that returned a read error other than end of file.
	ErrCategorySystem
)

// String returns a lower-case name for the category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryContract:
		return "contract"
	case ErrCategoryLexical:
		return "lexical"
	case ErrCategorySystem:
		return "system"
	default:
		return "unknown"
	}
}

// Error codes shared by the scanner and its collaborators.
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeUnknownToken    = "UNKNOWN_TOKEN"
	CodeReadFailed      = "READ_FAILED"
)

// ScanError represents a structured scanner error with source position and
// call-site context.
type ScanError struct {
	// Code is a unique identifier for this error type (e.g., "INVALID_ARGUMENT").
	Code string

	// Category classifies the error for appropriate handling strategy.
	Category ErrorCategory

	// Message is a human-readable description of what went wrong.
	Message string

	// Detail provides additional context about the specific error instance.
	Detail string

	// Hint suggests how the user might fix the input.
	Hint string

	// Operation identifies the operation that was being performed,
	// e.g. "Init" or "NextToken".
	Operation string

	// Component identifies where the error originated, e.g. "scanner".
	Component string

	// Line and Col locate the offending input. Both are zero when the error
	// is not tied to a source position.
	Line int
	Col  int

	// Cause is the underlying error that triggered this error.
	Cause error

	// Stack contains the call stack where this error was created.
	Stack []uintptr
}

// New creates a new ScanError with the specified category, code, and message.
func New(category ErrorCategory, code, message string) *ScanError {
	return &ScanError{
		Code:     code,
		Category: category,
		Message:  message,
		Stack:    captureStack(),
	}
}

// Wrap wraps an existing error with scanner context information.
// If the error is already a ScanError, it enriches the existing error with
// operation and component context (only if not already set).
func Wrap(err error, code, operation, component string) *ScanError {
	if err == nil {
		return nil
	}

	if scanErr, ok := err.(*ScanError); ok {
		if scanErr.Operation == "" {
			scanErr.Operation = operation
		}
		if scanErr.Component == "" {
			scanErr.Component = component
		}
		return scanErr
	}

	return &ScanError{
		Code:      code,
		Category:  ErrCategorySystem,
		Message:   err.Error(),
		Operation: operation,
		Component: component,
		Cause:     err,
		Stack:     captureStack(),
	}
}

// InvalidArgument builds the contract error raised when a required argument
// of operation is missing.
func InvalidArgument(operation, message string) *ScanError {
	e := New(ErrCategoryContract, CodeInvalidArgument, message)
	e.Operation = operation
	e.Component = "scanner"
	return e
}

// UnknownToken builds the lexical error a collaborator reports for an
// unclassified lexeme found at line:col.
func UnknownToken(text string, line, col int) *ScanError {
	e := New(ErrCategoryLexical, CodeUnknownToken, "unknown token")
	e.Detail = fmt.Sprintf("%q", text)
	e.Hint = "check for a stray character or an unterminated string literal"
	e.Line = line
	e.Col = col
	return e
}

// At sets the source position of the error and returns it.
func (e *ScanError) At(line, col int) *ScanError {
	e.Line = line
	e.Col = col
	return e
}

// captureStack skips captureStack, its constructor and the immediate caller.
func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return pcs[0:n]
}

// Error implements the standard Go error interface.
//
// The format follows the pattern:
// [CODE] Message: Detail at line L, col C (operation: Operation, component: Component) caused by: underlying error
func (e *ScanError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Detail != "" {
		b.WriteString(fmt.Sprintf(": %s", e.Detail))
	}

	if e.Line > 0 {
		b.WriteString(fmt.Sprintf(" at line %d, col %d", e.Line, e.Col))
	}

	if e.Operation != "" {
		b.WriteString(fmt.Sprintf(" (operation: %s", e.Operation))
		if e.Component != "" {
			b.WriteString(fmt.Sprintf(", component: %s", e.Component))
		}
		b.WriteString(")")
	}

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(" caused by: %v", e.Cause))
	}

	return b.String()
}

// Unwrap returns the underlying cause error, enabling error chain traversal
// with errors.Is and errors.As.
func (e *ScanError) Unwrap() error {
	return e.Cause
}

// FormatStack returns a human-readable stack trace for debugging purposes.
func (e *ScanError) FormatStack() string {
	if len(e.Stack) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(e.Stack)

	b.WriteString("Stack trace:\n")
	for {
		f, more := frames.Next()
		b.WriteString(fmt.Sprintf("  %s\n    %s:%d\n",
			f.Function, f.File, f.Line))
		if !more {
			break
		}
	}

	return b.String()
}
