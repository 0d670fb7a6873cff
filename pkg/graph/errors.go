package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for the analysis pipeline. Callers match them with errors.Is.
var (
	// ErrDataFormat covers malformed input: missing columns, duplicate or
	// blank symbols, unparsable values, edges naming unknown companies.
	ErrDataFormat = errors.New("data format error")
	// ErrEmptyInput is returned when there are no company records at all.
	ErrEmptyInput = errors.New("empty input")
	// ErrEmptyGraph is returned when a metric is requested on a graph with no nodes.
	ErrEmptyGraph = errors.New("empty graph")
	// ErrDisconnectedGraph is returned when the giant component has fewer
	// than 2 nodes, so distances are undefined.
	ErrDisconnectedGraph = errors.New("disconnected graph")

	ErrNodeNotFound    = fmt.Errorf("node not found: %w", ErrDataFormat)
	ErrDuplicateSymbol = fmt.Errorf("duplicate symbol: %w", ErrDataFormat)
	ErrEmptySymbol     = fmt.Errorf("empty symbol: %w", ErrDataFormat)
	ErrSelfLoop        = errors.New("self-loop not allowed")
)

// AnalysisError provides structured error information for graph and metric operations.
type AnalysisError struct {
	Op     string // Operation that failed (e.g., "AddEdge", "Diameter")
	Entity string // Entity type (e.g., "node", "edge", "record")
	Symbol string // Company symbol (if applicable)
	Field  string // Column or attribute name
	Line   int    // Input line number (1-based, 0 if unknown)
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	msg := e.Op
	if e.Entity != "" {
		msg += " " + e.Entity
	}
	if e.Symbol != "" {
		msg += " " + e.Symbol
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(" (field %s)", e.Field)
	}
	return fmt.Sprintf("%s: %v", msg, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *AnalysisError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building AnalysisErrors.
type ErrorBuilder struct {
	err AnalysisError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: AnalysisError{Op: op}}
}

// Node sets the entity to "node" with the given symbol.
func (b *ErrorBuilder) Node(symbol string) *ErrorBuilder {
	b.err.Entity = "node"
	b.err.Symbol = symbol
	return b
}

// Edge sets the entity to "edge" described by its two endpoints.
func (b *ErrorBuilder) Edge(from, to string) *ErrorBuilder {
	b.err.Entity = "edge"
	b.err.Symbol = from + "--" + to
	return b
}

// Record sets the entity to "record" at the given input line.
func (b *ErrorBuilder) Record(line int) *ErrorBuilder {
	b.err.Entity = "record"
	b.err.Line = line
	return b
}

// Field sets the column or attribute name.
func (b *ErrorBuilder) Field(field string) *ErrorBuilder {
	b.err.Field = field
	return b
}

// Cause sets the underlying error.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Build returns the constructed error.
func (b *ErrorBuilder) Build() error {
	e := b.err
	return &e
}
