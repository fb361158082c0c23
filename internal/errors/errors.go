// Package errors defines the typed errors the evaluation engine raises for
// contract violations. Malformed or missing extracted data is never an error:
// it degrades to null fields and quality penalties. These errors exist so
// callers can tell "computed result with nulls" (success) apart from "the
// engine could not run" (failure); the engine never substitutes a default
// value to mask one of these.
package errors

import (
	"errors"
	"fmt"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Category classifies an engine error for callers and logs.
type Category string

const (
	// CategoryContract marks violations of the input contract: an
	// unsupported mode or an empty block set.
	CategoryContract Category = "contract"
	// CategoryComputation marks internal faults, e.g. a KPI formula
	// referencing a parameter its table never declared.
	CategoryComputation Category = "computation"
	// CategoryConfiguration marks invalid engine configuration.
	CategoryConfiguration Category = "configuration"
)

// EngineError wraps an errbuilder error with the engine's category.
type EngineError struct {
	*errbuilder.ErrBuilder
	Category  Category  `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	codeStr := "ENGINE_ERROR"
	switch e.ErrBuilder.ErrCode() {
	case errbuilder.CodeInvalidArgument:
		codeStr = "CONTRACT_VIOLATION"
	case errbuilder.CodeInternal:
		codeStr = "COMPUTATION_FAULT"
	case errbuilder.CodeFailedPrecondition:
		codeStr = "CONFIGURATION_ERROR"
	}
	return fmt.Sprintf("[%s] %s", codeStr, e.ErrBuilder.Msg)
}

// Unwrap returns the underlying cause.
func (e *EngineError) Unwrap() error {
	return e.ErrBuilder.Unwrap()
}

func newEngineError(builder *errbuilder.ErrBuilder, category Category) *EngineError {
	return &EngineError{
		ErrBuilder: builder,
		Category:   category,
		Timestamp:  time.Now(),
	}
}

// NewUnsupportedModeError reports a mode the configuration does not define.
func NewUnsupportedModeError(mode string) *EngineError {
	errMap := errbuilder.ErrorMap{}
	errMap.Set("mode", errors.New(mode))

	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("unsupported evaluation mode %q", mode)).
		WithDetails(errbuilder.NewErrDetails(errMap))

	return newEngineError(builder, CategoryContract)
}

// NewEmptySubmissionError reports an evaluation request with no blocks at all.
func NewEmptySubmissionError() *EngineError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("submission contains no extracted blocks")

	return newEngineError(builder, CategoryContract)
}

// NewComputationError reports an internal computation fault, such as a KPI
// formula referencing a parameter that was never declared for it.
func NewComputationError(kpiID, message string) *EngineError {
	errMap := errbuilder.ErrorMap{}
	errMap.Set("kpi", errors.New(kpiID))

	builder := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(message).
		WithDetails(errbuilder.NewErrDetails(errMap))

	return newEngineError(builder, CategoryComputation)
}

// NewConfigurationError reports invalid engine configuration.
func NewConfigurationError(message string, cause error) *EngineError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(message)

	if cause != nil {
		builder = builder.WithCause(cause)
	}

	return newEngineError(builder, CategoryConfiguration)
}

// IsContractViolation reports whether err is an engine contract violation
// (unsupported mode or empty submission), as opposed to an internal fault.
func IsContractViolation(err error) bool {
	var engErr *EngineError
	if errors.As(err, &engErr) {
		return engErr.Category == CategoryContract
	}
	return false
}

// AsEngineError converts err to an *EngineError when possible.
func AsEngineError(err error) (*EngineError, bool) {
	var engErr *EngineError
	if errors.As(err, &engErr) {
		return engErr, true
	}
	return nil, false
}
