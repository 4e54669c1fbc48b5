// Package gameerr provides the structured error type every fallible
// engine operation returns: an exhaustive Code, a message, and enough
// context (Meta, CallStack) for an embedder to build a rich diagnostic
// without the engine depending on a logger. Renamed and re-coded from
// the toolkit's rpgerr package — see DESIGN.md.
package gameerr

import (
	"context"
	"errors"
	"fmt"
)

// Code categorizes why an engine operation failed.
type Code string

const (
	// CodeInvalidTarget indicates the chosen target is not legal for this
	// card or effect.
	CodeInvalidTarget Code = "invalid_target"
	// CodeInvalidState indicates a zone mismatch, a dead actor, or an
	// operation attempted in the wrong phase.
	CodeInvalidState Code = "invalid_state"
	// CodeInsufficientCards indicates an operation needs more cards than
	// are available (e.g. the draw pile is empty and cannot reshuffle).
	CodeInsufficientCards Code = "insufficient_cards"
	// CodeUsageLimitExceeded indicates a per-turn or per-phase usage limit
	// has already been reached.
	CodeUsageLimitExceeded Code = "usage_limit_exceeded"
	// CodeDuplicateKey indicates a registry key (skill ID, hero ID) is
	// already registered.
	CodeDuplicateKey Code = "duplicate_key"
	// CodeSubscriberFault indicates an event bus subscriber failed or a
	// cascade depth cap was exceeded; this is always a hard bug.
	CodeSubscriberFault Code = "subscriber_fault"
	// CodeAlreadyUsed indicates a phase-limited skill has already fired
	// this phase/turn.
	CodeAlreadyUsed Code = "already_used"

	// CodeUnknown is used for errors this package did not produce and
	// cannot otherwise classify. It is not part of the exhaustive
	// rule-error set — it exists purely so Wrap can wrap a foreign error.
	CodeUnknown Code = "unknown"
	// CodeInternal indicates a programming error inside the engine (a
	// resolver invariant violated) rather than a game-rule outcome.
	CodeInternal Code = "internal"
	// CodeCanceled indicates a choice callback canceled the operation.
	CodeCanceled Code = "canceled"
)

// Error is the engine's error type.
type Error struct {
	// Code categorizes the error.
	Code Code

	// Message describes what happened.
	Message string

	// Cause is the wrapped error, if any.
	Cause error

	// Meta carries structured diagnostic context (target seat, card id,
	// phase, ...), keyed by field name.
	Meta map[string]any

	// CallStack tracks the resolver names the failure bubbled through as
	// the resolution stack (C7) popped frames.
	CallStack []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "gameerr: nil error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Option configures an Error at construction time.
type Option func(*Error)

// WithMeta attaches a diagnostic key/value.
func WithMeta(key string, value any) Option {
	return func(e *Error) {
		if e.Meta == nil {
			e.Meta = make(map[string]any)
		}
		e.Meta[key] = value
	}
}

// AddToCallStack appends a resolver name to the call stack.
func AddToCallStack(frame string) Option {
	return func(e *Error) {
		e.CallStack = append(e.CallStack, frame)
	}
}

// New creates an Error with the given code and message.
func New(code Code, message string, opts ...Option) *Error {
	err := &Error{Code: code, Message: message}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps err with additional context, preserving its Code, Meta, and
// CallStack if err is already a *Error (the pattern a resolver uses as a
// Failure bubbles: each popped frame adds its own name via
// AddToCallStack without discarding the original code).
func Wrap(err error, message string, opts ...Option) *Error {
	if err == nil {
		return New(CodeInternal, fmt.Sprintf("gameerr.Wrap called with nil: %s", message))
	}

	var wrapped *Error
	var existing *Error
	if errors.As(err, &existing) {
		wrapped = &Error{
			Code:      existing.Code,
			Message:   message,
			Cause:     err,
			Meta:      copyMeta(existing.Meta),
			CallStack: copyCallStack(existing.CallStack),
		}
	} else {
		wrapped = &Error{Code: CodeUnknown, Message: message, Cause: err}
	}

	for _, opt := range opts {
		opt(wrapped)
	}
	return wrapped
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

func copyCallStack(stack []string) []string {
	if stack == nil {
		return nil
	}
	out := make([]string, len(stack))
	copy(out, stack)
	return out
}

// GetCode extracts the Code from err, falling back to CodeCanceled for a
// canceled context and CodeUnknown otherwise.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Code
	}
	if errors.Is(err, context.Canceled) {
		return CodeCanceled
	}
	return CodeUnknown
}

// Common rule-error constructors, one per rule-facing Code.

// InvalidTarget creates a CodeInvalidTarget error.
func InvalidTarget(reason string, opts ...Option) *Error {
	return New(CodeInvalidTarget, fmt.Sprintf("invalid target: %s", reason), opts...)
}

// InvalidState creates a CodeInvalidState error.
func InvalidState(reason string, opts ...Option) *Error {
	return New(CodeInvalidState, fmt.Sprintf("invalid state: %s", reason), opts...)
}

// InsufficientCards creates a CodeInsufficientCards error.
func InsufficientCards(reason string, opts ...Option) *Error {
	return New(CodeInsufficientCards, fmt.Sprintf("insufficient cards: %s", reason), opts...)
}

// UsageLimitExceeded creates a CodeUsageLimitExceeded error.
func UsageLimitExceeded(reason string, opts ...Option) *Error {
	return New(CodeUsageLimitExceeded, fmt.Sprintf("usage limit exceeded: %s", reason), opts...)
}

// DuplicateKey creates a CodeDuplicateKey error.
func DuplicateKey(key string, opts ...Option) *Error {
	return New(CodeDuplicateKey, fmt.Sprintf("duplicate key: %s", key), opts...)
}

// AlreadyUsed creates a CodeAlreadyUsed error.
func AlreadyUsed(what string, opts ...Option) *Error {
	return New(CodeAlreadyUsed, fmt.Sprintf("already used: %s", what), opts...)
}

// Is reports whether err carries the given Code.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}
