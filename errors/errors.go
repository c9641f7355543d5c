package errors

import (
	"errors"
	"fmt"
)

// ConfigurationError marks a module whose configuration is missing or invalid
// where one was required. It is fatal to construction.
type ConfigurationError struct {
	Label string
	inner error
}

func NewConfigurationError(label string, inner error) *ConfigurationError {
	return &ConfigurationError{Label: label, inner: inner}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("module %q configuration: %s", e.Label, e.inner)
}
func (e *ConfigurationError) Cause() error  { return e.inner }
func (e *ConfigurationError) Unwrap() error { return e.inner }

// HookError marks a failure raised by a pre/post lifecycle signal hook, as
// opposed to a failure of a worker transition itself.
type HookError struct {
	Signal string
	inner  error
}

func NewHookError(signal string, inner error) *HookError {
	return &HookError{Signal: signal, inner: inner}
}

func (e *HookError) Error() string {
	return fmt.Sprintf("%s hook: %s", e.Signal, e.inner)
}
func (e *HookError) Cause() error  { return e.inner }
func (e *HookError) Unwrap() error { return e.inner }

// TransitionError carries the causal context attached to a failure as it
// crosses a global transition boundary.
type TransitionError struct {
	context string
	inner   error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.context, e.inner)
}
func (e *TransitionError) Context() string { return e.context }
func (e *TransitionError) Cause() error    { return e.inner }
func (e *TransitionError) Unwrap() error   { return e.inner }

// HasTransitionContext reports whether err already carries causal context
// anywhere in its chain.
func HasTransitionContext(err error) bool {
	var te *TransitionError
	return errors.As(err, &te)
}

// WithTransitionContext attaches context to err. It is idempotent: an error
// that already carries context anywhere in its chain is returned unchanged,
// so re-handling across nested scopes never duplicates diagnostic text.
func WithTransitionContext(err error, context string) error {
	if err == nil {
		return nil
	}
	if HasTransitionContext(err) {
		return err
	}
	return &TransitionError{context: context, inner: err}
}
