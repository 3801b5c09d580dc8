package core

import (
	"errors"
	"fmt"
)

// ErrCancelled ends a turn that was cancelled through the gate or the
// turn context. It is a clean terminal outcome, not a failure.
var ErrCancelled = errors.New("turn cancelled")

// RemoteError wraps a failure reported by the completion endpoint.
type RemoteError struct {
	Model string
	Err   error
}

func (e *RemoteError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("remote completion failed (%s): %v", e.Model, e.Err)
	}
	return fmt.Sprintf("remote completion failed: %v", e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// ConfigError reports configuration that blocks a turn before any remote
// call is made, like a missing credential for the selected provider.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error (%s): %s", e.Key, e.Reason)
}
