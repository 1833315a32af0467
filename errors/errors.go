// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrDead is returned when a message is sent to an actor whose mailbox
	// is closed because the actor stopped or crashed.
	ErrDead = errors.New("actor is not alive")

	// ErrPeerUnavailable is returned when a registry lookup finds no actor
	// bound to the requested name.
	ErrPeerUnavailable = errors.New("peer is not available")

	// ErrComputationFailed is returned when awaiting a background computation
	// reports a failure instead of a completion or a cancellation.
	ErrComputationFailed = errors.New("computation failed")

	// ErrUnhandled is returned when an actor receives a message it cannot handle.
	ErrUnhandled = errors.New("unhandled message")

	// ErrActorAlreadyExists is returned when trying to register an actor with a name
	// that is bound to a live actor.
	ErrActorAlreadyExists = errors.New("actor already exists")

	// ErrNameRequired is returned when an actor or actor system name is empty.
	ErrNameRequired = errors.New("name is required")

	// ErrInitFailure is returned when the actor's PreStart hook fails during initialization.
	ErrInitFailure = errors.New("preStart failed")

	// ErrRequestTimeout indicates that an Ask message timed out while waiting for a response.
	ErrRequestTimeout = errors.New("request timed out")

	// ErrInvalidTimeout is returned when a timeout value is less than or equal to zero.
	ErrInvalidTimeout = errors.New("invalid timeout")

	// ErrActorSystemStopped is returned when spawning on an actor system that has been stopped.
	ErrActorSystemStopped = errors.New("actor system is stopped")

	// ErrUndefinedActor is returned when a nil actor or PID is used.
	ErrUndefinedActor = errors.New("actor is not defined")

	// ErrMailboxFull is returned when a bounded mailbox cannot accept more messages.
	ErrMailboxFull = errors.New("mailbox is full")
)

// NewErrPeerUnavailable formats an ErrPeerUnavailable with the given actor name.
func NewErrPeerUnavailable(name string) error {
	return fmt.Errorf("(actor=%s) %w", name, ErrPeerUnavailable)
}

// NewErrDead formats an ErrDead with the given actor name.
func NewErrDead(name string) error {
	return fmt.Errorf("(actor=%s) %w", name, ErrDead)
}

// NewErrActorAlreadyExists formats an ErrActorAlreadyExists for the given actor name.
func NewErrActorAlreadyExists(actorName string) error {
	return fmt.Errorf("actor=(%s) %w", actorName, ErrActorAlreadyExists)
}

// NewErrComputationFailed wraps a base error with ErrComputationFailed.
func NewErrComputationFailed(err error) error {
	return errors.Join(ErrComputationFailed, err)
}

// NewErrInitFailure wraps a base error with ErrInitFailure to indicate a startup failure.
func NewErrInitFailure(err error) error {
	return errors.Join(ErrInitFailure, err)
}

// NewErrUnhandledMessage formats an ErrUnhandled with the given message type.
func NewErrUnhandledMessage(message any) error {
	return fmt.Errorf("message=(%T) %w", message, ErrUnhandled)
}

// PanicError defines the panic error
// wrapping the underlying error
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError
func NewPanicError(err error) *PanicError {
	return &PanicError{err}
}

// Error implements the standard error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.err)
}

func (e *PanicError) Unwrap() error {
	return e.err
}

// AnyError defines the any error type
// this is used to represent any error when handling the supervisor directive
type AnyError struct{}

// interface guard
var _ error = (*AnyError)(nil)

// Error implements error.
func (*AnyError) Error() string {
	return "*"
}
