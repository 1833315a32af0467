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

package supervisor

import (
	"errors"
	"reflect"
	"sync"

	gerrors "github.com/tochemey/counterakt/errors"
)

// Directive defines the supervisor directive
//
// It represents the action taken when an actor's message handler reports an
// error or panics:
//
//   - StopDirective: stop the failing actor incarnation.
//   - ResumeDirective: log the failure and keep processing the next messages.
//   - RestartDirective: run PostStop then PreStart on the actor and keep processing.
type Directive int

const (
	// StopDirective indicates that when an actor fails, the actor is stopped.
	// This is the default for any failure without a matching rule.
	StopDirective Directive = iota
	// ResumeDirective indicates that when an actor fails, the actor resumes
	// processing without resetting its state.
	ResumeDirective
	// RestartDirective indicates that when an actor fails, its lifecycle hooks
	// are replayed to reset its state before it resumes processing.
	RestartDirective
)

// String returns the string representation of the directive
func (d Directive) String() string {
	switch d {
	case StopDirective:
		return "Stop"
	case ResumeDirective:
		return "Resume"
	case RestartDirective:
		return "Restart"
	default:
		return ""
	}
}

// Option defines the various options to apply to a given Supervisor
type Option func(*Supervisor)

// WithDirective maps an error value to a directive. A failure matches the rule
// when errors.Is finds err in its chain. Passing an *errors.AnyError is the
// same as WithAnyErrorDirective.
func WithDirective(err error, directive Directive) Option {
	return func(s *Supervisor) {
		var anyErr *gerrors.AnyError
		if errors.As(err, &anyErr) {
			s.anyError = &directive
			return
		}

		s.rules = append(s.rules, rule{
			name:      err.Error(),
			directive: directive,
			match:     func(failure error) bool { return errors.Is(failure, err) },
		})
	}
}

// WithErrorType maps every error of type T found in a failure's chain to a directive.
func WithErrorType[T error](directive Directive) Option {
	return func(s *Supervisor) {
		var zero T
		typ := reflect.TypeOf(zero)
		if typ == nil {
			typ = reflect.TypeOf((*T)(nil)).Elem()
		}
		s.rules = append(s.rules, rule{
			name:      typ.String(),
			directive: directive,
			match: func(failure error) bool {
				var target T
				return errors.As(failure, &target)
			},
		})
	}
}

// WithAnyErrorDirective sets the directive applied to every failure.
// It overrides any error-specific directive.
func WithAnyErrorDirective(directive Directive) Option {
	return func(s *Supervisor) {
		s.anyError = &directive
	}
}

// WithMaxRetries bounds the number of restarts. Once exhausted, the failing
// actor is stopped.
func WithMaxRetries(maxRetries uint32) Option {
	return func(s *Supervisor) {
		s.maxRetries = maxRetries
	}
}

type rule struct {
	name      string
	directive Directive
	match     func(error) bool
}

// DirectiveRule describes a configured rule.
type DirectiveRule struct {
	// Name is the error message or the error type name of the rule
	Name string
	// Directive is the directive applied when the rule matches
	Directive Directive
}

// Supervisor decides how an actor reacts when handling a message fails.
//
// Defaults:
//   - any failure without a matching rule -> StopDirective
//   - MaxRetries: 1 restart
//
// Supervisor methods are safe for concurrent use.
type Supervisor struct {
	mu         sync.RWMutex
	rules      []rule
	anyError   *Directive
	maxRetries uint32
}

// NewSupervisor creates a Supervisor with the given options.
func NewSupervisor(opts ...Option) *Supervisor {
	s := &Supervisor{
		rules:      make([]rule, 0),
		maxRetries: 1,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Directive returns the directive configured for err and whether a rule matched.
func (s *Supervisor) Directive(err error) (Directive, bool) {
	if err == nil {
		return ResumeDirective, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.anyError != nil {
		return *s.anyError, true
	}

	for _, r := range s.rules {
		if r.match(err) {
			return r.directive, true
		}
	}
	return StopDirective, false
}

// Decide returns the directive for err, falling back to StopDirective.
// A nil error always resumes.
func (s *Supervisor) Decide(err error) Directive {
	directive, _ := s.Directive(err)
	return directive
}

// MaxRetries returns the restart budget used with RestartDirective.
func (s *Supervisor) MaxRetries() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxRetries
}

// AnyErrorDirective returns the catch-all directive, if configured.
func (s *Supervisor) AnyErrorDirective() (Directive, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.anyError == nil {
		return StopDirective, false
	}
	return *s.anyError, true
}

// Rules returns a snapshot of the configured rules in evaluation order.
func (s *Supervisor) Rules() []DirectiveRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rules := make([]DirectiveRule, 0, len(s.rules))
	for _, r := range s.rules {
		rules = append(rules, DirectiveRule{Name: r.name, Directive: r.directive})
	}
	return rules
}
