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

package actor

import (
	"sort"
	"sync"

	gerrors "github.com/tochemey/counterakt/errors"
)

// Registry is the name directory used by actors to discover each other.
//
// A name is bound to at most one live actor. Binding is released when the
// actor terminates. Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	names map[string]*PID
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]*PID),
	}
}

// Register binds name to pid. It fails when the name is bound to a live actor.
func (r *Registry) Register(name string, pid *PID) error {
	if name == "" {
		return gerrors.ErrNameRequired
	}

	if pid == nil {
		return gerrors.ErrUndefinedActor
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.names[name]; ok && !current.isTerminated() {
		return gerrors.NewErrActorAlreadyExists(name)
	}

	r.names[name] = pid
	return nil
}

// Lookup returns the actor bound to name, if any.
func (r *Registry) Lookup(name string) (*PID, bool) {
	r.mu.RLock()
	pid, ok := r.names[name]
	r.mu.RUnlock()
	return pid, ok
}

// Resolve returns the actor bound to name or an ErrPeerUnavailable error.
func (r *Registry) Resolve(name string) (*PID, error) {
	pid, ok := r.Lookup(name)
	if !ok {
		return nil, gerrors.NewErrPeerUnavailable(name)
	}
	return pid, nil
}

// Deregister releases name when it is still bound to pid.
func (r *Registry) Deregister(name string, pid *PID) {
	r.mu.Lock()
	if current, ok := r.names[name]; ok && current == pid {
		delete(r.names, name)
	}
	r.mu.Unlock()
}

// Names returns the sorted list of bound names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of bound names
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}
