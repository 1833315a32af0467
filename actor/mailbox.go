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
	gods "github.com/Workiva/go-datastructures/queue"
)

// Mailbox is the message queue of an actor.
//
// Enqueue is called by any number of senders and must not block.
// Dequeue is called by the actor goroutine only and returns nil when the
// mailbox is empty. Messages come out in the order they went in.
type Mailbox interface {
	Enqueue(msg *ReceiveContext) error
	Dequeue() (msg *ReceiveContext)
	IsEmpty() bool
	// Len is a snapshot, it may be stale by the time it is read
	Len() int64
}

// defaultQueueHint sizes the initial backing slice of an UnboundedMailbox
const defaultQueueHint = 16

// UnboundedMailbox is a mailbox without capacity limit. It is the default
// mailbox of every actor.
type UnboundedMailbox struct {
	underlying *gods.Queue
}

var _ Mailbox = (*UnboundedMailbox)(nil)

// NewUnboundedMailbox creates an empty UnboundedMailbox
func NewUnboundedMailbox() *UnboundedMailbox {
	return &UnboundedMailbox{
		underlying: gods.New(defaultQueueHint),
	}
}

// Enqueue appends msg
func (m *UnboundedMailbox) Enqueue(msg *ReceiveContext) error {
	return m.underlying.Put(msg)
}

// Dequeue removes the oldest message or returns nil
func (m *UnboundedMailbox) Dequeue() *ReceiveContext {
	// single consumer: a non empty queue cannot be drained concurrently
	if m.underlying.Empty() {
		return nil
	}

	items, err := m.underlying.Get(1)
	if err != nil || len(items) == 0 {
		return nil
	}

	msg, _ := items[0].(*ReceiveContext)
	return msg
}

// IsEmpty reports whether the mailbox holds no message
func (m *UnboundedMailbox) IsEmpty() bool {
	return m.underlying.Empty()
}

// Len returns the number of queued messages
func (m *UnboundedMailbox) Len() int64 {
	return m.underlying.Len()
}
