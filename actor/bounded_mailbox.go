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

	gerrors "github.com/tochemey/counterakt/errors"
)

// BoundedMailbox is a mailbox with a fixed capacity backed by a ring buffer.
// A full mailbox rejects new messages with ErrMailboxFull instead of blocking
// the sender.
type BoundedMailbox struct {
	underlying *gods.RingBuffer
}

var _ Mailbox = (*BoundedMailbox)(nil)

// NewBoundedMailbox creates a mailbox holding at most capacity messages,
// rounded up to the next power of two.
func NewBoundedMailbox(capacity int) *BoundedMailbox {
	if capacity <= 0 {
		capacity = 1
	}
	return &BoundedMailbox{
		underlying: gods.NewRingBuffer(uint64(capacity)),
	}
}

// Enqueue appends msg or fails with ErrMailboxFull
func (m *BoundedMailbox) Enqueue(msg *ReceiveContext) error {
	ok, err := m.underlying.Offer(msg)
	switch {
	case err != nil:
		return err
	case !ok:
		return gerrors.ErrMailboxFull
	default:
		return nil
	}
}

// Dequeue removes the oldest message or returns nil
func (m *BoundedMailbox) Dequeue() *ReceiveContext {
	if m.underlying.Len() == 0 {
		return nil
	}

	item, err := m.underlying.Get()
	if err != nil {
		return nil
	}

	msg, _ := item.(*ReceiveContext)
	return msg
}

// IsEmpty reports whether the mailbox holds no message
func (m *BoundedMailbox) IsEmpty() bool {
	return m.underlying.Len() == 0
}

// Len returns the number of queued messages
func (m *BoundedMailbox) Len() int64 {
	return int64(m.underlying.Len())
}

// Cap returns the effective capacity
func (m *BoundedMailbox) Cap() int64 {
	return int64(m.underlying.Cap())
}
