// Copyright (c) 2026 The CrackVault Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package queue

import "errors"

// ErrEmpty is returned by Dequeue and Peek when the queue holds no elements.
var ErrEmpty = errors.New("queue: empty")

type node[T any] struct {
	data T
	next *node[T]
}

// Queue is a strict FIFO container backed by a singly linked list with
// front and rear references. Enqueue and Dequeue are O(1), the size is
// maintained incrementally, and there is no random access or reordering:
// elements come out exactly in insertion order.
type Queue[T any] struct {
	front *node[T]
	rear  *node[T]
	size  int
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends v at the rear.
func (q *Queue[T]) Enqueue(v T) {
	n := &node[T]{data: v}
	if q.rear != nil {
		q.rear.next = n
	}
	q.rear = n
	if q.front == nil {
		q.front = n
	}
	q.size++
}

// Dequeue removes and returns the front element.
// It returns ErrEmpty on an empty queue.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.front == nil {
		var zero T
		return zero, ErrEmpty
	}

	v := q.front.data
	q.front = q.front.next
	if q.front == nil {
		q.rear = nil
	}
	q.size--
	return v, nil
}

// Peek returns the front element without removing it.
// It returns ErrEmpty on an empty queue.
func (q *Queue[T]) Peek() (T, error) {
	if q.front == nil {
		var zero T
		return zero, ErrEmpty
	}
	return q.front.data, nil
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.size == 0
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.size
}

// All returns a lazy sequence over the queued elements, front to rear,
// without removing them. Enqueueing or dequeueing while iterating is
// not supported.
func (q *Queue[T]) All() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for n := q.front; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Drain returns a lazy sequence that dequeues elements until the queue
// is empty. Stopping the iteration early leaves the remaining elements
// queued.
func (q *Queue[T]) Drain() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for q.front != nil {
			v, err := q.Dequeue()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
