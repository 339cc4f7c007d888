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
package attack

import (
	"fmt"
	"math"
	"strings"
)

// Enumerator produces every string over a charset for lengths in
// [minLen, maxLen], shortest first, lexicographic in charset order
// within a length. The order is deterministic, so an attempt count is
// a faithful measure of work done, and Seek makes the enumeration
// resumable from any attempt index.
type Enumerator struct {
	charset []rune
	minLen  int
	maxLen  int

	length int
	digits []int // odometer over charset indices, one per position
	done   bool
}

// NewEnumerator validates the space and positions the enumerator at
// the first candidate.
func NewEnumerator(charset string, minLen, maxLen int) (*Enumerator, error) {
	cs := []rune(charset)
	if len(cs) == 0 {
		return nil, fmt.Errorf("%w: empty charset with length range %d..%d",
			ErrInvalidConfig, minLen, maxLen)
	}
	if minLen < 1 || minLen > maxLen {
		return nil, fmt.Errorf("%w: invalid length range %d..%d",
			ErrInvalidConfig, minLen, maxLen)
	}

	return &Enumerator{
		charset: cs,
		minLen:  minLen,
		maxLen:  maxLen,
		length:  minLen,
		digits:  make([]int, minLen),
	}, nil
}

// Next returns the next candidate, or false when the space is exhausted.
func (e *Enumerator) Next() (string, bool) {
	if e.done {
		return "", false
	}

	var sb strings.Builder
	sb.Grow(e.length)
	for _, d := range e.digits {
		sb.WriteRune(e.charset[d])
	}

	e.advance()
	return sb.String(), true
}

// advance increments the odometer; a full carry moves to the next length.
func (e *Enumerator) advance() {
	for i := len(e.digits) - 1; i >= 0; i-- {
		e.digits[i]++
		if e.digits[i] < len(e.charset) {
			return
		}
		e.digits[i] = 0
	}

	e.length++
	if e.length > e.maxLen {
		e.done = true
		return
	}
	e.digits = make([]int, e.length)
}

// Seek positions the enumerator so that the next candidate is the one
// at zero-based index n of the full enumeration, skipping the first n
// candidates. Seeking past the end exhausts the enumerator.
func (e *Enumerator) Seek(n uint64) {
	base := uint64(len(e.charset))
	e.done = false

	for length := e.minLen; length <= e.maxLen; length++ {
		count := powSat(base, length)
		if n >= count {
			n -= count
			continue
		}

		e.length = length
		e.digits = make([]int, length)
		for i := length - 1; i >= 0; i-- {
			e.digits[i] = int(n % base)
			n /= base
		}
		return
	}
	e.done = true
}

// SpaceSize returns the total number of candidates, saturating at
// MaxUint64 for spaces too large to count.
func (e *Enumerator) SpaceSize() uint64 {
	base := uint64(len(e.charset))

	var total uint64
	for length := e.minLen; length <= e.maxLen; length++ {
		count := powSat(base, length)
		if count > math.MaxUint64-total {
			return math.MaxUint64
		}
		total += count
	}
	return total
}

// All returns the remaining candidates as a lazy sequence.
func (e *Enumerator) All() func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for {
			w, ok := e.Next()
			if !ok {
				return
			}
			if !yield(w) {
				return
			}
		}
	}
}

// powSat computes base**exp, saturating at MaxUint64.
func powSat(base uint64, exp int) uint64 {
	var result uint64 = 1
	for i := 0; i < exp; i++ {
		if result > math.MaxUint64/base {
			return math.MaxUint64
		}
		result *= base
	}
	return result
}
