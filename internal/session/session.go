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

// Package session keeps an in-memory history of attack outcomes.
// Nothing is persisted; the log lives and dies with the process.
package session

import (
	"fmt"
	"io"
	"time"

	"github.com/crackvault/crackvault/internal/attack"
	"github.com/crackvault/crackvault/pkg/queue"
)

// Entry is one recorded attack outcome.
type Entry struct {
	Time     time.Time
	Method   string
	Found    bool
	Password string
	Attempts uint64
	Elapsed  time.Duration
	Speed    float64
}

// Log is a FIFO history of attack results.
type Log struct {
	entries *queue.Queue[Entry]
}

// NewLog returns an empty history.
func NewLog() *Log {
	return &Log{entries: queue.New[Entry]()}
}

// Add records an attack result under the given method label.
func (l *Log) Add(method string, res attack.Result) {
	password := "N/A"
	if res.Found {
		password = res.Password
	}

	l.entries.Enqueue(Entry{
		Time:     time.Now(),
		Method:   method,
		Found:    res.Found,
		Password: password,
		Attempts: res.Attempts,
		Elapsed:  res.Elapsed,
		Speed:    res.Speed,
	})
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return l.entries.Len()
}

// Entries returns the history oldest-first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, 0, l.entries.Len())
	for e := range l.entries.All() {
		out = append(out, e)
	}
	return out
}

// Clear discards the history.
func (l *Log) Clear() {
	l.entries = queue.New[Entry]()
}

// Render writes the history as text, one line per entry.
func (l *Log) Render(w io.Writer) {
	for e := range l.entries.All() {
		status := "FAILED"
		if e.Found {
			status = "CRACKED"
		}
		fmt.Fprintf(w, "[%s] %-8s | %-20s | password: %-16s | %d attempts | %.2fs | %.0f pwd/s\n",
			e.Time.Format("15:04:05"), status, e.Method, e.Password,
			e.Attempts, e.Elapsed.Seconds(), e.Speed)
	}
}
