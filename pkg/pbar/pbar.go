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
package pbar

import (
	"fmt"
	"os"
	"time"

	"github.com/crackvault/crackvault/pkg/util/format"
)

const MinRefreshRate = time.Millisecond * 500

// ProgressState holds all the data needed to render the attempt
// progress line.
type ProgressState struct {
	Attempts     uint64
	Phase        string
	Candidate    string
	StartTime    time.Time
	LastUpdate   time.Time
	LastAttempts uint64
}

// New initializes a new ProgressState.
func New() *ProgressState {
	return &ProgressState{
		StartTime:  time.Now(),
		LastUpdate: time.Unix(0, 0),
	}
}

// Update records the latest progress and re-renders the line, rate
// limited to MinRefreshRate unless forced.
func (pbs *ProgressState) Update(attempts uint64, phase, candidate string, force bool) {
	pbs.Attempts = attempts
	pbs.Phase = phase
	pbs.Candidate = candidate
	pbs.render(force)
}

func (pbs *ProgressState) render(force bool) {
	since := time.Since(pbs.LastUpdate)
	if !force && since < MinRefreshRate {
		return
	}

	speed := float64(pbs.Attempts-pbs.LastAttempts) / since.Seconds()

	pbs.LastUpdate = time.Now()
	pbs.LastAttempts = pbs.Attempts

	// \r keeps the line in place; trailing spaces clear leftovers
	// from a previously longer candidate.
	fmt.Fprintf(os.Stdout, "\r[INFO] Phase: %-11s | Attempts: %-12s | @ %.0f pwd/s | Trying: %-24s",
		pbs.Phase,
		format.FormatCount(pbs.Attempts),
		speed,
		pbs.Candidate)

	os.Stdout.Sync()
}

// Finish prints a newline, ending the progress line output.
func (pbs *ProgressState) Finish() {
	fmt.Println()
}
