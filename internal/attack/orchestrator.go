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

// Package attack drives a cracking session through its three candidate
// phases: keyword-derived priority mutations, the wordlist stream, and
// exhaustive brute force. A phase is never entered while the previous
// one has untried candidates, and the first successful verification
// ends the session immediately.
package attack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/crackvault/crackvault/internal/mutate"
	"github.com/crackvault/crackvault/pkg/queue"
)

var (
	// ErrInvalidConfig rejects a session before any attempt is made.
	ErrInvalidConfig = errors.New("attack: invalid configuration")

	// ErrSessionAborted ends a session whose verifier faulted more
	// times than the configured threshold allows.
	ErrSessionAborted = errors.New("attack: session aborted")
)

// Phase identifies one candidate source of the session state machine.
type Phase int

const (
	PhasePriority Phase = iota
	PhaseWordlist
	PhaseBruteForce
)

func (p Phase) String() string {
	switch p {
	case PhasePriority:
		return "priority"
	case PhaseWordlist:
		return "wordlist"
	case PhaseBruteForce:
		return "brute-force"
	default:
		return "unknown"
	}
}

// Verifier checks a single candidate against the target. It must be
// idempotent and side-effect free; an error counts as a fault for that
// candidate only, not as a failed session.
type Verifier func(candidate string) (bool, error)

// Progress is pushed to the Reporter as the session advances.
type Progress struct {
	Attempts  uint64
	Phase     Phase
	Candidate string
	Elapsed   time.Duration
}

// Reporter consumes progress updates. It is called from the attempt
// loop and must be cheap. Calls are serialized, so the reporter may
// keep plain mutable state even when parallel workers are configured.
type Reporter func(Progress)

// Result is the terminal outcome of a session.
type Result struct {
	Found    bool
	Password string
	Phase    Phase
	Attempts uint64
	Elapsed  time.Duration
	Speed    float64 // attempts per second
}

// Options configures a session. Any candidate source may be absent:
// a nil Priority queue or Wordlist skips that phase, and MaxLength == 0
// disables brute force.
type Options struct {
	Verifier Verifier

	Priority *queue.Queue[mutate.Candidate]
	Wordlist func(yield func(string) bool)

	Charset   string
	MinLength int
	MaxLength int

	// Workers is the number of parallel verification lanes per phase.
	// Values below 2 select the sequential loop, whose attempt counts
	// are exactly reproducible.
	Workers int

	// FaultThreshold aborts the session after this many verifier
	// faults. Zero disables the threshold.
	FaultThreshold int

	// ReportEvery throttles Reporter calls to one per N attempts.
	ReportEvery uint64
	Reporter    Reporter

	Logger *slog.Logger
}

// Orchestrator runs the phase state machine
// priority -> wordlist -> brute force -> found | exhausted.
type Orchestrator struct {
	opts   Options
	logger *slog.Logger

	start    time.Time
	attempts atomic.Uint64
	stopped  atomic.Bool
	found    atomic.Bool
	password string // written only by the found-flag CAS winner
	faults   atomic.Int64
	aborted  atomic.Bool

	// reportMu serializes Reporter calls across worker lanes.
	reportMu sync.Mutex
}

// New builds an orchestrator for a single session. Orchestrators are
// not reusable across sessions.
func New(opts Options) *Orchestrator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.ReportEvery == 0 {
		opts.ReportEvery = 500
	}
	return &Orchestrator{opts: opts, logger: logger}
}

// Stop requests cooperative cancellation. The attempt loop checks the
// flag between candidates and returns the partial result.
func (o *Orchestrator) Stop() {
	o.stopped.Store(true)
}

// Attempts returns the number of candidates tried so far.
func (o *Orchestrator) Attempts() uint64 {
	return o.attempts.Load()
}

func (o *Orchestrator) validate() error {
	if o.opts.Verifier == nil {
		return fmt.Errorf("%w: nil verifier", ErrInvalidConfig)
	}
	if o.opts.MaxLength > 0 {
		if _, err := NewEnumerator(o.opts.Charset, o.opts.MinLength, o.opts.MaxLength); err != nil {
			return err
		}
	}
	if o.opts.Workers < 0 {
		return fmt.Errorf("%w: negative worker count %d", ErrInvalidConfig, o.opts.Workers)
	}
	return nil
}

// Run drives the session to its terminal state. Configuration errors
// are reported before any attempt; ErrSessionAborted carries the
// partial result. Context cancellation and Stop end the session early
// with Found == false unless a match was already recorded.
func (o *Orchestrator) Run(ctx context.Context) (Result, error) {
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	o.start = time.Now()

	phase := PhasePriority
	err := o.runPhase(ctx, PhasePriority, o.priorityCandidates())

	if err == nil && !o.terminal(ctx) && o.opts.Wordlist != nil {
		phase = PhaseWordlist
		o.logger.Info("entering phase", "phase", phase.String(), "attempts", o.Attempts())
		err = o.runPhase(ctx, PhaseWordlist, o.opts.Wordlist)
	}

	if err == nil && !o.terminal(ctx) && o.opts.MaxLength > 0 {
		phase = PhaseBruteForce
		o.logger.Info("entering phase", "phase", phase.String(), "attempts", o.Attempts())
		enum, _ := NewEnumerator(o.opts.Charset, o.opts.MinLength, o.opts.MaxLength)
		err = o.runPhase(ctx, PhaseBruteForce, enum.All())
	}

	return o.result(phase), err
}

func (o *Orchestrator) terminal(ctx context.Context) bool {
	return o.found.Load() || o.stopped.Load() || ctx.Err() != nil
}

// priorityCandidates drains the priority queue as a word stream.
func (o *Orchestrator) priorityCandidates() func(yield func(string) bool) {
	return func(yield func(string) bool) {
		if o.opts.Priority == nil {
			return
		}
		for c := range o.opts.Priority.Drain() {
			if !yield(c.Word) {
				return
			}
		}
	}
}

func (o *Orchestrator) result(phase Phase) Result {
	elapsed := time.Since(o.start)
	attempts := o.attempts.Load()

	return Result{
		Found:    o.found.Load(),
		Password: o.password,
		Phase:    phase,
		Attempts: attempts,
		Elapsed:  elapsed,
		Speed:    float64(attempts) / max(elapsed.Seconds(), 0.001),
	}
}

func (o *Orchestrator) runPhase(ctx context.Context, phase Phase, words func(yield func(string) bool)) error {
	if o.opts.Workers > 1 {
		return o.runParallel(ctx, phase, words)
	}
	return o.runSequential(ctx, phase, words)
}

// runSequential is the deterministic single-lane attempt loop.
func (o *Orchestrator) runSequential(ctx context.Context, phase Phase, words func(yield func(string) bool)) error {
	var abortErr error

	words(func(w string) bool {
		if o.terminal(ctx) {
			return false
		}

		n := o.attempts.Add(1)
		ok, err := o.opts.Verifier(w)
		if err != nil {
			if abortErr = o.recordFault(w, err); abortErr != nil {
				return false
			}
			return true
		}
		if ok {
			o.found.Store(true)
			o.password = w
			return false
		}

		o.report(n, phase, w)
		return true
	})

	return abortErr
}

// runParallel fans candidates out to worker lanes. All lanes share one
// atomic found flag, checked before every candidate, so only one lane
// declares success and the rest stop promptly without finishing their
// queued work. Phase boundaries stay intact: the whole phase completes
// (or ends in a find) before the next phase starts.
func (o *Orchestrator) runParallel(ctx context.Context, phase Phase, words func(yield func(string) bool)) error {
	ch := make(chan string, o.opts.Workers*2)

	var wg sync.WaitGroup
	for i := 0; i < o.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for w := range ch {
				if o.found.Load() || o.stopped.Load() || o.aborted.Load() {
					continue // drain without verifying
				}

				n := o.attempts.Add(1)
				ok, err := o.opts.Verifier(w)
				if err != nil {
					if o.recordFault(w, err) != nil {
						o.aborted.Store(true)
					}
					continue
				}
				if ok && o.found.CompareAndSwap(false, true) {
					o.password = w
					continue
				}

				o.report(n, phase, w)
			}
		}()
	}

	words(func(w string) bool {
		if o.terminal(ctx) || o.aborted.Load() {
			return false
		}
		ch <- w
		return true
	})
	close(ch)
	wg.Wait()

	if o.aborted.Load() {
		return fmt.Errorf("%w: %d verifier faults", ErrSessionAborted, o.faults.Load())
	}
	return nil
}

// recordFault logs a verifier fault and returns ErrSessionAborted once
// the threshold is crossed.
func (o *Orchestrator) recordFault(candidate string, err error) error {
	n := o.faults.Add(1)
	o.logger.Warn("verifier fault", "candidate", candidate, "err", err)

	if o.opts.FaultThreshold > 0 && n >= int64(o.opts.FaultThreshold) {
		return fmt.Errorf("%w: %d verifier faults", ErrSessionAborted, n)
	}
	return nil
}

func (o *Orchestrator) report(n uint64, phase Phase, candidate string) {
	if o.opts.Reporter == nil || n%o.opts.ReportEvery != 0 {
		return
	}

	o.reportMu.Lock()
	defer o.reportMu.Unlock()

	o.opts.Reporter(Progress{
		Attempts:  n,
		Phase:     phase,
		Candidate: candidate,
		Elapsed:   time.Since(o.start),
	})
}
