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

// Package crack wires a full cracking session together: configuration,
// the digest verifier, the mutation engine, the wordlist stream and the
// attack orchestrator.
package crack

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/crackvault/crackvault/internal/attack"
	"github.com/crackvault/crackvault/internal/config"
	"github.com/crackvault/crackvault/internal/digest"
	"github.com/crackvault/crackvault/internal/logger"
	"github.com/crackvault/crackvault/internal/mutate"
	"github.com/crackvault/crackvault/internal/wordlist"
	"github.com/crackvault/crackvault/pkg/pbar"
	"github.com/crackvault/crackvault/pkg/queue"
	fmtutil "github.com/crackvault/crackvault/pkg/util/format"
)

type Options struct {
	Algo           string
	Wordlist       string
	Keywords       string
	Hint           string
	Charset        string
	MinLength      int
	MaxLength      int
	Workers        int
	FaultThreshold int
	ReportEvery    int
	DisableLog     bool
	LogLevel       slog.Level
	ConfigFile     string
}

// Run executes one hash-cracking session and prints its summary.
func Run(ctx context.Context, targetHash string, opts Options) (attack.Result, error) {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return attack.Result{}, err
	}
	applyFlags(&cfg, opts)

	if err := cfg.Validate(); err != nil {
		return attack.Result{}, err
	}

	verify, err := digest.NewVerifier(opts.Algo, targetHash)
	if err != nil {
		return attack.Result{}, err
	}

	session := GenSessionID()

	var logFilePath string
	if !opts.DisableLog {
		logFilePath = absPath(session + ".log")
	}
	log, logFile, err := logger.Setup(logFilePath, opts.LogLevel)
	if err != nil {
		return attack.Result{}, err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	engine := buildEngine(cfg, opts)

	priority := queue.New[mutate.Candidate]()
	generated := engine.LoadQueue(priority)
	log.Info("priority queue loaded", "candidates", generated, "keywords", len(engine.Keywords()))

	var words func(yield func(string) bool)
	if opts.Wordlist != "" {
		wl, err := wordlist.Open(opts.Wordlist)
		if err != nil {
			return attack.Result{}, err
		}
		defer wl.Close()

		words = wl.Words()
		if len(engine.Keywords()) > 0 {
			// Keyword-matching dictionary words jump the line. This
			// buffers the whole wordlist in memory.
			words = engine.PrioritizeWordlist(words)
		}
	}

	fmt.Println("[INFO] Starting cracking session...")
	fmt.Printf("[INFO] Session: \t%s\n", session)
	fmt.Printf("[INFO] Algorithm: \t%s\n", strings.ToLower(opts.Algo))
	fmt.Printf("[INFO] Target: \t%s\n", targetHash)
	fmt.Printf("[INFO] Priority candidates: \t%d\n", generated)
	if opts.Wordlist != "" {
		fmt.Printf("[INFO] Wordlist: \t%s\n", absPath(opts.Wordlist))
	}
	if cfg.MaxLength > 0 {
		fmt.Printf("[INFO] Brute force: \tcharset %q, lengths %d..%d\n",
			cfg.Charset, cfg.MinLength, cfg.MaxLength)
	}
	outLog := "disabled"
	if !opts.DisableLog {
		outLog = logFilePath
	}
	fmt.Printf("[INFO] Output Log: \t%s\n", outLog)

	bar := pbar.New()
	orch := attack.New(attack.Options{
		Verifier:       verify,
		Priority:       priority,
		Wordlist:       words,
		Charset:        cfg.Charset,
		MinLength:      cfg.MinLength,
		MaxLength:      cfg.MaxLength,
		Workers:        cfg.Workers,
		FaultThreshold: cfg.FaultThreshold,
		ReportEvery:    uint64(cfg.ReportEvery),
		Reporter: func(p attack.Progress) {
			bar.Update(p.Attempts, p.Phase.String(), p.Candidate, false)
		},
		Logger: log,
	})

	start := time.Now()
	res, err := orch.Run(ctx)
	bar.Finish()

	if err != nil {
		return res, err
	}

	fmt.Printf("[INFO] Session completed!\n")
	if res.Found {
		fmt.Printf("[INFO] PASSWORD FOUND: \t%s\n", res.Password)
		fmt.Printf("[INFO] Phase: \t%s\n", res.Phase)
	} else {
		fmt.Printf("[INFO] Password not found, search space exhausted\n")
	}
	fmt.Printf("[INFO] Attempts: \t%s\n", fmtutil.FormatCount(res.Attempts))
	fmt.Printf("[INFO] Duration: \t%s\n", fmtutil.FormatDurationHMS(time.Since(start)))
	fmt.Printf("[INFO] Speed: \t%.0f pwd/s\n", res.Speed)
	if !opts.DisableLog {
		fmt.Printf("[INFO] Detailed session log: \t%s\n", logFilePath)
	}

	return res, nil
}

// buildEngine constructs the mutation engine, boosting keywords that
// match the partial-password hint so their mutations are tried first.
func buildEngine(cfg config.Config, opts Options) *mutate.Engine {
	mcfg := mutate.ConfigFrom(cfg)
	keywords := mutate.ParseKeywords(opts.Keywords)

	if opts.Hint != "" {
		probe := mutate.NewEngine(mcfg, keywords)

		boosted := map[string]bool{}
		for stem := range probe.StemsWithPrefix(opts.Hint) {
			boosted[stem] = true
		}
		for i := range keywords {
			if boosted[keywords[i].Word] {
				keywords[i].Weight += 1000
			}
		}
	}

	return mutate.NewEngine(mcfg, keywords)
}

// applyFlags lets command-line flags override file and default values.
func applyFlags(cfg *config.Config, opts Options) {
	if opts.Charset != "" {
		cfg.Charset = config.ResolveCharset(opts.Charset)
	}
	if opts.MinLength > 0 {
		cfg.MinLength = opts.MinLength
	}
	if opts.MaxLength > 0 {
		cfg.MaxLength = opts.MaxLength
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if opts.FaultThreshold > 0 {
		cfg.FaultThreshold = opts.FaultThreshold
	}
	if opts.ReportEvery > 0 {
		cfg.ReportEvery = opts.ReportEvery
	}
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// GenSessionID creates a unique name for a cracking session, in the
// form "crack_YYYYMMDD_HHMMSS".
func GenSessionID() string {
	return "crack_" + time.Now().Format("20060102_150405")
}
