package attack_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/crackvault/crackvault/internal/attack"
	"github.com/crackvault/crackvault/internal/config"
	"github.com/crackvault/crackvault/internal/digest"
	"github.com/crackvault/crackvault/internal/mutate"
	"github.com/crackvault/crackvault/pkg/queue"
	"github.com/stretchr/testify/require"
)

func never(string) (bool, error) { return false, nil }

func matching(password string) attack.Verifier {
	return func(candidate string) (bool, error) {
		return candidate == password, nil
	}
}

func wordStream(words ...string) func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for _, w := range words {
			if !yield(w) {
				return
			}
		}
	}
}

func priorityQueue(t *testing.T, keywords string) *queue.Queue[mutate.Candidate] {
	t.Helper()
	e := mutate.NewEngine(mutate.ConfigFrom(config.Default()), mutate.ParseKeywords(keywords))
	q := queue.New[mutate.Candidate]()
	e.LoadQueue(q)
	return q
}

func TestOrchestrator_FindsTargetInPriorityPhase(t *testing.T) {
	// End-to-end: the combined keyword "defensivespace" must be found
	// during the priority phase, before the wordlist is ever touched.
	target, err := digest.Sum("md5", "defensivespace")
	require.NoError(t, err)

	verify, err := digest.NewVerifier("md5", target)
	require.NoError(t, err)

	q := priorityQueue(t, "defensive space")

	var position uint64
	var idx uint64
	for c := range q.All() {
		idx++
		if c.Word == "defensivespace" {
			position = idx
			break
		}
	}
	require.Positive(t, position, "the mutation stream must contain the combined keyword")

	wordlistTouched := false
	o := attack.New(attack.Options{
		Verifier: verify,
		Priority: q,
		Wordlist: func(yield func(string) bool) {
			wordlistTouched = true
		},
	})

	res, err := o.Run(context.Background())
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, "defensivespace", res.Password)
	require.Equal(t, attack.PhasePriority, res.Phase)
	require.LessOrEqual(t, res.Attempts, position)
	require.False(t, wordlistTouched, "the wordlist phase must never start")
}

func TestOrchestrator_EmptyKeywordsSkipToWordlist(t *testing.T) {
	q := priorityQueue(t, "")
	require.True(t, q.Empty())

	o := attack.New(attack.Options{
		Verifier: matching("beta"),
		Priority: q,
		Wordlist: wordStream("alpha", "beta", "gamma"),
	})

	res, err := o.Run(context.Background())
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, "beta", res.Password)
	require.Equal(t, attack.PhaseWordlist, res.Phase)
	require.Equal(t, uint64(2), res.Attempts)
}

func TestOrchestrator_BruteForceExhaustion(t *testing.T) {
	var tried []string
	o := attack.New(attack.Options{
		Verifier: func(w string) (bool, error) {
			tried = append(tried, w)
			return false, nil
		},
		Charset:   "ab",
		MinLength: 1,
		MaxLength: 2,
	})

	res, err := o.Run(context.Background())
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, attack.PhaseBruteForce, res.Phase)
	require.Equal(t, uint64(6), res.Attempts)
	require.Equal(t, []string{"a", "b", "aa", "ab", "ba", "bb"}, tried)
}

func TestOrchestrator_PhaseOrdering(t *testing.T) {
	q := queue.New[mutate.Candidate]()
	q.Enqueue(mutate.Candidate{Word: "prio", Source: mutate.SourcePriority})

	var tried []string
	o := attack.New(attack.Options{
		Verifier: func(w string) (bool, error) {
			tried = append(tried, w)
			return false, nil
		},
		Priority:  q,
		Wordlist:  wordStream("list1", "list2"),
		Charset:   "z",
		MinLength: 1,
		MaxLength: 1,
	})

	res, err := o.Run(context.Background())
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, []string{"prio", "list1", "list2", "z"}, tried,
		"priority before wordlist before brute force")
	require.Equal(t, uint64(4), res.Attempts)
}

func TestOrchestrator_InvalidConfig(t *testing.T) {
	o := attack.New(attack.Options{
		Verifier:  never,
		Charset:   "",
		MinLength: 1,
		MaxLength: 4,
	})
	_, err := o.Run(context.Background())
	require.ErrorIs(t, err, attack.ErrInvalidConfig)

	o = attack.New(attack.Options{})
	_, err = o.Run(context.Background())
	require.ErrorIs(t, err, attack.ErrInvalidConfig)
}

func TestOrchestrator_FaultThreshold(t *testing.T) {
	faulty := func(string) (bool, error) {
		return false, errors.New("container unreadable")
	}

	o := attack.New(attack.Options{
		Verifier:       faulty,
		Wordlist:       wordStream("a", "b", "c", "d", "e"),
		FaultThreshold: 3,
	})

	res, err := o.Run(context.Background())
	require.ErrorIs(t, err, attack.ErrSessionAborted)
	require.False(t, res.Found)
	require.Equal(t, uint64(3), res.Attempts)
}

func TestOrchestrator_FaultsBelowThresholdContinue(t *testing.T) {
	calls := 0
	flaky := func(w string) (bool, error) {
		calls++
		if calls == 1 {
			return false, errors.New("transient")
		}
		return w == "c", nil
	}

	o := attack.New(attack.Options{
		Verifier:       flaky,
		Wordlist:       wordStream("a", "b", "c"),
		FaultThreshold: 10,
	})

	res, err := o.Run(context.Background())
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, "c", res.Password)
}

func TestOrchestrator_Stop(t *testing.T) {
	var verifierCalls atomic.Uint64
	var o *attack.Orchestrator
	o = attack.New(attack.Options{
		Verifier: func(string) (bool, error) {
			if verifierCalls.Add(1) == 100 {
				o.Stop()
			}
			return false, nil
		},
		Charset:   "abcdefghijklmnopqrstuvwxyz",
		MinLength: 1,
		MaxLength: 8,
	})

	res, err := o.Run(context.Background())
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, uint64(100), res.Attempts, "stop must take effect before the next candidate")
}

func TestOrchestrator_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var o *attack.Orchestrator
	o = attack.New(attack.Options{
		Verifier: func(string) (bool, error) {
			if o.Attempts() == 50 {
				cancel()
			}
			return false, nil
		},
		Charset:   "ab",
		MinLength: 1,
		MaxLength: 20,
	})

	res, err := o.Run(ctx)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Less(t, res.Attempts, uint64(60))
}

func TestOrchestrator_Reporter(t *testing.T) {
	var updates []attack.Progress
	o := attack.New(attack.Options{
		Verifier:    never,
		Charset:     "ab",
		MinLength:   1,
		MaxLength:   3,
		ReportEvery: 4,
		Reporter: func(p attack.Progress) {
			updates = append(updates, p)
		},
	})

	res, err := o.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(14), res.Attempts) // 2 + 4 + 8

	require.Len(t, updates, 3) // attempts 4, 8 and 12
	require.Equal(t, uint64(4), updates[0].Attempts)
	require.Equal(t, attack.PhaseBruteForce, updates[0].Phase)
	for _, u := range updates {
		require.NotEmpty(t, u.Candidate)
	}
}

func TestOrchestrator_ParallelWorkersFindTarget(t *testing.T) {
	target, err := digest.Sum("sha256", "spacer2025")
	require.NoError(t, err)

	verify, err := digest.NewVerifier("sha256", target)
	require.NoError(t, err)

	o := attack.New(attack.Options{
		Verifier: verify,
		Priority: priorityQueue(t, "space spacer"),
		Workers:  4,
	})

	res, err := o.Run(context.Background())
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, "spacer2025", res.Password)
	require.Equal(t, attack.PhasePriority, res.Phase)
}

// The reporter below keeps plain, unsynchronized state. With parallel
// lanes this is only safe because reporter delivery is serialized; the
// race detector catches any regression here.
func TestOrchestrator_ParallelReporterIsSerialized(t *testing.T) {
	var updates []attack.Progress
	lastAttempts := uint64(0)

	o := attack.New(attack.Options{
		Verifier:    never,
		Charset:     "ab",
		MinLength:   1,
		MaxLength:   6,
		Workers:     4,
		ReportEvery: 8,
		Reporter: func(p attack.Progress) {
			updates = append(updates, p)
			lastAttempts = p.Attempts
		},
	})

	res, err := o.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(2+4+8+16+32+64), res.Attempts)

	require.NotEmpty(t, updates)
	require.LessOrEqual(t, lastAttempts, res.Attempts)
	for _, u := range updates {
		require.Zero(t, u.Attempts%8)
		require.NotEmpty(t, u.Candidate)
	}
}

func TestOrchestrator_ParallelExhaustion(t *testing.T) {
	o := attack.New(attack.Options{
		Verifier:  never,
		Charset:   "ab",
		MinLength: 1,
		MaxLength: 4,
		Workers:   4,
	})

	res, err := o.Run(context.Background())
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, uint64(2+4+8+16), res.Attempts,
		"every candidate is verified exactly once even across lanes")
}
