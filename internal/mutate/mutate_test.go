package mutate_test

import (
	"strings"
	"testing"

	"github.com/crackvault/crackvault/internal/config"
	"github.com/crackvault/crackvault/internal/mutate"
	"github.com/crackvault/crackvault/pkg/queue"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, keywords string) *mutate.Engine {
	t.Helper()
	return mutate.NewEngine(mutate.ConfigFrom(config.Default()), mutate.ParseKeywords(keywords))
}

func generateAll(e *mutate.Engine) []string {
	var words []string
	for c := range e.Generate() {
		words = append(words, c.Word)
	}
	return words
}

func TestParseKeywords(t *testing.T) {
	kws := mutate.ParseKeywords("Defensive, space  ROCKET")
	require.Equal(t, []mutate.Keyword{
		{Word: "defensive"},
		{Word: "space"},
		{Word: "rocket"},
	}, kws)

	require.Empty(t, mutate.ParseKeywords("  ,, "))
}

func TestEngine_Deterministic(t *testing.T) {
	first := generateAll(newEngine(t, "defensive space"))
	second := generateAll(newEngine(t, "defensive space"))
	require.Equal(t, first, second, "identical input and config must yield identical sequences")
	require.NotEmpty(t, first)
}

func TestEngine_NoDuplicates(t *testing.T) {
	// "space" and "spacer" share many leet and affix variants; the
	// seen-set must still keep the stream duplicate-free.
	words := generateAll(newEngine(t, "space spacer"))

	seen := make(map[string]bool, len(words))
	for _, w := range words {
		require.False(t, seen[w], "duplicate candidate %q", w)
		seen[w] = true
	}
}

func TestEngine_CaseInsensitiveDedup(t *testing.T) {
	cfg := mutate.ConfigFrom(config.Default())
	cfg.CaseSensitiveDedup = false

	e := mutate.NewEngine(cfg, mutate.ParseKeywords("key"))

	seen := make(map[string]bool)
	for c := range e.Generate() {
		k := strings.ToLower(c.Word)
		require.False(t, seen[k], "case-insensitive duplicate %q", c.Word)
		seen[k] = true
	}
}

func TestEngine_PriorityOrdering(t *testing.T) {
	words := generateAll(newEngine(t, "key"))

	pos := func(w string) int {
		for i, got := range words {
			if got == w {
				return i
			}
		}
		t.Fatalf("candidate %q not generated", w)
		return -1
	}

	// Case variants precede leet, leet precedes structural, and all
	// single-keyword bases precede their affixed forms.
	require.Equal(t, 0, pos("key"), "the plain keyword is always first")
	require.Less(t, pos("KEY"), pos("k3y"))
	require.Less(t, pos("k3y"), pos("yek"))
	require.Less(t, pos("yek"), pos("key123"))
	require.Less(t, pos("key123"), pos("!key123"))
}

func TestEngine_TransformCoverage(t *testing.T) {
	words := generateAll(newEngine(t, "lost"))

	for _, want := range []string{
		"lost", "LOST", "Lost", // case variants
		"10$7",         // full leet (l->1, o->0, s->$, t->7)
		"1ost", "l0st", // single-position leet
		"tsol",                          // reversal
		"lostlost",                      // doubling
		"l-o-s-t", "l.o.s.t", "l_o_s_t", // joined spellings
		"lost2025", "!lost", "!lost123", // affix grid
		"lost!", "~lost~", // special wraps
	} {
		require.Contains(t, words, want)
	}
}

func TestEngine_PairwiseCombos(t *testing.T) {
	words := generateAll(newEngine(t, "defensive space"))

	for _, want := range []string{
		"defensivespace", "spacedefensive", // both orders
		"defensive_space", "defensive space", // separators
		"DefensiveSpace", "DEFENSIVE_SPACE", // case shapes
		"defensivespace123", "defensivespace2026", // combo suffixes
	} {
		require.Contains(t, words, want)
	}
}

func TestEngine_SingleKeywordHasNoCombos(t *testing.T) {
	e := newEngine(t, "solo")
	for c := range e.Generate() {
		require.NotContains(t, c.Recipe, "combo", "single keyword must not produce combos (%q)", c.Word)
	}
}

func TestEngine_WeightOrdering(t *testing.T) {
	cfg := mutate.ConfigFrom(config.Default())
	e := mutate.NewEngine(cfg, []mutate.Keyword{
		{Word: "light", Weight: 1},
		{Word: "heavy", Weight: 10},
	})

	require.Equal(t, []string{"heavy", "light"}, e.Keywords())

	words := generateAll(e)
	require.Equal(t, "heavy", words[0], "heaviest keyword mutates first")
}

func TestEngine_Provenance(t *testing.T) {
	e := newEngine(t, "key")
	for c := range e.Generate() {
		require.Equal(t, mutate.SourcePriority, c.Source)
		require.NotEmpty(t, c.Recipe)
	}
}

func TestEngine_LoadQueue(t *testing.T) {
	e := newEngine(t, "key")

	q := queue.New[mutate.Candidate]()
	n := e.LoadQueue(q)
	require.Equal(t, n, q.Len())
	require.Positive(t, n)

	head, err := q.Peek()
	require.NoError(t, err)
	require.Equal(t, "key", head.Word)
}

func TestEngine_StemTrie(t *testing.T) {
	e := newEngine(t, "defensive space spacer")

	require.True(t, e.HasStem("space"))
	require.True(t, e.HasStem("SPACE"))
	require.False(t, e.HasStem("spa"))

	var stems []string
	for s := range e.StemsWithPrefix("spa") {
		stems = append(stems, s)
	}
	require.Equal(t, []string{"space", "spacer"}, stems)
}

func TestEngine_MatchesKeyword(t *testing.T) {
	e := newEngine(t, "space")

	require.True(t, e.MatchesKeyword("myspace99"))
	require.True(t, e.MatchesKeyword("SPACE"))
	require.True(t, e.MatchesKeyword("s.p.a.c.e")) // matches after stripping specials
	require.False(t, e.MatchesKeyword("paces"))
}

func TestEngine_PrioritizeWordlist(t *testing.T) {
	e := newEngine(t, "space")

	stream := func(yield func(string) bool) {
		for _, w := range []string{"alpha", "spaceman", "beta", "myspace"} {
			if !yield(w) {
				return
			}
		}
	}

	var got []string
	for w := range e.PrioritizeWordlist(stream) {
		got = append(got, w)
	}
	require.Equal(t, []string{"spaceman", "myspace", "alpha", "beta"}, got)
}

func TestEngine_EmptyKeywords(t *testing.T) {
	e := newEngine(t, "")
	require.Empty(t, generateAll(e))

	q := queue.New[mutate.Candidate]()
	require.Zero(t, e.LoadQueue(q))
	require.True(t, q.Empty())
}
