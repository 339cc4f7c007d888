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

// Package mutate derives priority password candidates from user keywords.
//
// Transformations run in a fixed priority order, and that order is part
// of the engine's contract (it determines the attempt counts a session
// reports). Per keyword:
//
//  1. case variants: plain, UPPER, Title, First-upper, sWAP-case
//  2. leet: whole-word substitution, its Title form, then one variant
//     per substitutable position
//  3. structural: reversal, doubling, separator-joined spellings
//  4. affix grid: every base above crossed with the configured suffix,
//     prefix and special-character lists
//
// and finally, across keyword pairs:
//
//  5. combinatorial: both orders, with and without separators, in five
//     case shapes, plus concatenations with combo suffixes.
//
// Every generated string passes through a HashMap seen-set before it is
// yielded, so the candidate stream never contains duplicates no matter
// how many rules independently produce the same string. For a fixed
// keyword list and configuration the stream is fully deterministic.
package mutate

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/crackvault/crackvault/internal/config"
	"github.com/crackvault/crackvault/pkg/hashmap"
	"github.com/crackvault/crackvault/pkg/queue"
	"github.com/crackvault/crackvault/pkg/trie"
)

// Source tags where a candidate came from.
type Source int

const (
	SourcePriority Source = iota
	SourceWordlist
	SourceBruteForce
)

func (s Source) String() string {
	switch s {
	case SourcePriority:
		return "priority"
	case SourceWordlist:
		return "wordlist"
	case SourceBruteForce:
		return "brute-force"
	default:
		return "unknown"
	}
}

// Candidate is one password to try, tagged with its provenance and, for
// mutations, the transformation recipe that produced it.
type Candidate struct {
	Word   string
	Source Source
	Recipe string
}

// Keyword is a raw keyword with an optional ordering weight. Keywords
// with higher weight contribute their mutations first; equal weights
// keep input order.
type Keyword struct {
	Word   string
	Weight int
}

// ParseKeywords splits a space- or comma-separated keyword string.
// Keywords are lowercased; weights default to zero.
func ParseKeywords(raw string) []Keyword {
	raw = strings.ReplaceAll(raw, ",", " ")

	var kws []Keyword
	for _, f := range strings.Fields(raw) {
		kws = append(kws, Keyword{Word: strings.ToLower(f)})
	}
	return kws
}

// Config carries the transformation tables the engine applies.
type Config struct {
	LeetMap            map[rune]rune
	Suffixes           []string
	Prefixes           []string
	Specials           []string
	ComboSeparators    []string
	ComboSuffixes      []string
	CaseSensitiveDedup bool
}

// ConfigFrom converts the session configuration into engine form.
func ConfigFrom(c config.Config) Config {
	leet := make(map[rune]rune, len(c.LeetMap))
	for from, to := range c.LeetMap {
		if from == "" || to == "" {
			continue
		}
		leet[[]rune(from)[0]] = []rune(to)[0]
	}

	return Config{
		LeetMap:            leet,
		Suffixes:           c.Suffixes,
		Prefixes:           c.Prefixes,
		Specials:           c.Specials,
		ComboSeparators:    c.ComboSeparators,
		ComboSuffixes:      c.ComboSuffixes,
		CaseSensitiveDedup: c.CaseSensitiveDedup,
	}
}

// Engine generates the deduplicated priority candidate stream for a
// keyword set. It also maintains a trie of the keyword stems for
// prefix lookups and wordlist prioritization.
type Engine struct {
	cfg      Config
	keywords []string
	stems    *trie.Trie
	title    cases.Caser
}

// NewEngine builds an engine over the given keywords. Keyword order is
// significant: it is the order mutations are generated in, after a
// stable sort by descending weight.
func NewEngine(cfg Config, keywords []Keyword) *Engine {
	kws := slices.Clone(keywords)
	slices.SortStableFunc(kws, func(a, b Keyword) int {
		return b.Weight - a.Weight
	})

	e := &Engine{
		cfg:   cfg,
		stems: trie.New(),
		title: cases.Title(language.Und),
	}
	for _, kw := range kws {
		w := strings.ToLower(strings.TrimSpace(kw.Word))
		if w == "" {
			continue
		}
		e.keywords = append(e.keywords, w)
		e.stems.Insert(w)
	}
	return e
}

// Keywords returns the normalized keywords in generation order.
func (e *Engine) Keywords() []string {
	return slices.Clone(e.keywords)
}

// HasStem reports whether word is exactly one of the keyword stems.
func (e *Engine) HasStem(word string) bool {
	return e.stems.Contains(strings.ToLower(word))
}

// StemsWithPrefix enumerates keyword stems sharing the given prefix,
// for narrowing the search when a partial password hint is known.
func (e *Engine) StemsWithPrefix(prefix string) func(yield func(string) bool) {
	return e.stems.WordsWithPrefix(strings.ToLower(prefix))
}

// MatchesKeyword reports whether any keyword occurs in word, either
// verbatim (case-insensitive) or after stripping non-alphanumerics.
func (e *Engine) MatchesKeyword(word string) bool {
	lower := strings.ToLower(word)
	stripped := stripSpecials(word)

	for _, kw := range e.keywords {
		if strings.Contains(lower, kw) || strings.Contains(stripped, kw) {
			return true
		}
	}
	return false
}

type base struct {
	word   string
	recipe string
}

// bases returns the case, leet and structural variants of a keyword,
// in contract order.
func (e *Engine) bases(kw string) []base {
	var bs []base
	add := func(w, r string) {
		if w != "" {
			bs = append(bs, base{word: w, recipe: r})
		}
	}

	add(kw, "plain")
	add(strings.ToUpper(kw), "upper")
	add(e.title.String(kw), "title")
	add(firstUpper(kw), "first-upper")
	add(swapCase(kw), "swap-case")

	leet := leetAll(kw, e.cfg.LeetMap)
	add(leet, "leet")
	add(e.title.String(leet), "leet+title")
	for _, v := range leetSingles(kw, e.cfg.LeetMap) {
		add(v.word, v.recipe)
	}

	add(reverse(kw), "reverse")
	add(kw+kw, "double")
	for _, sep := range []string{"-", ".", "_"} {
		add(joinRunes(kw, sep), "join:"+sep)
	}
	return bs
}

// Generate returns the lazy, deduplicated candidate stream.
// Each call starts a fresh generation with its own seen-set, so the
// sequence is restartable and reproducible.
func (e *Engine) Generate() func(yield func(Candidate) bool) {
	return func(yield func(Candidate) bool) {
		seen := hashmap.New[string, struct{}]()

		emit := func(word, recipe string) bool {
			if word == "" {
				return true
			}
			key := word
			if !e.cfg.CaseSensitiveDedup {
				key = strings.ToLower(word)
			}
			if !seen.Put(key, struct{}{}) {
				// already generated by an earlier rule
				return true
			}
			return yield(Candidate{Word: word, Source: SourcePriority, Recipe: recipe})
		}

		for _, kw := range e.keywords {
			bs := e.bases(kw)

			for _, b := range bs {
				if !emit(b.word, b.recipe) {
					return
				}
			}

			for _, b := range bs {
				for _, s := range e.cfg.Suffixes {
					for _, p := range e.cfg.Prefixes {
						if !emit(p+b.word+s, affixRecipe(b.recipe, p, s)) {
							return
						}
					}
				}
				for _, sp := range e.cfg.Specials {
					if !emit(sp+b.word, affixRecipe(b.recipe, sp, "")) {
						return
					}
					if !emit(b.word+sp, affixRecipe(b.recipe, "", sp)) {
						return
					}
					if !emit(sp+b.word+sp, affixRecipe(b.recipe, sp, sp)) {
						return
					}
				}
			}
		}

		if len(e.keywords) < 2 {
			return
		}

		shapes := []struct {
			name string
			fn   func(a, b, sep string) string
		}{
			{"plain", func(a, b, sep string) string { return a + sep + b }},
			{"title-first", func(a, b, sep string) string { return e.title.String(a) + sep + b }},
			{"title-second", func(a, b, sep string) string { return a + sep + e.title.String(b) }},
			{"title-both", func(a, b, sep string) string { return e.title.String(a) + sep + e.title.String(b) }},
			{"upper-both", func(a, b, sep string) string { return strings.ToUpper(a) + sep + strings.ToUpper(b) }},
		}

		for i, a := range e.keywords {
			for j, b := range e.keywords {
				if i == j {
					continue
				}
				for _, sep := range e.cfg.ComboSeparators {
					for _, sh := range shapes {
						if !emit(sh.fn(a, b, sep), "combo:"+sh.name+"+sep:"+sep) {
							return
						}
					}
				}
				for _, suf := range e.cfg.ComboSuffixes {
					if !emit(a+b+suf, "combo+suffix:"+suf) {
						return
					}
					if !emit(e.title.String(a)+e.title.String(b)+suf, "combo:title-both+suffix:"+suf) {
						return
					}
				}
			}
		}
	}
}

// LoadQueue drains the candidate stream into q in priority order and
// returns the number of enqueued candidates.
func (e *Engine) LoadQueue(q *queue.Queue[Candidate]) int {
	n := 0
	for c := range e.Generate() {
		q.Enqueue(c)
		n++
	}
	return n
}

// PrioritizeWordlist reorders a word stream so keyword-matching words
// come out first. The input stream is consumed in full before the first
// word is yielded, so memory use is proportional to the wordlist size.
func (e *Engine) PrioritizeWordlist(words func(yield func(string) bool)) func(yield func(string) bool) {
	return func(yield func(string) bool) {
		matched := queue.New[string]()
		rest := queue.New[string]()

		words(func(w string) bool {
			if e.MatchesKeyword(w) {
				matched.Enqueue(w)
			} else {
				rest.Enqueue(w)
			}
			return true
		})

		for w := range matched.Drain() {
			if !yield(w) {
				return
			}
		}
		for w := range rest.Drain() {
			if !yield(w) {
				return
			}
		}
	}
}

func affixRecipe(base, prefix, suffix string) string {
	r := base
	if prefix != "" {
		r += "+prefix:" + prefix
	}
	if suffix != "" {
		r += "+suffix:" + suffix
	}
	return r
}
