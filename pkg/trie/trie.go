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

// Package trie implements a case-sensitive prefix tree over runes.
// A word is a member iff the path spelled by its runes ends on a
// terminal node; prefix enumeration is depth-first with children
// visited in ascending rune order, so its output is deterministic.
package trie

import "slices"

type node struct {
	children map[rune]*node
	terminal bool
}

// Trie is a prefix tree with sparse per-node child maps.
// It supports insertion and lookups only; there is no delete.
type Trie struct {
	root *node
	size int
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: &node{}}
}

// Insert adds word in O(len(word)).
// It reports whether the word was not previously present.
func (t *Trie) Insert(word string) bool {
	n := t.root
	for _, r := range word {
		child := n.children[r]
		if child == nil {
			if n.children == nil {
				n.children = make(map[rune]*node)
			}
			child = &node{}
			n.children[r] = child
		}
		n = child
	}
	if n.terminal {
		return false
	}
	n.terminal = true
	t.size++
	return true
}

// Contains reports whether word was inserted exactly.
func (t *Trie) Contains(word string) bool {
	n := t.walk(word)
	return n != nil && n.terminal
}

// StartsWith reports whether any inserted word has the given prefix.
// The empty prefix matches every word, so it is a prefix of nothing on
// an empty trie.
func (t *Trie) StartsWith(prefix string) bool {
	return t.size > 0 && t.walk(prefix) != nil
}

// Len returns the number of inserted words.
func (t *Trie) Len() int {
	return t.size
}

func (t *Trie) walk(s string) *node {
	n := t.root
	for _, r := range s {
		n = n.children[r]
		if n == nil {
			return nil
		}
	}
	return n
}

// WordsWithPrefix returns a lazy, finite, restartable sequence of all
// inserted words sharing the given prefix. Words are produced by a
// recursive depth-first descent from the prefix node, children in
// ascending rune order. The empty prefix enumerates the whole trie.
func (t *Trie) WordsWithPrefix(prefix string) func(yield func(string) bool) {
	return func(yield func(string) bool) {
		n := t.walk(prefix)
		if n == nil {
			return
		}
		collect(n, prefix, yield)
	}
}

// collect emits terminal descendants of n. Recursion depth is bounded
// by the longest inserted word.
func collect(n *node, word string, yield func(string) bool) bool {
	if n.terminal && !yield(word) {
		return false
	}

	runes := make([]rune, 0, len(n.children))
	for r := range n.children {
		runes = append(runes, r)
	}
	slices.Sort(runes)

	for _, r := range runes {
		if !collect(n.children[r], word+string(r), yield) {
			return false
		}
	}
	return true
}
