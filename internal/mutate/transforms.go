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
package mutate

import (
	"fmt"
	"strings"
	"unicode"
)

// leetAll substitutes every mappable rune of word.
func leetAll(word string, leet map[rune]rune) string {
	if len(leet) == 0 {
		return word
	}

	runes := []rune(strings.ToLower(word))
	for i, r := range runes {
		if sub, ok := leet[r]; ok {
			runes[i] = sub
		}
	}
	return string(runes)
}

// leetSingles returns one variant per substitutable position, positions
// ascending. Partial leet is common in real passwords, so these are
// generated alongside the all-or-nothing form.
func leetSingles(word string, leet map[rune]rune) []base {
	if len(leet) == 0 {
		return nil
	}

	runes := []rune(strings.ToLower(word))

	var variants []base
	for i, r := range runes {
		sub, ok := leet[r]
		if !ok {
			continue
		}
		v := make([]rune, len(runes))
		copy(v, runes)
		v[i] = sub
		variants = append(variants, base{
			word:   string(v),
			recipe: fmt.Sprintf("leet@%d:%c", i, sub),
		})
	}
	return variants
}

func reverse(word string) string {
	runes := []rune(word)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// firstUpper uppercases the first rune and leaves the rest untouched.
func firstUpper(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func swapCase(word string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		}
		return r
	}, word)
}

// joinRunes spells word with sep between every rune: "key" -> "k-e-y".
func joinRunes(word, sep string) string {
	runes := []rune(word)
	if len(runes) < 2 {
		return word
	}

	var sb strings.Builder
	for i, r := range runes {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// stripSpecials keeps only letters and digits, lowercased.
func stripSpecials(word string) string {
	var sb strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}
