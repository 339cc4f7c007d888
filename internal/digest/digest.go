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

// Package digest exposes the supported one-way hash functions as an
// algorithm registry. The digests themselves are opaque library
// primitives; this package only names, computes and identifies them.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	"github.com/crackvault/crackvault/pkg/hashmap"
)

// ErrUnknownAlgorithm is returned when an algorithm name is not registered.
var ErrUnknownAlgorithm = errors.New("digest: unknown algorithm")

// Algorithm describes one supported digest function.
type Algorithm struct {
	Name   string
	HexLen int // length of the hex-encoded digest
	New    func() hash.Hash
}

var algorithms = buildRegistry()

func buildRegistry() *hashmap.Map[string, Algorithm] {
	defaults := []Algorithm{
		{Name: "md5", HexLen: 32, New: md5.New},
		{Name: "sha1", HexLen: 40, New: sha1.New},
		{Name: "sha224", HexLen: 56, New: sha256.New224},
		{Name: "sha256", HexLen: 64, New: sha256.New},
		{Name: "sha384", HexLen: 96, New: sha512.New384},
		{Name: "sha512", HexLen: 128, New: sha512.New},
		{Name: "sha3-224", HexLen: 56, New: func() hash.Hash { return sha3.New224() }},
		{Name: "sha3-256", HexLen: 64, New: func() hash.Hash { return sha3.New256() }},
		{Name: "sha3-384", HexLen: 96, New: func() hash.Hash { return sha3.New384() }},
		{Name: "sha3-512", HexLen: 128, New: func() hash.Hash { return sha3.New512() }},
		{Name: "blake2b", HexLen: 128, New: func() hash.Hash { h, _ := blake2b.New512(nil); return h }},
		{Name: "blake2s", HexLen: 64, New: func() hash.Hash { h, _ := blake2s.New256(nil); return h }},
	}

	r := hashmap.NewWithCapacity[string, Algorithm](2 * len(defaults))
	for _, a := range defaults {
		r.Put(a.Name, a)
	}
	return r
}

// normalize maps user spellings like "SHA3_256" onto registry names.
func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// Lookup returns the registered algorithm for name.
func Lookup(name string) (Algorithm, error) {
	a, ok := algorithms.Get(normalize(name))
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// Sum returns the hex-encoded digest of text under the named algorithm.
func Sum(algo, text string) (string, error) {
	a, err := Lookup(algo)
	if err != nil {
		return "", err
	}
	h := a.New()
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Identify returns the names of all algorithms whose hex digest length
// matches the given hash, sorted alphabetically.
func Identify(hashStr string) []string {
	n := len(strings.TrimSpace(hashStr))

	var matches []string
	for name, a := range algorithms.All() {
		if a.HexLen == n {
			matches = append(matches, name)
		}
	}
	slices.Sort(matches)
	return matches
}

// Algorithms returns all registered algorithm names, sorted.
func Algorithms() []string {
	names := make([]string, 0, algorithms.Len())
	for name := range algorithms.All() {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewVerifier returns a verifier that reports whether a candidate's
// digest under the named algorithm equals the target hash. The target
// must already have the algorithm's hex length.
func NewVerifier(algo, target string) (func(candidate string) (bool, error), error) {
	a, err := Lookup(algo)
	if err != nil {
		return nil, err
	}

	target = strings.ToLower(strings.TrimSpace(target))
	if len(target) != a.HexLen {
		return nil, fmt.Errorf("digest: target length %d does not match %s (%d hex chars)",
			len(target), a.Name, a.HexLen)
	}

	return func(candidate string) (bool, error) {
		h := a.New()
		h.Write([]byte(candidate))
		return hex.EncodeToString(h.Sum(nil)) == target, nil
	}, nil
}
