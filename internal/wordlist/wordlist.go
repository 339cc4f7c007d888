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

// Package wordlist streams dictionary files one word per line.
// Dictionaries ending in .gz or .zst are decompressed on the fly.
package wordlist

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const maxLineSize = 1024 * 1024

// Reader streams the lines of a dictionary. The stream is forward-only
// and not restartable: open a new Reader to read the file again.
type Reader struct {
	file    *os.File
	closers []io.Closer
	scanner *bufio.Scanner
}

// Open opens a plain, gzip- or zstd-compressed wordlist.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}

	wr := &Reader{file: f}

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("wordlist: %w", err)
		}
		wr.closers = append(wr.closers, zr)
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("wordlist: %w", err)
		}
		wr.closers = append(wr.closers, zr.IOReadCloser())
		r = zr
	}

	wr.scanner = bufio.NewScanner(r)
	wr.scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return wr, nil
}

// Words returns the remaining lines as a lazy, finite, forward-only
// sequence. Blank lines are skipped and surrounding whitespace trimmed.
func (r *Reader) Words() func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for r.scanner.Scan() {
			w := strings.TrimSpace(r.scanner.Text())
			if w == "" {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}

// Err returns the first error hit while scanning, if any.
func (r *Reader) Err() error {
	return r.scanner.Err()
}

// Close releases the underlying file and any decompressor.
func (r *Reader) Close() error {
	for _, c := range r.closers {
		c.Close()
	}
	return r.file.Close()
}
