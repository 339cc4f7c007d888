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

// Package config holds the tunable knobs of a cracking session.
// The transformation lists below are defaults, not law: a config file
// (crackvault.yaml) may override any of them, and flags override the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config collects every recognized session option.
type Config struct {
	// LeetMap maps letters onto their leet-speak substitutions.
	LeetMap map[string]string `mapstructure:"leet_map"`

	// Suffixes, Prefixes and Specials drive the affix pass of the
	// mutation engine. Empty strings are meaningful: they keep the
	// unaffixed base in the candidate stream.
	Suffixes []string `mapstructure:"suffixes"`
	Prefixes []string `mapstructure:"prefixes"`
	Specials []string `mapstructure:"specials"`

	// ComboSeparators and ComboSuffixes drive pairwise keyword combination.
	ComboSeparators []string `mapstructure:"combo_separators"`
	ComboSuffixes   []string `mapstructure:"combo_suffixes"`

	// CaseSensitiveDedup keeps "Pass" and "pass" as distinct candidates.
	CaseSensitiveDedup bool `mapstructure:"case_sensitive_dedup"`

	// Brute-force space. MaxLength == 0 disables the phase.
	Charset   string `mapstructure:"charset"`
	MinLength int    `mapstructure:"min_length"`
	MaxLength int    `mapstructure:"max_length"`

	// FaultThreshold aborts the session after this many verifier faults.
	// Zero disables the threshold (faults are only logged).
	FaultThreshold int `mapstructure:"fault_threshold"`

	// Workers is the number of parallel verification lanes per phase.
	Workers int `mapstructure:"workers"`

	// ReportEvery throttles progress updates to one per N attempts.
	ReportEvery int `mapstructure:"report_every"`
}

// Default returns the stock configuration. The lists mirror the suffix,
// prefix and leet tables commonly seen in real leaked-password corpora.
func Default() Config {
	return Config{
		LeetMap: map[string]string{
			"a": "@", "e": "3", "i": "1", "o": "0", "s": "$",
			"t": "7", "l": "1", "g": "9", "b": "8",
		},
		Suffixes: []string{
			"", "1", "12", "123", "1234", "!", "!!", "@", "#", "$",
			"01", "99", "2024", "2025", "2026", "007", "69", "666",
			"0", "00", "11", "22", "33", "44", "55", "77", "88",
			"!@", "!@#", "@!", "#1", "$1", "1!", "123!", "1234!",
		},
		Prefixes: []string{"", "!", "@", "#", "$", "1", "123", "!@", "!@#"},
		Specials: []string{"!", "@", "#", "$", "%", "&", "*", ".", "-", "_", "~", "+", "="},
		ComboSeparators: []string{
			"", " ", "_", "-", ".", "!", "@", "#", "1", "123",
		},
		ComboSuffixes:      []string{"", "1", "123", "!", "@", "#", "2025", "2026"},
		CaseSensitiveDedup: true,
		Charset:            CharsetLowercase,
		MinLength:          1,
		MaxLength:          0,
		FaultThreshold:     100,
		Workers:            1,
		ReportEvery:        500,
	}
}

// Charset presets selectable by name.
const (
	CharsetLowercase = "abcdefghijklmnopqrstuvwxyz"
	CharsetUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits    = "0123456789"
)

// ResolveCharset maps a preset name onto its character set. Unknown
// names are taken as a literal charset.
func ResolveCharset(name string) string {
	switch name {
	case "lowercase":
		return CharsetLowercase
	case "uppercase":
		return CharsetUppercase
	case "digits":
		return CharsetDigits
	case "lowercase+digits":
		return CharsetLowercase + CharsetDigits
	case "printable":
		return CharsetLowercase + CharsetUppercase + CharsetDigits + "!@#$%"
	}
	return name
}

// Load reads the config file layered over Default. With an empty path
// it looks for crackvault.yaml in the working directory and in
// $HOME/.config/crackvault, and a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("crackvault")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "crackvault"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the orchestrator cannot run.
func (c *Config) Validate() error {
	if c.MaxLength > 0 {
		if c.Charset == "" {
			return errors.New("config: brute force requires a non-empty charset")
		}
		if c.MinLength < 1 || c.MinLength > c.MaxLength {
			return fmt.Errorf("config: invalid length range %d..%d", c.MinLength, c.MaxLength)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: negative worker count %d", c.Workers)
	}
	if c.FaultThreshold < 0 {
		return fmt.Errorf("config: negative fault threshold %d", c.FaultThreshold)
	}
	if c.ReportEvery < 0 {
		return fmt.Errorf("config: negative report interval %d", c.ReportEvery)
	}
	return nil
}
