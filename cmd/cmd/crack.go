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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/crackvault/crackvault/internal/crack"
	"github.com/crackvault/crackvault/internal/logger"
	"github.com/crackvault/crackvault/internal/session"
	"github.com/spf13/cobra"
)

func DefineCrackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "crack <hash>...",
		Short:        "Recover the passwords behind one or more hash digests",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunCrack,
	}

	cmd.Flags().StringP("algo", "a", "md5", "hash algorithm of the target digest")
	cmd.Flags().StringP("wordlist", "w", "", "path to a wordlist file (plain, .gz or .zst)")
	cmd.Flags().StringP("keywords", "k", "", "comma or space separated keywords to mutate")
	cmd.Flags().String("hint", "", "known password prefix, tries matching keywords first")
	cmd.Flags().String("charset", "", "brute force charset preset or literal characters")
	cmd.Flags().Int("min-len", 0, "minimum brute force candidate length")
	cmd.Flags().Int("max-len", 0, "maximum brute force candidate length (0 disables brute force)")
	cmd.Flags().Int("workers", 0, "number of parallel verification workers")
	cmd.Flags().Int("fault-threshold", 0, "abort the session after this many verifier faults")
	cmd.Flags().Int("report-every", 0, "update progress every N attempts")
	cmd.Flags().Bool("no-log", false, "disable logging")
	cmd.Flags().String("log-level", "info", "minimum session log level")
	cmd.Flags().StringP("config", "c", "", "path to a crackvault config file")

	return cmd
}

func RunCrack(cmd *cobra.Command, args []string) error {
	opts, err := parseCrackOptions(cmd)
	if err != nil {
		return err
	}

	hist := session.NewLog()
	missed := 0

	for _, target := range args {
		res, err := crack.Run(cmd.Context(), strings.TrimSpace(target), opts)
		if err != nil {
			return err
		}

		hist.Add(strings.ToLower(opts.Algo), res)
		if !res.Found {
			missed++
		}
	}

	if hist.Len() > 1 {
		fmt.Println("[INFO] Session history:")
		hist.Render(os.Stdout)
	}

	if missed > 0 {
		return fmt.Errorf("%d of %d hashes not recovered", missed, len(args))
	}
	return nil
}

func parseCrackOptions(cmd *cobra.Command) (crack.Options, error) {
	algo, _ := cmd.Flags().GetString("algo")
	wordlist, _ := cmd.Flags().GetString("wordlist")
	keywords, _ := cmd.Flags().GetString("keywords")
	hint, _ := cmd.Flags().GetString("hint")
	charset, _ := cmd.Flags().GetString("charset")

	minLen, _ := cmd.Flags().GetInt("min-len")
	maxLen, _ := cmd.Flags().GetInt("max-len")
	workers, _ := cmd.Flags().GetInt("workers")
	faultThreshold, _ := cmd.Flags().GetInt("fault-threshold")
	reportEvery, _ := cmd.Flags().GetInt("report-every")

	disableLog, _ := cmd.Flags().GetBool("no-log")
	logLevel, _ := cmd.Flags().GetString("log-level")
	configFile, _ := cmd.Flags().GetString("config")

	return crack.Options{
		Algo:           algo,
		Wordlist:       wordlist,
		Keywords:       keywords,
		Hint:           hint,
		Charset:        charset,
		MinLength:      minLen,
		MaxLength:      maxLen,
		Workers:        workers,
		FaultThreshold: faultThreshold,
		ReportEvery:    reportEvery,
		DisableLog:     disableLog,
		LogLevel:       logger.ParseLevel(logLevel),
		ConfigFile:     configFile,
	}, nil
}
