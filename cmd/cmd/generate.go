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
	"bufio"
	"fmt"
	"os"

	"github.com/crackvault/crackvault/internal/config"
	"github.com/crackvault/crackvault/internal/mutate"
	"github.com/spf13/cobra"
)

func DefineGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "generate <keywords>",
		Short:        "Generate mutated password candidates from keywords",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunGenerate,
	}

	cmd.Flags().StringP("output", "o", "", "write candidates to the given file instead of stdout")
	cmd.Flags().IntP("limit", "n", 0, "stop after emitting this many candidates")
	cmd.Flags().Bool("recipes", false, "annotate each candidate with how it was derived")
	cmd.Flags().StringP("config", "c", "", "path to a crackvault config file")

	return cmd
}

func RunGenerate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	output, _ := cmd.Flags().GetString("output")
	limit, _ := cmd.Flags().GetInt("limit")
	recipes, _ := cmd.Flags().GetBool("recipes")

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	engine := mutate.NewEngine(mutate.ConfigFrom(cfg), mutate.ParseKeywords(args[0]))

	w := bufio.NewWriter(out)
	defer w.Flush()

	count := 0
	for c := range engine.Generate() {
		if recipes {
			fmt.Fprintf(w, "%s\t%s\n", c.Word, c.Recipe)
		} else {
			fmt.Fprintln(w, c.Word)
		}

		count++
		if limit > 0 && count >= limit {
			break
		}
	}

	if output != "" {
		fmt.Printf("[INFO] Wrote %d candidates to %s\n", count, output)
	}
	return nil
}
