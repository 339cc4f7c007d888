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
	"strings"

	"github.com/crackvault/crackvault/internal/digest"
	"github.com/spf13/cobra"
)

func DefineIdentifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "identify <hash>",
		Short:        "List the algorithms a hash digest may belong to",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunIdentify,
	}
}

func RunIdentify(cmd *cobra.Command, args []string) error {
	target := strings.TrimSpace(args[0])

	matches := digest.Identify(target)
	if len(matches) == 0 {
		return fmt.Errorf("no known algorithm produces a %d character digest (supported: %s)",
			len(target), strings.Join(digest.Algorithms(), ", "))
	}

	fmt.Printf("[INFO] Digest length: \t%d hex chars\n", len(target))
	fmt.Println("[INFO] Possible algorithms:")
	for _, name := range matches {
		fmt.Printf("  - %s\n", name)
	}
	return nil
}
