// SPDX-License-Identifier: Unlicense OR MIT

// Command flexbutton measures and validates button presets.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
