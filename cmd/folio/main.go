// Command folio runs the portfolio effects in a terminal: the skill network, its legend and the pointer trail
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
