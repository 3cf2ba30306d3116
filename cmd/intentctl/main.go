// Command intentctl classifies utterances from the terminal against the same
// pipeline the API serves.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
