// Command fireworks runs the firework show in a window, in a terminal, or
// headless from a test script.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
