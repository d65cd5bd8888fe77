package main

import (
	"fmt"
	"os"
)

func main() {
	app := NewApplication()

	// Ensure terminal restoration on panic
	defer func() {
		if r := recover(); r != nil {
			app.Restore() // Best effort terminal restoration
			panic(r)      // Re-panic
		}
	}()

	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "termsys: %v\n", err)
		app.Close()
		os.Exit(1)
	}

	app.Close()
	os.Exit(app.ExitCode())
}
