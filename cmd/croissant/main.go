package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/croissant/internal/cli"
	"github.com/vvka-141/croissant/pkg/croissant"
)

func main() {
	os.Exit(run())
}

// run executes the CLI and returns the process exit code. A panic is printed
// with its stack and exits with ExitPanic.
func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			code = croissant.ExitPanic
		}
	}()

	// Lets tests exercise the panic exit path of the real binary.
	if os.Getenv("CROISSANT_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		return croissant.ExitCodeForError(err)
	}
	return croissant.ExitSuccess
}
