package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode says whether a person can answer prompts and watch a spinner.
type Mode int

const (
	// ModeNonInteractive: no spinner, and an existing -o file is replaced
	// without a y/N prompt.
	ModeNonInteractive Mode = iota
	// ModeInteractive: generate shows its spinner and asks before
	// replacing an existing -o file.
	ModeInteractive
)

// nonInteractiveEnv reports whether the environment opts out of prompts.
// CROISSANT_NON_INTERACTIVE only counts when it is exactly "1".
func nonInteractiveEnv() bool {
	return os.Getenv("CROISSANT_NON_INTERACTIVE") == "1" ||
		os.Getenv("CI") != "" ||
		os.Getenv("NO_COLOR") != ""
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// DetectMode decides how generate interacts with the user. The overwrite
// prompt reads stdin and the spinner draws on stdout, so both must be
// terminals. CROISSANT_NON_INTERACTIVE=1, CI or NO_COLOR force
// ModeNonInteractive regardless.
func DetectMode() Mode {
	if nonInteractiveEnv() {
		return ModeNonInteractive
	}
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsInteractive reports whether DetectMode returns ModeInteractive.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

// ColorEnabled reports whether a validation report written to f should be
// styled. NO_COLOR disables styling; otherwise f must be a terminal, so
// redirected reports stay plain text.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(f)
}
