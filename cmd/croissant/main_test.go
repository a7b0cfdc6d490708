package main

import (
	"testing"

	"github.com/vvka-141/croissant/pkg/croissant"
)

func TestRun_PanicExitsWithPanicCode(t *testing.T) {
	t.Setenv("CROISSANT_TEST_PANIC", "1")

	if code := run(); code != croissant.ExitPanic {
		t.Errorf("run() = %d, want %d", code, croissant.ExitPanic)
	}
}
