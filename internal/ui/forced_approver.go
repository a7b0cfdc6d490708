package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vvka-141/croissant/pkg/croissant"
)

// ForcedApprover implements the Approver interface for forced (non-interactive)
// approval, used with --force and when no terminal is attached.
type ForcedApprover struct {
	verbose bool
	output  io.Writer
}

// NewForcedApprover creates a new ForcedApprover.
func NewForcedApprover(verbose bool) croissant.Approver {
	return &ForcedApprover{verbose: verbose, output: os.Stderr}
}

// RequestApproval approves unless ctx is already done.
func (a *ForcedApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if a.verbose {
		fmt.Fprintf(a.output, "[VERBOSE] Overwriting existing %s\n", path)
	}
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ croissant.Approver = (*ForcedApprover)(nil)
