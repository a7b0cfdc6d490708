package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/croissant/pkg/croissant"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation before an existing output file is replaced.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover reading stdin and
// prompting on stderr.
func NewInteractiveApprover(verbose bool) croissant.Approver {
	return &InteractiveApprover{verbose: verbose, input: os.Stdin, output: os.Stderr}
}

// RequestApproval asks the user to confirm the overwrite with y or yes.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	fmt.Fprintf(a.output, "\nWARNING: %s already exists and will be replaced.\n", path)
	fmt.Fprint(a.output, "Overwrite it? [y/N]: ")

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil && !(err == io.EOF && input != "") {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		switch strings.ToLower(input) {
		case "y", "yes":
			if a.verbose {
				fmt.Fprintf(a.output, "✓ Confirmed. Overwriting %s\n", path)
			}
			return true, nil
		}
		fmt.Fprintf(a.output, "✗ Answer '%s' is not yes. %s was left unchanged.\n", input, path)
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ croissant.Approver = (*InteractiveApprover)(nil)
