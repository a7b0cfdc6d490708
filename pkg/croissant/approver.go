package croissant

import "context"

// Approver confirms replacing an existing output file.
//
// Implementations:
//   - ForcedApprover: approves without asking (--force or non-interactive runs)
//   - InteractiveApprover: asks on the terminal and approves on "y" or "yes"
type Approver interface {
	// RequestApproval asks whether the file at path may be overwritten.
	// It returns false without error when the user declines.
	RequestApproval(ctx context.Context, path string) (bool, error)
}
