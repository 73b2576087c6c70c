package ports

import (
	"context"
)

// GitInfo holds git repository context information.
type GitInfo struct {
	Branch string
}

// GitDetector defines the interface for git context detection.
// This is a driven port (implemented by adapters).
type GitDetector interface {
	// Detect scans the given directory (or the current one) for git context.
	Detect(ctx context.Context, workingDir string) (*GitInfo, error)
}
