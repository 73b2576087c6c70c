package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xvierd/pomo/internal/adapters/storage"
	"github.com/xvierd/pomo/internal/logging"
	"github.com/xvierd/pomo/internal/ports"
)

// fakeClock is a ports.Clock the test advances by hand.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeGitDetector struct {
	branch string
	err    error
}

func (d *fakeGitDetector) Detect(ctx context.Context, workingDir string) (*ports.GitInfo, error) {
	if d.err != nil {
		return nil, d.err
	}
	return &ports.GitInfo{Branch: d.branch}, nil
}

var errNoRepo = errors.New("no repository")

func setupTestStorage(t *testing.T) (ports.Storage, func()) {
	t.Helper()
	store, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	return store, func() { _ = store.Close() }
}

var quietLogger = logging.Discard()
