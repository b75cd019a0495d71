package driven

import "context"

// FileWatcher signals when a file changes on disk.
type FileWatcher interface {
	// Watch sends on the returned channel after path is written, created or
	// replaced. Bursts of events are coalesced into one signal. The channel
	// is closed when ctx is done.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
