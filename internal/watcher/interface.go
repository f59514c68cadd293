package watcher

import "context"

// Watcher monitors a directory for dropped meeting transcript files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles one newly dropped file.
type EventHandler func(ctx context.Context, filePath string) error
