package wm

import (
	"context"
	"errors"

	"autotiler/internal/tree"
)

// ChangeFocus is the window event change kind this tool reacts to.
const ChangeFocus = "focus"

var (
	// ErrStreamClosed is returned by EventStream.Next once the subscription ended.
	ErrStreamClosed = errors.New("event stream closed")
	// ErrUnsupportedSession is returned when no i3-compatible IPC socket can be found.
	ErrUnsupportedSession = errors.New("unsupported session")
)

// FocusEvent is a window event together with the container snapshot it refers to.
type FocusEvent struct {
	Change    string
	Container tree.Node
}

// EventStream delivers window events in the order the window manager emits them.
type EventStream interface {
	Next(ctx context.Context) (FocusEvent, error)
	Close() error
}

// TreeFetcher fetches a fresh layout tree.
type TreeFetcher interface {
	GetTree(ctx context.Context) (tree.Node, error)
}

// CommandRunner submits a command body to the window manager.
type CommandRunner interface {
	RunCommand(ctx context.Context, cmd string) error
}

type WindowManager interface {
	TreeFetcher
	CommandRunner
	// Subscribe starts delivering window events
	Subscribe(ctx context.Context) (EventStream, error)
	// Name returns the WM name for logging/display
	Name() string
}
