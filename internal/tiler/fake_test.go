package tiler

import (
	"context"
	"errors"
	"sync"

	"autotiler/internal/tree"
	"autotiler/internal/wm"
)

var errBoom = errors.New("boom")

// chanStream is an EventStream fed from a channel; closing the channel ends the stream.
type chanStream struct {
	events chan wm.FocusEvent
	closed chan struct{}
	once   sync.Once
}

func newChanStream(buffer int) *chanStream {
	return &chanStream{events: make(chan wm.FocusEvent, buffer), closed: make(chan struct{})}
}

func (s *chanStream) Next(ctx context.Context) (wm.FocusEvent, error) {
	select {
	case ev, ok := <-s.events:
		if !ok {
			return wm.FocusEvent{}, wm.ErrStreamClosed
		}
		return ev, nil
	case <-ctx.Done():
		return wm.FocusEvent{}, ctx.Err()
	}
}

func (s *chanStream) Close() error {
	s.once.Do(func() { close(s.closed) })
	return nil
}

type fakeWM struct {
	mu       sync.Mutex
	stream   *chanStream
	root     tree.Node
	treeErr  error
	subErr   error
	cmdErr   error
	commands []string
	fetches  int

	// gate, when set, must receive a value before each command completes
	gate chan struct{}
	// submitted receives every command as it starts
	submitted chan string
}

func (f *fakeWM) Name() string { return "fake" }

func (f *fakeWM) Subscribe(context.Context) (wm.EventStream, error) {
	if f.subErr != nil {
		return nil, f.subErr
	}
	return f.stream, nil
}

func (f *fakeWM) GetTree(context.Context) (tree.Node, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.treeErr != nil {
		return tree.Node{}, f.treeErr
	}
	return f.root, nil
}

func (f *fakeWM) RunCommand(ctx context.Context, cmd string) error {
	if f.submitted != nil {
		f.submitted <- cmd
	}
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cmdErr != nil {
		return f.cmdErr
	}
	f.commands = append(f.commands, cmd)
	return nil
}

func (f *fakeWM) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.commands...)
}

func (f *fakeWM) Fetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

// workspace(splith) -> [Firefox(1) wide, tabbed(2) -> [xterm(3)], Alacritty(4) at x=960]
func layoutTree() tree.Node {
	return tree.Node{
		ID:     100,
		Layout: tree.LayoutSplitH,
		Nodes: []tree.Node{
			firefox(),
			{ID: 2, Layout: tree.LayoutTabbed, Nodes: []tree.Node{xterm()}},
			alacritty(),
		},
	}
}

func firefox() tree.Node {
	return tree.Node{ID: 1, Name: "Firefox", Layout: tree.LayoutSplitH,
		Rect: tree.Rect{X: 0, Width: 960, Height: 540}, WindowRect: tree.Rect{Width: 960, Height: 500}}
}

func xterm() tree.Node {
	return tree.Node{ID: 3, Name: "xterm", Layout: tree.LayoutSplitH, Rect: tree.Rect{X: 0}}
}

func alacritty() tree.Node {
	return tree.Node{ID: 4, Name: "Alacritty", Layout: tree.LayoutSplitH,
		Rect: tree.Rect{X: 960, Width: 960, Height: 1080}, WindowRect: tree.Rect{Width: 960, Height: 1080}}
}

func focus(n tree.Node) wm.FocusEvent {
	return wm.FocusEvent{Change: wm.ChangeFocus, Container: n}
}
