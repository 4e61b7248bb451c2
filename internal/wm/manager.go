package wm

import (
	"fmt"
	"os"

	"go.i3wm.org/i3/v4"

	"autotiler/pkg/core"
)

// Session describes which window manager to talk to and over which socket.
type Session struct {
	Name       string
	SocketPath string // empty means ask i3 for it
}

// DetectSession picks the IPC socket. An explicit override wins, then SWAYSOCK,
// then I3SOCK. On X11 the library falls back to `i3 --get-socketpath`.
func DetectSession(override string, getenv func(string) string) (Session, error) {
	switch {
	case override != "":
		name := "i3"
		if getenv("SWAYSOCK") != "" {
			name = "sway"
		}
		return Session{Name: name, SocketPath: override}, nil
	case getenv("SWAYSOCK") != "":
		return Session{Name: "sway", SocketPath: getenv("SWAYSOCK")}, nil
	case getenv("I3SOCK") != "":
		return Session{Name: "i3", SocketPath: getenv("I3SOCK")}, nil
	case getenv("XDG_SESSION_TYPE") == "x11" || getenv("DISPLAY") != "":
		return Session{Name: "i3"}, nil
	}
	return Session{}, fmt.Errorf("%w: set SWAYSOCK or I3SOCK, or pass --socket", ErrUnsupportedSession)
}

// Manager owns the window manager client chosen for this session.
type Manager struct {
	WindowManager
	session Session
}

// Options tune NewManager.
type Options struct {
	SocketPath  string
	EventBuffer int
	DryRun      bool
}

// NewManager creates a new window manager client based on the session type
func NewManager(opts Options, log core.Logger) (*Manager, error) {
	log.Info("Session type detected", "session", os.Getenv("XDG_SESSION_TYPE"))

	session, err := DetectSession(opts.SocketPath, os.Getenv)
	if err != nil {
		return nil, err
	}

	if session.SocketPath != "" {
		path := session.SocketPath
		i3.SocketPathHook = func() (string, error) { return path, nil }
	}

	log.Debug("Initializing IPC client", "type", session.Name, "socket", session.SocketPath)

	var client WindowManager = NewI3(session.Name, opts.EventBuffer, log)
	if opts.DryRun {
		client = NewDryRun(client, log)
	}

	log.Info("Window manager initialized", "name", client.Name(), "dry_run", opts.DryRun)
	return &Manager{WindowManager: client, session: session}, nil
}

// Session returns the detected session.
func (m *Manager) Session() Session {
	return m.session
}
