package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autotiler/internal/tree"
	"autotiler/internal/wm"
	"autotiler/pkg/config"
	"autotiler/pkg/logger"
	"autotiler/pkg/notify"
)

type staticWM struct {
	root   tree.Node
	err    error
	subErr error
}

func (s *staticWM) Name() string { return "static" }
func (s *staticWM) Subscribe(context.Context) (wm.EventStream, error) {
	return nil, s.subErr
}
func (s *staticWM) GetTree(context.Context) (tree.Node, error) { return s.root, s.err }
func (s *staticWM) RunCommand(context.Context, string) error { return nil }

func explain(t *testing.T, w *staticWM) string {
	t.Helper()
	a := New(config.DefaultConfig(logger.Nop()), w, logger.Nop())
	var buf bytes.Buffer
	require.NoError(t, a.Explain(context.Background(), &buf))
	return buf.String()
}

func TestExplainSplit(t *testing.T) {
	out := explain(t, &staticWM{root: tree.Node{ID: 1, Layout: tree.LayoutSplitH, Nodes: []tree.Node{
		{ID: 2, Name: "Alacritty", Layout: tree.LayoutSplitH, Focused: true, Rect: tree.Rect{X: 0}},
	}}})

	assert.Equal(t, "id=2 name=\"Alacritty\" layout=splith terminal=true tabbed_parent=false command=\"split horizontal\"\n", out)
}

func TestExplainTabbed(t *testing.T) {
	out := explain(t, &staticWM{root: tree.Node{ID: 1, Layout: tree.LayoutTabbed, Nodes: []tree.Node{
		{ID: 2, Name: "Firefox", Layout: tree.LayoutSplitH, Focused: true},
	}}})

	assert.Contains(t, out, "tabbed_parent=true")
	assert.Contains(t, out, `command="none"`)
}

func TestExplainNoFocus(t *testing.T) {
	assert.Equal(t, "no focused window\n", explain(t, &staticWM{root: tree.Node{ID: 1}}))
}

func TestExplainTreeError(t *testing.T) {
	a := New(config.DefaultConfig(logger.Nop()), &staticWM{err: errors.New("broken pipe")}, logger.Nop())
	assert.ErrorContains(t, a.Explain(context.Background(), &bytes.Buffer{}), "broken pipe")
}

func TestRunReturnsSubscribeError(t *testing.T) {
	a := New(config.DefaultConfig(logger.Nop()), &staticWM{subErr: errors.New("no socket")}, logger.Nop())
	assert.ErrorContains(t, a.Run(context.Background()), "no socket")
}

type recordingNotifier struct {
	titles   []string
	messages []string
	types    []notify.NotificationType
}

func (r *recordingNotifier) Show(title, message string, nType notify.NotificationType) error {
	r.titles = append(r.titles, title)
	r.messages = append(r.messages, message)
	r.types = append(r.types, nType)
	return nil
}

func loadConfig(t *testing.T, body string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	cfg, err := config.FindConfig(path, logger.Nop())
	require.NoError(t, err)
	return cfg
}

func TestRunNotifiesOnFatalError(t *testing.T) {
	cfg := loadConfig(t, "notify_on_error = true\n")
	a := New(cfg, &staticWM{subErr: errors.New("no socket")}, logger.Nop())
	n := &recordingNotifier{}
	a.notifier = n

	err := a.Run(context.Background())

	require.Error(t, err)
	require.Len(t, n.messages, 1)
	assert.Equal(t, "autotiler", n.titles[0])
	assert.Equal(t, err.Error(), n.messages[0])
	assert.Equal(t, notify.Error, n.types[0])
}

func TestRunSkipsNotificationWhenDisabled(t *testing.T) {
	cfg := loadConfig(t, "notify_on_error = false\n")
	a := New(cfg, &staticWM{subErr: errors.New("no socket")}, logger.Nop())
	n := &recordingNotifier{}
	a.notifier = n

	require.Error(t, a.Run(context.Background()))
	assert.Empty(t, n.messages)
}
