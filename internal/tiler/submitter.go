package tiler

import (
	"context"
	"fmt"

	"autotiler/internal/split"
	"autotiler/internal/wm"
	"autotiler/pkg/core"
)

// Submitter drains the command queue in order, one round trip at a time.
type Submitter struct {
	runner wm.CommandRunner
	log    core.Logger
}

// NewSubmitter creates a submitter sending commands through runner.
func NewSubmitter(runner wm.CommandRunner, log core.Logger) *Submitter {
	return &Submitter{runner: runner, log: log}
}

// Run returns nil once queue is closed and drained, or the first submission error.
func (s *Submitter) Run(ctx context.Context, queue <-chan split.Command) error {
	for cmd := range queue {
		if err := s.runner.RunCommand(ctx, string(cmd)); err != nil {
			s.log.Error("Failed to run command", err, "command", string(cmd))
			return fmt.Errorf("submit %q: %w", cmd, err)
		}
		s.log.Debug("Command submitted", "command", string(cmd))
	}
	s.log.Debug("Command queue closed")
	return nil
}
