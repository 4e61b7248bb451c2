package notify

import (
	"fmt"
	"os/exec"

	"autotiler/pkg/core"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	Error NotificationType = iota
	Info
)

func (t NotificationType) String() string {
	if t == Error {
		return "ERROR"
	}
	return "INFO"
}

// overridden in tests
var (
	lookPath   = exec.LookPath
	runCommand = func(cmd *exec.Cmd) error { return cmd.Run() }
)

// NotifyService handles desktop notifications
type NotifyService struct {
	log           core.Logger
	notifyCommand string
}

// NewNotifyService creates a new notification service
func NewNotifyService(notifyCommand string, log core.Logger) *NotifyService {
	return &NotifyService{
		log:           log,
		notifyCommand: notifyCommand,
	}
}

// Show displays a notification of the specified type
func (n *NotifyService) Show(title, message string, nType NotificationType) error {
	// First try configured notification command if available
	if n.notifyCommand != "" {
		err := n.executeNotifyCommand(message, nType)
		if err == nil {
			return nil
		}
		n.log.Warn("Custom notification command failed", "command", n.notifyCommand, "error", err.Error())
	}

	// Try system notification tools
	if err := n.trySystemNotification(title, message, nType); err == nil {
		return nil
	}

	// If running in terminal, print directly
	if isRunningInTerminal() {
		return printToTerminal(title, message, nType)
	}
	return fmt.Errorf("no way to show notification")
}

// executeNotifyCommand runs the configured command with the type and message
// as its two arguments.
func (n *NotifyService) executeNotifyCommand(message string, nType NotificationType) error {
	n.log.Debug("Executing notify command", "notify_command", n.notifyCommand, "type", nType.String())

	cmd := exec.Command("sh", "-c", n.notifyCommand+` "$1" "$2"`, "sh", nType.String(), message)
	return runCommand(cmd)
}
