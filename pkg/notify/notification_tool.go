package notify

import (
	"fmt"
	"os/exec"
)

type notificationTool struct {
	name         string
	buildCommand func(tool string, title string, message string, nType NotificationType) *exec.Cmd
}

func urgency(nType NotificationType) string {
	if nType == Error {
		return "critical"
	}
	return "normal"
}

var notificationTools = []notificationTool{
	{
		name: "dunstify",
		buildCommand: func(tool string, title string, message string, nType NotificationType) *exec.Cmd {
			return exec.Command(tool, "-u", urgency(nType), "-t", "5000", title, message)
		},
	},
	{
		name: "notify-send",
		buildCommand: func(tool string, title string, message string, nType NotificationType) *exec.Cmd {
			return exec.Command(tool, "-u", urgency(nType), title, message)
		},
	},
}

func (n *NotifyService) trySystemNotification(title string, message string, nType NotificationType) error {
	if nType == Error {
		title += " error"
	}
	for _, tool := range notificationTools {
		path, err := lookPath(tool.name)
		if err != nil {
			continue
		}
		cmd := tool.buildCommand(path, title, message, nType)
		if err := runCommand(cmd); err == nil {
			n.log.Debug("Notification sent successfully",
				"tool", tool.name,
				"type", nType.String())
			return nil
		}
	}
	return fmt.Errorf("no notification tools available")
}
