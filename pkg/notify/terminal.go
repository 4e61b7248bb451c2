package notify

import (
	"fmt"
	"os"
)

func printToTerminal(title string, message string, nType NotificationType) error {
	colorCode := "\x1b[32m" // Green
	if nType == Error {
		colorCode = "\x1b[31m" // Red
	}

	_, err := fmt.Fprintf(os.Stderr, "%s%s - %s: %s\x1b[0m\n", colorCode, title, nType, message)
	return err
}

func isRunningInTerminal() bool {
	// Check if stderr is connected to a terminal
	fileInfo, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
