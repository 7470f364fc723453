package utils

import (
	"os"
	"os/exec"
	"strconv"
)

// ErrorNotificationTimeout is the display time of error notifications in ms
const ErrorNotificationTimeout = 10000

// ShowErrorNotification sends a critical desktop notification. It is a no-op
// when neither dunstify nor notify-send is installed.
func ShowErrorNotification(title, message string) {
	tool := detectNotificationTool()
	if tool == "" {
		return
	}

	cmd := exec.Command(tool,
		"-u", "critical",
		"-t", strconv.Itoa(ErrorNotificationTimeout),
		title,
		message)
	cmd.Env = os.Environ()
	if err := cmd.Start(); err == nil {
		cmd.Process.Release()
	}
}

// detectNotificationTool detects which notification tool is available
func detectNotificationTool() string {
	if CommandExists("dunstify") {
		return "dunstify"
	}
	if CommandExists("notify-send") {
		return "notify-send"
	}
	return ""
}
