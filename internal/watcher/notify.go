package watcher

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Notify delivers an alert to the desktop so it reaches the user even when
// no terminal is watching the serve daemon. Delivery is platform dependent
// (osascript on macOS, notify-send on Linux) and degrades to stderr when no
// notification system is available.
func Notify(alert Alert) error {
	switch runtime.GOOS {
	case "darwin":
		return notifyMacOS(alert)
	case "linux":
		return notifyLinux(alert)
	default:
		return notifyStderr(alert)
	}
}

// urgency maps alert levels onto the notify-send urgency scale.
func urgency(level string) string {
	switch level {
	case "critical":
		return "critical"
	case "info":
		return "low"
	default:
		return "normal"
	}
}

func notifyMacOS(alert Alert) error {
	script := fmt.Sprintf(
		`display notification %q with title "webtime" subtitle %q`,
		alert.Message, alert.Title,
	)
	if alert.Level == "critical" {
		script += ` sound name "Glass"`
	}
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return notifyStderr(alert)
	}
	return nil
}

func notifyLinux(alert Alert) error {
	if _, err := exec.LookPath("notify-send"); err != nil {
		return notifyStderr(alert)
	}
	cmd := exec.Command("notify-send",
		"-a", "webtime", "-u", urgency(alert.Level), alert.Title, alert.Message)
	if err := cmd.Run(); err != nil {
		return notifyStderr(alert)
	}
	return nil
}

func notifyStderr(alert Alert) error {
	_, err := fmt.Fprintf(os.Stderr, "webtime [%s] %s: %s\n", alert.Level, alert.Title, alert.Message)
	return err
}
