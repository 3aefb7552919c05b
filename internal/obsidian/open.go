package obsidian

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// Launch hands the URI to the platform opener without waiting for the host
// application. The child is started and abandoned; there is no response
// channel to consume.
func Launch(uri string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", uri)
	default:
		cmd = exec.Command("xdg-open", uri)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", uri, err)
	}
	return nil
}

// Copy places the URI on the clipboard instead of launching it.
func Copy(uri string) error {
	return clipboard.WriteAll(uri)
}

// Dispatch launches the URI, or copies it when copyOnly is set.
func Dispatch(uri string, copyOnly bool) error {
	if copyOnly {
		return Copy(uri)
	}
	return Launch(uri)
}
