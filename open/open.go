// Package open launches files with the system's default viewer.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Start opens path with the default handler without waiting for it to exit.
func Start(path string) error {
	return StartWith(path, "")
}

// StartWith opens path with app, or with the default handler when app is empty.
func StartWith(path, app string) error {
	cmd, ok := command(runtime.GOOS, path, app)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

func command(goos, path, app string) (*exec.Cmd, bool) {
	if app != "" {
		switch goos {
		case "windows":
			return exec.Command("cmd", "/C", "start", "", app, path), true
		case "darwin":
			return exec.Command("open", "-a", app, path), true
		case "linux", "freebsd", "openbsd":
			return exec.Command(app, path), true
		default:
			return nil, false
		}
	}

	switch goos {
	case "windows":
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", path), true
	case "darwin":
		return exec.Command("open", path), true
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", path), true
	case "android":
		return exec.Command("termux-open", path), true
	default:
		return nil, false
	}
}
