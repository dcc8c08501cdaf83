// Package browser abstracts opening URLs in the user's web browser.
package browser

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Launcher knows how to open a URL in a new tab of some suitable browser
// on the current system. Opening is fire-and-forget: implementations must
// not wait for the browser, and the opened page gets no handle back to
// this process.
type Launcher interface {
	OpenURL(url string) error
}

// Func adapts a plain function to the Launcher interface.
type Func func(url string) error

// OpenURL calls f(url).
func (f Func) OpenURL(url string) error { return f(url) }

// ExecLauncher opens URLs through the platform's URL handler.
type ExecLauncher struct{}

// NewExecLauncher creates a launcher for the current platform.
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{}
}

// OpenURL starts the platform URL handler detached and returns without
// waiting for it. A $BROWSER override is honored on non-darwin,
// non-windows systems.
func (l *ExecLauncher) OpenURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		if b := os.Getenv("BROWSER"); b != "" {
			cmd = exec.Command(b, url)
		} else {
			cmd = exec.Command("xdg-open", url)
		}
	}

	// Start, don't Run: the browser may outlive us and we never block on it
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	// Reap the handler process in the background so it doesn't linger as a
	// zombie while the app keeps running
	go func() { _ = cmd.Wait() }()

	return nil
}
