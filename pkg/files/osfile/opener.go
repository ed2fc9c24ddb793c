package osfile

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/filetug/ftexplorer/pkg/files"
)

var goos = runtime.GOOS
var execCommand = exec.Command

// launcherTimeout bounds the wait for xdg-open/open/start, which exit as soon as
// the handler is launched. A launcher still running after it counts as launched.
var launcherTimeout = 2 * time.Second

var _ files.Opener = (*Opener)(nil)

// Opener hands files to the program the OS associates with them.
type Opener struct{}

func NewOpener() *Opener {
	return &Opener{}
}

// Open fails when the launcher cannot start or exits non-zero,
// e.g. xdg-open exits 3 when no application handles the file.
func (o *Opener) Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd := defaultHandlerCommand(path)
	if err := cmd.Start(); err != nil {
		return err
	}
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()
	timer := time.NewTimer(launcherTimeout)
	defer timer.Stop()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Args[0], err)
		}
		return nil
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func defaultHandlerCommand(path string) *exec.Cmd {
	switch goos {
	case "darwin":
		return execCommand("open", path)
	case "windows":
		// the empty argument is the window title expected by start
		return execCommand("cmd", "/c", "start", "", path)
	default:
		return execCommand("xdg-open", path)
	}
}
