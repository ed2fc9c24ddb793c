package osfile

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestDefaultHandlerCommand(t *testing.T) {
	origGOOS := goos
	defer func() { goos = origGOOS }()

	tests := []struct {
		goos string
		args []string
	}{
		{goos: "linux", args: []string{"xdg-open", "/tmp/a b.txt"}},
		{goos: "freebsd", args: []string{"xdg-open", "/tmp/a b.txt"}},
		{goos: "darwin", args: []string{"open", "/tmp/a b.txt"}},
		{goos: "windows", args: []string{"cmd", "/c", "start", "", "/tmp/a b.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			goos = tt.goos
			cmd := defaultHandlerCommand("/tmp/a b.txt")
			assert.Equal(t, tt.args, cmd.Args)
		})
	}
}

func TestOpener_Open(t *testing.T) {
	origExecCommand := execCommand
	defer func() { execCommand = origExecCommand }()

	t.Run("started", func(t *testing.T) {
		var gotArgs []string
		execCommand = func(name string, args ...string) *exec.Cmd {
			gotArgs = append([]string{name}, args...)
			// the test binary with no matching tests exits immediately
			return exec.Command(os.Args[0], "-test.run=^$")
		}
		err := NewOpener().Open(context.Background(), "/tmp/file.txt")
		assert.NoError(t, err)
		assert.Contains(t, gotArgs, "/tmp/file.txt")
	})

	t.Run("no_handler", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "no-such-handler")
		execCommand = func(name string, args ...string) *exec.Cmd {
			return exec.Command(missing)
		}
		err := NewOpener().Open(context.Background(), "/tmp/file.txt")
		assert.Error(t, err)
	})

	t.Run("context_cancelled", func(t *testing.T) {
		called := false
		execCommand = func(name string, args ...string) *exec.Cmd {
			called = true
			return exec.Command(os.Args[0], "-test.run=^$")
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := NewOpener().Open(ctx, "/tmp/file.txt")
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	t.Run("launcher_exit_status", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("needs sh")
		}
		execCommand = func(name string, args ...string) *exec.Cmd {
			// xdg-open's exit code when no application handles the file
			return exec.Command("sh", "-c", "exit 3")
		}
		err := NewOpener().Open(context.Background(), "/nonexistent/file.xyz")
		var exitErr *exec.ExitError
		if assert.True(t, errors.As(err, &exitErr), "got %v", err) {
			assert.Equal(t, 3, exitErr.ExitCode())
		}
	})

	t.Run("launcher_still_running", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("needs sh")
		}
		origTimeout := launcherTimeout
		defer func() { launcherTimeout = origTimeout }()
		launcherTimeout = 20 * time.Millisecond
		execCommand = func(name string, args ...string) *exec.Cmd {
			return exec.Command("sh", "-c", "sleep 1")
		}
		assert.NoError(t, NewOpener().Open(context.Background(), "/tmp/file.txt"))
	})
}

func TestOpener_ActivateReportsCannotOpen(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs sh")
	}
	origExecCommand := execCommand
	defer func() { execCommand = origExecCommand }()
	execCommand = func(name string, args ...string) *exec.Cmd {
		return exec.Command("sh", "-c", "exit 2")
	}
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "/home/notes.xyz", []byte("x"), 0644))
	activator := files.NewActivator(NewStore("/", WithFs(fs)), NewOpener())

	activation, err := activator.Activate(context.Background(), "/home", "notes.xyz")
	assert.ErrorIs(t, err, files.ErrCannotOpen)
	assert.Equal(t, files.OpenWithDefaultHandler, activation.Action)
}
