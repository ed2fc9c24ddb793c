package fsutils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestExpandHome(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", ExpandHome(""))
	})
	t.Run("no_tilde", func(t *testing.T) {
		assert.Equal(t, "/some/path", ExpandHome("/some/path"))
	})
	t.Run("only_tilde", func(t *testing.T) {
		home, _ := os.UserHomeDir()
		assert.Equal(t, home, ExpandHome("~"))
	})
	t.Run("tilde_with_path", func(t *testing.T) {
		home, _ := os.UserHomeDir()
		assert.Equal(t, filepath.Join(home, "abc"), ExpandHome("~/abc"))
	})
	t.Run("tilde_user_is_not_expanded", func(t *testing.T) {
		assert.Equal(t, "~bob/abc", ExpandHome("~bob/abc"))
	})
}

func TestHomeDir(t *testing.T) {
	orig := osUserHomeDir
	defer func() { osUserHomeDir = orig }()

	osUserHomeDir = func() (string, error) { return "/home/test", nil }
	assert.Equal(t, "/home/test", HomeDir())
	assert.Equal(t, "/home/test", ExpandHome("~"))

	osUserHomeDir = func() (string, error) { return "", errors.New("no home") }
	assert.Equal(t, string(filepath.Separator), HomeDir())
	assert.Equal(t, "~/abc", ExpandHome("~/abc"))
}
