package files

import (
	"errors"
	"fmt"
)

var (
	ErrDirectoryUnreadable = errors.New("directory is unreadable")
	ErrCannotOpen          = errors.New("cannot open file")
)

var errNotADirectory = errors.New("not a directory")

func unreadable(dirPath string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrDirectoryUnreadable, dirPath, cause)
}

func cannotOpen(path string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrCannotOpen, path, cause)
}
