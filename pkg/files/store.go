package files

import (
	"context"
	"os"
)

//go:generate mockgen -destination=filesmocks/mocks.go -package=filesmocks . Opener,Store

// Store gives read-only access to a directory tree.
// ReadDir returns children in enumeration order, describing links themselves (lstat).
// Stat follows links.
type Store interface {
	RootTitle() string
	ReadDir(ctx context.Context, name string) ([]os.FileInfo, error)
	Stat(ctx context.Context, name string) (os.FileInfo, error)
}

// Opener launches the host's default handler for a file.
type Opener interface {
	Open(ctx context.Context, path string) error
}
