package osfile

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/spf13/afero"
)

var osHostname = os.Hostname

var _ files.Store = (*Store)(nil)

type Store struct {
	title string
	root  string
	fs    afero.Fs
}

type StoreOption func(*Store)

// WithFs replaces the OS filesystem, e.g. with afero.NewMemMapFs() in tests.
func WithFs(fs afero.Fs) StoreOption {
	return func(s *Store) {
		s.fs = fs
	}
}

func (s Store) Root() string {
	return s.root
}

func (s Store) RootTitle() string {
	return strings.TrimSuffix(s.title, ".local")
}

// ReadDir returns the children of name unsorted, in the order the filesystem yields them.
func (s Store) ReadDir(ctx context.Context, name string) ([]os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := s.fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = dir.Close()
	}()
	return dir.Readdir(-1)
}

func (s Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fs.Stat(name)
}

func NewStore(root string, options ...StoreOption) *Store {
	if root == "" {
		_, _ = fmt.Fprintf(os.Stderr, "osfile store root is empty, defaulting to /\n")
		root = "/"
	}
	store := Store{root: root}
	for _, option := range options {
		option(&store)
	}
	if store.fs == nil {
		store.fs = afero.NewOsFs()
	}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	store.title = "🖥️" + store.title
	return &store
}
