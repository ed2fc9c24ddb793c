package files

import (
	"context"
	"os"
	"path/filepath"
)

// Lister enumerates the direct children of a directory.
type Lister struct {
	store Store
}

func NewLister(store Store) *Lister {
	return &Lister{store: store}
}

func (l *Lister) Store() Store {
	return l.store
}

// List returns one entry per direct child of dirPath whose name passes filter,
// in the order the store enumerates them. Any failure to read dirPath wraps ErrDirectoryUnreadable.
func (l *Lister) List(ctx context.Context, dirPath string, filter Filter) ([]Entry, error) {
	info, err := l.store.Stat(ctx, dirPath)
	if err != nil {
		return nil, unreadable(dirPath, err)
	}
	if !info.IsDir() {
		return nil, unreadable(dirPath, errNotADirectory)
	}
	children, err := l.store.ReadDir(ctx, dirPath)
	if err != nil {
		return nil, unreadable(dirPath, err)
	}
	matches := filter.matcher()
	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		if !matches(child.Name()) {
			continue
		}
		entries = append(entries, l.newEntry(ctx, dirPath, child))
	}
	return entries, nil
}

func (l *Lister) newEntry(ctx context.Context, dirPath string, child os.FileInfo) Entry {
	name := child.Name()
	info := child
	if child.Mode()&os.ModeSymlink != 0 {
		target, err := l.store.Stat(ctx, filepath.Join(dirPath, name))
		if err != nil {
			// dangling link
			return Entry{Name: name, Kind: File}
		}
		info = target
	}
	if info.IsDir() {
		return NewFolder(name)
	}
	return NewFile(name, info.Size())
}
