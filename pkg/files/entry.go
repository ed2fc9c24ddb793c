package files

import "github.com/filetug/ftexplorer/pkg/fsutils"

type Kind int

const (
	File Kind = iota
	Folder
)

func (k Kind) String() string {
	switch k {
	case Folder:
		return "Folder"
	case File:
		return "File"
	default:
		return "Unknown"
	}
}

// Entry is one row of a directory listing.
// SizeLabel is empty for folders and for files whose size could not be read.
type Entry struct {
	Name      string
	Kind      Kind
	SizeLabel string
}

func NewFolder(name string) Entry {
	return Entry{Name: name, Kind: Folder}
}

func NewFile(name string, size int64) Entry {
	return Entry{Name: name, Kind: File, SizeLabel: fsutils.GetSizeLabel(size)}
}

func (e Entry) IsDir() bool {
	return e.Kind == Folder
}
