package explorer

import (
	"path/filepath"
)

type quickAccessItem struct {
	title string
	path  string
}

func builtInQuickAccess(homeDir string) []quickAccessItem {
	item := func(title string, elem ...string) quickAccessItem {
		return quickAccessItem{title: title, path: filepath.Join(append([]string{homeDir}, elem...)...)}
	}
	return []quickAccessItem{
		item("Home"),
		item("Desktop", "Desktop"),
		item("Documents", "Documents"),
		item("Downloads", "Downloads"),
		item("Music", "Music"),
		item("Pictures", "Pictures"),
		item("Videos", "Videos"),
	}
}
