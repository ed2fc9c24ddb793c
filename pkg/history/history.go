// Package history keeps the list of visited directories and the position
// used for back/forward navigation.
package history

import "errors"

var (
	ErrAtHistoryStart = errors.New("already at the start of history")
	ErrAtHistoryEnd   = errors.New("already at the end of history")
)

// History is a linear back/forward stack of visited paths.
// It is never empty: New seeds it with the start path.
type History struct {
	entries  []string
	position int
}

func New(start string) *History {
	return &History{
		entries:  []string{start},
		position: 0,
	}
}

// Visit appends path after the current position, dropping any forward entries.
// Consecutive duplicates are kept.
func (h *History) Visit(path string) {
	if h.position < len(h.entries)-1 {
		h.entries = h.entries[:h.position+1]
	}
	h.entries = append(h.entries, path)
	h.position = len(h.entries) - 1
}

func (h *History) Back() (string, error) {
	if h.position <= 0 {
		return "", ErrAtHistoryStart
	}
	h.position--
	return h.entries[h.position], nil
}

func (h *History) Forward() (string, error) {
	if h.position >= len(h.entries)-1 {
		return "", ErrAtHistoryEnd
	}
	h.position++
	return h.entries[h.position], nil
}

func (h *History) Current() string {
	return h.entries[h.position]
}

func (h *History) Position() int {
	return h.position
}

func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the visited paths.
func (h *History) Entries() []string {
	entries := make([]string, len(h.entries))
	copy(entries, h.entries)
	return entries
}

func (h *History) CanGoBack() bool {
	return h.position > 0
}

func (h *History) CanGoForward() bool {
	return h.position < len(h.entries)-1
}
