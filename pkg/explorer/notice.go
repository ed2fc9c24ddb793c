package explorer

import (
	"errors"

	"github.com/filetug/ftexplorer/pkg/history"
)

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeError
)

type notice struct {
	level noticeLevel
	text  string
}

// noticeFor converts an operation error into what the status bar shows.
// History boundaries are not worth a notice.
func noticeFor(err error) (notice, bool) {
	switch {
	case err == nil:
		return notice{}, false
	case errors.Is(err, history.ErrAtHistoryStart), errors.Is(err, history.ErrAtHistoryEnd):
		return notice{}, false
	default:
		return notice{level: noticeError, text: err.Error()}, true
	}
}
