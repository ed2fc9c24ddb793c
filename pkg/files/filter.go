package files

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter narrows a listing to names containing Query, ignoring case.
type Filter struct {
	Query string
}

func (f Filter) IsEmpty() bool {
	return f.Query == ""
}

func (f Filter) Matches(name string) bool {
	return f.matcher()(name)
}

// matcher folds the query once so a listing does not refold it per entry.
func (f Filter) matcher() func(name string) bool {
	if f.IsEmpty() {
		return func(string) bool { return true }
	}
	caser := cases.Fold()
	query := caser.String(f.Query)
	return func(name string) bool {
		return strings.Contains(caser.String(name), query)
	}
}
