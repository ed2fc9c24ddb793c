package files

import (
	"context"
	"path/filepath"
)

type Action int

const (
	NavigateTo Action = iota + 1
	OpenWithDefaultHandler
)

func (a Action) String() string {
	switch a {
	case NavigateTo:
		return "NavigateTo"
	case OpenWithDefaultHandler:
		return "OpenWithDefaultHandler"
	default:
		return "None"
	}
}

// Activation tells the caller what activating an entry resolved to.
type Activation struct {
	Action Action
	Path   string
}

// Activator resolves a listed entry to either a directory to navigate to
// or a file handed to the default handler.
type Activator struct {
	store  Store
	opener Opener
}

func NewActivator(store Store, opener Opener) *Activator {
	return &Activator{store: store, opener: opener}
}

func (a *Activator) Activate(ctx context.Context, dirPath, name string) (Activation, error) {
	resolved := filepath.Join(dirPath, name)
	if info, err := a.store.Stat(ctx, resolved); err == nil && info.IsDir() {
		return Activation{Action: NavigateTo, Path: resolved}, nil
	}
	activation := Activation{Action: OpenWithDefaultHandler, Path: resolved}
	if err := a.opener.Open(ctx, resolved); err != nil {
		return activation, cannotOpen(resolved, err)
	}
	return activation, nil
}
