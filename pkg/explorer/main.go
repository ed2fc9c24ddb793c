package explorer

import (
	"path/filepath"

	"github.com/filetug/ftexplorer/pkg/explorer/ftapp"
	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/filetug/ftexplorer/pkg/files/osfile"
	"github.com/filetug/ftexplorer/pkg/fsutils"
	"github.com/filetug/ftexplorer/pkg/ftlog"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
)

type Options struct {
	StartDir string
	NoMouse  bool
	Logger   zerolog.Logger
}

var newStore = func() files.Store {
	return osfile.NewStore("/")
}

var newOpener = func() files.Opener {
	return osfile.NewOpener()
}

// startDirPath resolves the start directory to an absolute path, defaulting to home.
func startDirPath(dir string) string {
	dir = fsutils.ExpandHome(dir)
	if dir == "" {
		return fsutils.HomeDir()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fsutils.HomeDir()
	}
	return abs
}

func SetupApp(app *tview.Application, options Options) *Navigator {
	startDir := startDirPath(options.StartDir)
	store := newStore()
	ctrl := NewController(
		startDir,
		files.NewLister(store),
		files.NewActivator(store, newOpener()),
		ftlog.Component(options.Logger, "controller"),
	)
	a := ftapp.NewApp(app)
	nav := NewNavigator(a, ctrl,
		WithRootTitle(store.RootTitle()),
		WithLogger(ftlog.Component(options.Logger, "navigator")),
	)
	a.EnableMouse(!options.NoMouse)
	a.SetRoot(nav, true)
	nav.SetFocus()
	options.Logger.Info().Str("start_dir", startDir).Msg("explorer started")
	return nav
}
