package explorer

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/filetug/ftexplorer/pkg/drives"
	"github.com/filetug/ftexplorer/pkg/explorer/ftapp"
	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/filetug/ftexplorer/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
)

// Navigator is the root primitive: nav bar on top, sidebar and files side by side, status bar below.
// It is the single place where operation errors become notices.
type Navigator struct {
	*tview.Flex
	app  ftapp.App
	ctrl *Controller
	log  zerolog.Logger
	ctx  context.Context

	homeDir string

	navBar  *navBar
	sidebar *sidebar
	files   *filesPanel
	bottom  *bottom
}

type navigatorOptions struct {
	listDrives func(ctx context.Context) ([]drives.Drive, error)
	homeDir    string
	rootTitle  string
	logger     zerolog.Logger
}

type NavigatorOption func(o *navigatorOptions)

func WithDrives(listDrives func(ctx context.Context) ([]drives.Drive, error)) NavigatorOption {
	return func(o *navigatorOptions) {
		o.listDrives = listDrives
	}
}

func WithHomeDir(homeDir string) NavigatorOption {
	return func(o *navigatorOptions) {
		o.homeDir = homeDir
	}
}

func WithRootTitle(title string) NavigatorOption {
	return func(o *navigatorOptions) {
		o.rootTitle = title
	}
}

func WithLogger(logger zerolog.Logger) NavigatorOption {
	return func(o *navigatorOptions) {
		o.logger = logger
	}
}

func NewNavigator(app ftapp.App, ctrl *Controller, options ...NavigatorOption) *Navigator {
	o := navigatorOptions{
		listDrives: drives.List,
		rootTitle:  "This computer",
		logger:     zerolog.Nop(),
	}
	for _, option := range options {
		option(&o)
	}
	if o.homeDir == "" {
		o.homeDir = fsutils.HomeDir()
	}

	nav := &Navigator{
		app:     app,
		ctrl:    ctrl,
		log:     o.logger,
		ctx:     context.Background(),
		homeDir: o.homeDir,
	}
	nav.navBar = newNavBar(nav)
	nav.sidebar = newSidebar(nav, o.rootTitle)
	nav.files = newFilesPanel(nav)
	nav.bottom = newBottom(nav)

	nav.sidebar.setQuickAccess(builtInQuickAccess(nav.homeDir))
	nav.sidebar.setDrives(nav.ctx, o.listDrives, nav.homeDir)

	body := tview.NewFlex().
		AddItem(nav.sidebar.tree, 0, 1, false).
		AddItem(nav.files.table, 0, 4, true)

	nav.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nav.navBar, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(nav.bottom, 1, 0, false)
	nav.SetInputCapture(nav.inputCapture)

	nav.handle(ctrl.Load(nav.ctx))
	return nav
}

func (nav *Navigator) SetFocus() {
	nav.setAppFocus(nav.files.table)
}

func (nav *Navigator) setAppFocus(p tview.Primitive) {
	if nav.app != nil {
		nav.app.SetFocus(p)
	}
}

func (nav *Navigator) setAppRoot(root tview.Primitive, fullscreen bool) {
	if nav.app != nil {
		nav.app.SetRoot(root, fullscreen)
	}
}

// handle shows the outcome of an operation: errors become notices,
// success redraws the listing from the controller.
func (nav *Navigator) handle(err error) {
	if n, ok := noticeFor(err); ok {
		nav.bottom.showNotice(n)
	} else {
		nav.bottom.clearNotice()
	}
	nav.render()
}

func (nav *Navigator) render() {
	listing := nav.ctrl.Listing()
	h := nav.ctrl.History()
	nav.navBar.update(listing.Dir, listing.Query, h.CanGoBack(), h.CanGoForward())
	nav.files.SetListing(listing)
}

func (nav *Navigator) goTo(dirPath string) {
	nav.handle(nav.ctrl.Open(nav.ctx, dirPath))
}

// openPath handles the path input: ~ is expanded and relative paths
// resolve against the current directory.
func (nav *Navigator) openPath(text string) {
	dirPath := fsutils.ExpandHome(strings.TrimSpace(text))
	if dirPath == "" {
		return
	}
	if !filepath.IsAbs(dirPath) {
		dirPath = filepath.Join(nav.ctrl.Current(), dirPath)
	}
	dirPath = filepath.Clean(dirPath)
	if !nav.ctrl.IsDir(nav.ctx, dirPath) {
		nav.bottom.showNotice(notice{level: noticeError, text: "Not a directory: " + dirPath})
		return
	}
	nav.goTo(dirPath)
	nav.setAppFocus(nav.files.table)
}

func (nav *Navigator) goBack() {
	nav.handle(nav.ctrl.Back(nav.ctx))
}

func (nav *Navigator) goForward() {
	nav.handle(nav.ctrl.Forward(nav.ctx))
}

func (nav *Navigator) search(query string) {
	nav.handle(nav.ctrl.Search(nav.ctx, query))
}

func (nav *Navigator) refresh() {
	nav.handle(nav.ctrl.Refresh(nav.ctx))
}

func (nav *Navigator) activate(name string) {
	activation, err := nav.ctrl.Activate(nav.ctx, name)
	if err == nil && activation.Action == files.OpenWithDefaultHandler {
		nav.bottom.showNotice(notice{level: noticeInfo, text: "Opened " + activation.Path})
		return
	}
	nav.handle(err)
}

func (nav *Navigator) focusSearch() {
	nav.setAppFocus(nav.navBar.searchInput)
}

func (nav *Navigator) focusPath() {
	nav.setAppFocus(nav.navBar.pathInput)
}

func (nav *Navigator) exit() {
	if nav.app != nil {
		nav.app.Stop()
	}
}

// focusables is the Tab order.
func (nav *Navigator) focusables() []tview.Primitive {
	return []tview.Primitive{
		nav.sidebar.tree,
		nav.files.table,
		nav.navBar.pathInput,
		nav.navBar.searchInput,
	}
}

func (nav *Navigator) cycleFocus(step int) {
	items := nav.focusables()
	current := -1
	for i, p := range items {
		if p.HasFocus() {
			current = i
			break
		}
	}
	next := (current + step + len(items)) % len(items)
	if current < 0 {
		next = 1
	}
	nav.setAppFocus(items[next])
}

func (nav *Navigator) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyF1:
		showHelpModal(nav)
		return nil
	case tcell.KeyF5:
		nav.refresh()
		return nil
	case tcell.KeyCtrlF:
		nav.focusSearch()
		return nil
	case tcell.KeyCtrlL:
		nav.focusPath()
		return nil
	case tcell.KeyCtrlQ:
		nav.exit()
		return nil
	case tcell.KeyTab:
		nav.cycleFocus(1)
		return nil
	case tcell.KeyBacktab:
		nav.cycleFocus(-1)
		return nil
	case tcell.KeyLeft:
		if event.Modifiers()&tcell.ModAlt != 0 {
			nav.goBack()
			return nil
		}
		return event
	case tcell.KeyRight:
		if event.Modifiers()&tcell.ModAlt != 0 {
			nav.goForward()
			return nil
		}
		return event
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModAlt != 0 {
			switch event.Rune() {
			case 'x', 'X':
				nav.exit()
				return nil
			case 'o', 'O':
				nav.focusPath()
				return nil
			case 'h', 'H':
				nav.goTo(nav.homeDir)
				return nil
			}
		}
		return event
	default:
		return event
	}
}
