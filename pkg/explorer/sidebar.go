package explorer

import (
	"context"

	"github.com/filetug/ftexplorer/pkg/drives"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// sidebar lists quick access folders and drive roots.
// Node references hold the path to open.
type sidebar struct {
	tree        *tview.TreeView
	root        *tview.TreeNode
	quickAccess *tview.TreeNode
	drives      *tview.TreeNode
	nav         *Navigator
}

func newSidebar(nav *Navigator, rootTitle string) *sidebar {
	s := &sidebar{
		nav:         nav,
		tree:        tview.NewTreeView(),
		root:        tview.NewTreeNode(rootTitle).SetSelectable(false),
		quickAccess: tview.NewTreeNode("⭐ Quick access").SetSelectable(false).SetColor(Style.TableHeaderColor),
		drives:      tview.NewTreeNode("💽 Drives").SetSelectable(false).SetColor(Style.TableHeaderColor),
	}
	s.root.AddChild(s.quickAccess)
	s.root.AddChild(s.drives)
	s.tree.SetRoot(s.root)
	s.tree.SetTopLevel(1)
	s.tree.SetBorder(true)
	s.tree.SetTitle(" " + tview.Escape(rootTitle) + " ")
	s.tree.SetBorderColor(Style.BlurBorderColor)
	s.tree.SetGraphicsColor(Style.BlurGraphicsColor)
	s.tree.SetSelectedFunc(s.selected)
	s.tree.SetInputCapture(s.inputCapture)
	s.tree.SetFocusFunc(func() {
		s.tree.SetBorderColor(Style.FocusedBorderColor)
		s.tree.SetGraphicsColor(Style.FocusedGraphicsColor)
		if s.tree.GetCurrentNode() == nil {
			s.selectFirst()
		}
	})
	s.tree.SetBlurFunc(func() {
		s.tree.SetBorderColor(Style.BlurBorderColor)
		s.tree.SetGraphicsColor(Style.BlurGraphicsColor)
	})
	return s
}

func (s *sidebar) setQuickAccess(items []quickAccessItem) {
	s.quickAccess.ClearChildren()
	for _, item := range items {
		node := tview.NewTreeNode(item.title).SetReference(item.path)
		if !s.nav.ctrl.IsDir(s.nav.ctx, item.path) {
			node.SetColor(Style.MissingColor)
		}
		s.quickAccess.AddChild(node)
	}
}

// setDrives fills the drives section, falling back to the root of homeDir's volume.
func (s *sidebar) setDrives(ctx context.Context, listDrives func(ctx context.Context) ([]drives.Drive, error), homeDir string) {
	s.drives.ClearChildren()
	var items []drives.Drive
	if listDrives != nil {
		var err error
		if items, err = listDrives(ctx); err != nil {
			s.nav.log.Warn().Err(err).Msg("failed to list drives")
		}
	}
	if len(items) == 0 {
		items = []drives.Drive{drives.Root(homeDir)}
	}
	for _, d := range items {
		s.drives.AddChild(tview.NewTreeNode(d.Label()).SetReference(d.Mountpoint))
	}
}

func (s *sidebar) selectFirst() {
	for _, section := range s.root.GetChildren() {
		if children := section.GetChildren(); len(children) > 0 {
			s.tree.SetCurrentNode(children[0])
			return
		}
	}
}

func (s *sidebar) selected(node *tview.TreeNode) {
	if dirPath, ok := node.GetReference().(string); ok {
		s.nav.goTo(dirPath)
	}
}

func (s *sidebar) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyRight:
		if event.Modifiers()&tcell.ModAlt == 0 {
			s.nav.setAppFocus(s.nav.files.table)
			return nil
		}
		return event
	default:
		return event
	}
}
