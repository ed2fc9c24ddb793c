package explorer

import (
	"fmt"

	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type filesPanel struct {
	table *tview.Table
	rows  *FileRows
	nav   *Navigator
}

func newFilesPanel(nav *Navigator) *filesPanel {
	f := &filesPanel{
		nav:   nav,
		table: tview.NewTable(),
	}
	f.table.SetBorder(true)
	f.table.SetBorderColor(Style.BlurBorderColor)
	f.table.SetFixed(1, 0)
	f.table.SetSelectable(true, false)
	f.table.SetSelectedFunc(f.selected)
	f.table.SetInputCapture(f.inputCapture)
	f.table.SetMouseCapture(f.mouseCapture)
	f.table.SetFocusFunc(func() {
		f.table.SetBorderColor(Style.FocusedBorderColor)
	})
	f.table.SetBlurFunc(func() {
		f.table.SetBorderColor(Style.BlurBorderColor)
	})
	f.SetListing(Listing{})
	return f
}

func (f *filesPanel) SetListing(listing Listing) {
	f.rows = NewFileRows(listing)
	f.table.SetContent(f.rows)
	title := fmt.Sprintf(" %s ", tview.Escape(listing.Dir))
	if listing.Query != "" {
		title = fmt.Sprintf(" %s [::i]matching %s[::-] ", tview.Escape(listing.Dir), tview.Escape(fmt.Sprintf("%q", listing.Query)))
	}
	f.table.SetTitle(title)
	f.table.Select(1, 0)
	f.table.ScrollToBeginning()
}

// selectedEntry returns the entry under the cursor.
func (f *filesPanel) selectedEntry() (files.Entry, bool) {
	row, _ := f.table.GetSelection()
	return f.rows.Entry(row)
}

func (f *filesPanel) selected(row, _ int) {
	entry, ok := f.rows.Entry(row)
	if !ok {
		return
	}
	f.nav.activate(entry.Name)
}

func (f *filesPanel) activateSelected() {
	if entry, ok := f.selectedEntry(); ok {
		f.nav.activate(entry.Name)
	}
}

func (f *filesPanel) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		f.nav.goBack()
		return nil
	case tcell.KeyLeft:
		if event.Modifiers()&tcell.ModAlt == 0 {
			f.nav.setAppFocus(f.nav.sidebar.tree)
			return nil
		}
		return event
	case tcell.KeyRune:
		if event.Modifiers()&tcell.ModAlt != 0 {
			return event
		}
		switch event.Rune() {
		case '/':
			f.nav.focusSearch()
			return nil
		case '~':
			f.nav.goTo(f.nav.homeDir)
			return nil
		}
		return event
	default:
		return event
	}
}

func (f *filesPanel) mouseCapture(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action == tview.MouseLeftDoubleClick {
		// the first click of the pair already moved the selection
		f.activateSelected()
		return action, nil
	}
	return action, event
}
