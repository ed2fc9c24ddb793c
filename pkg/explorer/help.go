package explorer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpText = `F1 - Help
F5 - Refresh the listing
Enter / double-click - Open folder or file
Backspace, Alt+← - Back
Alt+→ - Forward
Ctrl+F, / - Search in folder (Esc clears)
Ctrl+L, Alt+O - Go to path
~ - Home directory
Tab - Next pane
Alt+X, Ctrl+Q - Exit`

func showHelpModal(nav *Navigator) {
	modal, _, _ := createHelpModal(nav, nav)
	nav.setAppRoot(modal, true)
}

func createHelpModal(nav *Navigator, root tview.Primitive) (modal tview.Primitive, helpView *tview.TextView, button *tview.Button) {
	helpView = tview.NewTextView().
		SetDynamicColors(true).
		SetText(helpText).
		SetTextAlign(tview.AlignLeft)
	helpView.SetBackgroundColor(tcell.ColorDarkBlue)

	closeHelp := func() {
		nav.setAppRoot(root, true)
		nav.setAppFocus(nav.files.table)
	}

	closeOnKey := func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 {
			closeHelp()
			return nil
		}
		return event
	}
	helpView.SetInputCapture(closeOnKey)

	button = tview.NewButton("Close").SetSelectedFunc(closeHelp)
	button.SetBackgroundColor(tcell.ColorDarkBlue)
	button.SetInputCapture(closeOnKey)

	helpFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(helpView, 0, 1, false).
		AddItem(button, 1, 0, true)

	helpFlex.SetBorder(true).
		SetTitle(" ftexplorer - Help ").
		SetTitleAlign(tview.AlignCenter)
	helpFlex.SetBackgroundColor(tcell.ColorDarkBlue)

	modal = tview.NewGrid().
		SetColumns(0, 48, 0).
		SetRows(0, 14, 0).
		AddItem(helpFlex, 1, 1, 1, 1, 0, 0, true)

	return modal, helpView, button
}
