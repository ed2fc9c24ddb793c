package explorer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// navBar holds the back/forward buttons, the path input and the search box.
type navBar struct {
	*tview.Flex
	nav           *Navigator
	backButton    *tview.Button
	forwardButton *tview.Button
	pathInput     *tview.InputField
	searchInput   *tview.InputField
}

func newNavBar(nav *Navigator) *navBar {
	b := &navBar{
		nav:           nav,
		Flex:          tview.NewFlex(),
		backButton:    tview.NewButton("<-"),
		forwardButton: tview.NewButton("->"),
		pathInput:     tview.NewInputField(),
		searchInput:   tview.NewInputField(),
	}
	b.backButton.SetSelectedFunc(nav.goBack)
	b.forwardButton.SetSelectedFunc(nav.goForward)

	b.pathInput.SetLabel(" Path: ")
	b.pathInput.SetFieldBackgroundColor(tcell.ColorDarkSlateGray)
	b.pathInput.SetDoneFunc(b.pathDone)

	b.searchInput.SetLabel(" 🔍 ")
	b.searchInput.SetPlaceholder("Search in folder")
	b.searchInput.SetFieldBackgroundColor(tcell.ColorDarkSlateGray)
	b.searchInput.SetDoneFunc(b.searchDone)

	b.AddItem(b.backButton, 4, 0, false)
	b.AddItem(nil, 1, 0, false)
	b.AddItem(b.forwardButton, 4, 0, false)
	b.AddItem(b.pathInput, 0, 3, false)
	b.AddItem(b.searchInput, 0, 1, false)
	return b
}

func (b *navBar) pathDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		b.nav.openPath(b.pathInput.GetText())
	case tcell.KeyEscape:
		b.pathInput.SetText(b.nav.ctrl.Current())
		b.nav.setAppFocus(b.nav.files.table)
	}
}

func (b *navBar) searchDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		b.nav.search(b.searchInput.GetText())
		b.nav.setAppFocus(b.nav.files.table)
	case tcell.KeyEscape:
		b.searchInput.SetText("")
		b.nav.search("")
		b.nav.setAppFocus(b.nav.files.table)
	}
}

// update reflects the controller state: current path, active query and
// whether back/forward lead anywhere.
func (b *navBar) update(dir, query string, canGoBack, canGoForward bool) {
	b.pathInput.SetText(dir)
	b.searchInput.SetText(query)
	b.backButton.SetLabelColor(buttonLabelColor(canGoBack))
	b.forwardButton.SetLabelColor(buttonLabelColor(canGoForward))
}

func buttonLabelColor(enabled bool) tcell.Color {
	if enabled {
		return tcell.ColorWhite
	}
	return Style.MissingColor
}
