package explorer

import (
	"fmt"
	"strings"

	"github.com/filetug/ftexplorer/pkg/explorer/ftui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// bottom is the status bar: the latest notice if there is one, otherwise the hotkey menu.
type bottom struct {
	*tview.TextView
	nav       *Navigator
	menuItems []ftui.MenuItem
	notice    *notice
}

func newBottom(nav *Navigator) *bottom {
	b := &bottom{
		nav: nav,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(tcell.ColorSlateGray),
	}
	b.SetHighlightedFunc(b.highlighted)
	b.menuItems = b.getMenuItems()
	b.render()
	return b
}

func (b *bottom) showNotice(n notice) {
	b.notice = &n
	b.render()
}

func (b *bottom) clearNotice() {
	if b.notice == nil {
		return
	}
	b.notice = nil
	b.render()
}

func (b *bottom) render() {
	if b.notice != nil {
		color := Style.ErrorColor
		if b.notice.level == noticeInfo {
			color = tcell.ColorLightGreen
		}
		b.SetText(fmt.Sprintf("[%s]%s[-]", color.String(), tview.Escape(b.notice.text)))
		return
	}
	b.SetText(b.renderMenuItems(b.menuItems))
}

func (b *bottom) renderMenuItems(menuItems []ftui.MenuItem) string {
	const separator = "┊"
	var sb strings.Builder
	for i, mi := range menuItems {
		if i > 0 {
			sb.WriteString(separator)
		}
		title := mi.Title
		for _, key := range mi.HotKeys {
			hotkeyText := fmt.Sprintf("[%s]%s[-]", Style.HotkeyColor.String(), key)
			title = strings.Replace(title, key, hotkeyText, 1)
		}
		sb.WriteString(fmt.Sprintf(`["%s"]%s[""]`, mi.HotKeys[0], title))
	}
	return sb.String()
}

// highlighted runs the action of a clicked menu region.
func (b *bottom) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	b.Highlight()
	for _, mi := range b.menuItems {
		if mi.HotKeys[0] == region && mi.Action != nil {
			mi.Action()
			return
		}
	}
}

func (b *bottom) getMenuItems() []ftui.MenuItem {
	return []ftui.MenuItem{
		{Title: "F1 Help", HotKeys: []string{"F1"}, Action: func() { showHelpModal(b.nav) }},
		{Title: "F5 Refresh", HotKeys: []string{"F5"}, Action: b.nav.refresh},
		{Title: "Alt+← Back", HotKeys: []string{"Alt+←"}, Action: b.nav.goBack},
		{Title: "Alt+→ Forward", HotKeys: []string{"Alt+→"}, Action: b.nav.goForward},
		{Title: "Ctrl+F Search", HotKeys: []string{"Ctrl+F"}, Action: b.nav.focusSearch},
		{Title: "Ctrl+L Path", HotKeys: []string{"Ctrl+L"}, Action: b.nav.focusPath},
		{Title: "Alt+X Exit", HotKeys: []string{"Alt+X"}, Action: b.nav.exit},
	}
}
