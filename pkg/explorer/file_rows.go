package explorer

import (
	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var _ tview.TableContent = (*FileRows)(nil)

const (
	nameColIndex = 0
	typeColIndex = 1
	sizeColIndex = 2
)

// FileRows renders a Listing as a header row followed by one row per entry.
type FileRows struct {
	tview.TableContentReadOnly
	listing Listing
}

func NewFileRows(listing Listing) *FileRows {
	return &FileRows{listing: listing}
}

// Entry returns the entry shown at a table row.
func (r *FileRows) Entry(row int) (files.Entry, bool) {
	i := row - 1
	if i < 0 || i >= len(r.listing.Entries) {
		return files.Entry{}, false
	}
	return r.listing.Entries[i], true
}

func (r *FileRows) GetRowCount() int {
	if len(r.listing.Entries) == 0 {
		return 2
	}
	return len(r.listing.Entries) + 1
}

func (r *FileRows) GetColumnCount() int {
	return 3
}

func (r *FileRows) GetCell(row, col int) *tview.TableCell {
	if row == 0 {
		return r.getHeaderCell(col)
	}
	if len(r.listing.Entries) == 0 {
		if row == 1 && col == nameColIndex {
			text := "[::i]No entries[::-]"
			if r.listing.Query != "" {
				text = "[::i]Nothing matches [::b]" + tview.Escape(r.listing.Query) + "[::-]"
			}
			cell := tview.NewTableCell(text)
			cell.SetTextColor(tcell.ColorGray)
			cell.SetSelectable(false)
			return cell
		}
		return nil
	}
	entry, ok := r.Entry(row)
	if !ok {
		return nil
	}
	var cell *tview.TableCell
	switch col {
	case nameColIndex:
		icon := fileEmoji
		if entry.IsDir() {
			icon = dirEmoji
		}
		cell = tview.NewTableCell(icon + tview.Escape(entry.Name))
		cell.SetExpansion(1)
	case typeColIndex:
		cell = tview.NewTableCell(entry.Kind.String())
		cell.SetAlign(tview.AlignCenter)
	case sizeColIndex:
		cell = tview.NewTableCell(entry.SizeLabel)
		cell.SetAlign(tview.AlignRight)
	default:
		return nil
	}
	cell.SetTextColor(GetColorByFileName(entry.Name, entry.IsDir()))
	cell.SetReference(entry)
	return cell
}

func (r *FileRows) getHeaderCell(col int) *tview.TableCell {
	th := func(text string) *tview.TableCell {
		cell := tview.NewTableCell(text)
		cell.SetTextColor(Style.TableHeaderColor)
		cell.SetAttributes(tcell.AttrBold)
		cell.SetSelectable(false)
		return cell
	}
	switch col {
	case nameColIndex:
		return th("Name").SetExpansion(1)
	case typeColIndex:
		return th("Type").SetAlign(tview.AlignCenter)
	case sizeColIndex:
		return th("Size").SetAlign(tview.AlignRight)
	default:
		return nil
	}
}
