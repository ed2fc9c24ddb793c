package explorer

import (
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	FocusedBorderColor   tcell.Color
	FocusedGraphicsColor tcell.Color

	BlurBorderColor   tcell.Color
	BlurGraphicsColor tcell.Color

	TableHeaderColor tcell.Color
	HotkeyColor      tcell.Color

	DirColor     tcell.Color
	CodeColor    tcell.Color
	MissingColor tcell.Color
	ErrorColor   tcell.Color
}

var Style = Styles{
	FocusedBorderColor:   tcell.ColorCornflowerBlue,
	FocusedGraphicsColor: tcell.ColorWhite,

	BlurBorderColor:   tcell.ColorGray,
	BlurGraphicsColor: tcell.ColorGray,

	TableHeaderColor: tcell.ColorWhiteSmoke,
	HotkeyColor:      tcell.ColorYellow,

	DirColor:     tcell.ColorLightSkyBlue,
	CodeColor:    tcell.ColorAquaMarine,
	MissingColor: tcell.ColorDimGray,
	ErrorColor:   tcell.ColorOrangeRed,
}

const (
	dirEmoji  = "📁"
	fileEmoji = "📄"
)
