package explorer

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/gdamore/tcell/v2"
)

// extensionColors covers files chroma has no lexer for, grouped by kind.
var extensionColors = colorsByExtension(map[tcell.Color][]string{
	tcell.ColorWhite:        {"txt", "log", "csv"},
	tcell.ColorMediumPurple: {"jpg", "jpeg", "png", "gif", "webp", "bmp", "heic"},
	tcell.ColorLightSalmon:  {"mov", "mp4", "mkv", "avi", "mp3", "flac", "wav", "ogg"},
	tcell.ColorIndianRed:    {"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "odt"},
	tcell.ColorSandyBrown:   {"zip", "tar", "gz", "bz2", "xz", "7z", "rar"},
	tcell.ColorRed:          {"exe", "msi", "dmg", "appimage", "deb", "rpm"},
})

// lexerColors picks out a few languages by chroma lexer name; other source files get Style.CodeColor.
var lexerColors = map[string]tcell.Color{
	"go":       tcell.ColorAqua,
	"markdown": tcell.ColorBisque,
	"json":     tcell.ColorGold,
	"yaml":     tcell.ColorLightYellow,
}

func colorsByExtension(groups map[tcell.Color][]string) map[string]tcell.Color {
	m := make(map[string]tcell.Color)
	for color, exts := range groups {
		for _, ext := range exts {
			m[ext] = color
		}
	}
	return m
}

// matchLexer is chroma's filename-based lexer lookup; it never reads the file.
var matchLexer = func(name string) (lexerName string, ok bool) {
	lexer := lexers.Match(name)
	if lexer == nil {
		return "", false
	}
	return lexer.Config().Name, true
}

// GetColorByFileName colours folders, known non-source extensions, then
// anything chroma recognises as source (main.go, Makefile, Dockerfile...).
func GetColorByFileName(name string, isDir bool) tcell.Color {
	if isDir {
		return Style.DirColor
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if color, ok := extensionColors[ext]; ok {
		return color
	}
	if lexerName, ok := matchLexer(name); ok {
		if color, found := lexerColors[strings.ToLower(lexerName)]; found {
			return color
		}
		return Style.CodeColor
	}
	return tcell.ColorWhiteSmoke
}
