package explorer

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestGetColorByFileName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		isDir    bool
		expected tcell.Color
	}{
		{name: "docs.go", isDir: true, expected: Style.DirColor},
		{name: "main.go", expected: tcell.ColorAqua},
		{name: "README.md", expected: tcell.ColorBisque},
		{name: "Report.PDF", expected: tcell.ColorIndianRed},
		{name: "photo.JPG", expected: tcell.ColorMediumPurple},
		{name: "notes.txt", expected: tcell.ColorWhite},
		{name: "lib.rs", expected: Style.CodeColor},
		{name: "Makefile", expected: Style.CodeColor},
		{name: "blob.bin-unknown-xyz", expected: tcell.ColorWhiteSmoke},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if actual := GetColorByFileName(tt.name, tt.isDir); actual != tt.expected {
				t.Errorf("GetColorByFileName(%q, %v) = %v, want %v", tt.name, tt.isDir, actual, tt.expected)
			}
		})
	}
}

func TestGetColorByFileName_LexerSeam(t *testing.T) {
	withTestGlobalLock(t)
	orig := matchLexer
	t.Cleanup(func() {
		matchLexer = orig
	})

	matchLexer = func(string) (string, bool) { return "Python", true }
	if actual := GetColorByFileName("anything.zzz", false); actual != Style.CodeColor {
		t.Errorf("expected code colour, got %v", actual)
	}
	matchLexer = func(string) (string, bool) { return "JSON", true }
	if actual := GetColorByFileName("data.zzz", false); actual != tcell.ColorGold {
		t.Errorf("expected JSON colour, got %v", actual)
	}
	matchLexer = func(string) (string, bool) { return "", false }
	if actual := GetColorByFileName("lib.rs", false); actual != tcell.ColorWhiteSmoke {
		t.Errorf("expected default colour, got %v", actual)
	}
	if actual := GetColorByFileName("archive.tar", false); actual != tcell.ColorSandyBrown {
		t.Errorf("extensions should not depend on chroma, got %v", actual)
	}
}
