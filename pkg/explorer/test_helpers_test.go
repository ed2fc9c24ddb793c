package explorer

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/filetug/ftexplorer/pkg/drives"
	"github.com/filetug/ftexplorer/pkg/explorer/ftapp"
	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/filetug/ftexplorer/pkg/files/filesmocks"
	"github.com/filetug/ftexplorer/pkg/files/osfile"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testGlobalLock sync.Mutex

// withTestGlobalLock serialises tests that swap package-level seams.
func withTestGlobalLock(t *testing.T) {
	t.Helper()
	testGlobalLock.Lock()
	t.Cleanup(func() {
		testGlobalLock.Unlock()
	})
}

const testHome = "/home/user"

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	assert.NoError(t, fs.MkdirAll("/home/user/docs/pics", 0755))
	assert.NoError(t, fs.MkdirAll("/home/user/x", 0755))
	assert.NoError(t, afero.WriteFile(fs, "/home/user/notes.txt", make([]byte, 4096), 0644))
	assert.NoError(t, afero.WriteFile(fs, "/home/user/Report.PDF", make([]byte, 1024*1024), 0644))
	assert.NoError(t, afero.WriteFile(fs, "/home/user/docs/cv.md", []byte("cv"), 0644))
	return fs
}

type testEnv struct {
	fs     afero.Fs
	ctrl   *Controller
	opener *filesmocks.MockOpener
}

func newTestController(t *testing.T) *testEnv {
	t.Helper()
	fs := newTestFs(t)
	store := osfile.NewStore("/", osfile.WithFs(fs))
	opener := filesmocks.NewMockOpener(gomock.NewController(t))
	ctrl := NewController(testHome, files.NewLister(store), files.NewActivator(store, opener), zerolog.Nop())
	return &testEnv{fs: fs, ctrl: ctrl, opener: opener}
}

type testApp struct {
	ftapp.App
	focused tview.Primitive
	root    tview.Primitive
	stopped bool
}

func newNavigatorForTest(t *testing.T) (*Navigator, *testApp, *testEnv) {
	t.Helper()
	env := newTestController(t)
	app := &testApp{}
	app.App = ftapp.NewApp(nil,
		ftapp.WithSetFocus(func(p tview.Primitive) { app.focused = p }),
		ftapp.WithSetRoot(func(root tview.Primitive, _ bool) { app.root = root }),
		ftapp.WithStop(func() { app.stopped = true }),
	)
	nav := NewNavigator(app, env.ctrl,
		WithHomeDir(testHome),
		WithRootTitle("test-host"),
		WithDrives(func(ctx context.Context) ([]drives.Drive, error) {
			return []drives.Drive{{Mountpoint: "/", Fstype: "ext4"}, {Mountpoint: "/mnt/usb"}}, nil
		}),
	)
	return nav, app, env
}

func entryNames(entries []files.Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

// rowOf finds the table row showing name.
func rowOf(t *testing.T, nav *Navigator, name string) int {
	t.Helper()
	for row := 1; row < nav.files.rows.GetRowCount(); row++ {
		if entry, ok := nav.files.rows.Entry(row); ok && entry.Name == name {
			return row
		}
	}
	t.Fatalf("row for %q not found", name)
	return -1
}

func newSimScreen(t *testing.T, width, height int) tcell.Screen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(width, height)
	return s
}

// readLine returns what is drawn on screen row y.
func readLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		mainc, combc, _, _ := screen.GetContent(x, y)
		str := ""
		if mainc != 0 {
			str = string(mainc) + string(combc)
		}
		if str == "" {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}
