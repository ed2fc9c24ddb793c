// Package ftapp narrows *tview.Application to what the explorer calls,
// so panels can be exercised without a terminal.
package ftapp

import (
	"github.com/rivo/tview"
)

type App interface {
	Run() error
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	Stop()
	EnableMouse(bool)
}

type AppMethod func(a *appProxy)

func NewApp(app *tview.Application, o ...AppMethod) App {
	a := &appProxy{}
	if app != nil {
		a.setFocus = func(primitive tview.Primitive) {
			_ = app.SetFocus(primitive)
		}
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.enableMouse = func(b bool) {
			_ = app.EnableMouse(b)
		}
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, m := range o {
		m(a)
	}
	return a
}

func WithSetFocus(setFocus func(p tview.Primitive)) AppMethod {
	return func(a *appProxy) {
		a.setFocus = setFocus
	}
}

func WithSetRoot(setRoot func(root tview.Primitive, fullscreen bool)) AppMethod {
	return func(a *appProxy) {
		a.setRoot = setRoot
	}
}

func WithEnableMouse(enableMouse func(bool)) AppMethod {
	return func(a *appProxy) {
		a.enableMouse = enableMouse
	}
}

func WithRun(run func() error) AppMethod {
	return func(a *appProxy) {
		a.run = run
	}
}

func WithStop(stop func()) AppMethod {
	return func(a *appProxy) {
		a.stop = stop
	}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	setFocus    func(p tview.Primitive)
	setRoot     func(root tview.Primitive, fullscreen bool)
	enableMouse func(bool)
	run         func() error
	stop        func()
}

func (a appProxy) EnableMouse(b bool) {
	if a.enableMouse != nil {
		a.enableMouse(b)
	}
}

func (a appProxy) SetFocus(p tview.Primitive) {
	if a.setFocus != nil {
		a.setFocus(p)
	}
}

func (a appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	if a.setRoot != nil {
		a.setRoot(root, fullscreen)
	}
}

func (a appProxy) Run() error {
	return a.run()
}

func (a appProxy) Stop() {
	if a.stop != nil {
		a.stop()
	}
}
