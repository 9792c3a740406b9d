// Package ui is the studio terminal client: the gated admin dashboard, the
// public gallery and the contact form.
package ui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/shutterfolio/backend/internal/contactform"
	"github.com/shutterfolio/backend/internal/dashboard"
	"github.com/shutterfolio/backend/internal/gallery"
	"github.com/shutterfolio/backend/internal/gate"
	"github.com/shutterfolio/backend/internal/session"
)

// Page names.
const (
	pageChecking  = "checking"
	pageLogin     = "login"
	pageDashboard = "dashboard"
	pageGallery   = "gallery"
	pageContact   = "contact"
)

// Backend is everything the studio reads from and writes to.
type Backend interface {
	dashboard.Store
	gallery.Source
	contactform.Sender
}

// App is the studio application.
type App struct {
	app   *tview.Application
	pages *tview.Pages

	sessions *session.Provider
	gate     *gate.Gate
	dash     *dashboard.Dashboard
	form     *contactform.Form
	source   gallery.Source

	login   *loginView
	board   *dashboardView
	gallery *galleryView
	contact *contactView

	ctx    context.Context
	cancel context.CancelFunc
}

// New wires the views to the session provider and the backend.
func New(sessions *session.Provider, backend Backend) *App {
	a := &App{
		app:      tview.NewApplication(),
		pages:    tview.NewPages(),
		sessions: sessions,
		source:   backend,
		form:     contactform.New(backend),
	}
	a.dash = dashboard.New(backend, modalConfirmer{a: a})
	a.gate = gate.New(sessions, a, gate.OnAuthenticated(func(ctx context.Context) {
		a.dash.Load(ctx)
	}))

	a.login = newLoginView(a)
	a.board = newDashboardView(a)
	a.gallery = newGalleryView(a)
	a.contact = newContactView(a)

	spinner := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("⠿ Checking session…")

	a.pages.AddPage(pageChecking, center(spinner, 40, 3), true, true)
	a.pages.AddPage(pageLogin, a.login.root, true, false)
	a.pages.AddPage(pageDashboard, a.board.root, true, false)
	a.pages.AddPage(pageGallery, a.gallery.root, true, false)
	a.pages.AddPage(pageContact, a.contact.root, true, false)

	a.dash.OnChange(func(s dashboard.Snapshot) {
		a.app.QueueUpdateDraw(func() { a.board.render(s) })
	})
	return a
}

// Run starts the gate and the event loop; it returns when the user quits.
func (a *App) Run(ctx context.Context) error {
	a.ctx, a.cancel = context.WithCancel(ctx)
	defer a.cancel()

	go a.gate.Run(a.ctx)
	go a.sessions.Resolve(a.ctx)

	a.app.SetRoot(a.pages, true).SetInputCapture(a.globalInput)
	return a.app.Run()
}

// ToLogin implements gate.Navigator.
func (a *App) ToLogin() {
	a.app.QueueUpdateDraw(func() {
		a.login.reset()
		a.switchTo(pageLogin)
	})
}

// ToDashboard implements gate.Navigator.
func (a *App) ToDashboard() {
	a.app.QueueUpdateDraw(func() {
		a.board.render(a.dash.Snapshot())
		a.switchTo(pageDashboard)
	})
}

func (a *App) switchTo(page string) {
	a.pages.SwitchToPage(page)
	switch page {
	case pageLogin:
		a.app.SetFocus(a.login.form)
	case pageDashboard:
		a.board.focus()
	case pageGallery:
		a.gallery.focus()
	case pageContact:
		a.app.SetFocus(a.contact.form)
	}
}

func (a *App) frontPage() string {
	name, _ := a.pages.GetFrontPage()
	return name
}

// typing reports whether the focused widget consumes letter keys.
func (a *App) typing() bool {
	switch a.app.GetFocus().(type) {
	case *tview.InputField, *tview.TextArea, *tview.DropDown, *tview.Button:
		return true
	}
	return false
}

func (a *App) globalInput(event *tcell.EventKey) *tcell.EventKey {
	if a.modalOpen() {
		return event
	}
	page := a.frontPage()

	if event.Key() == tcell.KeyEscape {
		switch page {
		case pageGallery, pageContact:
			a.back()
			return nil
		}
		return event
	}
	if event.Key() == tcell.KeyCtrlC {
		a.quit()
		return nil
	}

	if page == pageDashboard && event.Key() == tcell.KeyTab && !a.typing() {
		a.board.nextTab()
		return nil
	}
	if event.Key() != tcell.KeyRune || a.typing() {
		return event
	}

	switch event.Rune() {
	case 'q':
		a.quit()
		return nil
	case 'g':
		if page != pageChecking {
			a.gallery.open()
			return nil
		}
	case 'c':
		if page != pageChecking {
			a.switchTo(pageContact)
			return nil
		}
	}

	if page != pageDashboard || !a.gate.CanRender() {
		return event
	}
	switch event.Rune() {
	case 'a':
		if a.board.editForm() {
			return nil
		}
	case 'd':
		a.board.deleteSelected()
		return nil
	case 'r':
		go a.dash.Load(a.ctx)
		return nil
	case 'o':
		go func() {
			if err := a.gate.SignOut(a.ctx); err != nil {
				slog.Warn("sign out", "error", err)
			}
		}()
		return nil
	}
	return event
}

// back leaves the gallery or contact page for wherever the gate allows.
func (a *App) back() {
	switch a.gate.State() {
	case gate.Authenticated:
		a.switchTo(pageDashboard)
	case gate.Redirecting:
		a.switchTo(pageLogin)
	default:
		a.switchTo(pageChecking)
	}
}

func (a *App) quit() {
	a.cancel()
	a.app.Stop()
}

// runWrite performs a dashboard write off the UI goroutine and reports a
// failure in an error modal. Declined deletes are silent.
func (a *App) runWrite(write func(ctx context.Context) error, onSuccess func()) {
	go func() {
		err := write(a.ctx)
		a.app.QueueUpdateDraw(func() {
			switch {
			case err == nil:
				if onSuccess != nil {
					onSuccess()
				}
			case errors.Is(err, dashboard.ErrDeclined):
			default:
				slog.Error("dashboard write failed", "error", err)
				a.showError("Something went wrong: " + err.Error())
			}
		})
	}()
}

// center places p in the middle of the screen with the given size.
func center(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
