package ui

import (
	"context"

	"github.com/rivo/tview"
)

const (
	pageConfirm = "confirm"
	pageError   = "error"
)

// modalConfirmer implements dashboard.Confirmer with a blocking modal. It
// must be called off the UI goroutine.
type modalConfirmer struct {
	a *App
}

func (c modalConfirmer) Confirm(ctx context.Context, prompt string) bool {
	answer := make(chan bool, 1)
	c.a.app.QueueUpdateDraw(func() {
		prev := c.a.app.GetFocus()
		modal := tview.NewModal().
			SetText(prompt).
			AddButtons([]string{"Cancel", "Delete"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				c.a.pages.RemovePage(pageConfirm)
				c.a.app.SetFocus(prev)
				answer <- buttonIndex == 1
			})
		modal.SetBorder(true).SetTitle("Confirm")
		c.a.pages.AddPage(pageConfirm, modal, true, true)
		c.a.app.SetFocus(modal)
	})

	select {
	case ok := <-answer:
		return ok
	case <-ctx.Done():
		return false
	}
}

// showError shows message in a modal. Call on the UI goroutine.
func (a *App) showError(message string) {
	prev := a.app.GetFocus()
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			a.pages.RemovePage(pageError)
			a.app.SetFocus(prev)
		})
	modal.SetBorder(true).SetTitle("Error")
	a.pages.AddPage(pageError, modal, true, true)
	a.app.SetFocus(modal)
}

// modalOpen reports whether a confirm or error modal has the keyboard.
func (a *App) modalOpen() bool {
	return a.pages.HasPage(pageConfirm) || a.pages.HasPage(pageError)
}
