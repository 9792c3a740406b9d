package ui

import (
	"github.com/rivo/tview"
)

type loginView struct {
	a      *App
	root   tview.Primitive
	form   *tview.Form
	status *tview.TextView

	email    string
	password string
}

func newLoginView(a *App) *loginView {
	v := &loginView{
		a:      a,
		form:   tview.NewForm(),
		status: tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter),
	}
	v.build()

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.form, 9, 0, true).
		AddItem(v.status, 2, 0, false)
	v.form.SetBorder(true).SetTitle(" Admin sign in ")
	v.root = center(layout, 60, 11)
	return v
}

func (v *loginView) build() {
	v.form.Clear(true)
	v.form.
		AddInputField("Email", v.email, 40, nil, func(text string) { v.email = text }).
		AddPasswordField("Password", "", 40, '*', func(text string) { v.password = text }).
		AddButton("Sign in", v.submit).
		AddButton("Gallery", func() { v.a.gallery.open() })
}

// reset clears the password and the status line.
func (v *loginView) reset() {
	v.password = ""
	v.status.SetText("")
	v.build()
}

func (v *loginView) submit() {
	email, password := v.email, v.password
	v.status.SetText("Signing in…")
	go func() {
		msg := v.a.gate.Login(v.a.ctx, email, password)
		v.a.app.QueueUpdateDraw(func() {
			if msg != "" {
				v.status.SetText("[red]" + tview.Escape(msg))
				return
			}
			v.status.SetText("")
		})
	}()
}
