package ui

import (
	"errors"

	"github.com/rivo/tview"

	"github.com/shutterfolio/backend/internal/contactform"
)

type contactView struct {
	a      *App
	root   tview.Primitive
	form   *tview.Form
	status *tview.TextView

	fields contactform.Fields
}

func newContactView(a *App) *contactView {
	v := &contactView{
		a:      a,
		form:   tview.NewForm(),
		status: tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter),
	}
	v.form.SetBorder(true).SetTitle(" Book a session ")
	v.build()

	v.root = center(tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.form, 0, 1, true).
		AddItem(v.status, 1, 0, false), 72, 22)
	return v
}

// build recreates the inputs from v.fields so a successful send shows an
// empty form.
func (v *contactView) build() {
	v.form.Clear(true)
	v.form.
		AddInputField("Name", v.fields.Name, 40, nil, func(t string) { v.fields.Name = t }).
		AddInputField("Email", v.fields.Email, 40, nil, func(t string) { v.fields.Email = t }).
		AddInputField("Phone", v.fields.Phone, 20, nil, func(t string) { v.fields.Phone = t }).
		AddInputField("Event date", v.fields.Date, 20, nil, func(t string) { v.fields.Date = t }).
		AddTextArea("Message", v.fields.Message, 50, 6, 0, func(t string) { v.fields.Message = t }).
		AddButton("Send", v.submit).
		AddButton("Back", v.a.back)
}

func (v *contactView) submit() {
	v.a.form.Set(v.fields)
	v.status.SetText("Sending…")
	go func() {
		err := v.a.form.Submit(v.a.ctx)
		v.a.app.QueueUpdateDraw(func() {
			var verr *contactform.ValidationError
			switch {
			case errors.As(err, &verr):
				v.status.SetText("[yellow]" + tview.Escape(verr.Error()))
			case err != nil:
				v.status.SetText("[red]" + v.a.form.Status())
			default:
				v.fields = v.a.form.Fields()
				v.build()
				v.a.app.SetFocus(v.form)
				v.status.SetText("[green]" + v.a.form.Status())
			}
		})
	}()
}
