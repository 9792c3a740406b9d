package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/shutterfolio/backend/internal/dashboard"
	"github.com/shutterfolio/backend/internal/model"
)

// Dashboard tabs in Tab order.
const (
	tabMessages = iota
	tabAddItem
	tabPortfolio
	tabReviews
)

var tabNames = []string{"Messages", "Add Item", "Manage Portfolio", "Reviews"}

const dashboardHelp = "[::b]Tab[::-] next  [::b]a[::-]/[::b]Enter[::-] edit form  [::b]Esc[::-] leave form  [::b]d[::-] delete  [::b]r[::-] reload  [::b]g[::-] gallery  [::b]c[::-] contact  [::b]o[::-] sign out  [::b]q[::-] quit"

type dashboardView struct {
	a    *App
	root tview.Primitive
	tabs *tview.Pages
	bar  *tview.TextView
	help *tview.TextView
	tab  int

	messages      *tview.List
	messageDetail *tview.TextView
	addItem       *tview.Form
	portfolio     *tview.List
	portfolioInfo *tview.TextView
	reviews       *tview.List
	addReview     *tview.Form

	snap dashboard.Snapshot

	item   model.PortfolioItem
	review model.Review
}

func newDashboardView(a *App) *dashboardView {
	v := &dashboardView{
		a:             a,
		tabs:          tview.NewPages(),
		bar:           tview.NewTextView().SetDynamicColors(true),
		help:          tview.NewTextView().SetDynamicColors(true).SetText(dashboardHelp),
		messages:      tview.NewList().ShowSecondaryText(true),
		messageDetail: tview.NewTextView().SetDynamicColors(true).SetWrap(true),
		addItem:       tview.NewForm(),
		portfolio:     tview.NewList().ShowSecondaryText(false),
		portfolioInfo: tview.NewTextView().SetDynamicColors(true).SetWrap(true),
		reviews:       tview.NewList().ShowSecondaryText(true),
		addReview:     tview.NewForm(),
	}

	v.messages.SetBorder(true).SetTitle(" Inbox ")
	v.messageDetail.SetBorder(true).SetTitle(" Message ")
	v.messages.SetChangedFunc(func(i int, _, _ string, _ rune) { v.showMessage(i) })
	v.tabs.AddPage(tabNames[tabMessages], tview.NewFlex().
		AddItem(v.messages, 0, 1, true).
		AddItem(v.messageDetail, 0, 2, false), true, true)

	v.buildItemForm()
	v.addItem.SetCancelFunc(v.leaveForm)
	v.addItem.SetBorder(true).SetTitle(" Add portfolio item ")
	v.tabs.AddPage(tabNames[tabAddItem], v.addItem, true, false)

	v.portfolio.SetBorder(true).SetTitle(" Portfolio ")
	v.portfolioInfo.SetBorder(true).SetTitle(" Item ")
	v.portfolio.SetChangedFunc(func(i int, _, _ string, _ rune) { v.showItem(i) })
	v.tabs.AddPage(tabNames[tabPortfolio], tview.NewFlex().
		AddItem(v.portfolio, 0, 1, true).
		AddItem(v.portfolioInfo, 0, 2, false), true, false)

	v.buildReviewForm()
	v.addReview.SetCancelFunc(v.leaveForm)
	v.reviews.SetBorder(true).SetTitle(" Reviews ")
	v.reviews.SetSelectedFunc(func(int, string, string, rune) { v.editForm() })
	v.addReview.SetBorder(true).SetTitle(" Add review ")
	v.tabs.AddPage(tabNames[tabReviews], tview.NewFlex().
		AddItem(v.reviews, 0, 1, true).
		AddItem(v.addReview, 0, 1, false), true, false)

	v.bar.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEnter && v.editForm() {
			return nil
		}
		return event
	})

	v.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.bar, 1, 0, false).
		AddItem(v.tabs, 0, 1, true).
		AddItem(v.help, 1, 0, false)
	v.renderBar()
	return v
}

func (v *dashboardView) renderBar() {
	text := ""
	if email := v.a.gate.Email(); email != "" {
		text = tview.Escape(email) + "  "
	}
	for i, name := range tabNames {
		if i == v.tab {
			text += fmt.Sprintf("[black:white] %s [-:-] ", name)
		} else {
			text += fmt.Sprintf(" %s  ", name)
		}
	}
	v.bar.SetText(text)
}

func (v *dashboardView) nextTab() {
	v.tab = (v.tab + 1) % len(tabNames)
	v.tabs.SwitchToPage(tabNames[v.tab])
	v.renderBar()
	v.focus()
}

// focus puts the keyboard on the current tab's list. The Add Item tab has
// no list, so the tab bar holds focus until the form is entered.
func (v *dashboardView) focus() {
	switch v.tab {
	case tabMessages:
		v.a.app.SetFocus(v.messages)
	case tabAddItem:
		v.a.app.SetFocus(v.bar)
	case tabPortfolio:
		v.a.app.SetFocus(v.portfolio)
	case tabReviews:
		v.a.app.SetFocus(v.reviews)
	}
}

// editForm moves the keyboard into the current tab's form, reporting
// whether the tab has one.
func (v *dashboardView) editForm() bool {
	switch v.tab {
	case tabAddItem:
		v.a.app.SetFocus(v.addItem)
	case tabReviews:
		v.a.app.SetFocus(v.addReview)
	default:
		return false
	}
	return true
}

// leaveForm is the forms' Esc action. Focus goes back to a widget that
// lets the dashboard keys through.
func (v *dashboardView) leaveForm() {
	if v.a.frontPage() == pageDashboard {
		v.focus()
	}
}

// render replaces the lists with a new snapshot. Call on the UI goroutine.
func (v *dashboardView) render(s dashboard.Snapshot) {
	v.snap = s
	v.renderBar()

	loading := !v.a.dash.Ready()

	v.messages.Clear()
	for _, m := range s.Messages {
		v.messages.AddItem(tview.Escape(messageTitle(m)), m.CreatedAt.Display(), 0, nil)
	}
	v.messages.SetTitle(fmt.Sprintf(" Inbox (%d) ", len(s.Messages)))
	switch {
	case loading:
		v.messageDetail.SetText("Loading…")
	case len(s.Messages) == 0:
		v.messageDetail.SetText("No messages")
	default:
		v.showMessage(v.messages.GetCurrentItem())
	}

	v.portfolio.Clear()
	for _, it := range s.Portfolio {
		v.portfolio.AddItem(tview.Escape(itemTitle(it)), "", 0, nil)
	}
	if len(s.Portfolio) == 0 {
		v.portfolioInfo.SetText(NoImagesText)
	} else {
		v.showItem(v.portfolio.GetCurrentItem())
	}

	v.reviews.Clear()
	for _, r := range s.Reviews {
		v.reviews.AddItem(tview.Escape(reviewTitle(r)), tview.Escape(r.Date+"  "+r.Text), 0, nil)
	}
}

func (v *dashboardView) showMessage(i int) {
	if i >= 0 && i < len(v.snap.Messages) {
		v.messageDetail.SetText(messageDetail(v.snap.Messages[i])).ScrollToBeginning()
	}
}

func (v *dashboardView) showItem(i int) {
	if i >= 0 && i < len(v.snap.Portfolio) {
		v.portfolioInfo.SetText(itemDetail(v.snap.Portfolio[i]))
	}
}

// deleteSelected deletes the highlighted row of the current tab after the
// dashboard's confirmation.
func (v *dashboardView) deleteSelected() {
	var write func(ctx context.Context) error

	switch v.tab {
	case tabMessages:
		if i := v.messages.GetCurrentItem(); i >= 0 && i < len(v.snap.Messages) {
			id := v.snap.Messages[i].ID
			write = func(ctx context.Context) error { return v.a.dash.DeleteMessage(ctx, id) }
		}
	case tabPortfolio:
		if i := v.portfolio.GetCurrentItem(); i >= 0 && i < len(v.snap.Portfolio) {
			id := v.snap.Portfolio[i].ID
			write = func(ctx context.Context) error { return v.a.dash.DeletePortfolioItem(ctx, id) }
		}
	case tabReviews:
		if i := v.reviews.GetCurrentItem(); i >= 0 && i < len(v.snap.Reviews) {
			id := v.snap.Reviews[i].ID
			write = func(ctx context.Context) error { return v.a.dash.DeleteReview(ctx, id) }
		}
	}
	if write != nil {
		v.a.runWrite(write, nil)
	}
}

func (v *dashboardView) buildItemForm() {
	categories := model.Categories()
	options := make([]string, len(categories))
	for i, c := range categories {
		options[i] = c.String()
	}
	v.item = model.PortfolioItem{Category: categories[0]}

	v.addItem.Clear(true)
	v.addItem.
		AddInputField("Title", "", 50, nil, func(t string) { v.item.Title = t }).
		AddDropDown("Category", options, 0, func(option string, _ int) { v.item.Category = model.Category(option) }).
		AddInputField("Image URL", "", 60, nil, func(t string) { v.item.Image = t }).
		AddInputField("Album link", "", 60, nil, func(t string) { v.item.Link = t }).
		AddTextArea("Description", "", 60, 4, 0, func(t string) { v.item.Description = t }).
		AddButton("Add item", func() {
			item := v.item
			v.a.runWrite(func(ctx context.Context) error {
				return v.a.dash.AddPortfolioItem(ctx, &item)
			}, func() {
				v.buildItemForm()
				v.leaveForm()
			})
		})
}

func (v *dashboardView) buildReviewForm() {
	ratings := []string{"5", "4", "3", "2", "1"}
	v.review = model.Review{Rating: model.MaxRating}

	v.addReview.Clear(true)
	v.addReview.
		AddInputField("Name", "", 40, nil, func(t string) { v.review.Name = t }).
		AddDropDown("Rating", ratings, 0, func(option string, _ int) {
			v.review.Rating, _ = strconv.Atoi(option)
		}).
		AddInputField("Date", "", 30, nil, func(t string) { v.review.Date = t }).
		AddTextArea("Review", "", 40, 4, 0, func(t string) { v.review.Text = t }).
		AddButton("Add review", func() {
			review := v.review
			v.a.runWrite(func(ctx context.Context) error {
				return v.a.dash.AddReview(ctx, &review)
			}, func() {
				v.buildReviewForm()
				v.leaveForm()
			})
		})
}
