package ui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/shutterfolio/backend/internal/dashboard"
	"github.com/shutterfolio/backend/internal/model"
	"github.com/shutterfolio/backend/internal/session"
)

// stubBackend serves empty collections and accepts every write.
type stubBackend struct{}

func (stubBackend) ListPortfolio(ctx context.Context) ([]*model.PortfolioItem, error) { return nil, nil }
func (stubBackend) ListContacts(ctx context.Context) ([]*model.ContactMessage, error) { return nil, nil }
func (stubBackend) ListReviews(ctx context.Context) ([]*model.Review, error) { return nil, nil }
func (stubBackend) CreatePortfolioItem(ctx context.Context, item *model.PortfolioItem) error {
	return nil
}
func (stubBackend) CreateReview(ctx context.Context, review *model.Review) error { return nil }
func (stubBackend) DeletePortfolioItem(ctx context.Context, id string) error      { return nil }
func (stubBackend) DeleteContact(ctx context.Context, id string) error            { return nil }
func (stubBackend) DeleteReview(ctx context.Context, id string) error             { return nil }
func (stubBackend) Portfolio(ctx context.Context) ([]*model.PortfolioItem, error) { return nil, nil }
func (stubBackend) Featured(ctx context.Context) ([]*model.PortfolioItem, error) { return nil, nil }
func (stubBackend) Reviews(ctx context.Context) ([]*model.Review, error) { return nil, nil }
func (stubBackend) SubmitContact(ctx context.Context, msg *model.ContactMessage) error {
	return nil
}
func (stubBackend) CurrentUser(ctx context.Context) (string, bool, error) {
	return "owner@example.com", true, nil
}
func (stubBackend) SignIn(ctx context.Context, email, password string) (string, error) {
	return email, nil
}
func (stubBackend) SignOut(ctx context.Context) error { return nil }

func newTestApp(t *testing.T) *App {
	t.Helper()
	a := New(session.NewProvider(stubBackend{}), stubBackend{})
	a.ctx, a.cancel = context.WithCancel(context.Background())
	t.Cleanup(a.cancel)

	// The event loop is not running: queued redraws are never applied, so
	// the test switches pages itself once the gate lets the dashboard in.
	go a.gate.Run(a.ctx)
	a.sessions.Resolve(a.ctx)
	deadline := time.Now().Add(2 * time.Second)
	for !a.gate.CanRender() {
		if time.Now().After(deadline) {
			t.Fatal("gate never authenticated")
		}
		time.Sleep(5 * time.Millisecond)
	}
	a.switchTo(pageDashboard)
	return a
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

// press delivers event the way the event loop does: the global capture
// first, then the focused widget.
func press(a *App, event *tcell.EventKey) {
	if event = a.globalInput(event); event == nil {
		return
	}
	a.pages.InputHandler()(event, func(p tview.Primitive) { a.app.SetFocus(p) })
}

func gotoTab(t *testing.T, a *App, tab int) {
	t.Helper()
	for i := 0; i < len(tabNames) && a.board.tab != tab; i++ {
		press(a, key(tcell.KeyTab))
	}
	if a.board.tab != tab {
		t.Fatalf("could not reach tab %q", tabNames[tab])
	}
}

func TestDashboard_ReviewFormReachableFromList(t *testing.T) {
	a := newTestApp(t)
	gotoTab(t, a, tabReviews)

	if !a.board.reviews.HasFocus() {
		t.Fatal("expected the review list to hold focus on the Reviews tab")
	}
	press(a, runeKey('a'))
	if !a.board.addReview.HasFocus() {
		t.Fatal("expected 'a' to enter the add review form")
	}

	press(a, key(tcell.KeyEscape))
	if !a.board.reviews.HasFocus() {
		t.Fatal("expected Esc to return to the review list")
	}

	a.board.render(dashboard.Snapshot{Reviews: []*model.Review{
		{ID: "r1", Name: "Dilani", Rating: 5, Date: "June 2024", Text: "Lovely photos"},
	}})
	press(a, key(tcell.KeyEnter))
	if !a.board.addReview.HasFocus() {
		t.Error("expected Enter on the list to enter the add review form")
	}
}

func TestDashboard_AddItemFormDoesNotTrapKeys(t *testing.T) {
	a := newTestApp(t)
	gotoTab(t, a, tabAddItem)

	press(a, runeKey('a'))
	if !a.board.addItem.HasFocus() {
		t.Fatal("expected 'a' to enter the add item form")
	}

	// Tab inside the form moves between fields and stays on the tab.
	press(a, key(tcell.KeyTab))
	if a.board.tab != tabAddItem || !a.board.addItem.HasFocus() {
		t.Fatal("expected Tab to stay inside the form")
	}

	press(a, key(tcell.KeyEscape))
	if a.board.addItem.HasFocus() {
		t.Fatal("expected Esc to leave the form")
	}

	press(a, key(tcell.KeyTab))
	if a.board.tab != tabPortfolio || !a.board.portfolio.HasFocus() {
		t.Errorf("expected Tab to reach Manage Portfolio, got tab %d", a.board.tab)
	}
}

func TestDashboard_EditFormOnlyOnFormTabs(t *testing.T) {
	a := newTestApp(t)
	for _, tab := range []int{tabMessages, tabPortfolio} {
		gotoTab(t, a, tab)
		if a.board.editForm() {
			t.Errorf("tab %q has no form", tabNames[tab])
		}
	}
}
