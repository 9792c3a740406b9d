// Package dashboard keeps the admin view's copies of the three collections
// in step with the store. Every successful write is followed by a re-read
// of the affected collection; there is no local patching of the lists.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/shutterfolio/backend/internal/model"
)

// ErrDeclined is returned by delete operations the user did not confirm.
var ErrDeclined = errors.New("delete not confirmed")

// Store is the admin read/write surface.
type Store interface {
	ListPortfolio(ctx context.Context) ([]*model.PortfolioItem, error)
	ListContacts(ctx context.Context) ([]*model.ContactMessage, error)
	ListReviews(ctx context.Context) ([]*model.Review, error)

	CreatePortfolioItem(ctx context.Context, item *model.PortfolioItem) error
	CreateReview(ctx context.Context, review *model.Review) error

	DeletePortfolioItem(ctx context.Context, id string) error
	DeleteContact(ctx context.Context, id string) error
	DeleteReview(ctx context.Context, id string) error
}

// Confirmer asks the user a yes/no question and blocks for the answer.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

// Confirmation prompts.
const (
	ConfirmDeleteItem    = "Are you sure you want to delete this item?"
	ConfirmDeleteMessage = "Are you sure you want to delete this message?"
	ConfirmDeleteReview  = "Are you sure you want to delete this review?"
)

// Snapshot is a copy of the three lists as last read.
type Snapshot struct {
	Portfolio []*model.PortfolioItem
	Messages  []*model.ContactMessage
	Reviews   []*model.Review
}

// Dashboard holds the current snapshot.
type Dashboard struct {
	store   Store
	confirm Confirmer

	mu        sync.RWMutex
	snap      Snapshot
	ready     bool
	listeners []func(Snapshot)
}

// New creates an empty, not yet ready Dashboard.
func New(store Store, confirm Confirmer) *Dashboard {
	return &Dashboard{
		store:   store,
		confirm: confirm,
		snap:    Snapshot{Portfolio: []*model.PortfolioItem{}, Messages: []*model.ContactMessage{}, Reviews: []*model.Review{}},
	}
}

// OnChange registers fn to be called with every new snapshot.
func (d *Dashboard) OnChange(fn func(Snapshot)) {
	d.mu.Lock()
	d.listeners = append(d.listeners, fn)
	d.mu.Unlock()
}

// Ready reports whether the initial Load has finished.
func (d *Dashboard) Ready() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ready
}

// Snapshot returns a copy of the current lists.
func (d *Dashboard) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snap.copy()
}

func (s Snapshot) copy() Snapshot {
	return Snapshot{
		Portfolio: append([]*model.PortfolioItem{}, s.Portfolio...),
		Messages:  append([]*model.ContactMessage{}, s.Messages...),
		Reviews:   append([]*model.Review{}, s.Reviews...),
	}
}

// Load reads the three collections in parallel and replaces the snapshot
// once all have finished. A failed read is logged and that list is empty.
func (d *Dashboard) Load(ctx context.Context) {
	var next Snapshot
	var g errgroup.Group

	g.Go(func() error {
		items, err := d.store.ListPortfolio(ctx)
		if err != nil {
			slog.Error("load portfolio failed", "error", err)
			return nil
		}
		next.Portfolio = items
		return nil
	})
	g.Go(func() error {
		msgs, err := d.store.ListContacts(ctx)
		if err != nil {
			slog.Error("load messages failed", "error", err)
			return nil
		}
		next.Messages = msgs
		return nil
	})
	g.Go(func() error {
		reviews, err := d.store.ListReviews(ctx)
		if err != nil {
			slog.Error("load reviews failed", "error", err)
			return nil
		}
		next.Reviews = reviews
		return nil
	})
	_ = g.Wait()

	d.mu.Lock()
	d.snap = next.copy()
	d.ready = true
	d.mu.Unlock()
	d.notify()
}

// AddPortfolioItem creates item and re-reads the portfolio.
func (d *Dashboard) AddPortfolioItem(ctx context.Context, item *model.PortfolioItem) error {
	if err := d.store.CreatePortfolioItem(ctx, item); err != nil {
		return err
	}
	d.refreshPortfolio(ctx)
	return nil
}

// AddReview creates review and re-reads the reviews.
func (d *Dashboard) AddReview(ctx context.Context, review *model.Review) error {
	if err := d.store.CreateReview(ctx, review); err != nil {
		return err
	}
	d.refreshReviews(ctx)
	return nil
}

// DeletePortfolioItem deletes id after confirmation and re-reads the portfolio.
func (d *Dashboard) DeletePortfolioItem(ctx context.Context, id string) error {
	if !d.confirm.Confirm(ctx, ConfirmDeleteItem) {
		return ErrDeclined
	}
	if err := d.store.DeletePortfolioItem(ctx, id); err != nil {
		return err
	}
	d.refreshPortfolio(ctx)
	return nil
}

// DeleteMessage deletes id after confirmation and re-reads the inbox.
func (d *Dashboard) DeleteMessage(ctx context.Context, id string) error {
	if !d.confirm.Confirm(ctx, ConfirmDeleteMessage) {
		return ErrDeclined
	}
	if err := d.store.DeleteContact(ctx, id); err != nil {
		return err
	}
	d.refreshMessages(ctx)
	return nil
}

// DeleteReview deletes id after confirmation and re-reads the reviews.
func (d *Dashboard) DeleteReview(ctx context.Context, id string) error {
	if !d.confirm.Confirm(ctx, ConfirmDeleteReview) {
		return ErrDeclined
	}
	if err := d.store.DeleteReview(ctx, id); err != nil {
		return err
	}
	d.refreshReviews(ctx)
	return nil
}

// The refresh helpers keep the previous list when the re-read fails.

func (d *Dashboard) refreshPortfolio(ctx context.Context) {
	items, err := d.store.ListPortfolio(ctx)
	if err != nil {
		slog.Error("refresh portfolio failed", "error", err)
		return
	}
	d.replace(func(s *Snapshot) { s.Portfolio = items })
}

func (d *Dashboard) refreshMessages(ctx context.Context) {
	msgs, err := d.store.ListContacts(ctx)
	if err != nil {
		slog.Error("refresh messages failed", "error", err)
		return
	}
	d.replace(func(s *Snapshot) { s.Messages = msgs })
}

func (d *Dashboard) refreshReviews(ctx context.Context) {
	reviews, err := d.store.ListReviews(ctx)
	if err != nil {
		slog.Error("refresh reviews failed", "error", err)
		return
	}
	d.replace(func(s *Snapshot) { s.Reviews = reviews })
}

func (d *Dashboard) replace(update func(*Snapshot)) {
	d.mu.Lock()
	update(&d.snap)
	d.snap = d.snap.copy()
	d.mu.Unlock()
	d.notify()
}

func (d *Dashboard) notify() {
	d.mu.RLock()
	snap := d.snap.copy()
	listeners := append([]func(Snapshot){}, d.listeners...)
	d.mu.RUnlock()
	for _, fn := range listeners {
		fn(snap)
	}
}
