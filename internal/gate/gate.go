// Package gate decides whether the admin dashboard may be shown. Nothing
// behind the gate reads data before the first session notification.
package gate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shutterfolio/backend/internal/session"
)

// State is the gate's decision.
type State int

const (
	// Checking is the initial state; the view shows a blocking spinner.
	Checking State = iota
	// Authenticated allows the protected content to render.
	Authenticated
	// Redirecting means the user is being sent to the login page.
	Redirecting
)

func (s State) String() string {
	switch s {
	case Checking:
		return "checking"
	case Authenticated:
		return "authenticated"
	case Redirecting:
		return "redirecting"
	}
	return "unknown"
}

// LoginFailedMessage is shown on the login form for any sign-in failure.
const LoginFailedMessage = "Invalid email or password. Please try again."

// Sessions is the part of session.Provider the gate needs.
type Sessions interface {
	Subscribe() (<-chan session.State, func())
	SignIn(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
}

// Navigator switches between the login page and the dashboard.
type Navigator interface {
	ToLogin()
	ToDashboard()
}

// Gate guards the dashboard.
type Gate struct {
	sessions Sessions
	nav      Navigator

	onAuthenticated func(ctx context.Context)
	onState         func(State)

	mu       sync.Mutex
	state    State
	email    string
	stopLoad context.CancelFunc
}

// Option configures a Gate.
type Option func(*Gate)

// OnAuthenticated sets the hook run on every transition into Authenticated,
// typically the dashboard's initial load. The hook runs in its own
// goroutine so later session changes are applied while it works; its
// context is cancelled when the gate leaves Authenticated.
func OnAuthenticated(fn func(ctx context.Context)) Option {
	return func(g *Gate) { g.onAuthenticated = fn }
}

// OnStateChange sets a hook called after every state change.
func OnStateChange(fn func(State)) Option {
	return func(g *Gate) { g.onState = fn }
}

// New creates a Gate in the Checking state.
func New(sessions Sessions, nav Navigator, opts ...Option) *Gate {
	g := &Gate{sessions: sessions, nav: nav, state: Checking}
	for _, o := range opts {
		o(g)
	}
	return g
}

// State returns the current decision.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Email returns the signed-in account, or "" outside Authenticated.
func (g *Gate) Email() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.email
}

// CanRender reports whether protected content may be shown.
func (g *Gate) CanRender() bool {
	return g.State() == Authenticated
}

// Run follows the session stream until ctx is done.
func (g *Gate) Run(ctx context.Context) {
	ch, cancel := g.sessions.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case s := <-ch:
			g.apply(ctx, s)
		}
	}
}

func (g *Gate) apply(ctx context.Context, s session.State) {
	g.mu.Lock()
	prev := g.state
	if !s.SignedIn {
		g.cancelLoadLocked()
	}
	if s.SignedIn {
		g.state = Authenticated
		g.email = s.Email
	} else {
		g.state = Redirecting
		g.email = ""
	}
	next := g.state
	g.mu.Unlock()

	if prev == next {
		return
	}
	slog.Info("gate state changed", "from", prev.String(), "to", next.String())

	if next == Authenticated {
		g.nav.ToDashboard()
	} else {
		g.nav.ToLogin()
	}
	if g.onState != nil {
		g.onState(next)
	}
	if next == Authenticated && g.onAuthenticated != nil {
		loadCtx, cancel := context.WithCancel(ctx)
		g.mu.Lock()
		g.cancelLoadLocked()
		g.stopLoad = cancel
		g.mu.Unlock()
		go g.onAuthenticated(loadCtx)
	}
}

func (g *Gate) cancelLoadLocked() {
	if g.stopLoad != nil {
		g.stopLoad()
		g.stopLoad = nil
	}
}

// Login submits the login form. It returns "" on success (the session
// stream then moves the gate to Authenticated), otherwise the message to
// show under the form.
func (g *Gate) Login(ctx context.Context, email, password string) string {
	if err := g.sessions.SignIn(ctx, email, password); err != nil {
		slog.Warn("login failed", "error", err)
		return LoginFailedMessage
	}
	return ""
}

// SignOut signs out and goes to the login page. Navigation happens even
// if the server call fails.
func (g *Gate) SignOut(ctx context.Context) error {
	err := g.sessions.SignOut(ctx)
	// the session stream may already have moved the gate
	g.mu.Lock()
	g.cancelLoadLocked()
	changed := g.state != Redirecting
	g.state = Redirecting
	g.email = ""
	g.mu.Unlock()
	if changed {
		g.nav.ToLogin()
		if g.onState != nil {
			g.onState(Redirecting)
		}
	}
	return err
}
