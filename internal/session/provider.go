// Package session holds the terminal client's sign-in state. A single
// Provider is created at the client root and passed to everything that
// needs to know who is signed in.
package session

import (
	"context"
	"log/slog"
	"sync"
)

// State is one snapshot of the sign-in state.
type State struct {
	SignedIn bool
	Email    string
}

// Authenticator is the remote side of sign-in.
type Authenticator interface {
	CurrentUser(ctx context.Context) (email string, ok bool, err error)
	SignIn(ctx context.Context, email, password string) (string, error)
	SignOut(ctx context.Context) error
}

// Provider publishes State changes to subscribers. Until Resolve, SignIn or
// SignOut has run, the state is unknown and subscribers receive nothing.
type Provider struct {
	auth Authenticator

	mu     sync.Mutex
	known  bool
	state  State
	nextID int
	subs   map[int]chan State
}

// NewProvider creates a Provider backed by auth.
func NewProvider(auth Authenticator) *Provider {
	return &Provider{auth: auth, subs: make(map[int]chan State)}
}

// Subscribe returns a channel of state changes and a cancel func. If the
// state is already known it is delivered first. Slow subscribers only see
// the latest state; intermediate ones are dropped.
func (p *Provider) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = ch
	if p.known {
		ch <- p.state
	}
	p.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subs, id)
			p.mu.Unlock()
		})
	}
	return ch, cancel
}

// Current returns the last published state and whether one exists.
func (p *Provider) Current() (State, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, p.known
}

// Resolve checks the server once and publishes the result. A failed check
// is published as signed out.
func (p *Provider) Resolve(ctx context.Context) State {
	email, ok, err := p.auth.CurrentUser(ctx)
	if err != nil {
		slog.Warn("session check failed", "error", err)
		ok = false
	}
	s := State{SignedIn: ok, Email: email}
	if !ok {
		s.Email = ""
	}
	p.publish(s)
	return s
}

// SignIn signs in and publishes the new state. On failure the state is
// left unchanged and the error returned.
func (p *Provider) SignIn(ctx context.Context, email, password string) error {
	got, err := p.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	if got == "" {
		got = email
	}
	p.publish(State{SignedIn: true, Email: got})
	return nil
}

// SignOut signs out and publishes the signed-out state. The local state is
// cleared even when the server call fails.
func (p *Provider) SignOut(ctx context.Context) error {
	err := p.auth.SignOut(ctx)
	if err != nil {
		slog.Warn("sign out failed", "error", err)
	}
	p.publish(State{})
	return err
}

func (p *Provider) publish(s State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.known = true
	p.state = s
	for _, ch := range p.subs {
		// keep only the newest value in the 1-slot buffer
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}
