package gate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shutterfolio/backend/internal/session"
)

type fakeAuth struct {
	signedIn  bool
	signInErr error
}

func (f *fakeAuth) CurrentUser(ctx context.Context) (string, bool, error) {
	if f.signedIn {
		return "owner@example.com", true, nil
	}
	return "", false, nil
}

func (f *fakeAuth) SignIn(ctx context.Context, email, password string) (string, error) {
	if f.signInErr != nil {
		return "", f.signInErr
	}
	return email, nil
}

func (f *fakeAuth) SignOut(ctx context.Context) error { return nil }

type recordingNav struct {
	mu    sync.Mutex
	calls []string
}

func (n *recordingNav) ToLogin()     { n.record("login") }
func (n *recordingNav) ToDashboard() { n.record("dashboard") }

func (n *recordingNav) record(s string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, s)
}

func (n *recordingNav) Calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.calls...)
}

type harness struct {
	gate     *Gate
	provider *session.Provider
	nav      *recordingNav
	states   chan State
	loads    chan struct{}
}

func startGate(t *testing.T, auth *fakeAuth) *harness {
	t.Helper()
	h := &harness{
		provider: session.NewProvider(auth),
		nav:      &recordingNav{},
		states:   make(chan State, 8),
		loads:    make(chan struct{}, 8),
	}
	h.gate = New(h.provider, h.nav,
		OnStateChange(func(s State) { h.states <- s }),
		OnAuthenticated(func(ctx context.Context) { h.loads <- struct{}{} }),
	)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go h.gate.Run(ctx)
	return h
}

func (h *harness) waitState(t *testing.T, want State) {
	t.Helper()
	select {
	case got := <-h.states:
		if got != want {
			t.Fatalf("expected state %v, got %v", want, got)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for %v", want)
	}
}

func TestGate_ChecksUntilFirstNotification(t *testing.T) {
	h := startGate(t, &fakeAuth{signedIn: true})

	if h.gate.State() != Checking || h.gate.CanRender() {
		t.Fatal("expected Checking with protected content hidden")
	}
	select {
	case <-h.loads:
		t.Fatal("data loaded before the gate decision")
	case <-time.After(20 * time.Millisecond):
	}

	h.provider.Resolve(context.Background())
	h.waitState(t, Authenticated)

	select {
	case <-h.loads:
	case <-time.After(time.Second):
		t.Fatal("expected initial load after authentication")
	}
	if !h.gate.CanRender() || h.gate.Email() != "owner@example.com" {
		t.Errorf("expected render allowed for owner, got %v %q", h.gate.State(), h.gate.Email())
	}
	if calls := h.nav.Calls(); len(calls) != 1 || calls[0] != "dashboard" {
		t.Errorf("expected [dashboard], got %v", calls)
	}
}

func TestGate_RedirectsWithoutSession(t *testing.T) {
	h := startGate(t, &fakeAuth{})
	h.provider.Resolve(context.Background())
	h.waitState(t, Redirecting)

	if calls := h.nav.Calls(); len(calls) != 1 || calls[0] != "login" {
		t.Errorf("expected [login], got %v", calls)
	}
	if len(h.loads) != 0 {
		t.Error("no data may be loaded without a session")
	}
}

func TestGate_LoginThenSignOut(t *testing.T) {
	h := startGate(t, &fakeAuth{})
	ctx := context.Background()
	h.provider.Resolve(ctx)
	h.waitState(t, Redirecting)

	if msg := h.gate.Login(ctx, "owner@example.com", "pw"); msg != "" {
		t.Fatalf("expected success, got %q", msg)
	}
	h.waitState(t, Authenticated)

	if err := h.gate.SignOut(ctx); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	h.waitState(t, Redirecting)
	if h.gate.State() != Redirecting || h.gate.CanRender() {
		t.Errorf("expected Redirecting after sign out, got %v", h.gate.State())
	}

	calls := h.nav.Calls()
	if len(calls) != 3 || calls[0] != "login" || calls[1] != "dashboard" || calls[2] != "login" {
		t.Errorf("unexpected navigation %v", calls)
	}
}

func TestGate_SignOutDuringInitialLoad(t *testing.T) {
	provider := session.NewProvider(&fakeAuth{signedIn: true})
	nav := &recordingNav{}
	states := make(chan State, 8)
	started := make(chan struct{})
	loadDone := make(chan error, 1)
	g := New(provider, nav,
		OnStateChange(func(s State) { states <- s }),
		OnAuthenticated(func(ctx context.Context) {
			close(started)
			<-ctx.Done()
			loadDone <- ctx.Err()
		}),
	)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go g.Run(ctx)

	provider.Resolve(ctx)
	h := &harness{states: states}
	h.waitState(t, Authenticated)
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("initial load never started")
	}

	// the load is still running; the sign-out must not wait for it
	if err := provider.SignOut(ctx); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	h.waitState(t, Redirecting)

	select {
	case err := <-loadDone:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected load context cancelled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("expected the running load to be cancelled on sign out")
	}
	if calls := nav.Calls(); len(calls) != 2 || calls[1] != "login" {
		t.Errorf("unexpected navigation %v", calls)
	}
}

func TestGate_LoginFailureMessage(t *testing.T) {
	h := startGate(t, &fakeAuth{signInErr: errors.New("auth: invalid email or password")})
	h.provider.Resolve(context.Background())
	h.waitState(t, Redirecting)

	if msg := h.gate.Login(context.Background(), "a@b.c", "bad"); msg != LoginFailedMessage {
		t.Errorf("expected %q, got %q", LoginFailedMessage, msg)
	}
	if h.gate.State() != Redirecting {
		t.Errorf("expected to stay on login, got %v", h.gate.State())
	}
}

func TestState_String(t *testing.T) {
	if Checking.String() != "checking" || Authenticated.String() != "authenticated" || Redirecting.String() != "redirecting" {
		t.Error("unexpected state names")
	}
}
