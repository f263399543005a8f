// Package session owns the client's authentication state.
//
// A Gate is the single owner of the current model.Session. Consumers read
// it through Current and change it only through Login and Logout. The
// gate is created empty; Initialize restores it from the Store once,
// before the first routing decision.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/me/agrirent/pkg/model"
)

// ErrInvalidLogin is returned by Login when token or username is empty or
// the role is not a known variant.
var ErrInvalidLogin = errors.New("login requires a token, a username and a known role")

// Gate holds the session and persists it through a Store.
type Gate struct {
	store  Store
	logger *slog.Logger

	mu          sync.RWMutex
	sess        model.Session
	initialized bool
}

// NewGate creates an empty, uninitialized gate.
func NewGate(st Store, logger *slog.Logger) *Gate {
	return &Gate{
		store:  st,
		logger: logger.With("component", "session"),
	}
}

// Initialize restores the session from the store. Only the first call
// reads the store; later calls are no-ops. Missing, partial, or malformed
// persisted data leaves the session unauthenticated; it is never an error.
func (g *Gate) Initialize(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.initialized {
		return
	}
	g.initialized = true

	f, err := g.store.Load(ctx)
	if err != nil {
		g.logger.Warn("restore failed, starting unauthenticated", "error", err)
		return
	}
	g.sess = restore(f)

	if g.sess.IsAuthenticated() {
		g.logger.Debug("session restored", "username", g.sess.User.Username, "role", g.sess.User.Role)
	} else if f != (Fields{}) {
		g.logger.Debug("persisted session incomplete, starting unauthenticated")
	}
}

// restore rebuilds a session from persisted fields. Token, username, and a
// parseable role are required; name is optional.
func restore(f Fields) model.Session {
	if f.Token == "" || f.Username == "" || f.Role == "" {
		return model.Session{}
	}
	return model.NewSession(f.Token, f.Username, model.ParseRole(f.Role), f.Name)
}

// Initialized reports whether Initialize has run.
func (g *Gate) Initialized() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.initialized
}

// Current returns a copy of the current session.
func (g *Gate) Current() model.Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sess.Clone()
}

// Token returns the current credential, or "" when unauthenticated.
func (g *Gate) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sess.Token
}

// Login persists the four fields and authenticates the session. The caller
// must already have obtained the values from a successful backend login.
// A storage failure is logged; the in-memory session is still set.
func (g *Gate) Login(ctx context.Context, token, username string, role model.Role, name string) error {
	sess := model.NewSession(token, username, role, name)
	if !sess.IsAuthenticated() {
		return ErrInvalidLogin
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	f := Fields{Token: token, Username: username, Role: role.String(), Name: name}
	if err := g.store.Save(ctx, f); err != nil {
		g.logger.Error("persist session failed", "username", username, "error", err)
	}
	g.sess = sess
	g.initialized = true

	g.logger.Info("logged in", "username", username, "role", role)
	return nil
}

// Logout clears the persisted fields and resets the session. It is
// idempotent; a storage failure is logged.
func (g *Gate) Logout(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.store.Clear(ctx); err != nil {
		g.logger.Error("clear persisted session failed", "error", err)
	}
	if g.sess.IsAuthenticated() {
		g.logger.Info("logged out", "username", g.sess.User.Username)
	}
	g.sess = model.Session{}
	g.initialized = true
}
