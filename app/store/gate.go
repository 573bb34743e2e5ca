package store

import "sync"

// Gate is the session check consulted at the start of every mutating store
// action. It is a plain in-memory read: demo mode always passes, a missing
// session with a configured backend denies and raises the auth prompt flag,
// anything else passes.
type Gate struct {
	mu         sync.Mutex
	demoMode   bool
	configured bool
	userID     string
	promptAuth bool
}

func NewGate(demoMode, backendConfigured bool) *Gate {
	return &Gate{demoMode: demoMode, configured: backendConfigured}
}

func (g *Gate) SetSession(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.userID = userID
	if userID != "" {
		g.promptAuth = false
	}
}

func (g *Gate) ClearSession() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.userID = ""
}

func (g *Gate) UserID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.userID
}

func (g *Gate) DemoMode() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.demoMode
}

// Allow reports whether a mutating action may proceed. A denial flips the
// auth-prompt flag as a side effect; the caller must not mutate anything.
func (g *Gate) Allow() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.demoMode {
		return true
	}
	if g.userID == "" && g.configured {
		g.promptAuth = true
		return false
	}
	return true
}

// AuthPromptRequested reports whether a denied action asked for the auth
// prompt to be shown.
func (g *Gate) AuthPromptRequested() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.promptAuth
}

func (g *Gate) DismissAuthPrompt() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.promptAuth = false
}
