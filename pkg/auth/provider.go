package auth

import (
	"context"
	"sync"

	apperrors "staymarket/pkg/errors"
)

// Session is the marketplace's view of an authenticated user: an opaque
// identifier plus display fields. Token issuance and verification live in the
// external identity provider.
type Session struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

type StateEvent string

const (
	StateSignedIn     StateEvent = "signed_in"
	StateSignedOut    StateEvent = "signed_out"
	StateTokenRefresh StateEvent = "token_refresh"
)

type StateChange struct {
	Event   StateEvent
	Session *Session // nil on sign-out
}

// Provider is the identity-provider boundary. CurrentSession resolves the
// caller's session; Subscribe delivers push notifications on login, logout
// and token refresh.
type Provider interface {
	CurrentSession(ctx context.Context) (*Session, error)
	Subscribe() <-chan StateChange
}

// StaticProvider serves a fixed session, for tests and local development.
type StaticProvider struct {
	mu      sync.RWMutex
	session *Session
	subs    []chan StateChange
}

func NewStaticProvider(session *Session) *StaticProvider {
	return &StaticProvider{session: session}
}

func (p *StaticProvider) CurrentSession(ctx context.Context) (*Session, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.session == nil {
		return nil, apperrors.Unauthorized("no active session")
	}
	return p.session, nil
}

func (p *StaticProvider) Subscribe() <-chan StateChange {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan StateChange, 8)
	p.subs = append(p.subs, ch)
	return ch
}

// SetSession swaps the active session and notifies subscribers. Slow
// subscribers miss events rather than block the caller.
func (p *StaticProvider) SetSession(session *Session) {
	p.mu.Lock()
	p.session = session
	subs := make([]chan StateChange, len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	event := StateSignedIn
	if session == nil {
		event = StateSignedOut
	}

	for _, ch := range subs {
		select {
		case ch <- StateChange{Event: event, Session: session}:
		default:
		}
	}
}
