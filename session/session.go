// Package session owns the authenticated-session lifecycle for ColorWish
// clients: exactly one Session per running process, persisted across
// restarts, populated by login or registration, and torn down on logout or
// when the backend rejects the credential.
package session

import (
	"errors"

	colorwish "github.com/nikas90/kids-coloring-ai"
)

// Sentinel errors
var (
	// ErrNotAuthenticated is returned by operations that require a session.
	ErrNotAuthenticated = errors.New("session: not authenticated")
	// ErrSuperseded is returned when a login or registration completed after
	// the session it would populate was already cleared.
	ErrSuperseded = errors.New("session: superseded by logout")
	// ErrUserWithoutToken is returned when storage is asked to persist a user
	// entry without its token.
	ErrUserWithoutToken = errors.New("session: refusing to store user without token")
	// ErrCorrupted indicates unreadable stored session data.
	ErrCorrupted = errors.New("session: stored session corrupted")
)

// Session is the client-held record of authentication state.
//
// Invariant: User is non-nil only when Token is non-empty. A token without a
// fetched profile is a transient state inside a login, never a stored one.
type Session struct {
	Token string          `json:"token,omitempty"`
	User  *colorwish.User `json:"user,omitempty"`
}

// IsAuthenticated reports whether the session holds a complete credential.
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// normalize repairs the Session invariant on data read back from storage.
func (s Session) normalize() Session {
	if s.Token == "" {
		s.User = nil
	}
	return s
}

// Snapshot is the read-only view of the session handed to consumers.
// IsLoading is true before the initial Hydrate completes and while a login
// or registration call is in flight.
type Snapshot struct {
	Token           string
	User            *colorwish.User
	IsAuthenticated bool
	IsLoading       bool
}

// Storage persists a session across process restarts. It holds two logical
// entries, token and user, which are always written and cleared together;
// implementations must never end up with a user entry and no token entry.
//
// Load returns an empty Session, not an error, when nothing is stored.
type Storage interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}
