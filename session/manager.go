package session

import (
	"context"
	"io"
	"log/slog"
	"sync"

	colorwish "github.com/nikas90/kids-coloring-ai"
)

// Config configures a Manager.
type Config struct {
	// Storage persists the session across restarts. Defaults to an
	// in-memory store.
	Storage Storage
	// Navigate is invoked when an expired credential forces a return to the
	// login surface. It fires exactly once per authenticated->anonymous
	// transition, so concurrent 401 observers cause a single navigation.
	Navigate func()
	// Logger records state transitions. Defaults to a discarding logger.
	Logger *slog.Logger
}

// Manager is the single source of truth for "who is logged in". It owns the
// one Session per running client: consumers read it through Snapshot or
// Subscribe and mutate it only through Hydrate, Login, Register,
// UpdateProfile, Logout, and Expire.
//
// Manager implements colorwish.TokenSource, and its Expire method is the
// client's unauthorized hook:
//
//	mgr := session.NewManager(session.Config{Storage: store})
//	client := colorwish.NewClient(baseURL,
//	    colorwish.WithTokenSource(mgr),
//	    colorwish.WithUnauthorizedHook(mgr.Expire))
//	mgr.Attach(client)
//	mgr.Hydrate()
type Manager struct {
	mu       sync.RWMutex
	sess     Session
	hydrated bool
	inflight int
	// epoch counts clears; a login that began before a clear must not commit
	// after it, so a cleared session is never resurrected by an in-flight
	// call.
	epoch uint64

	storage  Storage
	navigate func()
	logger   *slog.Logger
	client   *colorwish.Client

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewManager creates a Manager. The session starts anonymous and loading
// until Hydrate runs.
func NewManager(cfg Config) *Manager {
	if cfg.Storage == nil {
		cfg.Storage = NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{
		storage:  cfg.Storage,
		navigate: cfg.Navigate,
		logger:   cfg.Logger,
		subs:     make(map[int]func(Snapshot)),
	}
}

// Attach binds the API client the manager drives. Call once at startup,
// after constructing the client with the manager as its token source.
func (m *Manager) Attach(client *colorwish.Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.client = client
}

// Client returns the attached API client, or nil before Attach.
func (m *Manager) Client() *colorwish.Client {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.client
}

// Token implements colorwish.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sess.Token
}

// Hydrate loads the persisted session. It makes no network call and always
// succeeds: absent or unreadable stored data is a valid empty session.
// Stored data violating the user-implies-token invariant is discarded.
func (m *Manager) Hydrate() Snapshot {
	sess, err := m.storage.Load()
	if err != nil {
		m.logger.Warn("discarding unreadable stored session", "error", err)
		sess = Session{}
	}
	sess = sess.normalize()

	m.mu.Lock()
	m.sess = sess
	m.hydrated = true
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.logger.Debug("session hydrated", "authenticated", snap.IsAuthenticated)
	m.notify(snap)
	return snap
}

// Login exchanges credentials for a token, fetches the profile with that
// token, and commits both to memory and storage with no observable
// intermediate state. On failure the session is unchanged and the reason is
// returned as a value.
func (m *Manager) Login(ctx context.Context, email, password string) (*colorwish.User, error) {
	epoch := m.beginAuth()
	defer m.endAuth()

	tok, err := m.client.Auth.Login(ctx, email, password)
	if err != nil {
		m.logger.Debug("login failed", "error", err)
		return nil, err
	}

	// The profile fetch must observe the just-issued token, which is not
	// committed yet.
	user, err := m.client.Auth.CurrentUser(colorwish.WithBearer(ctx, tok.AccessToken))
	if err != nil {
		return nil, err
	}

	if !m.commit(epoch, Session{Token: tok.AccessToken, User: user}) {
		return nil, ErrSuperseded
	}
	m.logger.Info("logged in", "username", user.Username)
	return user, nil
}

// Register creates an account and then behaves like Login: token and profile
// are committed together. The confirmation password never reaches this
// layer; colorwish.RegisterRequest has no field for it.
func (m *Manager) Register(ctx context.Context, req colorwish.RegisterRequest) (*colorwish.User, error) {
	epoch := m.beginAuth()
	defer m.endAuth()

	resp, err := m.client.Auth.Register(ctx, req)
	if err != nil {
		m.logger.Debug("registration failed", "error", err)
		return nil, err
	}

	token := resp.AccessToken
	if token == "" {
		// Older deployments answer with the created profile only; complete
		// the register-then-login contract with the fresh credentials.
		tok, err := m.client.Auth.Login(ctx, req.Email, req.Password)
		if err != nil {
			return nil, err
		}
		token = tok.AccessToken
	}

	user, err := m.client.Auth.CurrentUser(colorwish.WithBearer(ctx, token))
	if err != nil {
		return nil, err
	}

	if !m.commit(epoch, Session{Token: token, User: user}) {
		return nil, ErrSuperseded
	}
	m.logger.Info("registered", "username", user.Username)
	return user, nil
}

// ProfileUpdate carries the profile fields a user may edit. Empty fields are
// left unchanged.
type ProfileUpdate struct {
	Username string
	Email    string
	AgeRange string
	Avatar   string
}

// UpdateProfile merges the update into the in-memory and persisted user
// record. This is an optimistic local update with no network round trip; the
// token is untouched.
func (m *Manager) UpdateProfile(update ProfileUpdate) (*colorwish.User, error) {
	m.mu.Lock()
	if !m.sess.IsAuthenticated() {
		m.mu.Unlock()
		return nil, ErrNotAuthenticated
	}

	user := *m.sess.User
	if update.Username != "" {
		user.Username = update.Username
	}
	if update.Email != "" {
		user.Email = update.Email
	}
	if update.AgeRange != "" {
		user.AgeRange = update.AgeRange
	}
	if update.Avatar != "" {
		user.Avatar = update.Avatar
	}
	m.sess.User = &user
	m.persistLocked()
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.logger.Debug("profile updated", "username", user.Username)
	m.notify(snap)
	updated := user
	return &updated, nil
}

// Logout clears the session from memory and storage unconditionally.
// Calling it when already logged out is a no-op, not an error.
func (m *Manager) Logout() {
	if m.clear() {
		m.logger.Info("logged out")
	}
}

// Expire tears the session down after the backend rejected its credential,
// then triggers the navigate callback. It is the client's unauthorized hook
// and is safe to call repeatedly and concurrently: only the observer that
// performs the authenticated->anonymous transition navigates.
func (m *Manager) Expire() {
	if m.clear() {
		m.logger.Info("session expired")
		if m.navigate != nil {
			m.navigate()
		}
	}
}

// clear wipes memory and storage and bumps the epoch. It reports whether a
// session was actually present.
func (m *Manager) clear() bool {
	m.mu.Lock()
	wasPresent := m.sess.Token != "" || m.sess.User != nil
	m.sess = Session{}
	m.epoch++
	if err := m.storage.Clear(); err != nil {
		m.logger.Warn("failed to clear stored session", "error", err)
	}
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
	return wasPresent
}

// Snapshot returns the current session state for rendering.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// Subscribe registers an observer called after every state change. The
// returned function cancels the subscription.
func (m *Manager) Subscribe(fn func(Snapshot)) (cancel func()) {
	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

// beginAuth marks a login/registration in flight and returns the epoch the
// eventual commit must still match.
func (m *Manager) beginAuth() uint64 {
	m.mu.Lock()
	m.inflight++
	epoch := m.epoch
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
	return epoch
}

func (m *Manager) endAuth() {
	m.mu.Lock()
	m.inflight--
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
}

// commit installs the session if no clear happened since the operation
// began. Token and user become visible together.
func (m *Manager) commit(epoch uint64, sess Session) bool {
	m.mu.Lock()
	if m.epoch != epoch {
		m.mu.Unlock()
		return false
	}
	m.sess = sess
	m.persistLocked()
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
	return true
}

// persistLocked mirrors the in-memory session to storage. Persistence
// failures are logged, not fatal: the in-memory session stays authoritative
// for this process, matching the durable-storage-as-best-effort contract.
func (m *Manager) persistLocked() {
	if err := m.storage.Save(m.sess); err != nil {
		m.logger.Warn("failed to persist session", "error", err)
	}
}

func (m *Manager) snapshotLocked() Snapshot {
	return Snapshot{
		Token:           m.sess.Token,
		User:            cloneUser(m.sess.User),
		IsAuthenticated: m.sess.IsAuthenticated(),
		IsLoading:       !m.hydrated || m.inflight > 0,
	}
}

func (m *Manager) notify(snap Snapshot) {
	m.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// cloneUser copies the profile so snapshot holders cannot mutate the
// session's record.
func cloneUser(u *colorwish.User) *colorwish.User {
	if u == nil {
		return nil
	}
	copied := *u
	return &copied
}
