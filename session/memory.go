package session

import "sync"

// MemoryStore is a thread-safe in-memory Storage. It backs tests and
// ephemeral sessions that should not survive the process.
type MemoryStore struct {
	mu   sync.RWMutex
	sess Session
}

// NewMemoryStore creates a new empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored session, or an empty one.
func (m *MemoryStore) Load() (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sess.normalize(), nil
}

// Save stores the session. It refuses a user entry without a token.
func (m *MemoryStore) Save(sess Session) error {
	if sess.User != nil && sess.Token == "" {
		return ErrUserWithoutToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = sess
	return nil
}

// Clear drops the stored session.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = Session{}
	return nil
}
