package session

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// FileStorage persists the session as a single JSON document holding the
// token and user entries. Writes are atomic (temp file + fsync + rename), so
// a crash mid-write can never leave a user entry without its token.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// DefaultPath returns the conventional session file location under the
// user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "colorwish", "session.json"), nil
}

// NewFileStorage creates or opens session storage at the given path. An
// empty path selects DefaultPath. The parent directory is created with 0700
// permissions.
func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	return &FileStorage{path: path}, nil
}

// Path returns the session file path.
func (fs *FileStorage) Path() string {
	return fs.path
}

// Load reads the persisted session. A missing or empty file is a valid empty
// session, not an error.
func (fs *FileStorage) Load() (Session, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	f, err := os.Open(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("open session file: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return Session{}, fmt.Errorf("read session file: %w", err)
	}
	if len(data) == 0 {
		return Session{}, nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	return sess.normalize(), nil
}

// Save persists the session atomically with 0600 permissions. It refuses a
// user entry without a token.
func (fs *FileStorage) Save(sess Session) error {
	if sess.User != nil && sess.Token == "" {
		return ErrUserWithoutToken
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	tmpPath := fs.path + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write: %w", err)
	}

	// Fsync to ensure data is on disk before rename
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("fsync: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close: %w", err)
	}

	if err := os.Rename(tmpPath, fs.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename: %w", err)
	}

	return nil
}

// Clear removes the persisted session. Clearing an already-empty storage is
// a no-op.
func (fs *FileStorage) Clear() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
