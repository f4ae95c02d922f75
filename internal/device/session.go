package device

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SessionFile keeps the cloud session cookie between invocations.
type SessionFile struct {
	path string
}

// NewSessionFile stores the session at path.
func NewSessionFile(path string) *SessionFile {
	return &SessionFile{path: path}
}

// Load returns the saved session, empty when none was saved.
func (f *SessionFile) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session: read: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the session readable by the owner only. An empty value clears
// the file.
func (f *SessionFile) Save(value string) error {
	if value == "" {
		return f.Clear()
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("session: mkdir: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(value+"\n"), 0o600); err != nil {
		return fmt.Errorf("session: write: %w", err)
	}
	return nil
}

// Clear removes the saved session.
func (f *SessionFile) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: remove: %w", err)
	}
	return nil
}
