// Package sessionstore persists the active session across process restarts.
// The session is written as a small versioned JSON blob so the format can
// evolve without breaking old files. A missing or unreadable blob simply
// means no session; it is never treated as a hard error.
package sessionstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// blobVersion is the current on-disk format version. Readers ignore blobs
// with a version they do not understand.
const blobVersion = 1

// Snapshot is the persisted shape of an active session.
type Snapshot struct {
	// EmployeeID is the ULID of the signed-in employee
	EmployeeID string `json:"employeeId"`

	// Token is the bearer token issued at sign-in
	Token string `json:"token,omitempty"`
}

type blob struct {
	V       int      `json:"v"`
	Session Snapshot `json:"session"`
}

// FileStore keeps the session snapshot in a single file on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path. The parent
// directory is created if it does not exist.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("sessionstore: path must not be empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("sessionstore: create directory: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

// Save writes the snapshot, replacing any previous one. The write goes
// through a temp file and rename so a crash cannot leave a half-written blob.
func (fs *FileStore) Save(snap Snapshot) error {
	data, err := json.Marshal(blob{V: blobVersion, Session: snap})
	if err != nil {
		return fmt.Errorf("sessionstore: encode: %w", err)
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("sessionstore: write: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("sessionstore: rename: %w", err)
	}
	return nil
}

// Load returns the persisted snapshot, or ok=false when there is none.
// Corrupt or unrecognized blobs count as absent, not as errors: the worst
// outcome of a bad blob is that the user signs in again.
func (fs *FileStore) Load() (Snapshot, bool) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return Snapshot{}, false
	}

	var b blob
	if err := json.Unmarshal(data, &b); err != nil {
		return Snapshot{}, false
	}
	if b.V != blobVersion || b.Session.EmployeeID == "" {
		return Snapshot{}, false
	}
	return b.Session, true
}

// Clear removes the persisted snapshot. Clearing an absent blob is not an error.
func (fs *FileStore) Clear() error {
	if err := os.Remove(fs.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("sessionstore: remove: %w", err)
	}
	return nil
}
