// Package credstore persists the single bearer token for the Airmates API
// across runs. The token is sealed at rest with XChaCha20-Poly1305 under a
// locally generated key; both files live in the user config dir with 0600
// permissions.
//
// The store is deliberately quiet: a failed save degrades to "log in again
// next launch", and a read that fails for any reason reports absence rather
// than an error.
package credstore

import (
	"crypto/rand"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	keyFileName   = "key.bin"
	tokenFileName = "token.bin"
)

// Store holds at most one token under a fixed slot. All operations are
// serialized behind a mutex so concurrent login/logout resolve to a clean
// last-writer-wins.
type Store struct {
	mu  sync.Mutex
	dir string
}

// New returns a Store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Save replaces any stored token with token. Failures are not surfaced.
func (s *Store) Save(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return
	}
	key, err := s.loadOrCreateKey()
	if err != nil {
		return
	}
	sealed, err := seal(key, []byte(token))
	if err != nil {
		return
	}

	// Replace semantics: remove the old slot, then write the new value via
	// temp file + rename so no partial token is ever observable.
	_ = os.Remove(s.tokenPath())
	tmp, err := os.CreateTemp(s.dir, "token-*")
	if err != nil {
		return
	}
	name := tmp.Name()
	if _, err := tmp.Write(sealed); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return
	}
	if err := os.Chmod(name, 0o600); err != nil {
		_ = os.Remove(name)
		return
	}
	_ = os.Rename(name, s.tokenPath())
}

// Load returns the stored token if present and readable. Absence is not an
// error; a sealed blob that fails to open (tampering, lost key) also reads
// as absent.
func (s *Store) Load() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := os.ReadFile(s.keyPath())
	if err != nil || len(key) != chacha20poly1305.KeySize {
		return "", false
	}
	sealed, err := os.ReadFile(s.tokenPath())
	if err != nil {
		return "", false
	}
	token, err := open(key, sealed)
	if err != nil {
		return "", false
	}
	return string(token), true
}

// Delete removes the stored token. No-op if none exists.
func (s *Store) Delete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.Remove(s.tokenPath())
}

func (s *Store) keyPath() string   { return filepath.Join(s.dir, keyFileName) }
func (s *Store) tokenPath() string { return filepath.Join(s.dir, tokenFileName) }

// loadOrCreateKey reads the sealing key, generating one on first use.
// Caller holds s.mu.
func (s *Store) loadOrCreateKey() ([]byte, error) {
	key, err := os.ReadFile(s.keyPath())
	if err == nil && len(key) == chacha20poly1305.KeySize {
		return key, nil
	}
	key = make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	if err := os.WriteFile(s.keyPath(), key, 0o600); err != nil {
		return nil, err
	}
	return key, nil
}
