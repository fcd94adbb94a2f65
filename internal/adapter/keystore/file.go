// Package keystore implements ports.SecureKeyStore as an encrypted file.
// The secret map is serialized to JSON and sealed with AES-256-GCM under a
// key derived from the configured passphrase with argon2id.
package keystore

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/argon2"
)

const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64MB
	argon2Threads = 4
	argon2KeyLen  = 32
	saltLen       = 16
)

// FileStore holds the wallet seed and unlock password in one encrypted
// file. All operations take the store lock; writes go through an atomic
// rename so a crash never leaves a torn file.
type FileStore struct {
	path       string
	passphrase []byte

	mu sync.Mutex
}

// NewFileStore creates a FileStore at path. The file is created on first
// SetItem.
func NewFileStore(path, passphrase string) (*FileStore, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("keystore passphrase must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating keystore directory: %w", err)
	}
	return &FileStore{path: path, passphrase: []byte(passphrase)}, nil
}

// GetItem returns the secret under key, or "" when absent.
func (s *FileStore) GetItem(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	secrets, err := s.load()
	if err != nil {
		return "", err
	}
	return secrets[key], nil
}

// SetItem stores the secret under key.
func (s *FileStore) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	secrets, err := s.load()
	if err != nil {
		return err
	}
	secrets[key] = value
	return s.save(secrets)
}

// load reads and decrypts the secret map. A missing file is an empty map.
func (s *FileStore) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading keystore: %w", err)
	}
	if len(raw) < saltLen {
		return nil, fmt.Errorf("keystore file truncated")
	}

	salt, sealed := raw[:saltLen], raw[saltLen:]
	aesGCM, err := s.cipher(salt)
	if err != nil {
		return nil, err
	}

	nonceSize := aesGCM.NonceSize()
	if len(sealed) < nonceSize {
		return nil, fmt.Errorf("keystore file truncated")
	}
	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypting keystore: %w", err)
	}

	var secrets map[string]string
	if err := json.Unmarshal(plaintext, &secrets); err != nil {
		return nil, fmt.Errorf("decoding keystore: %w", err)
	}
	return secrets, nil
}

// save encrypts and writes the secret map atomically.
func (s *FileStore) save(secrets map[string]string) error {
	plaintext, err := json.Marshal(secrets)
	if err != nil {
		return fmt.Errorf("encoding keystore: %w", err)
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("generating salt: %w", err)
	}

	aesGCM, err := s.cipher(salt)
	if err != nil {
		return err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("generating nonce: %w", err)
	}

	// File layout: salt | nonce | ciphertext.
	out := append(salt, aesGCM.Seal(nonce, nonce, plaintext, nil)...)

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, out, 0o600); err != nil {
		return fmt.Errorf("writing keystore: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing keystore: %w", err)
	}
	return nil
}

func (s *FileStore) cipher(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(s.passphrase, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return aesGCM, nil
}
