package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// ErrKeyUnavailable is returned when no master key is configured. Callers
// must not conflate this with a record not being found.
var ErrKeyUnavailable = errors.New("encryption key unavailable")

const (
	saltLength       = 32
	pbkdf2Iterations = 4096
	derivedKeyLength = 32 // AES-256
)

// SaltSource produces per-record salts. Injectable so tests can supply a
// deterministic source; salts are generated once at record creation and
// never regenerated.
type SaltSource interface {
	Salt() (string, error)
}

const saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

type systemSaltSource struct{}

// NewSystemSaltSource returns a SaltSource backed by crypto/rand.
func NewSystemSaltSource() SaltSource {
	return systemSaltSource{}
}

func (systemSaltSource) Salt() (string, error) {
	out := make([]byte, saltLength)
	idx := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, idx); err != nil {
		return "", fmt.Errorf("failed to read random salt: %w", err)
	}
	for i, b := range idx {
		out[i] = saltAlphabet[int(b)%len(saltAlphabet)]
	}
	return string(out), nil
}

// Cipher encrypts and decrypts secret fields under a master key combined
// with a per-record salt. The plaintext is never persisted.
type Cipher struct {
	master []byte
}

// NewCipher wraps a master key. An empty key is permitted at construction;
// any use of the cipher then fails with ErrKeyUnavailable.
func NewCipher(masterKey string) *Cipher {
	if masterKey == "" {
		return &Cipher{}
	}
	return &Cipher{master: []byte(masterKey)}
}

func (c *Cipher) gcm(salt string) (cipher.AEAD, error) {
	if len(c.master) == 0 {
		return nil, ErrKeyUnavailable
	}
	key := pbkdf2.Key(c.master, []byte(salt), pbkdf2Iterations, derivedKeyLength, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

// Encrypt seals plaintext under the key derived from the record's salt. The
// nonce is prepended to the ciphertext and the whole blob base64-encoded.
func (c *Cipher) Encrypt(plaintext, salt string) (string, error) {
	gcm, err := c.gcm(salt)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. A garbled blob or wrong key surfaces as an
// authentication failure from GCM.
func (c *Cipher) Decrypt(encoded, salt string) (string, error) {
	gcm, err := c.gcm(salt)
	if err != nil {
		return "", err
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}
	if len(raw) < gcm.NonceSize() {
		return "", fmt.Errorf("ciphertext shorter than nonce")
	}
	nonce, sealed := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}
	return string(plain), nil
}
