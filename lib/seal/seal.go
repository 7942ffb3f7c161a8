// Package seal turns small string maps into opaque, tamper-evident tokens.
//
// It backs the form stash: rejected submissions can be carried across a
// redirect without a server-side session. Two modes are supported:
//   - Signed (default): msgpack + HMAC-SHA256, visible but tamper-proof
//   - Sealed: AES-256-GCM, fully opaque
package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors for token decoding.
var (
	ErrInvalidFormat    = errors.New("seal: invalid token format")
	ErrSignatureInvalid = errors.New("seal: signature verification failed")
	ErrDecryptFailed    = errors.New("seal: decryption failed")
)

// sigLen is the number of HMAC-SHA256 bytes appended to signed tokens.
// 128 bits keeps tokens short while staying far beyond forgeable.
const sigLen = 16

// Sealer signs and seals string maps under one key.
type Sealer struct {
	key []byte
	gcm cipher.AEAD
}

// New creates a Sealer from key. Keys of any length are accepted; anything
// that is not exactly 32 bytes is first compressed through SHA-256 so the
// cipher always sees an AES-256 key.
func New(key []byte) (*Sealer, error) {
	if len(key) != 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Sealer{
		key: key,
		gcm: gcm,
	}, nil
}

// Sign encodes values into a signed, visible token: base64(msgpack) plus a
// dot-separated signature. The content is readable by anyone who decodes
// the base64; only tampering is detectable.
func (s *Sealer) Sign(values map[string]string) (string, error) {
	packed, err := msgpack.Marshal(values)
	if err != nil {
		return "", err
	}

	b64 := base64.RawURLEncoding.EncodeToString(packed)
	mac := hmac.New(sha256.New, s.key)
	mac.Write(packed)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:sigLen])
	return b64 + "." + sig, nil
}

// Verify checks a signed token and returns its map. Returns
// ErrInvalidFormat for anything not produced by Sign and
// ErrSignatureInvalid when the content was altered.
func (s *Sealer) Verify(token string) (map[string]string, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: missing signature", ErrInvalidFormat)
	}

	packed, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	mac := hmac.New(sha256.New, s.key)
	mac.Write(packed)
	if !hmac.Equal(sig, mac.Sum(nil)[:sigLen]) {
		return nil, ErrSignatureInvalid
	}

	return unpack(packed)
}

// Seal encrypts values into an opaque token using AES-256-GCM. The nonce is
// prepended to the ciphertext before encoding.
func (s *Sealer) Seal(values map[string]string) (string, error) {
	packed, err := msgpack.Marshal(values)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	ciphertext := s.gcm.Seal(nonce, nonce, packed, nil)
	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

// Open decrypts a sealed token and returns its map. Returns
// ErrInvalidFormat for undecodable input and ErrDecryptFailed when the
// ciphertext does not authenticate, which covers both tampering and a
// wrong key.
func (s *Sealer) Open(token string) (map[string]string, error) {
	ciphertext, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if len(ciphertext) < s.gcm.NonceSize() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrInvalidFormat)
	}

	nonce := ciphertext[:s.gcm.NonceSize()]
	packed, err := s.gcm.Open(nil, nonce, ciphertext[s.gcm.NonceSize():], nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}

	return unpack(packed)
}

func unpack(packed []byte) (map[string]string, error) {
	var values map[string]string
	if err := msgpack.Unmarshal(packed, &values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return values, nil
}
