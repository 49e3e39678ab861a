// Package secret turns internal identifiers into opaque QR tokens and hashes
// admin passwords.
package secret

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
)

const (
	nonceSize = 12
	tagSize   = 16
	keySize   = 32
)

// scrypt cost parameters match the Node.js scryptSync defaults so tokens
// printed before the Go rewrite keep decoding.
const (
	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

// Codec encrypts identifiers with AES-256-GCM. Tokens are
// base64url(nonce || tag || ciphertext) without padding, and the plaintext is
// wrapped in fixed salt and pepper markers.
type Codec struct {
	aead   cipher.AEAD
	salt   string
	pepper string
	rand   io.Reader
}

// NewCodec derives the key once; scrypt is deliberately slow.
func NewCodec(serverSecret, keySalt, salt, pepper string) (*Codec, error) {
	if serverSecret == "" {
		return nil, fmt.Errorf("codec secret must not be empty")
	}
	key, err := scrypt.Key([]byte(serverSecret), []byte(keySalt), scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to derive codec key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCMWithNonceSize(block, nonceSize)
	if err != nil {
		return nil, err
	}
	return &Codec{aead: aead, salt: salt, pepper: pepper, rand: rand.Reader}, nil
}

func (c *Codec) Encode(plaintext string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return "", fmt.Errorf("failed to read nonce: %w", err)
	}

	// Seal yields ciphertext || tag; the wire format puts the tag first.
	sealed := c.aead.Seal(nil, nonce, []byte(c.salt+plaintext+c.pepper), nil)
	ciphertext, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	out := make([]byte, 0, nonceSize+tagSize+len(ciphertext))
	out = append(out, nonce...)
	out = append(out, tag...)
	out = append(out, ciphertext...)
	return base64.RawURLEncoding.EncodeToString(out), nil
}

// Decode returns ErrMalformedToken, ErrTagMismatch or ErrMarkerMismatch on
// failure.
func (c *Codec) Decode(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		return "", fmt.Errorf("%w: %v", mobility_errors.ErrMalformedToken, err)
	}
	if len(raw) < nonceSize+tagSize {
		return "", mobility_errors.ErrMalformedToken
	}

	nonce := raw[:nonceSize]
	tag := raw[nonceSize : nonceSize+tagSize]
	ciphertext := raw[nonceSize+tagSize:]

	sealed := make([]byte, 0, len(ciphertext)+tagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", mobility_errors.ErrTagMismatch
	}

	s := string(plaintext)
	if len(s) < len(c.salt)+len(c.pepper) || !strings.HasPrefix(s, c.salt) || !strings.HasSuffix(s, c.pepper) {
		return "", mobility_errors.ErrMarkerMismatch
	}
	return s[len(c.salt) : len(s)-len(c.pepper)], nil
}
