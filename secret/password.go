package secret

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const DefaultPasswordCost = 12

// bcrypt only reads the first 72 bytes of its input.
const maxBcryptInput = 72

var ErrPasswordTooLong = errors.New("password too long")

// PasswordHasher hashes with bcrypt after appending a server-wide pepper.
// The peppered form matches admin records created before this service, so
// the password and pepper together must fit in bcrypt's 72-byte input.
type PasswordHasher struct {
	pepper string
	cost   int
}

func NewPasswordHasher(pepper string, cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordCost
	}
	return &PasswordHasher{pepper: pepper, cost: cost}
}

// MaxPasswordLength is the longest password, in bytes, this hasher accepts.
func (h *PasswordHasher) MaxPasswordLength() int {
	return max(maxBcryptInput-len(h.pepper), 0)
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	if len(password) > h.MaxPasswordLength() {
		return "", fmt.Errorf("%w: at most %d bytes", ErrPasswordTooLong, h.MaxPasswordLength())
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password+h.pepper), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify never errors: a malformed hash is a rejected password.
func (h *PasswordHasher) Verify(password, hash string) bool {
	if len(password) > h.MaxPasswordLength() {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+h.pepper)) == nil
}
