package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"sitecms/internal/domain"
)

// ErrPlaintextDisabled is returned when a stored credential is not a bcrypt hash
// and plaintext comparison has been turned off.
var ErrPlaintextDisabled = errors.New("stored password is not hashed and plaintext comparison is disabled")

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// PasswordVerifier checks passwords against bcrypt hashes. Rows created before hashing
// was introduced hold plaintext; those are compared verbatim while AllowPlaintext is set.
type PasswordVerifier struct {
	cost           int
	allowPlaintext bool
	// OnPlaintextMatch, when set, is called after a plaintext credential matched.
	OnPlaintextMatch func()
}

// NewPasswordVerifier returns a PasswordVerifier hashing with the given bcrypt cost.
func NewPasswordVerifier(cost int, allowPlaintext bool) *PasswordVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordVerifier{cost: cost, allowPlaintext: allowPlaintext}
}

var _ domain.PasswordVerifier = (*PasswordVerifier)(nil)

// Hash returns the bcrypt hash of password.
func (v *PasswordVerifier) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare returns nil when password matches stored and domain.ErrInvalidPassword otherwise.
func (v *PasswordVerifier) Compare(stored, password string) error {
	if IsBcryptHash(stored) {
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.ErrInvalidPassword
		}
		if err != nil {
			return fmt.Errorf("compare password hash: %w", err)
		}
		return nil
	}
	if !v.allowPlaintext {
		return ErrPlaintextDisabled
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return domain.ErrInvalidPassword
	}
	if v.OnPlaintextMatch != nil {
		v.OnPlaintextMatch()
	}
	return nil
}

// IsBcryptHash reports whether s looks like a bcrypt hash.
func IsBcryptHash(s string) bool {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
