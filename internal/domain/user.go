package domain

import (
	"context"
	"errors"
	"time"
)

// AdminRole is the role value a system user needs to sign in to the dashboard.
const AdminRole = "ADMIN"

// Sentinel errors for authentication. They are checked in this order: registration, password, role.
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrNotRegistered      = errors.New("not registered")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrDuplicateEmail     = errors.New("email already in use")
)

// SystemUser is a dashboard account. Password holds a bcrypt hash or, for legacy rows, plaintext.
type SystemUser struct {
	ID       int64
	Email    string
	Password string
	Name     string
	Role     string
}

// IsAdmin reports whether the user carries the admin marker.
func (u *SystemUser) IsAdmin() bool {
	return u.Role == AdminRole
}

// Profile returns the public fields of the user.
func (u *SystemUser) Profile() *UserProfile {
	return &UserProfile{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// UserProfile is the public part of a SystemUser kept in client-side session state.
// swagger:model UserProfile
type UserProfile struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// SystemUserRepository defines the interface for system user storage.
type SystemUserRepository interface {
	Create(ctx context.Context, user *SystemUser) error
	GetByEmail(ctx context.Context, email string) (*SystemUser, error)
	UpdatePassword(ctx context.Context, email, password string) error
}

// PasswordVerifier compares a supplied password with a stored credential.
// Compare returns ErrInvalidPassword on mismatch.
type PasswordVerifier interface {
	Hash(password string) (string, error)
	Compare(stored, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// LoginAttempt carries the submitted credentials and where they came from.
type LoginAttempt struct {
	Email     string
	Password  string
	IP        string
	UserAgent string
	Language  string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	User  *UserProfile
	Token string
}

// AuthService defines the dashboard authentication check.
type AuthService interface {
	Login(ctx context.Context, attempt LoginAttempt) (*LoginResult, error)
}
