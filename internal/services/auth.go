package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"sitecms/internal/domain"
)

const alertTimeout = 15 * time.Second

// AuthConfig holds the collaborators and settings of the dashboard login.
type AuthConfig struct {
	Users       domain.SystemUserRepository
	Passwords   domain.PasswordVerifier
	Tokens      domain.TokenIssuer
	TokenExpiry time.Duration
	// Emails and LoginAlerts enable the sign-in alert; Emails may be nil when alerts are off.
	Emails      domain.EmailService
	LoginAlerts bool
	Logger      *slog.Logger
}

type authService struct {
	users       domain.SystemUserRepository
	passwords   domain.PasswordVerifier
	tokens      domain.TokenIssuer
	tokenExpiry time.Duration
	emails      domain.EmailService
	loginAlerts bool
	logger      *slog.Logger
	now         func() time.Time
	goFunc      func(func())
}

// NewAuthService creates the AuthService for the admin dashboard.
func NewAuthService(cfg AuthConfig) domain.AuthService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		users:       cfg.Users,
		passwords:   cfg.Passwords,
		tokens:      cfg.Tokens,
		tokenExpiry: cfg.TokenExpiry,
		emails:      cfg.Emails,
		loginAlerts: cfg.LoginAlerts && cfg.Emails != nil,
		logger:      logger,
		now:         time.Now,
		goFunc:      func(f func()) { go f() },
	}
}

// Login checks, in order: the user exists, the password matches, the user is an admin.
func (s *authService) Login(ctx context.Context, attempt domain.LoginAttempt) (*domain.LoginResult, error) {
	email := attempt.Email
	if email == "" || attempt.Password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotRegistered) {
			return nil, domain.ErrNotRegistered
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.passwords.Compare(user.Password, attempt.Password); err != nil {
		if !errors.Is(err, domain.ErrInvalidPassword) {
			s.logger.WarnContext(ctx, "password check failed", "user_id", user.ID, "err", err)
		}
		return nil, domain.ErrInvalidPassword
	}

	if !user.IsAdmin() {
		return nil, domain.ErrNotAuthorized
	}

	result := &domain.LoginResult{User: user.Profile()}
	if s.tokens != nil {
		token, err := s.tokens.Issue(strconv.FormatInt(user.ID, 10), user.Email, []string{user.Role}, s.tokenExpiry)
		if err != nil {
			return nil, fmt.Errorf("failed to issue token: %w", err)
		}
		result.Token = token
	}

	s.logger.InfoContext(ctx, "dashboard login", "user_id", user.ID)
	if s.loginAlerts {
		s.sendAlert(ctx, user, attempt)
	}
	return result, nil
}

func (s *authService) sendAlert(ctx context.Context, user *domain.SystemUser, attempt domain.LoginAttempt) {
	data := &domain.SignInAlertEmailData{
		Email:     user.Email,
		Name:      user.Name,
		IP:        attempt.IP,
		UserAgent: attempt.UserAgent,
		Language:  attempt.Language,
		At:        s.now(),
	}
	bg := context.WithoutCancel(ctx)
	s.goFunc(func() {
		sendCtx, cancel := context.WithTimeout(bg, alertTimeout)
		defer cancel()
		if err := s.emails.SendSignInAlert(sendCtx, data); err != nil {
			s.logger.ErrorContext(sendCtx, "sign-in alert failed", "user_id", user.ID, "err", err)
		}
	})
}
