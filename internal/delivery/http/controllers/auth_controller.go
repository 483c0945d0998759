package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	h "sitecms/internal/delivery/http/helpers"
	"sitecms/internal/delivery/http/middleware"
	"sitecms/internal/domain"
	"sitecms/internal/i18n"
)

// LoginRequest is the request body for POST /api/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the response body for a successful POST /api/login
type LoginResponse struct {
	Message string              `json:"message"`
	User    *domain.UserProfile `json:"user"`
	// Token is a Bearer JWT for the write endpoints when they require authentication.
	Token string `json:"token,omitempty"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
	Catalog *i18n.Catalog
	// SessionTTL is the lifetime of the loggedIn cookie; zero makes it a browser-session cookie.
	SessionTTL   time.Duration
	SecureCookie bool
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, catalog *i18n.Catalog, sessionTTL time.Duration, secureCookie bool) *AuthController {
	return &AuthController{
		Logger:       logger,
		Service:      svc,
		Catalog:      catalog,
		SessionTTL:   sessionTTL,
		SecureCookie: secureCookie,
	}
}

// Login godoc
// @Summary Log in to the dashboard
// @Description Checks, in order, that the email is registered, the password matches and the user is an admin. On success sets the loggedIn cookie and returns the public user profile and a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 401 {object} helpers.APIError "code: unauthorized (not registered or invalid password)"
// @Failure 403 {object} helpers.APIError "code: forbidden (not an admin)"
// @Failure 429 {object} helpers.APIError "code: too_many_requests"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	prefs := middleware.PreferencesFromContext(ctx)
	res, err := c.Service.Login(ctx, domain.LoginAttempt{
		Email:     req.Email,
		Password:  req.Password,
		IP:        middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
		Language:  string(prefs.Lang),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, c.Catalog.Tctx(ctx, "login.missing_fields"))
		case errors.Is(err, domain.ErrNotRegistered):
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, c.Catalog.Tctx(ctx, "login.not_registered"))
		case errors.Is(err, domain.ErrInvalidPassword):
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, c.Catalog.Tctx(ctx, "login.invalid_password"))
		case errors.Is(err, domain.ErrNotAuthorized):
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, c.Catalog.Tctx(ctx, "login.not_admin"))
		default:
			c.Logger.ErrorContext(ctx, "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, c.Catalog.Tctx(ctx, "login.failed"))
		}
		return
	}

	http.SetCookie(w, c.sessionCookie("true", c.SessionTTL))
	h.WriteJSON(w, http.StatusOK, LoginResponse{
		Message: c.Catalog.Tctx(ctx, "login.success"),
		User:    res.User,
		Token:   res.Token,
	})
}

// Logout godoc
// @Summary Log out of the dashboard
// @Description Clears the loggedIn cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.MessageResponse
// @Router /api/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, c.sessionCookie("", -1))
	h.WriteJSON(w, http.StatusOK, h.MessageResponse{Message: c.Catalog.Tctx(r.Context(), "logout.success")})
}

// sessionCookie builds the loggedIn cookie. It is readable by the dashboard's scripts, which
// also set and clear it, so it is not HttpOnly.
func (c *AuthController) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.LoggedInCookie,
		Value:    value,
		Path:     "/",
		Secure:   c.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	switch {
	case ttl < 0:
		cookie.MaxAge = -1
	case ttl > 0:
		cookie.MaxAge = int(ttl.Seconds())
	}
	return cookie
}
