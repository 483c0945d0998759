package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitecms/internal/delivery/http/helpers"
	"sitecms/internal/delivery/http/middleware"
	"sitecms/internal/domain"
	"sitecms/internal/i18n"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	result      *domain.LoginResult
	err         error
	lastAttempt domain.LoginAttempt
}

func (f *fakeAuthService) Login(ctx context.Context, attempt domain.LoginAttempt) (*domain.LoginResult, error) {
	f.lastAttempt = attempt
	return f.result, f.err
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthController_Login(t *testing.T) {
	profile := &domain.UserProfile{ID: 1, Email: "admin@example.org", Name: "Admin", Role: domain.AdminRole}

	tests := []struct {
		name       string
		body       string
		svc        *fakeAuthService
		lang       i18n.Lang
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{
			name:       "success",
			body:       `{"email":"admin@example.org","password":"s3cret"}`,
			svc:        &fakeAuthService{result: &domain.LoginResult{User: profile, Token: "jwt"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing fields",
			body:       `{"email":"","password":""}`,
			svc:        &fakeAuthService{err: domain.ErrMissingCredentials},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
			wantError:  "Email and password are required",
		},
		{
			name:       "not registered",
			body:       `{"email":"x@example.org","password":"p"}`,
			svc:        &fakeAuthService{err: domain.ErrNotRegistered},
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeUnauthorized,
			wantError:  "You are not a registered user",
		},
		{
			name:       "invalid password",
			body:       `{"email":"admin@example.org","password":"p"}`,
			svc:        &fakeAuthService{err: domain.ErrInvalidPassword},
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeUnauthorized,
			wantError:  "Invalid password",
		},
		{
			name:       "not admin",
			body:       `{"email":"editor@example.org","password":"p"}`,
			svc:        &fakeAuthService{err: domain.ErrNotAuthorized},
			wantStatus: http.StatusForbidden,
			wantCode:   helpers.ErrCodeForbidden,
			wantError:  "You are not an admin",
		},
		{
			name:       "not admin in hindi",
			body:       `{"email":"editor@example.org","password":"p"}`,
			svc:        &fakeAuthService{err: domain.ErrNotAuthorized},
			lang:       i18n.Hindi,
			wantStatus: http.StatusForbidden,
			wantCode:   helpers.ErrCodeForbidden,
			wantError:  "आप व्यवस्थापक नहीं हैं",
		},
		{
			name:       "service failure",
			body:       `{"email":"admin@example.org","password":"p"}`,
			svc:        &fakeAuthService{err: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			svc:        &fakeAuthService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(testLogger, tt.svc, testCatalog, 24*time.Hour, true)
			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body))
			req.Header.Set("User-Agent", "test-agent")
			req.RemoteAddr = "192.0.2.10:1234"
			if tt.lang != "" {
				req = withLang(req, tt.lang)
			}
			rr := httptest.NewRecorder()
			ctrl.Login(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			cookie := findCookie(rr, middleware.LoggedInCookie)
			if tt.wantCode != "" {
				assert.Nil(t, cookie, "failed logins must not set the session cookie")
				body := decodeError(t, rr)
				assert.Equal(t, tt.wantCode, body.Code)
				if tt.wantError != "" {
					assert.Equal(t, tt.wantError, body.Error)
				}
				return
			}

			var resp LoginResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "Login successful", resp.Message)
			assert.Equal(t, profile, resp.User)
			assert.Equal(t, "jwt", resp.Token)
			assert.NotContains(t, rr.Body.String(), "password")

			require.NotNil(t, cookie)
			assert.Equal(t, "true", cookie.Value)
			assert.Equal(t, "/", cookie.Path)
			assert.True(t, cookie.Secure)
			assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)

			assert.Equal(t, "admin@example.org", tt.svc.lastAttempt.Email)
			assert.Equal(t, "192.0.2.10", tt.svc.lastAttempt.IP)
			assert.Equal(t, "test-agent", tt.svc.lastAttempt.UserAgent)
			assert.Equal(t, "english", tt.svc.lastAttempt.Language)
		})
	}
}

func TestAuthController_Logout(t *testing.T) {
	ctrl := NewAuthController(testLogger, &fakeAuthService{}, testCatalog, 0, false)
	rr := httptest.NewRecorder()
	ctrl.Logout(rr, httptest.NewRequest(http.MethodPost, "/api/logout", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	cookie := findCookie(rr, middleware.LoggedInCookie)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestAuthController_LoginRecordsPeerAddress(t *testing.T) {
	proxies, err := middleware.ParseTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		remote string
		want   string
	}{
		{"untrusted peer", "192.0.2.10:1234", "192.0.2.10"},
		{"trusted proxy", "10.1.1.1:1234", "203.0.113.99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAuthService{result: &domain.LoginResult{User: &domain.UserProfile{ID: 1}}}
			ctrl := NewAuthController(testLogger, svc, testCatalog, time.Hour, false)
			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"a@b.c","password":"x"}`))
			req.RemoteAddr = tt.remote
			req.Header.Set("X-Forwarded-For", "203.0.113.99")

			rr := httptest.NewRecorder()
			middleware.RealIP(proxies, http.HandlerFunc(ctrl.Login)).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.want, svc.lastAttempt.IP)
		})
	}
}
