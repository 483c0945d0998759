package controllers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitecms/internal/delivery/http/helpers"
	"sitecms/internal/delivery/http/middleware"
	"sitecms/internal/domain"
	"sitecms/internal/i18n"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var testCatalog = i18n.MustLoad()

// fakeContentService implements domain.ContentService for handler tests.
type fakeContentService[T domain.Record] struct {
	kind       domain.ResourceKind
	getResult  T
	listResult []T
	deleted    T
	err        error
	lastID     int64
	lastRec    T
	calls      []string
}

func (f *fakeContentService[T]) Kind() domain.ResourceKind { return f.kind }

func (f *fakeContentService[T]) Get(ctx context.Context, id int64) (T, error) {
	f.calls = append(f.calls, "get")
	f.lastID = id
	return f.getResult, f.err
}

func (f *fakeContentService[T]) List(ctx context.Context) ([]T, error) {
	f.calls = append(f.calls, "list")
	return f.listResult, f.err
}

func (f *fakeContentService[T]) Create(ctx context.Context, rec T) error {
	f.calls = append(f.calls, "create")
	f.lastRec = rec
	if f.err == nil {
		rec.SetID(42)
	}
	return f.err
}

func (f *fakeContentService[T]) Update(ctx context.Context, rec T) error {
	f.calls = append(f.calls, "update")
	f.lastRec = rec
	return f.err
}

func (f *fakeContentService[T]) Delete(ctx context.Context, id int64) (T, error) {
	f.calls = append(f.calls, "delete")
	f.lastID = id
	return f.deleted, f.err
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIError {
	t.Helper()
	var body helpers.APIError
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

func withLang(req *http.Request, lang i18n.Lang) *http.Request {
	return req.WithContext(middleware.WithPreferences(req.Context(), middleware.Preferences{Lang: lang}))
}

func TestContentController_Get(t *testing.T) {
	member := &domain.Member{ID: 3, Name: "Asha", MName: "आशा", Position: "Secretary", MPosition: "सचिव", ImageURL: "data:image/jpeg;base64,AAAA"}

	tests := []struct {
		name       string
		url        string
		svc        *fakeContentService[*domain.Member]
		lang       i18n.Lang
		wantStatus int
		wantCode   string
		wantError  string
		wantCall   string
	}{
		{
			name:       "single record",
			url:        "/api/committee?id=3",
			svc:        &fakeContentService[*domain.Member]{kind: domain.KindCommitteeMember, getResult: member},
			wantStatus: http.StatusOK,
			wantCall:   "get",
		},
		{
			name:       "list",
			url:        "/api/committee",
			svc:        &fakeContentService[*domain.Member]{kind: domain.KindCommitteeMember, listResult: []*domain.Member{member}},
			wantStatus: http.StatusOK,
			wantCall:   "list",
		},
		{
			name:       "not found",
			url:        "/api/committee?id=9",
			svc:        &fakeContentService[*domain.Member]{kind: domain.KindCommitteeMember, err: fmt.Errorf("get: %w", domain.ErrNotFound)},
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
			wantError:  "Member not found",
			wantCall:   "get",
		},
		{
			name:       "not found in marathi",
			url:        "/api/committee?id=9",
			svc:        &fakeContentService[*domain.Member]{kind: domain.KindCommitteeMember, err: domain.ErrNotFound},
			lang:       i18n.Marathi,
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
			wantError:  "सदस्य सापडले नाही",
			wantCall:   "get",
		},
		{
			name:       "invalid id",
			url:        "/api/committee?id=abc",
			svc:        &fakeContentService[*domain.Member]{kind: domain.KindCommitteeMember},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "codec failure fails the listing",
			url:        "/api/committee",
			svc:        &fakeContentService[*domain.Member]{kind: domain.KindCommitteeMember, err: fmt.Errorf("decompress: %w", domain.ErrImageCodec)},
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
			wantError:  "Failed to fetch Member records",
			wantCall:   "list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewMemberController(testLogger, tt.svc, testCatalog)
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.lang != "" {
				req = withLang(req, tt.lang)
			}
			rr := httptest.NewRecorder()
			ctrl.Get(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCall != "" {
				assert.Equal(t, []string{tt.wantCall}, tt.svc.calls)
			} else {
				assert.Empty(t, tt.svc.calls)
			}
			if tt.wantCode != "" {
				body := decodeError(t, rr)
				assert.Equal(t, tt.wantCode, body.Code)
				if tt.wantError != "" {
					assert.Equal(t, tt.wantError, body.Error)
				}
				return
			}
			if tt.wantCall == "list" {
				var got []domain.Member
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, []domain.Member{*member}, got)
			} else {
				var got domain.Member
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, *member, got)
				assert.Equal(t, int64(3), tt.svc.lastID)
			}
		})
	}
}

func TestContentController_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
		wantRec    *domain.Showcase
	}{
		{
			name:       "dashboard field names",
			body:       `{"english_title":"Diwali","marathi_title":"दिवाळी","image":"data:image/jpeg;base64,eJw="}`,
			wantStatus: http.StatusCreated,
			wantRec:    &domain.Showcase{ID: 42, Title: "Diwali", MTitle: "दिवाळी", ImageURL: "data:image/jpeg;base64,eJw="},
		},
		{
			name:       "stored field names as aliases",
			body:       `{"title":"Diwali","m_title":"दिवाळी","image_url":"data:image/jpeg;base64,eJw="}`,
			wantStatus: http.StatusCreated,
			wantRec:    &domain.Showcase{ID: 42, Title: "Diwali", MTitle: "दिवाळी", ImageURL: "data:image/jpeg;base64,eJw="},
		},
		{
			name:       "padded titles kept as sent",
			body:       `{"english_title":" Diwali ","marathi_title":"दिवाळी\n","title":"ignored","image":"data:image/jpeg;base64,eJw="}`,
			wantStatus: http.StatusCreated,
			wantRec:    &domain.Showcase{ID: 42, Title: " Diwali ", MTitle: "दिवाळी\n", ImageURL: "data:image/jpeg;base64,eJw="},
		},
		{
			name:       "blank primary name falls back to alias",
			body:       `{"english_title":"  ","title":"Diwali ","marathi_title":"दिवाळी","image":"x"}`,
			wantStatus: http.StatusCreated,
			wantRec:    &domain.Showcase{ID: 42, Title: "Diwali ", MTitle: "दिवाळी", ImageURL: "x"},
		},
		{
			name:       "client id ignored on create",
			body:       `{"id":9,"english_title":"a","marathi_title":"b","image":"c"}`,
			wantStatus: http.StatusCreated,
			wantRec:    &domain.Showcase{ID: 42, Title: "a", MTitle: "b", ImageURL: "c"},
		},
		{
			name:       "missing marathi title",
			body:       `{"english_title":"Diwali","image":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "missing image",
			body:       `{"english_title":"Diwali","marathi_title":"दिवाळी"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"english_title":"a","marathi_title":"b","image":"c","hindi_title":"d"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "image not compressed",
			body:       `{"english_title":"a","marathi_title":"b","image":"c"}`,
			svcErr:     fmt.Errorf("home-slider image: %w", domain.ErrInvalidImage),
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeInvalidImage,
		},
		{
			name:       "repository failure",
			body:       `{"english_title":"a","marathi_title":"b","image":"c"}`,
			svcErr:     sql.ErrConnDone,
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeContentService[*domain.Showcase]{kind: domain.KindHomeSlider, err: tt.svcErr}
			ctrl := NewShowcaseController(testLogger, svc, testCatalog)
			rr := httptest.NewRecorder()
			ctrl.Create(rr, httptest.NewRequest(http.MethodPost, "/api/home-slider", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rr).Code)
				return
			}
			var got domain.Showcase
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
			assert.Equal(t, *tt.wantRec, got)
		})
	}
}

func TestContentController_InvalidImageNamesFormats(t *testing.T) {
	svc := &fakeContentService[*domain.Showcase]{kind: domain.KindAboutSlider, err: fmt.Errorf("about-slider image: %w", domain.ErrInvalidImage)}
	ctrl := NewShowcaseController(testLogger, svc, testCatalog)
	rr := httptest.NewRecorder()
	ctrl.Create(rr, httptest.NewRequest(http.MethodPost, "/api/about-slider",
		strings.NewReader(`{"english_title":"a","marathi_title":"b","image":"data:image/svg+xml;base64,eJw="}`)))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, helpers.ErrCodeInvalidImage, body.Code)
	for _, format := range []string{"JPEG", "PNG", "GIF", "WebP", "BMP"} {
		assert.Contains(t, body.Error, format)
	}
}

func TestContentController_CreateMember(t *testing.T) {
	svc := &fakeContentService[*domain.Member]{kind: domain.KindCommitteeMember}
	ctrl := NewMemberController(testLogger, svc, testCatalog)
	body := `{"name":" Asha ","m_name":"आशा\n","position":"President ","m_position":"\tअध्यक्ष","image":"img"}`
	rr := httptest.NewRecorder()
	ctrl.Create(rr, httptest.NewRequest(http.MethodPost, "/api/committee", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rr.Code)
	want := &domain.Member{ID: 42, Name: " Asha ", MName: "आशा\n", Position: "President ", MPosition: "\tअध्यक्ष", ImageURL: "img"}
	assert.Equal(t, want, svc.lastRec, "text fields are stored as sent")
	var got domain.Member
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, *want, got)

	rr = httptest.NewRecorder()
	ctrl.Create(rr, httptest.NewRequest(http.MethodPost, "/api/committee",
		strings.NewReader(`{"name":"  ","m_name":"आशा","position":"P","m_position":"प","image":"img"}`)))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decodeError(t, rr).Error, "name is required")

	rr = httptest.NewRecorder()
	ctrl.Create(rr, httptest.NewRequest(http.MethodPost, "/api/committee", strings.NewReader(`{"name":"Asha","image":"img"}`)))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	body2 := decodeError(t, rr)
	assert.Contains(t, body2.Error, "m_name is required")
	assert.Contains(t, body2.Error, "m_position is required")
}

func TestContentController_Update(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{"success", `{"id":5,"english_title":"a","marathi_title":"b","image":"c"}`, nil, http.StatusOK, ""},
		{"string id", `{"id":"5","english_title":"a","marathi_title":"b","image":"c"}`, nil, http.StatusOK, ""},
		{"missing id", `{"english_title":"a","marathi_title":"b","image":"c"}`, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"bad id", `{"id":"x","english_title":"a","marathi_title":"b","image":"c"}`, nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"absent record", `{"id":5,"english_title":"a","marathi_title":"b","image":"c"}`, domain.ErrNotFound, http.StatusNotFound, helpers.ErrCodeNotFound},
		{"db failure", `{"id":5,"english_title":"a","marathi_title":"b","image":"c"}`, sql.ErrConnDone, http.StatusInternalServerError, helpers.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeContentService[*domain.Showcase]{kind: domain.KindUpcomingEvent, err: tt.svcErr}
			ctrl := NewShowcaseController(testLogger, svc, testCatalog)
			rr := httptest.NewRecorder()
			ctrl.Update(rr, httptest.NewRequest(http.MethodPut, "/api/upcoming-events", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rr).Code)
				return
			}
			assert.Equal(t, &domain.Showcase{ID: 5, Title: "a", MTitle: "b", ImageURL: "c"}, svc.lastRec)
		})
	}
}

func TestContentController_Delete(t *testing.T) {
	deleted := &domain.Showcase{ID: 4, Title: "a", MTitle: "b", ImageURL: "c"}

	tests := []struct {
		name       string
		url        string
		body       string
		svcErr     error
		wantStatus int
		wantID     int64
		wantCode   string
	}{
		{"query id", "/api/about-events?id=4", "", nil, http.StatusOK, 4, ""},
		{"body id", "/api/about-events", `{"id":4}`, nil, http.StatusOK, 4, ""},
		{"query wins over body", "/api/about-events?id=4", `{"id":8}`, nil, http.StatusOK, 4, ""},
		{"missing id", "/api/about-events", "", nil, http.StatusBadRequest, 0, helpers.ErrCodeBadRequest},
		{"empty body object", "/api/about-events", `{}`, nil, http.StatusBadRequest, 0, helpers.ErrCodeBadRequest},
		{"invalid query id", "/api/about-events?id=-1", "", nil, http.StatusBadRequest, 0, helpers.ErrCodeBadRequest},
		{"malformed body", "/api/about-events", `{"id":`, nil, http.StatusBadRequest, 0, helpers.ErrCodeBadRequest},
		{"absent record", "/api/about-events?id=4", "", domain.ErrNotFound, http.StatusNotFound, 4, helpers.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeContentService[*domain.Showcase]{kind: domain.KindAboutEvent, deleted: deleted, err: tt.svcErr}
			ctrl := NewShowcaseController(testLogger, svc, testCatalog)
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			rr := httptest.NewRecorder()
			ctrl.Delete(rr, httptest.NewRequest(http.MethodDelete, tt.url, body))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantID, svc.lastID)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rr).Code)
				return
			}
			var got domain.Showcase
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
			assert.Equal(t, *deleted, got)
		})
	}
}
