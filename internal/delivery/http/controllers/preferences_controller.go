package controllers

import (
	"log/slog"
	"net/http"
	"time"

	h "sitecms/internal/delivery/http/helpers"
	"sitecms/internal/delivery/http/middleware"
	"sitecms/internal/i18n"
)

const langCookieTTL = 365 * 24 * time.Hour

// LanguageRequest is the request body for PUT /api/preferences/language
type LanguageRequest struct {
	Lang string `json:"lang"`
}

// Validate implements Validator.
func (l LanguageRequest) Validate() []string {
	if l.Lang == "" {
		return []string{"lang is required"}
	}
	return nil
}

// LanguageResponse describes the active language.
type LanguageResponse struct {
	Lang      i18n.Lang   `json:"lang"`
	Code      string      `json:"code"`
	Supported []i18n.Lang `json:"supported"`
}

type PreferencesController struct {
	Logger       *slog.Logger
	Catalog      *i18n.Catalog
	SecureCookie bool
}

func NewPreferencesController(logger *slog.Logger, catalog *i18n.Catalog, secureCookie bool) *PreferencesController {
	return &PreferencesController{Logger: logger, Catalog: catalog, SecureCookie: secureCookie}
}

// GetLanguage godoc
// @Summary Get the active language
// @Description Resolved from ?lang=, the lang cookie, Accept-Language, then english.
// @Tags preferences
// @Produce json
// @Success 200 {object} LanguageResponse
// @Router /api/preferences/language [get]
func (c *PreferencesController) GetLanguage(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, languageResponse(middleware.PreferencesFromContext(r.Context()).Lang))
}

// SetLanguage godoc
// @Summary Set the preferred language
// @Description Stores the choice in the lang cookie. Accepts english, marathi, hindi or en, mr, hi.
// @Tags preferences
// @Accept json
// @Produce json
// @Param body body LanguageRequest true "Language"
// @Success 200 {object} LanguageResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Router /api/preferences/language [put]
func (c *PreferencesController) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req LanguageRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	lang, ok := i18n.Parse(req.Lang)
	if !ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, c.Catalog.Tctx(r.Context(), "language.unsupported"))
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.LangCookie,
		Value:    string(lang),
		Path:     "/",
		MaxAge:   int(langCookieTTL.Seconds()),
		Secure:   c.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	h.WriteJSON(w, http.StatusOK, languageResponse(lang))
}

func languageResponse(lang i18n.Lang) LanguageResponse {
	return LanguageResponse{Lang: lang, Code: lang.Code(), Supported: i18n.Supported}
}
