package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	h "sitecms/internal/delivery/http/helpers"
	"sitecms/internal/domain"
	"sitecms/internal/i18n"
)

// ContentController serves GET, POST, PUT and DELETE for one resource kind.
type ContentController[T domain.Record] struct {
	Logger     *slog.Logger
	Service    domain.ContentService[T]
	Catalog    *i18n.Catalog
	newPayload func() ContentPayload[T]
}

// NewMemberController returns the controller for /api/committee.
func NewMemberController(logger *slog.Logger, svc domain.ContentService[*domain.Member], catalog *i18n.Catalog) *ContentController[*domain.Member] {
	return &ContentController[*domain.Member]{
		Logger:     logger,
		Service:    svc,
		Catalog:    catalog,
		newPayload: func() ContentPayload[*domain.Member] { return &MemberRequest{} },
	}
}

// NewShowcaseController returns the controller for one slider or event resource.
func NewShowcaseController(logger *slog.Logger, svc domain.ContentService[*domain.Showcase], catalog *i18n.Catalog) *ContentController[*domain.Showcase] {
	return &ContentController[*domain.Showcase]{
		Logger:     logger,
		Service:    svc,
		Catalog:    catalog,
		newPayload: func() ContentPayload[*domain.Showcase] { return &ShowcaseRequest{} },
	}
}

// Kind returns the resource kind served.
func (c *ContentController[T]) Kind() domain.ResourceKind {
	return c.Service.Kind()
}

// Get godoc
// @Summary Get content records
// @Description With ?id= returns one record, otherwise all records ordered by id. Images are returned decompressed as data:image/jpeg;base64 URIs. One undecodable image fails the whole request.
// @Tags content
// @Produce json
// @Param id query int false "Record id"
// @Param lang query string false "Message language: english, marathi or hindi"
// @Success 200 {object} domain.Member "a record, or an array of records without id; showcase kinds return domain.Showcase"
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/committee [get]
// @Router /api/home-slider [get]
// @Router /api/home-events [get]
// @Router /api/upcoming-events [get]
// @Router /api/about-slider [get]
// @Router /api/about-events [get]
// @Router /api/event-page-events [get]
func (c *ContentController[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok, err := h.QueryID(r)
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, c.Catalog.Tctx(r.Context(), "request.invalid_id"))
		return
	}
	if ok {
		rec, err := c.Service.Get(r.Context(), id)
		if err != nil {
			c.writeError(w, r, "content.fetch_failed", err)
			return
		}
		h.WriteJSON(w, http.StatusOK, rec)
		return
	}
	recs, err := c.Service.List(r.Context())
	if err != nil {
		c.writeError(w, r, "content.fetch_failed", err)
		return
	}
	h.WriteJSON(w, http.StatusOK, recs)
}

// Create godoc
// @Summary Create a content record
// @Description Stores a record with an image already compressed by the dashboard. Returns the stored form.
// @Tags content
// @Accept json
// @Produce json
// @Param body body ShowcaseRequest true "Showcase fields; /api/committee takes MemberRequest"
// @Success 201 {object} domain.Showcase
// @Failure 400 {object} helpers.APIError "code: bad_request or invalid_image"
// @Failure 401 {object} helpers.APIError "code: unauthorized (API_AUTH_REQUIRED only)"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/committee [post]
// @Router /api/home-slider [post]
// @Router /api/home-events [post]
// @Router /api/upcoming-events [post]
// @Router /api/about-slider [post]
// @Router /api/about-events [post]
// @Router /api/event-page-events [post]
func (c *ContentController[T]) Create(w http.ResponseWriter, r *http.Request) {
	payload := c.newPayload()
	if !h.DecodeAndValidate(w, r, payload) {
		return
	}
	rec := payload.Record()
	rec.SetID(0)
	if err := c.Service.Create(r.Context(), rec); err != nil {
		c.writeError(w, r, "content.create_failed", err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, rec)
}

// Update godoc
// @Summary Replace a content record
// @Description Full-record update addressed by the id in the body.
// @Tags content
// @Accept json
// @Produce json
// @Param body body ShowcaseRequest true "id plus all fields; /api/committee takes MemberRequest"
// @Success 200 {object} domain.Showcase
// @Failure 400 {object} helpers.APIError "code: bad_request or invalid_image"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/committee [put]
// @Router /api/home-slider [put]
// @Router /api/home-events [put]
// @Router /api/upcoming-events [put]
// @Router /api/about-slider [put]
// @Router /api/about-events [put]
// @Router /api/event-page-events [put]
func (c *ContentController[T]) Update(w http.ResponseWriter, r *http.Request) {
	payload := c.newPayload()
	if !h.DecodeAndValidate(w, r, payload) {
		return
	}
	if payload.RecordID() == 0 {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, c.Catalog.Tctx(r.Context(), "request.missing_id"))
		return
	}
	rec := payload.Record()
	if err := c.Service.Update(r.Context(), rec); err != nil {
		c.writeError(w, r, "content.update_failed", err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rec)
}

// Delete godoc
// @Summary Delete a content record
// @Description The id comes from ?id= or from the JSON body {"id": n}; the query wins when both are present. Returns the deleted record in stored form.
// @Tags content
// @Accept json
// @Produce json
// @Param id query int false "Record id"
// @Param body body DeleteRequest false "Record id when not given in the query"
// @Success 200 {object} domain.Showcase
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /api/committee [delete]
// @Router /api/home-slider [delete]
// @Router /api/home-events [delete]
// @Router /api/upcoming-events [delete]
// @Router /api/about-slider [delete]
// @Router /api/about-events [delete]
// @Router /api/event-page-events [delete]
func (c *ContentController[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := deleteID(r)
	if err != nil {
		key := "request.invalid_id"
		if errors.Is(err, h.ErrMissingID) {
			key = "request.missing_id"
		}
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, c.Catalog.Tctx(r.Context(), key))
		return
	}
	rec, err := c.Service.Delete(r.Context(), id)
	if err != nil {
		c.writeError(w, r, "content.delete_failed", err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rec)
}

func deleteID(r *http.Request) (int64, error) {
	id, ok, err := h.QueryID(r)
	if ok {
		return id, err
	}
	var req DeleteRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, h.ErrMissingID
		}
		return 0, err
	}
	if req.ID == 0 {
		return 0, h.ErrMissingID
	}
	return int64(req.ID), nil
}

func (c *ContentController[T]) writeError(w http.ResponseWriter, r *http.Request, failKey string, err error) {
	ctx := r.Context()
	noun := c.Catalog.Tctx(ctx, "kind."+string(c.Kind()))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, c.Catalog.Tctx(ctx, "content.not_found", noun))
	case errors.Is(err, domain.ErrInvalidImage):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeInvalidImage, c.Catalog.Tctx(ctx, "content.invalid_image"))
	default:
		c.Logger.ErrorContext(ctx, "request failed", "path", r.URL.Path, "method", r.Method, "kind", c.Kind(), "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, c.Catalog.Tctx(ctx, failKey, noun))
	}
}
