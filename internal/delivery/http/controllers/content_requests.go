package controllers

import (
	"strings"

	h "sitecms/internal/delivery/http/helpers"
	"sitecms/internal/domain"
)

// ContentPayload is a write request for one resource kind.
type ContentPayload[T domain.Record] interface {
	h.Validator
	// RecordID returns the id named in the body, or 0.
	RecordID() int64
	// Record builds the entity to store.
	Record() T
}

// MemberRequest is the request body for POST and PUT /api/committee.
type MemberRequest struct {
	ID        h.FlexibleID `json:"id,omitempty"`
	Name      string       `json:"name"`
	MName     string       `json:"m_name"`
	Position  string       `json:"position"`
	MPosition string       `json:"m_position"`
	// Image is the compressed data URI produced by the dashboard.
	Image string `json:"image"`
	// ImageURL is accepted as an alias of Image.
	ImageURL string `json:"image_url,omitempty"`
}

// Validate implements Validator.
func (m *MemberRequest) Validate() []string {
	var errs []string
	errs = required(errs, "name", m.Name)
	errs = required(errs, "m_name", m.MName)
	errs = required(errs, "position", m.Position)
	errs = required(errs, "m_position", m.MPosition)
	errs = required(errs, "image", m.image())
	return errs
}

func (m *MemberRequest) RecordID() int64 { return int64(m.ID) }

// Record keeps text fields exactly as sent; blank checks happen in Validate only.
func (m *MemberRequest) Record() *domain.Member {
	rec := domain.NewMember(m.Name, m.MName, m.Position, m.MPosition, m.image())
	rec.ID = int64(m.ID)
	return rec
}

func (m *MemberRequest) image() string {
	return firstNonBlank(m.Image, m.ImageURL)
}

// ShowcaseRequest is the request body for POST and PUT on slider and event resources.
// The dashboard sends english_title and marathi_title; title and m_title are accepted as aliases.
type ShowcaseRequest struct {
	ID           h.FlexibleID `json:"id,omitempty"`
	EnglishTitle string       `json:"english_title,omitempty"`
	MarathiTitle string       `json:"marathi_title,omitempty"`
	Title        string       `json:"title,omitempty"`
	MTitle       string       `json:"m_title,omitempty"`
	Image        string       `json:"image"`
	ImageURL     string       `json:"image_url,omitempty"`
}

// Validate implements Validator.
func (s *ShowcaseRequest) Validate() []string {
	var errs []string
	errs = required(errs, "english_title", s.title())
	errs = required(errs, "marathi_title", s.mTitle())
	errs = required(errs, "image", s.image())
	return errs
}

func (s *ShowcaseRequest) RecordID() int64 { return int64(s.ID) }

func (s *ShowcaseRequest) Record() *domain.Showcase {
	rec := domain.NewShowcase(s.title(), s.mTitle(), s.image())
	rec.ID = int64(s.ID)
	return rec
}

func (s *ShowcaseRequest) title() string  { return firstNonBlank(s.EnglishTitle, s.Title) }
func (s *ShowcaseRequest) mTitle() string { return firstNonBlank(s.MarathiTitle, s.MTitle) }
func (s *ShowcaseRequest) image() string  { return firstNonBlank(s.Image, s.ImageURL) }

// DeleteRequest is the optional JSON body of DELETE requests.
type DeleteRequest struct {
	ID h.FlexibleID `json:"id"`
}

func required(errs []string, field, value string) []string {
	if strings.TrimSpace(value) == "" {
		return append(errs, field+" is required")
	}
	return errs
}

// firstNonBlank returns the first value that is not blank, unmodified.
func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
