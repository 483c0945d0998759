package domain

import (
	"context"
	"errors"
)

// Sentinel errors for content operations.
var (
	ErrNotFound     = errors.New("not found")
	ErrImageCodec   = errors.New("image codec failure")
	ErrInvalidImage = errors.New("invalid image payload")
)

// ResourceKind identifies one content type. The value doubles as the API route segment.
type ResourceKind string

const (
	KindCommitteeMember ResourceKind = "committee"
	KindHomeSlider      ResourceKind = "home-slider"
	KindHomeEvent       ResourceKind = "home-events"
	KindUpcomingEvent   ResourceKind = "upcoming-events"
	KindAboutSlider     ResourceKind = "about-slider"
	KindAboutEvent      ResourceKind = "about-events"
	KindEventsPageEvent ResourceKind = "event-page-events"
)

// ShowcaseKinds lists the resource kinds that share the Showcase shape, in dashboard order.
var ShowcaseKinds = []ResourceKind{
	KindHomeSlider,
	KindHomeEvent,
	KindUpcomingEvent,
	KindAboutSlider,
	KindAboutEvent,
	KindEventsPageEvent,
}

// Record is implemented by every content entity that carries an image.
// ImageURL holds the compressed payload at rest and the decompressed data URI in read responses.
type Record interface {
	GetID() int64
	SetID(id int64)
	GetImageURL() string
	SetImageURL(image string)
}

// Member is a committee member with bilingual name and position.
// swagger:model Member
type Member struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	MName     string `json:"m_name"`
	Position  string `json:"position"`
	MPosition string `json:"m_position"`
	ImageURL  string `json:"image_url"`
}

// NewMember returns a new Member. ID is set by the repository on create.
func NewMember(name, mName, position, mPosition, image string) *Member {
	return &Member{
		Name:      name,
		MName:     mName,
		Position:  position,
		MPosition: mPosition,
		ImageURL:  image,
	}
}

func (m *Member) GetID() int64             { return m.ID }
func (m *Member) SetID(id int64)           { m.ID = id }
func (m *Member) GetImageURL() string      { return m.ImageURL }
func (m *Member) SetImageURL(image string) { m.ImageURL = image }

// Showcase is a titled picture shown on a page: a slider slide, an event or an upcoming event.
// swagger:model Showcase
type Showcase struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	MTitle   string `json:"m_title"`
	ImageURL string `json:"image_url"`
}

// NewShowcase returns a new Showcase. ID is set by the repository on create.
func NewShowcase(title, mTitle, image string) *Showcase {
	return &Showcase{Title: title, MTitle: mTitle, ImageURL: image}
}

func (s *Showcase) GetID() int64             { return s.ID }
func (s *Showcase) SetID(id int64)           { s.ID = id }
func (s *Showcase) GetImageURL() string      { return s.ImageURL }
func (s *Showcase) SetImageURL(image string) { s.ImageURL = image }

// ContentRepository defines storage for one resource kind.
// Update and Delete return ErrNotFound when no row has the given id.
type ContentRepository[T Record] interface {
	Create(ctx context.Context, rec T) error
	GetByID(ctx context.Context, id int64) (T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, rec T) error
	Delete(ctx context.Context, id int64) (T, error)
}

// ContentService defines the business logic for one resource kind.
// Get and List return records with decompressed images; Create, Update and Delete
// return records in their stored form.
type ContentService[T Record] interface {
	Kind() ResourceKind
	Get(ctx context.Context, id int64) (T, error)
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec T) error
	Update(ctx context.Context, rec T) error
	Delete(ctx context.Context, id int64) (T, error)
}

// ImageCodec converts between the compressed transport form of an image and its displayable form.
type ImageCodec interface {
	Compress(raw string) (string, error)
	Decompress(compressed string) (string, error)
	Validate(compressed string) error
}

// ImageCache stores decompressed images keyed by a digest of their compressed form.
type ImageCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}
