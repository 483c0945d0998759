package services

import (
	"context"
	"fmt"

	"sitecms/internal/domain"
)

// contextDecompressor is implemented by codecs that can use the request context, such as the caching codec.
type contextDecompressor interface {
	DecompressContext(ctx context.Context, compressed string) (string, error)
}

type contentService[T domain.Record] struct {
	kind            domain.ResourceKind
	repo            domain.ContentRepository[T]
	codec           domain.ImageCodec
	validateUploads bool
}

// NewContentService returns the ContentService for one resource kind.
// With validateUploads set, Create and Update reject images that do not inflate to a picture.
func NewContentService[T domain.Record](kind domain.ResourceKind, repo domain.ContentRepository[T], codec domain.ImageCodec, validateUploads bool) domain.ContentService[T] {
	return &contentService[T]{
		kind:            kind,
		repo:            repo,
		codec:           codec,
		validateUploads: validateUploads,
	}
}

func (s *contentService[T]) Kind() domain.ResourceKind {
	return s.kind
}

// Get returns one record with its image decompressed.
func (s *contentService[T]) Get(ctx context.Context, id int64) (T, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("get %s %d: %w", s.kind, id, err)
	}
	if err := s.decompress(ctx, rec); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// List returns every record ordered by id. One undecodable image fails the whole listing.
func (s *contentService[T]) List(ctx context.Context) ([]T, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}
	for _, rec := range recs {
		if err := s.decompress(ctx, rec); err != nil {
			return nil, err
		}
	}
	return recs, nil
}

func (s *contentService[T]) Create(ctx context.Context, rec T) error {
	if err := s.checkImage(rec); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return fmt.Errorf("create %s: %w", s.kind, err)
	}
	return nil
}

func (s *contentService[T]) Update(ctx context.Context, rec T) error {
	if err := s.checkImage(rec); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, rec); err != nil {
		return fmt.Errorf("update %s %d: %w", s.kind, rec.GetID(), err)
	}
	return nil
}

// Delete removes the record and returns it in stored form.
func (s *contentService[T]) Delete(ctx context.Context, id int64) (T, error) {
	rec, err := s.repo.Delete(ctx, id)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("delete %s %d: %w", s.kind, id, err)
	}
	return rec, nil
}

func (s *contentService[T]) checkImage(rec T) error {
	if !s.validateUploads {
		return nil
	}
	if err := s.codec.Validate(rec.GetImageURL()); err != nil {
		return fmt.Errorf("%s image: %w", s.kind, err)
	}
	return nil
}

func (s *contentService[T]) decompress(ctx context.Context, rec T) error {
	var (
		out string
		err error
	)
	if cd, ok := s.codec.(contextDecompressor); ok {
		out, err = cd.DecompressContext(ctx, rec.GetImageURL())
	} else {
		out, err = s.codec.Decompress(rec.GetImageURL())
	}
	if err != nil {
		return fmt.Errorf("decompress %s %d image: %w", s.kind, rec.GetID(), err)
	}
	rec.SetImageURL(out)
	return nil
}
