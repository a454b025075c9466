package gallery

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"gallery-backend/internal/domains/author"
	"gallery-backend/internal/domains/picture"
	"gallery-backend/internal/shared"
)

// GetPicture returns nil when the picture is missing or storage fails.
func (s *service) GetPicture(ctx context.Context, id string) (*picture.Picture, error) {
	p, err := s.pictures.FindByID(ctx, id)
	if err != nil {
		s.softFailure("getPicture", id, err)
		return nil, nil
	}
	return p, nil
}

func (s *service) ListPictures(ctx context.Context) ([]picture.Picture, error) {
	pictures, err := s.pictures.FindAll(ctx, shared.FindOptions{SortBy: picture.SortByTitle})
	if err != nil {
		return nil, fmt.Errorf("failed to list pictures: %w", err)
	}
	return pictures, nil
}

// ListPicturesPaged returns at most PicturesPageSize pictures ordered by
// title, starting at offset. An offset past the end yields an empty slice.
func (s *service) ListPicturesPaged(ctx context.Context, offset int) ([]picture.Picture, error) {
	if err := validation.Validate(offset, validation.Min(0)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOffset, err)
	}

	pictures, err := s.pictures.FindAll(ctx, shared.FindOptions{
		SortBy: picture.SortByTitle,
		Skip:   offset,
		Limit:  PicturesPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pictures page: %w", err)
	}
	return pictures, nil
}

func (s *service) ListAuthors(ctx context.Context) ([]author.Author, error) {
	authors, err := s.authors.FindAll(ctx, shared.FindOptions{SortBy: author.SortByName})
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}

// GetAuthorWithPictures loads the author behind picturesByAuthor. Its
// pictures are resolved separately through AuthorPictures.
func (s *service) GetAuthorWithPictures(ctx context.Context, id string) (*author.Author, error) {
	a, err := s.authors.FindByID(ctx, id)
	if err != nil {
		s.softFailure("picturesByAuthor", id, err)
		return nil, nil
	}
	return a, nil
}
