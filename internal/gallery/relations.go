package gallery

import (
	"context"
	"fmt"

	"gallery-backend/internal/domains/author"
	"gallery-backend/internal/domains/picture"
)

// AuthorPictures returns the pictures whose authorId is a.ID, in storage
// order. An author without pictures gets an empty slice.
func (s *service) AuthorPictures(ctx context.Context, a *author.Author) ([]picture.Picture, error) {
	pictures, err := s.pictures.FindWhere(ctx, picture.Filter{AuthorID: a.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to load pictures of author %s: %w", a.ID, err)
	}
	if pictures == nil {
		pictures = []picture.Picture{}
	}
	return pictures, nil
}

// PictureAuthor returns the author referenced by p, or nil for a dangling
// reference.
func (s *service) PictureAuthor(ctx context.Context, p *picture.Picture) (*author.Author, error) {
	if p.Author != nil {
		return p.Author, nil
	}

	a, err := s.authors.FindByID(ctx, p.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load author of picture %s: %w", p.ID, err)
	}
	return a, nil
}
