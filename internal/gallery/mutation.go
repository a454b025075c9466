package gallery

import (
	"context"
	"fmt"

	"gallery-backend/internal/domains/author"
	"gallery-backend/internal/domains/picture"
)

// ==================== AUTHORS ====================

func (s *service) AddAuthor(ctx context.Context, name, lastName, facePictureURL string) (*author.Author, error) {
	created, err := s.authors.Insert(ctx, &author.Author{
		Name:           name,
		LastName:       lastName,
		FacePictureURL: facePictureURL,
	})
	if err != nil {
		s.softFailure("addAuthor", "", err)
		return nil, nil
	}

	s.logger.Debug().Str("id", created.ID).Msg("author created")
	return created, nil
}

// DeleteAuthor returns nil when nothing was deleted, otherwise an Author
// holding only the id. Pictures referencing it are left in place.
func (s *service) DeleteAuthor(ctx context.Context, id string) (*author.Author, error) {
	deleted, err := s.authors.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete author: %w", err)
	}
	if deleted == 0 {
		return nil, nil
	}
	return author.Placeholder(id), nil
}

// UpdateAuthor overwrites name and lastName; nil values clear them.
func (s *service) UpdateAuthor(ctx context.Context, id string, name, lastName *string) (*author.Author, error) {
	existing, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", author.ErrAuthorNotFound, id)
	}

	existing.Name = deref(name)
	existing.LastName = deref(lastName)

	updated, err := s.authors.Save(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return updated, nil
}

// ==================== PICTURES ====================

// AddPicture attaches the referenced author to the returned picture when it
// can be found. The attachment is never stored.
func (s *service) AddPicture(ctx context.Context, in PictureInput) (*picture.Picture, error) {
	created, err := s.pictures.Insert(ctx, &picture.Picture{
		Title:    in.Title,
		ImageURL: in.ImageURL,
		Genre:    in.Genre,
		AuthorID: in.AuthorID,
	})
	if err != nil {
		s.softFailure("addPicture", "", err)
		return nil, nil
	}

	owner, err := s.authors.FindByID(ctx, created.AuthorID)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("id", created.ID).
			Str("author_id", created.AuthorID).
			Msg("could not attach author to new picture")
		return created, nil
	}
	created.Author = owner

	return created, nil
}

func (s *service) DeletePicture(ctx context.Context, id string) (*picture.Picture, error) {
	deleted, err := s.pictures.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete picture: %w", err)
	}
	if deleted == 0 {
		return nil, nil
	}
	return picture.Placeholder(id), nil
}

// UpdatePicture overwrites all four fields; nil values clear them.
func (s *service) UpdatePicture(ctx context.Context, id string, in PictureUpdate) (*picture.Picture, error) {
	existing, err := s.pictures.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get picture: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", picture.ErrPictureNotFound, id)
	}

	existing.Title = deref(in.Title)
	existing.ImageURL = deref(in.ImageURL)
	existing.Genre = deref(in.Genre)
	existing.AuthorID = deref(in.AuthorID)

	updated, err := s.pictures.Save(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update picture: %w", err)
	}
	return updated, nil
}
