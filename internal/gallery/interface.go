package gallery

import (
	"context"

	"gallery-backend/internal/domains/author"
	"gallery-backend/internal/domains/picture"
)

// ServiceInterface is the query, mutation and relation surface the GraphQL
// resolvers delegate to.
type ServiceInterface interface {
	// Queries
	GetPicture(ctx context.Context, id string) (*picture.Picture, error)
	ListPictures(ctx context.Context) ([]picture.Picture, error)
	ListPicturesPaged(ctx context.Context, offset int) ([]picture.Picture, error)
	ListAuthors(ctx context.Context) ([]author.Author, error)
	GetAuthorWithPictures(ctx context.Context, id string) (*author.Author, error)

	// Mutations
	AddAuthor(ctx context.Context, name, lastName, facePictureURL string) (*author.Author, error)
	DeleteAuthor(ctx context.Context, id string) (*author.Author, error)
	UpdateAuthor(ctx context.Context, id string, name, lastName *string) (*author.Author, error)
	AddPicture(ctx context.Context, in PictureInput) (*picture.Picture, error)
	DeletePicture(ctx context.Context, id string) (*picture.Picture, error)
	UpdatePicture(ctx context.Context, id string, in PictureUpdate) (*picture.Picture, error)

	// Relations
	AuthorPictures(ctx context.Context, a *author.Author) ([]picture.Picture, error)
	PictureAuthor(ctx context.Context, p *picture.Picture) (*author.Author, error)
}

// PictureInput carries the required fields of a new picture.
type PictureInput struct {
	Title    string
	ImageURL string
	Genre    string
	AuthorID string
}

// PictureUpdate carries the replacement values of updatePicture.
// A nil field clears the stored value.
type PictureUpdate struct {
	Title    *string
	ImageURL *string
	Genre    *string
	AuthorID *string
}
