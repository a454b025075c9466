package graph

import (
	"context"

	"gallery-backend/internal/domains/author"
)

type AuthorResolver struct {
	root *Resolver
	a    *author.Author
}

func (r *AuthorResolver) ID() string             { return r.a.ID }
func (r *AuthorResolver) Name() string           { return r.a.Name }
func (r *AuthorResolver) LastName() string       { return r.a.LastName }
func (r *AuthorResolver) FacePictureURL() string { return r.a.FacePictureURL }

func (r *AuthorResolver) Pictures(ctx context.Context) (*[]*PictureResolver, error) {
	pictures, err := r.root.svc.AuthorPictures(ctx, r.a)
	if err != nil {
		return nil, err
	}
	return r.root.pictureList(pictures), nil
}
