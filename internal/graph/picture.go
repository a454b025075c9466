package graph

import (
	"context"

	"gallery-backend/internal/domains/picture"
)

type PictureResolver struct {
	root *Resolver
	p    *picture.Picture
}

func (r *PictureResolver) ID() string       { return r.p.ID }
func (r *PictureResolver) Title() string    { return r.p.Title }
func (r *PictureResolver) ImageURL() string { return r.p.ImageURL }
func (r *PictureResolver) Genre() string    { return r.p.Genre }
func (r *PictureResolver) AuthorID() string { return r.p.AuthorID }

// Author resolves the soft reference; a dangling authorId yields null.
func (r *PictureResolver) Author(ctx context.Context) (*AuthorResolver, error) {
	a, err := r.root.svc.PictureAuthor(ctx, r.p)
	if err != nil {
		return nil, err
	}
	return r.root.author(a), nil
}
