package graph

import (
	"gallery-backend/internal/domains/author"
	"gallery-backend/internal/domains/picture"
	"gallery-backend/internal/gallery"
)

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	svc gallery.ServiceInterface
}

func NewResolver(svc gallery.ServiceInterface) *Resolver {
	return &Resolver{svc: svc}
}

func (r *Resolver) author(a *author.Author) *AuthorResolver {
	if a == nil {
		return nil
	}
	return &AuthorResolver{root: r, a: a}
}

func (r *Resolver) picture(p *picture.Picture) *PictureResolver {
	if p == nil {
		return nil
	}
	return &PictureResolver{root: r, p: p}
}

func (r *Resolver) authorList(authors []author.Author) *[]*AuthorResolver {
	out := make([]*AuthorResolver, len(authors))
	for i := range authors {
		out[i] = r.author(&authors[i])
	}
	return &out
}

func (r *Resolver) pictureList(pictures []picture.Picture) *[]*PictureResolver {
	out := make([]*PictureResolver, len(pictures))
	for i := range pictures {
		out[i] = r.picture(&pictures[i])
	}
	return &out
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
