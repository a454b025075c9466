package graph

import (
	"context"

	"gallery-backend/internal/gallery"
)

type addAuthorArgs struct {
	Name           string
	LastName       string
	FacePictureURL string
}

type updateAuthorArgs struct {
	ID       string
	Name     *string
	LastName *string
}

type addPictureArgs struct {
	Title    string
	ImageURL string
	Genre    string
	AuthorID string
}

type updatePictureArgs struct {
	ID       string
	Title    *string
	ImageURL *string
	Genre    *string
	AuthorID *string
}

func (r *Resolver) AddAuthor(ctx context.Context, args addAuthorArgs) (*AuthorResolver, error) {
	a, err := r.svc.AddAuthor(ctx, args.Name, args.LastName, args.FacePictureURL)
	if err != nil {
		return nil, err
	}
	return r.author(a), nil
}

func (r *Resolver) DeleteAuthor(ctx context.Context, args struct{ ID string }) (*AuthorResolver, error) {
	a, err := r.svc.DeleteAuthor(ctx, args.ID)
	if err != nil {
		return nil, err
	}
	return r.author(a), nil
}

func (r *Resolver) UpdateAuthor(ctx context.Context, args updateAuthorArgs) (*AuthorResolver, error) {
	a, err := r.svc.UpdateAuthor(ctx, args.ID, args.Name, args.LastName)
	if err != nil {
		return nil, err
	}
	return r.author(a), nil
}

func (r *Resolver) AddPicture(ctx context.Context, args addPictureArgs) (*PictureResolver, error) {
	p, err := r.svc.AddPicture(ctx, gallery.PictureInput{
		Title:    args.Title,
		ImageURL: args.ImageURL,
		Genre:    args.Genre,
		AuthorID: args.AuthorID,
	})
	if err != nil {
		return nil, err
	}
	return r.picture(p), nil
}

func (r *Resolver) DeletePicture(ctx context.Context, args struct{ ID string }) (*PictureResolver, error) {
	p, err := r.svc.DeletePicture(ctx, args.ID)
	if err != nil {
		return nil, err
	}
	return r.picture(p), nil
}

func (r *Resolver) UpdatePicture(ctx context.Context, args updatePictureArgs) (*PictureResolver, error) {
	p, err := r.svc.UpdatePicture(ctx, args.ID, gallery.PictureUpdate{
		Title:    args.Title,
		ImageURL: args.ImageURL,
		Genre:    args.Genre,
		AuthorID: args.AuthorID,
	})
	if err != nil {
		return nil, err
	}
	return r.picture(p), nil
}
