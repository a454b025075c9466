package graph

import (
	"context"
)

func (r *Resolver) Picture(ctx context.Context, args struct{ ID *string }) (*PictureResolver, error) {
	p, err := r.svc.GetPicture(ctx, stringOrEmpty(args.ID))
	if err != nil {
		return nil, err
	}
	return r.picture(p), nil
}

func (r *Resolver) Pictures(ctx context.Context) (*[]*PictureResolver, error) {
	pictures, err := r.svc.ListPictures(ctx)
	if err != nil {
		return nil, err
	}
	return r.pictureList(pictures), nil
}

// PicturesOffSet receives 0 when offSet is omitted, from the schema default.
func (r *Resolver) PicturesOffSet(ctx context.Context, args struct{ OffSet int32 }) (*[]*PictureResolver, error) {
	pictures, err := r.svc.ListPicturesPaged(ctx, int(args.OffSet))
	if err != nil {
		return nil, err
	}
	return r.pictureList(pictures), nil
}

func (r *Resolver) Authors(ctx context.Context) (*[]*AuthorResolver, error) {
	authors, err := r.svc.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	return r.authorList(authors), nil
}

func (r *Resolver) PicturesByAuthor(ctx context.Context, args struct{ ID *string }) (*AuthorResolver, error) {
	a, err := r.svc.GetAuthorWithPictures(ctx, stringOrEmpty(args.ID))
	if err != nil {
		return nil, err
	}
	return r.author(a), nil
}
