package gallery

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gallery-backend/internal/domains/author"
	"gallery-backend/internal/domains/picture"
	"gallery-backend/internal/shared"
)

type mockAuthorRepository struct {
	mock.Mock
}

func (m *mockAuthorRepository) FindByID(ctx context.Context, id string) (*author.Author, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*author.Author)
	return a, args.Error(1)
}

func (m *mockAuthorRepository) FindAll(ctx context.Context, opts shared.FindOptions) ([]author.Author, error) {
	args := m.Called(ctx, opts)
	authors, _ := args.Get(0).([]author.Author)
	return authors, args.Error(1)
}

func (m *mockAuthorRepository) Insert(ctx context.Context, a *author.Author) (*author.Author, error) {
	args := m.Called(ctx, a)
	created, _ := args.Get(0).(*author.Author)
	return created, args.Error(1)
}

func (m *mockAuthorRepository) Save(ctx context.Context, a *author.Author) (*author.Author, error) {
	args := m.Called(ctx, a)
	saved, _ := args.Get(0).(*author.Author)
	return saved, args.Error(1)
}

func (m *mockAuthorRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAuthorRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockPictureRepository struct {
	mock.Mock
}

func (m *mockPictureRepository) FindByID(ctx context.Context, id string) (*picture.Picture, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*picture.Picture)
	return p, args.Error(1)
}

func (m *mockPictureRepository) FindAll(ctx context.Context, opts shared.FindOptions) ([]picture.Picture, error) {
	args := m.Called(ctx, opts)
	pictures, _ := args.Get(0).([]picture.Picture)
	return pictures, args.Error(1)
}

func (m *mockPictureRepository) FindWhere(ctx context.Context, filter picture.Filter) ([]picture.Picture, error) {
	args := m.Called(ctx, filter)
	pictures, _ := args.Get(0).([]picture.Picture)
	return pictures, args.Error(1)
}

func (m *mockPictureRepository) Insert(ctx context.Context, p *picture.Picture) (*picture.Picture, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(*picture.Picture)
	return created, args.Error(1)
}

func (m *mockPictureRepository) Save(ctx context.Context, p *picture.Picture) (*picture.Picture, error) {
	args := m.Called(ctx, p)
	saved, _ := args.Get(0).(*picture.Picture)
	return saved, args.Error(1)
}

func (m *mockPictureRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPictureRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
