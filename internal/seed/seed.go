package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"gallery-backend/internal/domains/author"
	"gallery-backend/internal/domains/picture"
)

// Result reports what a seeding run inserted.
type Result struct {
	Authors  int
	Pictures int
	Skipped  bool
}

type Seeder struct {
	authors  author.Repository
	pictures picture.Repository
	logger   zerolog.Logger
}

func NewSeeder(authors author.Repository, pictures picture.Repository, logger zerolog.Logger) *Seeder {
	return &Seeder{
		authors:  authors,
		pictures: pictures,
		logger:   logger,
	}
}

// Run loads the sample gallery when both collections are empty. It is a
// no-op on a store that already holds data.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	authorCount, err := s.authors.Count(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to count authors: %w", err)
	}
	pictureCount, err := s.pictures.Count(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to count pictures: %w", err)
	}
	if authorCount > 0 || pictureCount > 0 {
		s.logger.Info().
			Int64("authors", authorCount).
			Int64("pictures", pictureCount).
			Msg("[SEED] Store not empty, skipping")
		return Result{Skipped: true}, nil
	}

	ids := make(map[string]string, len(sampleAuthors))
	for _, sa := range sampleAuthors {
		created, err := s.authors.Insert(ctx, &author.Author{
			Name:     sa.Name,
			LastName: sa.LastName,
		})
		if err != nil {
			return Result{}, fmt.Errorf("failed to seed author %s: %w", sa.Name, err)
		}
		ids[sa.Key] = created.ID
	}

	for _, sp := range samplePictures {
		if _, err := s.pictures.Insert(ctx, &picture.Picture{
			Title:    sp.Title,
			ImageURL: sampleImageURL,
			Genre:    sp.Genre,
			AuthorID: ids[sp.AuthorKey],
		}); err != nil {
			return Result{}, fmt.Errorf("failed to seed picture %q: %w", sp.Title, err)
		}
	}

	res := Result{Authors: len(sampleAuthors), Pictures: len(samplePictures)}
	s.logger.Info().
		Int("authors", res.Authors).
		Int("pictures", res.Pictures).
		Msg("[SEED] Sample data loaded")
	return res, nil
}
