package gallery

import (
	"github.com/rs/zerolog"

	"gallery-backend/internal/domains/author"
	"gallery-backend/internal/domains/picture"
)

// PicturesPageSize is the number of pictures returned by one paged listing.
const PicturesPageSize = 9

type service struct {
	authors  author.Repository
	pictures picture.Repository
	logger   zerolog.Logger
}

func NewService(authors author.Repository, pictures picture.Repository, logger zerolog.Logger) ServiceInterface {
	return &service{
		authors:  authors,
		pictures: pictures,
		logger:   logger.With().Str("component", "gallery").Logger(),
	}
}

// softFailure logs a swallowed fault. Soft operations return nil with no
// error afterwards, so callers see the same result as "not found".
func (s *service) softFailure(op, id string, err error) {
	event := s.logger.Error().Err(err).Str("op", op)
	if id != "" {
		event = event.Str("id", id)
	}
	event.Msg("operation failed, returning null")
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
