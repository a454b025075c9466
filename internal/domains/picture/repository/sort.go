package repository

import (
	"fmt"

	"gallery-backend/internal/domains/picture"
)

var sortColumns = map[string]string{
	picture.SortByTitle: "title",
	picture.SortByGenre: "genre",
}

func validateSort(field string) error {
	if field == "" {
		return nil
	}
	if _, ok := sortColumns[field]; !ok {
		return fmt.Errorf("%w: %s", picture.ErrInvalidSortBy, field)
	}
	return nil
}
