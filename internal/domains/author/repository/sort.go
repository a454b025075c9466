package repository

import (
	"fmt"

	"gallery-backend/internal/domains/author"
)

// sortColumns whitelists sortable fields and maps them to SQL columns.
var sortColumns = map[string]string{
	author.SortByName:     "name",
	author.SortByLastName: "last_name",
}

func validateSort(field string) error {
	if field == "" {
		return nil
	}
	if _, ok := sortColumns[field]; !ok {
		return fmt.Errorf("%w: %s", author.ErrInvalidSortBy, field)
	}
	return nil
}
