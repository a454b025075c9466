package author

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrInvalidSortBy  = errors.New("author sort field is invalid")
)
