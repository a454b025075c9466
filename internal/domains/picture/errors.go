package picture

import "errors"

var (
	ErrPictureNotFound = errors.New("picture not found")
	ErrInvalidSortBy   = errors.New("picture sort field is invalid")
)
