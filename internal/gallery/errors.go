package gallery

import "errors"

var ErrInvalidOffset = errors.New("invalid pictures offset")
