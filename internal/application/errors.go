package application

import "errors"

var ErrNotFound = errors.New("not found")
