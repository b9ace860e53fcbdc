package assets

import "errors"

// Asset-specific errors
var (
	ErrUnknownHandle = errors.New("unknown asset handle")
	ErrEmptyPath     = errors.New("asset path is empty")
)
