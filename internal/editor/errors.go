package editor

import "errors"

// Editor session errors
var (
	ErrEmptyClipName  = errors.New("clip name is empty")
	ErrUnknownClip    = errors.New("no clip with this name")
	ErrNotStarted     = errors.New("runtime is not started")
	ErrAlreadyStarted = errors.New("runtime is already started")
)
