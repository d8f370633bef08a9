package repository

import "errors"

var (
	// ErrStorageUnavailable wraps writes the durable store rejected.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrUnknownDocument is returned when a turn references a document
	// that does not exist.
	ErrUnknownDocument = errors.New("unknown document")
)
