package domain

import "errors"

// Domain errors
var (
	ErrEmptyDocument = errors.New("downloaded file is empty")
	ErrFileTooLarge  = errors.New("file exceeds maximum allowed size")
)
