package db

import "errors"

// Domain-level database error sentinels.
var (
	// Link errors
	ErrLinkNotFound  = errors.New("link not found")
	ErrDuplicateLink = errors.New("link already exists")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Share grant errors
	ErrShareNotFound  = errors.New("share entry not found")
	ErrDuplicateShare = errors.New("share entry already exists")
)
