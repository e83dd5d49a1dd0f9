package repository

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDeckNotFound     = errors.New("deck not found")
	ErrCardNotFound     = errors.New("card not found")
	ErrUserCardNotFound = errors.New("user card not found")

	// ErrDuplicateKey is returned when a unique key is already taken.
	ErrDuplicateKey = errors.New("duplicate key")

	ErrSlugExhausted = errors.New("no free slug")
)
