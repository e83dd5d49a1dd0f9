package service

import (
	"errors"
	"fmt"

	"github.com/aliskhannn/flashcards-bot/internal/infra/postgres/repository"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
	ErrDuplicateKey     = repository.ErrDuplicateKey
	ErrGenerationFailed = errors.New("card generation failed")
)

// mapNotFound tags repository not-found errors with ErrNotFound and
// leaves everything else untouched.
func mapNotFound(err error) error {
	switch {
	case errors.Is(err, repository.ErrDeckNotFound),
		errors.Is(err, repository.ErrUserCardNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return err
	}
}

func invalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}
