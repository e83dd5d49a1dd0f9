package entities

import (
	"errors"
	"fmt"
)

// ErrInvalidRating is returned when a rating is outside the closed set.
var ErrInvalidRating = errors.New("invalid rating")

// Rating is the user's self-assessment after a review.
type Rating string

const (
	RatingAgain  Rating = "again"  // forgotten, show again soon
	RatingReview Rating = "review" // recalled with effort
	RatingEasy   Rating = "easy"   // recalled without effort
)

// Ratings lists every valid rating in button order.
var Ratings = []Rating{RatingAgain, RatingReview, RatingEasy}

// ParseRating converts a raw value into a Rating.
// Matching is exact: "Again" or " easy" are rejected.
func ParseRating(s string) (Rating, error) {
	r := Rating(s)
	if !r.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRating, s)
	}
	return r, nil
}

// IsValid reports whether r is one of the known ratings.
func (r Rating) IsValid() bool {
	switch r {
	case RatingAgain, RatingReview, RatingEasy:
		return true
	default:
		return false
	}
}

func (r Rating) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRating, string(r))
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rating) UnmarshalText(text []byte) error {
	parsed, err := ParseRating(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
