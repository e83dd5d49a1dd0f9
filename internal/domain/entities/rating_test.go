package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		in      string
		want    Rating
		wantErr bool
	}{
		{in: "again", want: RatingAgain},
		{in: "review", want: RatingReview},
		{in: "easy", want: RatingEasy},
		{in: "Easy", wantErr: true},
		{in: " easy", wantErr: true},
		{in: "good", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRating(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRating)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRating_JSON(t *testing.T) {
	var body struct {
		Rating Rating `json:"rating"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"rating":"review"}`), &body))
	assert.Equal(t, RatingReview, body.Rating)

	err := json.Unmarshal([]byte(`{"rating":"REVIEW"}`), &body)
	assert.ErrorIs(t, err, ErrInvalidRating)
}
