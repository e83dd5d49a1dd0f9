package entities

// Base intervals in minutes.
const (
	AgainBaseMinutes  = 10
	ReviewBaseMinutes = 12 * 60
	EasyBaseMinutes   = 3 * 24 * 60
)

// NextInterval computes the next review interval in minutes.
//
// It works in three buckets:
//  1. again always resets to AgainBaseMinutes, ignoring history.
//  2. review starts at ReviewBaseMinutes and then grows by x1.5.
//  3. easy starts at EasyBaseMinutes and then grows by x2.5.
//
// Growth is floor-truncated and never drops below the bucket base.
// There is no upper bound.
func NextInterval(prevIntervalMinutes, reviewCount int, rating Rating) int {
	prev := max(prevIntervalMinutes, AgainBaseMinutes)

	switch rating {
	case RatingReview:
		if reviewCount == 0 {
			return ReviewBaseMinutes
		}
		return max(ReviewBaseMinutes, prev*3/2)

	case RatingEasy:
		if reviewCount == 0 {
			return EasyBaseMinutes
		}
		return max(EasyBaseMinutes, prev*5/2)

	default:
		return AgainBaseMinutes
	}
}
