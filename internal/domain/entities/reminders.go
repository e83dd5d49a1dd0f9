package entities

// DueSummary is the number of due assignments of one user.
type DueSummary struct {
	UserID   int64
	DueCount int
}

