package entities

import "time"

// User represents bot user.
type User struct {
	ID               int64 // Telegram user ID
	Username         *string
	FirstName        *string
	LastName         *string
	ActiveDeckID     *int64 // weak reference, cleared when the deck is deleted
	RemindersEnabled bool
	LastRemindedAt   *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Profile is the identity snapshot supplied by a transport on every request.
type Profile struct {
	UserID    int64
	Username  *string
	FirstName *string
	LastName  *string
}

// NewProfile builds a profile, treating blank names as absent.
func NewProfile(userID int64, username, firstName, lastName string) Profile {
	return Profile{
		UserID:    userID,
		Username:  optional(username),
		FirstName: optional(firstName),
		LastName:  optional(lastName),
	}
}

// NewUser creates a user from the profile.
func NewUser(p Profile, now time.Time) *User {
	return &User{
		ID:               p.UserID,
		Username:         p.Username,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		RemindersEnabled: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// DisplayName returns the best available human-readable name.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != nil:
		return *u.FirstName
	case u.Username != nil:
		return *u.Username
	default:
		return ""
	}
}
