package domain

import "time"

// User is the domain model for registered accounts.
type User struct {
	ID           int64
	Firstname    string
	Lastname     string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser is the projection safe to return to clients.
type PublicUser struct {
	ID        int64     `json:"id"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips credential fields from the record.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// Summary is the compact user view embedded in login responses.
type Summary struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Summary returns the compact view of the user.
func (u *User) Summary() Summary {
	return Summary{
		ID:        u.ID,
		Username:  u.Username,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
	}
}
