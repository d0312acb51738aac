package domain

import "time"

// User is the stored credential record for a staff account.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Position     string
	CreatedAt    time.Time
}

// Identity returns the principal view of the record.
func (u *User) Identity() Identity {
	return Identity{Login: u.Login, Position: u.Position}
}
