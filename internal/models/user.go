package models

import "time"

// User represents a registered user in the system
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"` // Not serialized
	CreatedAt    time.Time `json:"created_at"`
}

// UserView is the public projection of a user used when populating
// authors in responses. The password hash is never part of it.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// View returns the public projection of the user.
func (u *User) View() *UserView {
	return &UserView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
