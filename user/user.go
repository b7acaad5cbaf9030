package user

import "errors"

var ErrUserNotFound = errors.New("user not found")

// Profile is the user document kept alongside the identity provider's
// account. The id is the provider's stable user id.
type Profile struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role,omitempty"`
	Birthdate  string `json:"birthdate,omitempty"`
	NoShowUser bool   `json:"noShowUser"`
}
