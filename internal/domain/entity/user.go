// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
type User struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the user.
	DisplayID     string    // Human-readable sequential identifier, e.g. "USER001".
	FirstName     string    // The user's given name.
	LastName      string    // The user's family name.
	Contact       string    // Mobile contact number, 11 digits starting with "09".
	Email         string    // The user's login email, stored lowercase.
	Address       string    // Free-form delivery address, editable on the profile page.
	EmailVerified bool      // Whether the verification link sent at registration was followed.
	VerifyToken   string    // Opaque token embedded in the verification link; cleared on use.
	CreatedAt     time.Time // Timestamp of when this user account was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this user's data.
}

// FullName returns the display name composed from the profile names.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
