package entity

import "time"

// Role represents a user's capability level.
type Role string

// Roles, lowest to highest capability for generic actions such as
// commenting. Article authoring and moderation are NOT hierarchical:
// only authors and admins create articles, only admins moderate.
const (
	RoleUser   Role = "user"
	RoleAuthor Role = "author"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAuthor, RoleAdmin:
		return true
	}
	return false
}

// Actor is the authenticated identity attached to a request.
// It is supplied by the identity provider (JWT middleware); this core
// never authenticates credentials itself.
type Actor struct {
	ID   int64
	Role Role
}

// User represents a registered user account managed by admins.
type User struct {
	ID        int64
	Email     string
	Name      string
	Role      Role
	Blocked   bool
	CreatedAt time.Time
}

// Actor returns the request identity for this user.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}
