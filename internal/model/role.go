package model

import "time"

// Role is a named role optionally assigned to one user. UserID is nil for
// unassigned roles; deleting a user does not delete its roles.
type Role struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	UserID    *int      `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
