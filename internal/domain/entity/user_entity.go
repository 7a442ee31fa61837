package entity

import (
	"time"
)

// User is an account holder. Password holds the bcrypt hash and is never
// rendered in responses.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
