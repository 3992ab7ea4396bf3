// Package store talks to the customers REST data service. It upholds the
// contract the agent's tools rely on: duplicate emails and missing records
// come back as typed domain errors, distinct from transport failures.
package store

import (
	"fmt"
	"time"
)

// Customer is the single domain entity. ID and CreatedAt are assigned by
// the data service.
type Customer struct {
	ID        int       `json:"id,omitempty"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func (c Customer) String() string {
	return fmt.Sprintf("customer #%v: '%v' <%v>, bio: '%v'", c.ID, c.FullName, c.Email, c.Bio)
}

// NotFoundError is a domain error: no customer matched the email filter
// on an operation which requires one.
type NotFoundError struct {
	Email string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no customer found with email: '%v'", e.Email)
}

// DuplicateError is a domain error: the data service rejected a create
// since the email is already taken. The existing record is untouched.
type DuplicateError struct {
	Email string
}

func (e DuplicateError) Error() string {
	return fmt.Sprintf("a customer with email '%v' already exists", e.Email)
}
