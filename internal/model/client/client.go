// Package client defines the client entity and the keyword predicates the
// find command filters with.
package client

import (
	"strings"

	"github.com/google/uuid"
)

// Client is one entry in the book: contact details plus any rental
// agreements managed for them.
type Client struct {
	ID      uuid.UUID           `json:"id"`
	Name    string              `json:"name"`
	Phone   string              `json:"phone"`
	Email   string              `json:"email"`
	Tags    []string            `json:"tags,omitempty"`
	Rentals []RentalInformation `json:"rentals,omitempty"`
}

// New creates a client with a fresh identifier.
func New(name, phone, email string, tags ...string) Client {
	return Client{
		ID:    uuid.New(),
		Name:  name,
		Phone: phone,
		Email: email,
		Tags:  append([]string(nil), tags...),
	}
}

// WithRentals returns a copy of the client carrying the given rentals.
func (c Client) WithRentals(rentals ...RentalInformation) Client {
	c.Rentals = append([]RentalInformation(nil), rentals...)
	return c
}

// TagLine renders the tag set for display.
func (c Client) TagLine() string {
	return strings.Join(c.Tags, ", ")
}

// Equal reports identity, not field equality. Imported entries without an ID
// are never equal to anything.
func (c Client) Equal(other Client) bool {
	if c.ID == uuid.Nil || other.ID == uuid.Nil {
		return false
	}
	return c.ID == other.ID
}
