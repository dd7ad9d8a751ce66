package client

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RentalInformation records one rental agreement attached to a client.
type RentalInformation struct {
	ID          uuid.UUID `json:"id"`
	Address     string    `json:"address"`
	MonthlyRent int       `json:"monthly_rent"`
	Deposit     int       `json:"deposit"`
	Customers   []string  `json:"customers,omitempty"`
}

// NewRentalInformation creates a rental entry with a fresh identifier.
func NewRentalInformation(address string, monthlyRent, deposit int, customers ...string) RentalInformation {
	return RentalInformation{
		ID:          uuid.New(),
		Address:     address,
		MonthlyRent: monthlyRent,
		Deposit:     deposit,
		Customers:   append([]string(nil), customers...),
	}
}

// SearchText returns the textual fields a rental keyword search runs over.
func (r RentalInformation) SearchText() string {
	parts := []string{r.Address}
	parts = append(parts, r.Customers...)
	parts = append(parts, fmt.Sprintf("%d", r.MonthlyRent), fmt.Sprintf("%d", r.Deposit))
	return strings.Join(parts, " ")
}

func (r RentalInformation) String() string {
	return fmt.Sprintf("%s (rent %d, deposit %d)", r.Address, r.MonthlyRent, r.Deposit)
}
