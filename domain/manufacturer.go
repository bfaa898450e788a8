package domain

// Manufacturer is one row of the manufacturer table.
type Manufacturer struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	PhoneNumber string  `db:"phone_number" json:"phone_number"`
	Address     *string `db:"address" json:"address,omitempty"`
}
