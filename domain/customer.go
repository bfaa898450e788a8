package domain

import (
	"fmt"
	"time"
)

// Customer is one row of the customer table. Optional columns are pointers;
// the repository translates the persisted empty-string sentinel at the edge.
type Customer struct {
	ID           int64   `db:"id" json:"id"`
	FirstName    string  `db:"first_name" json:"first_name"`
	LastName     string  `db:"last_name" json:"last_name"`
	PhoneNumber  string  `db:"phone_number" json:"phone_number"`
	EmailAddress *string `db:"email_address" json:"email_address,omitempty"`
	Address      *string `db:"address" json:"address,omitempty"`
	Gender       *string `db:"gender" json:"gender,omitempty"`
	BirthDate    *string `db:"birth_date" json:"birth_date,omitempty"`
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Age reports the customer's age in whole years at the given date. It fails
// when the customer has no recorded birth date.
func (c Customer) Age(now time.Time) (int, error) {
	if c.BirthDate == nil {
		return 0, fmt.Errorf("cannot calculate age of customer %d without a birth date", c.ID)
	}
	return ageAt(*c.BirthDate, now)
}

func ageAt(birthDate string, now time.Time) (int, error) {
	birth, err := time.Parse(DateLayout, birthDate)
	if err != nil {
		return 0, fmt.Errorf("invalid birth date %q: %w", birthDate, err)
	}
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years, nil
}
