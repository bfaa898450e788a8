package domain

import "time"

// Employee is one row of the employee table. LoginPassword holds the bcrypt
// hash, never the plain text.
type Employee struct {
	ID                int64   `db:"id" json:"id"`
	FirstName         string  `db:"first_name" json:"first_name"`
	LastName          string  `db:"last_name" json:"last_name"`
	PhoneNumber       string  `db:"phone_number" json:"phone_number"`
	EmailAddress      string  `db:"email_address" json:"email_address"`
	Address           string  `db:"address" json:"address"`
	Gender            string  `db:"gender" json:"gender"`
	BirthDate         string  `db:"birth_date" json:"birth_date"`
	JoiningDate       string  `db:"joining_date" json:"joining_date"`
	Designation       *string `db:"designation" json:"designation,omitempty"`
	MonthlySalary     float64 `db:"monthly_salary" json:"monthly_salary"`
	LoginPassword     string  `db:"login_password" json:"-"`
	CurrentlyEmployed bool    `db:"currently_employed" json:"currently_employed"`
	IsAdministrator   bool    `db:"is_administrator" json:"is_administrator"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Age reports the employee's age in whole years at the given date.
func (e Employee) Age(now time.Time) (int, error) {
	return ageAt(e.BirthDate, now)
}
