package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmadepot/m/domain"
)

const employeeColumns = "id, first_name, last_name, phone_number, email_address, address, gender, " +
	"birth_date, joining_date, designation, monthly_salary, login_password, currently_employed, is_administrator"

type employeeRow struct {
	ID                int64   `db:"id"`
	FirstName         string  `db:"first_name"`
	LastName          string  `db:"last_name"`
	PhoneNumber       string  `db:"phone_number"`
	EmailAddress      string  `db:"email_address"`
	Address           string  `db:"address"`
	Gender            string  `db:"gender"`
	BirthDate         string  `db:"birth_date"`
	JoiningDate       string  `db:"joining_date"`
	Designation       string  `db:"designation"`
	MonthlySalary     float64 `db:"monthly_salary"`
	LoginPassword     string  `db:"login_password"`
	CurrentlyEmployed bool    `db:"currently_employed"`
	IsAdministrator   bool    `db:"is_administrator"`
}

func (r employeeRow) record() domain.Employee {
	return domain.Employee{
		ID:                r.ID,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		PhoneNumber:       r.PhoneNumber,
		EmailAddress:      r.EmailAddress,
		Address:           r.Address,
		Gender:            r.Gender,
		BirthDate:         r.BirthDate,
		JoiningDate:       r.JoiningDate,
		Designation:       optional(r.Designation),
		MonthlySalary:     r.MonthlySalary,
		LoginPassword:     r.LoginPassword,
		CurrentlyEmployed: r.CurrentlyEmployed,
		IsAdministrator:   r.IsAdministrator,
	}
}

// EmployeeIDs returns the set of all employee ids.
func EmployeeIDs(db sqlx.Ext) (map[int64]struct{}, error) {
	return tableIDs(db, "employee")
}

// EmployeeByID looks an employee up by primary key, ErrNotFound when missing.
func EmployeeByID(db sqlx.Ext, id int64) (*domain.Employee, error) {
	var row employeeRow
	err := sqlx.Get(db, &row, "SELECT "+employeeColumns+" FROM employee WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get employee %d: %w", id, err)
	}
	e := row.record()
	return &e, nil
}

// EmployeeByEmailAddress looks an employee up by email address. Uniqueness of
// the column is assumed, not enforced; the first match wins.
func EmployeeByEmailAddress(db sqlx.Ext, emailAddress string) (*domain.Employee, error) {
	var row employeeRow
	err := sqlx.Get(db, &row, "SELECT "+employeeColumns+" FROM employee WHERE email_address = ?", emailAddress)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get employee by email: %w", err)
	}
	e := row.record()
	return &e, nil
}

// Employees returns every employee in table order.
func Employees(db sqlx.Ext) ([]domain.Employee, error) {
	var rows []employeeRow
	if err := sqlx.Select(db, &rows, "SELECT "+employeeColumns+" FROM employee"); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	employees := make([]domain.Employee, len(rows))
	for i, row := range rows {
		employees[i] = row.record()
	}
	return employees, nil
}
