package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmadepot/m/domain"
)

const customerColumns = "id, first_name, last_name, phone_number, email_address, address, gender, birth_date"

type customerRow struct {
	ID           int64  `db:"id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	PhoneNumber  string `db:"phone_number"`
	EmailAddress string `db:"email_address"`
	Address      string `db:"address"`
	Gender       string `db:"gender"`
	BirthDate    string `db:"birth_date"`
}

func (r customerRow) record() domain.Customer {
	return domain.Customer{
		ID:           r.ID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		PhoneNumber:  r.PhoneNumber,
		EmailAddress: optional(r.EmailAddress),
		Address:      optional(r.Address),
		Gender:       optional(r.Gender),
		BirthDate:    optional(r.BirthDate),
	}
}

// CustomerIDs returns the set of all customer ids.
func CustomerIDs(db sqlx.Ext) (map[int64]struct{}, error) {
	return tableIDs(db, "customer")
}

// CustomerByID looks a customer up by primary key, ErrNotFound when missing.
func CustomerByID(db sqlx.Ext, id int64) (*domain.Customer, error) {
	var row customerRow
	err := sqlx.Get(db, &row, "SELECT "+customerColumns+" FROM customer WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	c := row.record()
	return &c, nil
}

// Customers returns every customer in table order.
func Customers(db sqlx.Ext) ([]domain.Customer, error) {
	var rows []customerRow
	if err := sqlx.Select(db, &rows, "SELECT "+customerColumns+" FROM customer"); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	customers := make([]domain.Customer, len(rows))
	for i, row := range rows {
		customers[i] = row.record()
	}
	return customers, nil
}

// CustomerFields projects the named columns for every customer. Field names
// must be trusted literals; see projectRows.
func CustomerFields(db sqlx.Ext, fields ...string) ([]map[string]any, error) {
	return projectRows(db, "customer", fields)
}
