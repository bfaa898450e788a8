package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmadepot/m/domain"
)

const saleColumns = "id, date_time, employee_id, customer_id, amount"

// SaleIDs returns the set of all sale ids.
func SaleIDs(db sqlx.Ext) (map[int64]struct{}, error) {
	return tableIDs(db, "sale")
}

// SaleByID looks a sale up by primary key, ErrNotFound when missing.
func SaleByID(db sqlx.Ext, id int64) (*domain.Sale, error) {
	var s domain.Sale
	err := sqlx.Get(db, &s, "SELECT "+saleColumns+" FROM sale WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get sale %d: %w", id, err)
	}
	return &s, nil
}

// Sales returns every sale in table order.
func Sales(db sqlx.Ext) ([]domain.Sale, error) {
	var sales []domain.Sale
	if err := sqlx.Select(db, &sales, "SELECT "+saleColumns+" FROM sale"); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}

// SaleFields projects the named columns for every sale. Field names must be
// trusted literals; see projectRows.
func SaleFields(db sqlx.Ext, fields ...string) ([]map[string]any, error) {
	return projectRows(db, "sale", fields)
}

// InsertSale writes a new sale row. The caller owns the transaction; nothing
// is committed here.
func InsertSale(db sqlx.Ext, s domain.Sale) error {
	_, err := db.Exec(
		"INSERT INTO sale (id, date_time, employee_id, customer_id, amount) VALUES (?, ?, ?, ?, ?)",
		s.ID, s.DateTime, s.EmployeeID, s.CustomerID, s.Amount,
	)
	if err != nil {
		return fmt.Errorf("insert sale %d: %w", s.ID, err)
	}
	return nil
}

// UpdateSale replaces every non-id column of the matching row.
func UpdateSale(db sqlx.Ext, s domain.Sale) error {
	_, err := db.Exec(
		"UPDATE sale SET date_time = ?, employee_id = ?, customer_id = ?, amount = ? WHERE id = ?",
		s.DateTime, s.EmployeeID, s.CustomerID, s.Amount, s.ID,
	)
	if err != nil {
		return fmt.Errorf("update sale %d: %w", s.ID, err)
	}
	return nil
}

// SaleEmployee resolves the employee foreign key of a sale.
func SaleEmployee(db sqlx.Ext, s domain.Sale) (*domain.Employee, error) {
	return EmployeeByID(db, s.EmployeeID)
}

// SaleCustomer resolves the customer foreign key of a sale.
func SaleCustomer(db sqlx.Ext, s domain.Sale) (*domain.Customer, error) {
	return CustomerByID(db, s.CustomerID)
}
