package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmadepot/m/domain"
)

const manufacturerColumns = "id, name, phone_number, address"

type manufacturerRow struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	PhoneNumber string `db:"phone_number"`
	Address     string `db:"address"`
}

func (r manufacturerRow) record() domain.Manufacturer {
	return domain.Manufacturer{
		ID:          r.ID,
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
		Address:     optional(r.Address),
	}
}

// ManufacturerIDs returns the set of all manufacturer ids.
func ManufacturerIDs(db sqlx.Ext) (map[int64]struct{}, error) {
	return tableIDs(db, "manufacturer")
}

// ManufacturerByID looks a manufacturer up by primary key, ErrNotFound when missing.
func ManufacturerByID(db sqlx.Ext, id int64) (*domain.Manufacturer, error) {
	var row manufacturerRow
	err := sqlx.Get(db, &row, "SELECT "+manufacturerColumns+" FROM manufacturer WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get manufacturer %d: %w", id, err)
	}
	m := row.record()
	return &m, nil
}

// Manufacturers returns every manufacturer in table order.
func Manufacturers(db sqlx.Ext) ([]domain.Manufacturer, error) {
	var rows []manufacturerRow
	if err := sqlx.Select(db, &rows, "SELECT "+manufacturerColumns+" FROM manufacturer"); err != nil {
		return nil, fmt.Errorf("list manufacturers: %w", err)
	}
	manufacturers := make([]domain.Manufacturer, len(rows))
	for i, row := range rows {
		manufacturers[i] = row.record()
	}
	return manufacturers, nil
}

// ManufacturerFields projects the named columns for every manufacturer.
// Field names must be trusted literals; see projectRows.
func ManufacturerFields(db sqlx.Ext, fields ...string) ([]map[string]any, error) {
	return projectRows(db, "manufacturer", fields)
}

// InsertManufacturer writes a new manufacturer row. The caller owns the
// transaction; nothing is committed here.
func InsertManufacturer(db sqlx.Ext, m domain.Manufacturer) error {
	_, err := db.Exec(
		"INSERT INTO manufacturer (id, name, phone_number, address) VALUES (?, ?, ?, ?)",
		m.ID, m.Name, m.PhoneNumber, persisted(m.Address),
	)
	if err != nil {
		return fmt.Errorf("insert manufacturer %d: %w", m.ID, err)
	}
	return nil
}

// UpdateManufacturer replaces every non-id column of the matching row.
func UpdateManufacturer(db sqlx.Ext, m domain.Manufacturer) error {
	_, err := db.Exec(
		"UPDATE manufacturer SET name = ?, phone_number = ?, address = ? WHERE id = ?",
		m.Name, m.PhoneNumber, persisted(m.Address), m.ID,
	)
	if err != nil {
		return fmt.Errorf("update manufacturer %d: %w", m.ID, err)
	}
	return nil
}
