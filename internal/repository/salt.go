package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmadepot/m/domain"
)

// SaltIDs returns the set of all salt ids.
func SaltIDs(db sqlx.Ext) (map[int64]struct{}, error) {
	return tableIDs(db, "salt")
}

// SaltByID looks a salt up by primary key, ErrNotFound when missing.
func SaltByID(db sqlx.Ext, id int64) (*domain.Salt, error) {
	var s domain.Salt
	err := sqlx.Get(db, &s, "SELECT id, name FROM salt WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get salt %d: %w", id, err)
	}
	return &s, nil
}

// Salts returns every salt in table order.
func Salts(db sqlx.Ext) ([]domain.Salt, error) {
	var salts []domain.Salt
	if err := sqlx.Select(db, &salts, "SELECT id, name FROM salt"); err != nil {
		return nil, fmt.Errorf("list salts: %w", err)
	}
	return salts, nil
}

// SaltFields projects the named columns for every salt. Field names must be
// trusted literals; see projectRows.
func SaltFields(db sqlx.Ext, fields ...string) ([]map[string]any, error) {
	return projectRows(db, "salt", fields)
}

// InsertSalt writes a new salt row. The caller owns the transaction; nothing
// is committed here.
func InsertSalt(db sqlx.Ext, s domain.Salt) error {
	if _, err := db.Exec("INSERT INTO salt (id, name) VALUES (?, ?)", s.ID, s.Name); err != nil {
		return fmt.Errorf("insert salt %d: %w", s.ID, err)
	}
	return nil
}

// UpdateSalt replaces every non-id column of the matching row.
func UpdateSalt(db sqlx.Ext, s domain.Salt) error {
	if _, err := db.Exec("UPDATE salt SET name = ? WHERE id = ?", s.Name, s.ID); err != nil {
		return fmt.Errorf("update salt %d: %w", s.ID, err)
	}
	return nil
}
