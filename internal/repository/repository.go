// Package repository translates between the domain records and raw rows of
// the warehouse database. Reads accept any sqlx.Ext; writes never commit, so
// callers decide the transaction boundary.
package repository

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound marks a primary-key or unique-column lookup that matched no row.
var ErrNotFound = errors.New("record not found")

// Optional columns persist the empty string when absent. These two helpers
// are the single normalization point between that sentinel and the pointer
// fields on the domain records.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func persisted(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalInt(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func persistedInt(n *int64) any {
	if n == nil {
		return ""
	}
	return *n
}

func tableIDs(db sqlx.Ext, table string) (map[int64]struct{}, error) {
	var ids []int64
	if err := sqlx.Select(db, &ids, "SELECT id FROM "+table); err != nil {
		return nil, fmt.Errorf("list %s ids: %w", table, err)
	}
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// projectRows selects the caller-supplied columns from a table, one mapping
// per row in table order. Field names are interpolated into the statement and
// MUST be trusted literals; SQLite cannot bind identifiers, and an unknown
// column surfaces as a query error.
func projectRows(db sqlx.Ext, table string, fields []string) ([]map[string]any, error) {
	rows, err := db.Queryx("SELECT " + strings.Join(fields, ", ") + " FROM " + table)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", table, err)
	}
	defer rows.Close()

	var out []map[string]any
	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("scan %s projection: %w", table, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
