package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmadepot/m/domain"
)

const medicineColumns = "id, name, manufacturer_id, cost_price, sale_price, potency, " +
	"quantity_per_unit, manufacturing_date, purchase_date, expiry_date"

type medicineRow struct {
	ID                int64   `db:"id"`
	Name              string  `db:"name"`
	ManufacturerID    int64   `db:"manufacturer_id"`
	CostPrice         float64 `db:"cost_price"`
	SalePrice         float64 `db:"sale_price"`
	Potency           string  `db:"potency"`
	QuantityPerUnit   int64   `db:"quantity_per_unit"`
	ManufacturingDate string  `db:"manufacturing_date"`
	PurchaseDate      string  `db:"purchase_date"`
	ExpiryDate        string  `db:"expiry_date"`
}

func (r medicineRow) record() (domain.Medicine, error) {
	potency, err := optionalInt(r.Potency)
	if err != nil {
		return domain.Medicine{}, fmt.Errorf("medicine %d has invalid potency %q: %w", r.ID, r.Potency, err)
	}
	return domain.Medicine{
		ID:                r.ID,
		Name:              r.Name,
		ManufacturerID:    r.ManufacturerID,
		CostPrice:         r.CostPrice,
		SalePrice:         r.SalePrice,
		Potency:           potency,
		QuantityPerUnit:   r.QuantityPerUnit,
		ManufacturingDate: r.ManufacturingDate,
		PurchaseDate:      r.PurchaseDate,
		ExpiryDate:        r.ExpiryDate,
	}, nil
}

// MedicineIDs returns the set of all medicine ids.
func MedicineIDs(db sqlx.Ext) (map[int64]struct{}, error) {
	return tableIDs(db, "medicine")
}

// MedicineByID looks a medicine up by primary key, ErrNotFound when missing.
func MedicineByID(db sqlx.Ext, id int64) (*domain.Medicine, error) {
	var row medicineRow
	err := sqlx.Get(db, &row, "SELECT "+medicineColumns+" FROM medicine WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get medicine %d: %w", id, err)
	}
	m, err := row.record()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Medicines returns every medicine in table order.
func Medicines(db sqlx.Ext) ([]domain.Medicine, error) {
	var rows []medicineRow
	if err := sqlx.Select(db, &rows, "SELECT "+medicineColumns+" FROM medicine"); err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	medicines := make([]domain.Medicine, len(rows))
	for i, row := range rows {
		m, err := row.record()
		if err != nil {
			return nil, err
		}
		medicines[i] = m
	}
	return medicines, nil
}

// MedicineFields projects the named columns for every medicine. Field names
// must be trusted literals; see projectRows.
func MedicineFields(db sqlx.Ext, fields ...string) ([]map[string]any, error) {
	return projectRows(db, "medicine", fields)
}

// InsertMedicine writes a new medicine row. The caller owns the transaction;
// nothing is committed here.
func InsertMedicine(db sqlx.Ext, m domain.Medicine) error {
	_, err := db.Exec(
		"INSERT INTO medicine (id, name, manufacturer_id, cost_price, sale_price, potency, "+
			"quantity_per_unit, manufacturing_date, purchase_date, expiry_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		m.ID, m.Name, m.ManufacturerID, m.CostPrice, m.SalePrice, persistedInt(m.Potency),
		m.QuantityPerUnit, m.ManufacturingDate, m.PurchaseDate, m.ExpiryDate,
	)
	if err != nil {
		return fmt.Errorf("insert medicine %d: %w", m.ID, err)
	}
	return nil
}

// UpdateMedicine replaces every non-id column of the matching row.
func UpdateMedicine(db sqlx.Ext, m domain.Medicine) error {
	_, err := db.Exec(
		"UPDATE medicine SET name = ?, manufacturer_id = ?, cost_price = ?, sale_price = ?, potency = ?, "+
			"quantity_per_unit = ?, manufacturing_date = ?, purchase_date = ?, expiry_date = ? WHERE id = ?",
		m.Name, m.ManufacturerID, m.CostPrice, m.SalePrice, persistedInt(m.Potency),
		m.QuantityPerUnit, m.ManufacturingDate, m.PurchaseDate, m.ExpiryDate, m.ID,
	)
	if err != nil {
		return fmt.Errorf("update medicine %d: %w", m.ID, err)
	}
	return nil
}
