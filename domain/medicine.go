package domain

import (
	"fmt"
	"time"
)

// Medicine is one row of the medicine table. ManufacturerID is a plain
// foreign key with no referential integrity enforced at this layer.
type Medicine struct {
	ID                int64   `db:"id" json:"id"`
	Name              string  `db:"name" json:"name"`
	ManufacturerID    int64   `db:"manufacturer_id" json:"manufacturer_id"`
	CostPrice         float64 `db:"cost_price" json:"cost_price"`
	SalePrice         float64 `db:"sale_price" json:"sale_price"`
	Potency           *int64  `db:"potency" json:"potency,omitempty"`
	QuantityPerUnit   int64   `db:"quantity_per_unit" json:"quantity_per_unit"`
	ManufacturingDate string  `db:"manufacturing_date" json:"manufacturing_date"`
	PurchaseDate      string  `db:"purchase_date" json:"purchase_date"`
	ExpiryDate        string  `db:"expiry_date" json:"expiry_date"`
}

// Profit is the margin per sale of the medicine.
func (m Medicine) Profit() float64 {
	return m.SalePrice - m.CostPrice
}

// TimeToExpire reports how long remains until the medicine expires, negative
// once the expiry date has passed.
func (m Medicine) TimeToExpire(now time.Time) (time.Duration, error) {
	expiry, err := time.Parse(DateLayout, m.ExpiryDate)
	if err != nil {
		return 0, fmt.Errorf("invalid expiry date %q: %w", m.ExpiryDate, err)
	}
	return expiry.Sub(now), nil
}
