package domain

// Sale is one row of the sale table. EmployeeID and CustomerID are plain
// foreign keys; use repository.SaleEmployee / repository.SaleCustomer to
// resolve them.
type Sale struct {
	ID         int64   `db:"id" json:"id"`
	DateTime   string  `db:"date_time" json:"date_time"`
	EmployeeID int64   `db:"employee_id" json:"employee_id"`
	CustomerID int64   `db:"customer_id" json:"customer_id"`
	Amount     float64 `db:"amount" json:"amount"`
}
