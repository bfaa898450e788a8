package repository

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"pharmadepot/m/domain"
	"pharmadepot/m/internal/database"
	"pharmadepot/m/internal/migrations"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db := database.Connect(":memory:")
	t.Cleanup(func() { _ = db.Close() })
	migrations.Run(db)
	return db
}

func seedCustomers(t *testing.T, db *sqlx.DB) {
	t.Helper()
	rows := [][]any{
		{1, "Mary", "Johnson", "111-222-3333", "mary.j@example.com", "789 Maple St", "F", "1980-03-15"},
		{2, "John", "Smith", "222-333-4444", "", "", "M", "1975-08-02"},
		{3, "Alex", "Brown", "333-444-5555", "", "", "", ""},
	}
	for _, row := range rows {
		_, err := db.Exec(
			"INSERT INTO customer (id, first_name, last_name, phone_number, email_address, address, gender, birth_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			row...,
		)
		require.NoError(t, err)
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64   { return &n }

func TestCustomerIDs(t *testing.T) {
	db := testDB(t)

	ids, err := CustomerIDs(db)
	require.NoError(t, err)
	require.Empty(t, ids)

	seedCustomers(t, db)
	ids, err = CustomerIDs(db)
	require.NoError(t, err)
	require.Equal(t, map[int64]struct{}{1: {}, 2: {}, 3: {}}, ids)
}

func TestCustomerByID(t *testing.T) {
	db := testDB(t)
	seedCustomers(t, db)

	got, err := CustomerByID(db, 1)
	require.NoError(t, err)
	require.Equal(t, &domain.Customer{
		ID:           1,
		FirstName:    "Mary",
		LastName:     "Johnson",
		PhoneNumber:  "111-222-3333",
		EmailAddress: strPtr("mary.j@example.com"),
		Address:      strPtr("789 Maple St"),
		Gender:       strPtr("F"),
		BirthDate:    strPtr("1980-03-15"),
	}, got)

	// Empty-string columns surface as absent values.
	got, err = CustomerByID(db, 3)
	require.NoError(t, err)
	require.Nil(t, got.EmailAddress)
	require.Nil(t, got.Address)
	require.Nil(t, got.Gender)
	require.Nil(t, got.BirthDate)

	_, err = CustomerByID(db, 100000)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCustomersMatchesByIDOverAllIDs(t *testing.T) {
	db := testDB(t)
	seedCustomers(t, db)

	ids, err := CustomerIDs(db)
	require.NoError(t, err)

	all, err := Customers(db)
	require.NoError(t, err)
	require.Len(t, all, len(ids))

	for _, c := range all {
		byID, err := CustomerByID(db, c.ID)
		require.NoError(t, err)
		require.Equal(t, c, *byID)
	}
}

func TestCustomerFieldsProjection(t *testing.T) {
	db := testDB(t)
	seedCustomers(t, db)

	rows, err := CustomerFields(db, "id", "first_name")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, map[string]any{"id": int64(1), "first_name": "Mary"}, rows[0])
	require.Equal(t, map[string]any{"id": int64(2), "first_name": "John"}, rows[1])

	_, err = CustomerFields(db, "no_such_column")
	require.Error(t, err)
}

func TestEmployeeByEmailAddress(t *testing.T) {
	db := testDB(t)
	_, err := db.Exec(
		"INSERT INTO employee VALUES (1, 'Ada', 'Lovelace', '555-0001', 'ada@depot.example', '1 Analytical Way', 'F', '1985-12-10', '2015-01-05', 'Warehouse Lead', 5200, 'hash', 1, 1)",
	)
	require.NoError(t, err)

	e, err := EmployeeByEmailAddress(db, "ada@depot.example")
	require.NoError(t, err)
	require.Equal(t, int64(1), e.ID)
	require.Equal(t, "Ada Lovelace", e.FullName())
	require.True(t, e.IsAdministrator)
	require.True(t, e.CurrentlyEmployed)
	require.Equal(t, strPtr("Warehouse Lead"), e.Designation)

	_, err = EmployeeByEmailAddress(db, "nobody@depot.example")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestManufacturerRoundTrip(t *testing.T) {
	db := testDB(t)

	withAddress := domain.Manufacturer{ID: 1, Name: "Acme Pharma", PhoneNumber: "555-1000", Address: strPtr("12 Mill Rd")}
	withoutAddress := domain.Manufacturer{ID: 2, Name: "Globex Labs", PhoneNumber: "555-2000"}

	tx, err := db.Beginx()
	require.NoError(t, err)
	require.NoError(t, InsertManufacturer(tx, withAddress))
	require.NoError(t, InsertManufacturer(tx, withoutAddress))
	require.NoError(t, tx.Commit())

	got, err := ManufacturerByID(db, 1)
	require.NoError(t, err)
	require.Equal(t, withAddress, *got)

	got, err = ManufacturerByID(db, 2)
	require.NoError(t, err)
	require.Equal(t, withoutAddress, *got)

	withAddress.Name = "Acme Pharmaceuticals"
	withAddress.Address = nil
	require.NoError(t, UpdateManufacturer(db, withAddress))
	got, err = ManufacturerByID(db, 1)
	require.NoError(t, err)
	require.Equal(t, withAddress, *got)

	ids, err := ManufacturerIDs(db)
	require.NoError(t, err)
	require.Equal(t, map[int64]struct{}{1: {}, 2: {}}, ids)
}

func TestMedicineRoundTrip(t *testing.T) {
	db := testDB(t)

	med := domain.Medicine{
		ID:                7,
		Name:              "Paracetamol",
		ManufacturerID:    1,
		CostPrice:         2.5,
		SalePrice:         4.0,
		Potency:           intPtr(500),
		QuantityPerUnit:   10,
		ManufacturingDate: "2024-01-01",
		PurchaseDate:      "2024-02-01",
		ExpiryDate:        "2026-01-01",
	}
	require.NoError(t, InsertMedicine(db, med))

	got, err := MedicineByID(db, 7)
	require.NoError(t, err)
	require.Equal(t, med, *got)

	// Absent potency persists as the empty-string sentinel and reads back nil.
	med.ID = 8
	med.Potency = nil
	require.NoError(t, InsertMedicine(db, med))
	got, err = MedicineByID(db, 8)
	require.NoError(t, err)
	require.Nil(t, got.Potency)

	med.ID = 7
	med.SalePrice = 5.5
	med.Potency = intPtr(250)
	require.NoError(t, UpdateMedicine(db, med))
	got, err = MedicineByID(db, 7)
	require.NoError(t, err)
	require.Equal(t, med, *got)

	_, err = MedicineByID(db, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMedicineFieldsPreservesRowOrder(t *testing.T) {
	db := testDB(t)
	for i, name := range []string{"Aspirin", "Ibuprofen", "Cetirizine"} {
		_, err := db.Exec(
			"INSERT INTO medicine VALUES (?, ?, 1, 1.0, 2.0, '', 10, '2024-01-01', '2024-02-01', '2026-01-01')",
			i+1, name,
		)
		require.NoError(t, err)
	}

	rows, err := MedicineFields(db, "id", "name")
	require.NoError(t, err)
	require.Equal(t, []map[string]any{
		{"id": int64(1), "name": "Aspirin"},
		{"id": int64(2), "name": "Ibuprofen"},
		{"id": int64(3), "name": "Cetirizine"},
	}, rows)
}

func TestSaleRoundTripAndLookups(t *testing.T) {
	db := testDB(t)
	seedCustomers(t, db)
	_, err := db.Exec(
		"INSERT INTO employee VALUES (4, 'Grace', 'Hopper', '555-0002', 'grace@depot.example', '2 Compiler Ct', 'F', '1986-12-09', '2018-06-01', '', 4800, 'hash', 1, 0)",
	)
	require.NoError(t, err)

	sale := domain.Sale{ID: 1, DateTime: "2024-05-01 14:30:00", EmployeeID: 4, CustomerID: 2, Amount: 129.99}
	require.NoError(t, InsertSale(db, sale))

	got, err := SaleByID(db, 1)
	require.NoError(t, err)
	require.Equal(t, sale, *got)

	emp, err := SaleEmployee(db, *got)
	require.NoError(t, err)
	require.Equal(t, "Grace Hopper", emp.FullName())

	cust, err := SaleCustomer(db, *got)
	require.NoError(t, err)
	require.Equal(t, int64(2), cust.ID)

	sale.Amount = 99.99
	sale.CustomerID = 1
	require.NoError(t, UpdateSale(db, sale))
	got, err = SaleByID(db, 1)
	require.NoError(t, err)
	require.Equal(t, sale, *got)
}

func TestSaltRoundTrip(t *testing.T) {
	db := testDB(t)

	salt := domain.Salt{ID: 1, Name: "Diclofenac Sodium"}
	require.NoError(t, InsertSalt(db, salt))

	got, err := SaltByID(db, 1)
	require.NoError(t, err)
	require.Equal(t, salt, *got)

	salt.Name = "Diclofenac Potassium"
	require.NoError(t, UpdateSalt(db, salt))
	got, err = SaltByID(db, 1)
	require.NoError(t, err)
	require.Equal(t, salt, *got)

	all, err := Salts(db)
	require.NoError(t, err)
	require.Equal(t, []domain.Salt{salt}, all)

	_, err = SaltByID(db, 2)
	require.ErrorIs(t, err, ErrNotFound)
}
