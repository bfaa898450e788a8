package migrations

import (
	"log"

	"github.com/jmoiron/sqlx"
)

// Run creates the warehouse schema. Column order matches the scan order used
// by the repository layer and must not be reordered.
func Run(db *sqlx.DB) {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS employee (
			id INTEGER PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone_number TEXT NOT NULL,
			email_address TEXT NOT NULL,
			address TEXT NOT NULL,
			gender TEXT NOT NULL,
			birth_date TEXT NOT NULL,
			joining_date TEXT NOT NULL,
			designation TEXT NOT NULL DEFAULT '',
			monthly_salary REAL NOT NULL,
			login_password TEXT NOT NULL,
			currently_employed INTEGER NOT NULL DEFAULT 1,
			is_administrator INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS customer (
			id INTEGER PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone_number TEXT NOT NULL,
			email_address TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT '',
			birth_date TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS manufacturer (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			phone_number TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS medicine (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			manufacturer_id INTEGER NOT NULL,
			cost_price REAL NOT NULL,
			sale_price REAL NOT NULL,
			potency TEXT NOT NULL DEFAULT '',
			quantity_per_unit INTEGER NOT NULL,
			manufacturing_date TEXT NOT NULL,
			purchase_date TEXT NOT NULL,
			expiry_date TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sale (
			id INTEGER PRIMARY KEY,
			date_time TEXT NOT NULL,
			employee_id INTEGER NOT NULL,
			customer_id INTEGER NOT NULL,
			amount REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS salt (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}
}
