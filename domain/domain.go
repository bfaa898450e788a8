// Package domain holds the immutable record types for the warehouse tables.
package domain

// Layouts of the persisted date and datetime columns.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)
