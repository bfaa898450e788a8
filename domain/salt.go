package domain

// Salt is one row of the salt table.
type Salt struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
