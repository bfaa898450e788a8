package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCustomerFullName(t *testing.T) {
	c := Customer{FirstName: "Mary", LastName: "Johnson"}
	require.Equal(t, "Mary Johnson", c.FullName())
}

func TestCustomerAge(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	c := Customer{ID: 1, BirthDate: strPtr("1980-03-15")}
	age, err := c.Age(now)
	require.NoError(t, err)
	require.Equal(t, 44, age)

	// Birthday later in the year: not yet a full year older.
	c = Customer{ID: 2, BirthDate: strPtr("1980-06-02")}
	age, err = c.Age(now)
	require.NoError(t, err)
	require.Equal(t, 43, age)
}

func TestCustomerAgeWithoutBirthDate(t *testing.T) {
	c := Customer{ID: 3}
	_, err := c.Age(time.Now())
	require.Error(t, err)
}

func TestEmployeeAge(t *testing.T) {
	e := Employee{BirthDate: "1990-12-31"}
	age, err := e.Age(time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, 33, age)

	age, err = e.Age(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, 34, age)
}

func TestMedicineProfit(t *testing.T) {
	m := Medicine{CostPrice: 12.5, SalePrice: 20}
	require.InDelta(t, 7.5, m.Profit(), 1e-9)
}

func TestMedicineTimeToExpire(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	m := Medicine{ExpiryDate: "2024-01-31"}
	left, err := m.TimeToExpire(now)
	require.NoError(t, err)
	require.Equal(t, 30*24*time.Hour, left)

	m = Medicine{ExpiryDate: "2023-12-01"}
	left, err = m.TimeToExpire(now)
	require.NoError(t, err)
	require.Negative(t, left)

	m = Medicine{ExpiryDate: "not-a-date"}
	_, err = m.TimeToExpire(now)
	require.Error(t, err)
}
