package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pharmadepot/m/internal/database"
	"pharmadepot/m/internal/migrations"
	"pharmadepot/m/internal/repository"
)

const catalogCSV = `id,name,manufacturer_id,cost_price,sale_price,potency,quantity_per_unit,manufacturing_date,purchase_date,expiry_date
1,Paracetamol,1,2.5,4.0,500,10,2024-01-01,2024-02-01,2026-01-01
2,Cough Syrup,2,3.0,5.5,,1,2024-03-01,2024-03-15,2025-09-01
`

func TestLoadMedicines(t *testing.T) {
	db := database.Connect(":memory:")
	t.Cleanup(func() { _ = db.Close() })
	migrations.Run(db)

	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(catalogCSV), 0o644))

	LoadMedicines(db, path)

	ids, err := repository.MedicineIDs(db)
	require.NoError(t, err)
	require.Equal(t, map[int64]struct{}{1: {}, 2: {}}, ids)

	m, err := repository.MedicineByID(db, 1)
	require.NoError(t, err)
	require.Equal(t, "Paracetamol", m.Name)
	require.NotNil(t, m.Potency)
	require.Equal(t, int64(500), *m.Potency)

	m, err = repository.MedicineByID(db, 2)
	require.NoError(t, err)
	require.Nil(t, m.Potency)

	// Reloading the same file must not duplicate or overwrite rows.
	LoadMedicines(db, path)
	ids, err = repository.MedicineIDs(db)
	require.NoError(t, err)
	require.Len(t, ids, 2)
}
