package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"foodgram/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `[
	{"name": "абрикосовое варенье", "measurement_unit": "г"},
	{"name": "абрикосовое пюре", "measurement_unit": "г"},
	{"name": "абрикосовое варенье", "measurement_unit": "г"}
]`

func TestParseIngredients(t *testing.T) {
	items, err := ParseIngredients([]byte(sample))
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "абрикосовое пюре", items[1].Name)
	assert.Equal(t, "г", items[1].MeasurementUnit)

	_, err = ParseIngredients([]byte(`{"name": "not a list"}`))
	assert.Error(t, err)
}

func TestLoadIngredients(t *testing.T) {
	db := testutil.NewTestDB(t)
	path := filepath.Join(t.TempDir(), "ingredients.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	added, err := LoadIngredients(context.Background(), db, path)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	added, err = LoadIngredients(context.Background(), db, path)
	require.NoError(t, err)
	assert.Zero(t, added)

	_, err = LoadIngredients(context.Background(), db, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
