package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/storefront/backend/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add reviews table", "add_reviews_table"},
		{"Add-Reviews-Table", "add_reviews_table"},
		{"add__reviews__table", "add_reviews_table"},
		{"special!@#$chars", "specialchars"},
		{"  trailing_ ", "trailing"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000007_existing.up.sql"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000007_existing.down.sql"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), nil, 0o644))

	mf, err := CreateMigration(dir, "Add wishlist")
	require.NoError(t, err)

	assert.EqualValues(t, 8, mf.Version)
	assert.Equal(t, filepath.Join(dir, "000008_add_wishlist.up.sql"), mf.UpPath)
	assert.FileExists(t, mf.DownPath)

	body, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- add_wishlist")

	_, err = CreateMigration(dir, "!!!")
	assert.Error(t, err)
}

func TestLatestVersion(t *testing.T) {
	v, err := LatestVersion(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := migrations.FS.ReadDir(".")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		m := versionPattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		key := m[1] + "_" + m[2]
		if m[3] == "up" {
			ups[key] = true
		} else {
			downs[key] = true
		}
	}
	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs, "every up migration has a down migration")
}
