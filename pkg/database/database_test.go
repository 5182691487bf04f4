package database

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"lv33global/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpen(t *testing.T) {
	t.Run("SQLite Success", func(t *testing.T) {
		cfg := &config.Config{
			DBDriver:   config.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "test.db"),
		}
		db, err := Open(cfg)
		require.NoError(t, err)
		assert.NotNil(t, db)

		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.NoError(t, sqlDB.Ping())
		sqlDB.Close()
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		cfg := &config.Config{DBDriver: "mysql"}
		_, err := Open(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
	})

	t.Run("Invalid SQLite Path", func(t *testing.T) {
		_, err := NewSQLiteDB("/non/existent/path/db.sqlite")
		assert.Error(t, err)
	})
}

func TestGormLogger_SkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: newGormLogger(&buf),
	})
	require.NoError(t, err)

	type widget struct {
		ID   uint
		Name string
	}
	require.NoError(t, db.AutoMigrate(&widget{}))

	var w widget
	err = db.First(&w, "name = ?", "missing").Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Empty(t, buf.String())

	err = db.Table("no_such_table").First(&w).Error
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "no_such_table")
}
