package db

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to MySQL when a DSN is given, otherwise to the SQLite file,
// creating its parent directory if needed.
func Open(mysqlDSN, sqliteFile string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		// Images are allowed to reference albums that no longer (or never) exist
		DisableForeignKeyConstraintWhenMigrating: true,
	}
	if mysqlDSN != "" {
		return gorm.Open(mysql.Open(mysqlDSN), cfg)
	}
	if sqliteFile == "" {
		return nil, fmt.Errorf("no database configured")
	}
	if dir := filepath.Dir(sqliteFile); dir != "." {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return nil, err
		}
	}
	return gorm.Open(sqlite.Open(sqliteFile), cfg)
}
