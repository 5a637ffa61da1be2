package database

import (
	"context"
	"fmt"

	"github.com/Alexeyalexeyalex/FastApi/internal/model"
)

// tables lists every record type, in dependency order (orders last).
var tables = []any{
	&model.User{},
	&model.Product{},
	&model.Order{},
}

// EnsureSchema creates the users, products and orders tables when they are
// missing. Existing tables and their data are left untouched.
func (db *Database) EnsureSchema(ctx context.Context) error {
	migrator := db.DB.WithContext(ctx).Migrator()

	var created []string
	for _, table := range tables {
		if migrator.HasTable(table) {
			continue
		}
		if err := migrator.AutoMigrate(table); err != nil {
			return fmt.Errorf("creating table for %T: %w", table, err)
		}
		created = append(created, fmt.Sprintf("%T", table))
	}

	if len(created) == 0 {
		db.log.Info().Msg("database schema up to date")
	} else {
		db.log.Info().Strs("tables", created).Msg("created database tables")
	}
	return nil
}
