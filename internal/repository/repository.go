// Package repository handles all interactions with the database.
//
// Every method issues exactly one statement through gorm (bulk inserts
// issue one per batch), abstracting SQL away from the service layer.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// table runs single-statement CRUD against the table of T.
type table[T any] struct {
	db        *gorm.DB
	name      string
	batchSize int
}

func newTable[T any](db *gorm.DB, name string, batchSize int) *table[T] {
	return &table[T]{db: db, name: name, batchSize: batchSize}
}

// List returns every row ordered by id; an empty table yields an empty slice.
func (r *table[T]) List(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.name, err)
	}
	return rows, nil
}

// Get returns the row with id, or nil when there is none.
func (r *table[T]) Get(ctx context.Context, id int64) (*T, error) {
	var rows []T
	if err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get %s %d: %w", r.name, id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Create inserts row and sets its generated id.
func (r *table[T]) Create(ctx context.Context, row *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", r.name, err)
	}
	return nil
}

// CreateBatch inserts rows in batches of the configured size.
func (r *table[T]) CreateBatch(ctx context.Context, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).CreateInBatches(rows, r.batchSize).Error
	if err != nil {
		return fmt.Errorf("failed to create %d %s: %w", len(rows), r.name, err)
	}
	return nil
}

// Update overwrites columns of the row with id and reports the rows affected.
// A missing id is not an error.
func (r *table[T]) Update(ctx context.Context, id int64, columns map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update %s %d: %w", r.name, id, result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes the row with id and reports the rows affected.
// A missing id is not an error.
func (r *table[T]) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete %s %d: %w", r.name, id, result.Error)
	}
	return result.RowsAffected, nil
}

// Count returns the number of rows.
func (r *table[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.name, err)
	}
	return n, nil
}
