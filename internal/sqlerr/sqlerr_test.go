package sqlerr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Alexeyalexeyalex/FastApi/internal/errs"
	"github.com/Alexeyalexeyalex/FastApi/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorPostgresForeignKey(t *testing.T) {
	tests := []struct {
		name    string
		pgErr   *pgconn.PgError
		code    string
		message string
	}{
		{
			name:    "constraint names the referenced entity",
			pgErr:   &pgconn.PgError{Code: "23503", TableName: "orders", ConstraintName: "fk_orders_user"},
			code:    "USER_NOT_FOUND",
			message: "The referenced User does not exist",
		},
		{
			name:    "unrecognised constraint name",
			pgErr:   &pgconn.PgError{Code: "23503", TableName: "orders", ConstraintName: "orders_products_table_id_fkey"},
			code:    "RECORD_NOT_FOUND",
			message: "The referenced Record does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := asHTTPError(t, sqlerr.HandleError(fmt.Errorf("failed to create: %w", tt.pgErr)))

			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, tt.message, httpErr.Message)
		})
	}
}

func TestHandleErrorOtherPostgresCodesAreInternal(t *testing.T) {
	for _, code := range []string{"23505", "53300"} {
		httpErr := asHTTPError(t, sqlerr.HandleError(&pgconn.PgError{Code: code}))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status, code)
	}
}

func TestHandleErrorPassesHTTPErrorsThrough(t *testing.T) {
	original := errs.NewBadRequestError("bad", true, nil, nil)
	assert.Same(t, original, sqlerr.HandleError(original))
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := asHTTPError(t, sqlerr.HandleError(errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Internal Server Error", httpErr.Message)
}

type parent struct {
	ID int64 `gorm:"primaryKey"`
}

type child struct {
	ID       int64 `gorm:"primaryKey"`
	ParentID int64
	Parent   *parent
}

func openSQLite(t *testing.T, dsn string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&parent{}, &child{}))
	return db
}

func TestHandleErrorSQLiteForeignKey(t *testing.T) {
	db := openSQLite(t, "file::memory:?_foreign_keys=1")

	err := db.Create(&child{ID: 1, ParentID: 7}).Error
	require.Error(t, err)

	httpErr := asHTTPError(t, sqlerr.HandleError(fmt.Errorf("failed to create: %w", err)))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "RECORD_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Record does not exist", httpErr.Message)
}

func TestHandleErrorOtherSQLiteErrorsAreInternal(t *testing.T) {
	db := openSQLite(t, "file::memory:")

	require.NoError(t, db.Create(&parent{ID: 1}).Error)
	err := db.Create(&parent{ID: 1}).Error
	require.Error(t, err)

	httpErr := asHTTPError(t, sqlerr.HandleError(err))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}
