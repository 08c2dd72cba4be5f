package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func userRow(id, clerkID, name string) []driver.Value {
	return []driver.Value{id, clerkID, name, "https://img.example.com/" + clerkID + ".png", testNow, testNow}
}

// videoRow returns a ready public video in videoColumns order.
func videoRow(id, userID string) []driver.Value {
	return []driver.Value{
		id, "My video", nil,
		"ready", "asset-1", "upload-1", "pb-1", nil, nil,
		nil, nil, nil, nil,
		int64(61000), "public", userID, nil,
		testNow, testNow,
	}
}
