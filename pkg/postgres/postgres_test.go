package postgres

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func createMockPostgresClient(t *testing.T, db *sql.DB) PostgresClient {
	t.Helper()
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return &postgresClient{
		DB: gormDB,
	}
}

func TestPostgresClient_GetDB(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()

	client := createMockPostgresClient(t, db)

	gormDB := client.GetDB()
	require.NotNil(t, gormDB, "GetDB should return the gorm instance")

	sqlDB, err := gormDB.DB()
	assert.NoError(t, err, "Getting underlying DB should succeed")
	assert.NotNil(t, sqlDB)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Close(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing()
	mock.ExpectClose()

	client := createMockPostgresClient(t, db)

	assert.NoError(t, client.Close(), "Close should succeed")
	assert.NoError(t, mock.ExpectationsWereMet())
}
