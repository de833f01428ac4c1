package postgres

import (
	"context"
	"log/slog"
	"testing"

	"travel-crm-service/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// repoLogger discards everything
type repoLogger struct{}

func (l *repoLogger) Log(context.Context, slog.Level, string, ...any) {}
func (l *repoLogger) Info(string, ...any)                             {}
func (l *repoLogger) Error(string, ...any)                            {}
func (l *repoLogger) Warn(string, ...any)                             {}
func (l *repoLogger) Debug(string, ...any)                            {}
func (l *repoLogger) InfoContext(context.Context, string, ...any)     {}
func (l *repoLogger) ErrorContext(context.Context, string, ...any)    {}
func (l *repoLogger) WarnContext(context.Context, string, ...any)     {}
func (l *repoLogger) DebugContext(context.Context, string, ...any)    {}

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectPing()
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func TestFlightRepository_UpdatePersistsClearedCounts(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	repo := NewFlightRepository(gormDB, &repoLogger{})

	// The zero-valued baggage counters and the domestic downgrade must show
	// up in the SET clause; a struct update would drop them
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "voos" SET .*"carry_on_bags"=\$\d+.*"checked_bags"=\$\d+.*"international"=\$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &model.Flight{
		ID:            "01HZX4T9GJ1Q2W3E4R5T6Y7U8I",
		Direction:     model.DirectionOutbound,
		Origin:        "GRU",
		Dest:          "REC",
		Airline:       "GOL",
		FlightNumber:  "G31402",
		Class:         "Econômica",
		DepartureTime: "09:10",
		ArrivalTime:   "12:20",
		CheckedBags:   0,
		CarryOnBags:   0,
		International: false,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRepository_UpdatePersistsZeroedCounters(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	repo := NewQuoteRepository(gormDB, &repoLogger{})

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cotacoes" SET .*"adult_count"=\$\d+.*"child_count"=\$\d+.*"infant_count"=\$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &model.Quote{
		ID:          "01HZX4T9GJ1Q2W3E4R5T6Y7U8I",
		Title:       "Recife em família",
		AdultCount:  2,
		ChildCount:  0,
		InfantCount: 0,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
