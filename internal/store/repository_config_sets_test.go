package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/models"
)

func newTestConfigSetRepo(t *testing.T) (*configSetRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &configSetRepository{
		DB:     newDB(db, DriverPostgres, l),
		logger: l,
	}
	return repo, mock, db
}

var configSetRowColumns = []string{"name", "fields", "absolute_serial_number", "install_options"}

// ── ListConfigSets ────────────────────────────────────────────────────────────

func TestConfigSetRepository_ListConfigSets(t *testing.T) {
	repo, mock, db := newTestConfigSetRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(configSetRowColumns).
		AddRow("alpha", `{"serial_number":"1","bot_type":"MaiBot"}`, 1, `{"install_napcat":true}`).
		AddRow("beta", `{}`, 2, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT name, fields, absolute_serial_number, install_options FROM config_sets ORDER BY absolute_serial_number")).
		WillReturnRows(rows)

	sets, err := repo.ListConfigSets(context.Background())
	require.NoError(t, err)
	require.Len(t, sets, 2)

	assert.Equal(t, "1", sets["alpha"].Get(models.FieldSerialNumber))
	assert.Equal(t, models.InstallOptions{"install_napcat": true}, sets["alpha"].InstallOptions)
	assert.Equal(t, 2, sets["beta"].AbsoluteSerialNumber)
	assert.Nil(t, sets["beta"].InstallOptions)
	assert.NotNil(t, sets["beta"].Fields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigSetRepository_ListConfigSets_QueryError(t *testing.T) {
	repo, mock, db := newTestConfigSetRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	_, err := repo.ListConfigSets(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── GetConfigSet ──────────────────────────────────────────────────────────────

func TestConfigSetRepository_GetConfigSet_NotFound(t *testing.T) {
	repo, mock, db := newTestConfigSetRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM config_sets WHERE name = $1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(configSetRowColumns))

	_, err := repo.GetConfigSet(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrConfigSetNotFound)
}

// ── CreateConfigSet ───────────────────────────────────────────────────────────

func TestConfigSetRepository_CreateConfigSet_AssignsFreeSerial(t *testing.T) {
	repo, mock, db := newTestConfigSetRepo(t)
	defer db.Close()

	entry := models.ConfigEntry{
		Fields:               map[string]string{models.FieldSerialNumber: "7", models.FieldNicknamePath: "Nick"},
		AbsoluteSerialNumber: 99,
		InstallOptions:       models.DefaultInstallOptions(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT absolute_serial_number FROM config_sets")).
		WillReturnRows(sqlmock.NewRows([]string{"absolute_serial_number"}).AddRow(1).AddRow(2).AddRow(4))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO config_sets")).
		WithArgs("bot", "7", 5, "Nick", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ui_registry")).
		WithArgs("bot", 5, "7", "Nick").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	stored, err := repo.CreateConfigSet(context.Background(), "bot", entry)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.AbsoluteSerialNumber)
	assert.Equal(t, 99, entry.AbsoluteSerialNumber, "input entry must not be mutated")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigSetRepository_CreateConfigSet_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestConfigSetRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT absolute_serial_number").
		WillReturnRows(sqlmock.NewRows([]string{"absolute_serial_number"}))
	mock.ExpectExec("INSERT INTO config_sets").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	mock.ExpectRollback()

	_, err := repo.CreateConfigSet(context.Background(), "bot", models.ConfigEntry{})
	assert.ErrorIs(t, err, ErrConfigSetConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigSetRepository_CreateConfigSet_BeginError(t *testing.T) {
	repo, mock, db := newTestConfigSetRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(assert.AnError)

	_, err := repo.CreateConfigSet(context.Background(), "bot", models.ConfigEntry{})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// ── UpdateConfigSet ───────────────────────────────────────────────────────────

func TestConfigSetRepository_UpdateConfigSet(t *testing.T) {
	repo, mock, db := newTestConfigSetRepo(t)
	defer db.Close()

	entry := models.ConfigEntry{Fields: map[string]string{models.FieldSerialNumber: "3"}}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE config_sets SET serial_number = $1, nickname_path = $2, fields = $3, install_options = $4, updated_at = CURRENT_TIMESTAMP WHERE name = $5")).
		WithArgs("3", "", `{"serial_number":"3"}`, nil, "bot").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE ui_registry")).
		WithArgs("3", "", "bot").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateConfigSet(context.Background(), "bot", entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigSetRepository_UpdateConfigSet_NotFound(t *testing.T) {
	repo, mock, db := newTestConfigSetRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE config_sets").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdateConfigSet(context.Background(), "ghost", models.ConfigEntry{})
	assert.ErrorIs(t, err, ErrConfigSetNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── DeleteConfigSet ───────────────────────────────────────────────────────────

func TestConfigSetRepository_DeleteConfigSet(t *testing.T) {
	repo, mock, db := newTestConfigSetRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM config_sets WHERE name = $1")).
		WithArgs("bot").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ui_registry WHERE name = $1")).
		WithArgs("bot").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteConfigSet(context.Background(), "bot"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfigSetRepository_DeleteConfigSet_NotFound(t *testing.T) {
	repo, mock, db := newTestConfigSetRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM config_sets").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.DeleteConfigSet(context.Background(), "ghost"), ErrConfigSetNotFound)
}

// ── registry ──────────────────────────────────────────────────────────────────

func TestConfigSetRepository_IsUIManaged(t *testing.T) {
	repo, mock, db := newTestConfigSetRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM ui_registry r JOIN config_sets c ON c.name = r.name WHERE r.name = $1")).
		WithArgs("bot").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("cli-only").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	managed, err := repo.IsUIManaged(context.Background(), "bot")
	require.NoError(t, err)
	assert.True(t, managed)

	managed, err = repo.IsUIManaged(context.Background(), "cli-only")
	require.NoError(t, err)
	assert.False(t, managed)
}

func TestConfigSetRepository_PruneRegistry(t *testing.T) {
	repo, mock, db := newTestConfigSetRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ui_registry WHERE name NOT IN (SELECT name FROM config_sets)")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	removed, err := repo.PruneRegistry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func TestNextFreeAbsoluteSerial(t *testing.T) {
	tests := []struct {
		name string
		used []int
		want int
	}{
		{name: "empty", used: nil, want: 1},
		{name: "dense", used: []int{1, 2, 3}, want: 4},
		{name: "gap below count is not reused", used: []int{2, 3}, want: 4},
		{name: "skips taken", used: []int{1, 3, 4}, want: 5},
		{name: "sparse", used: []int{10, 20}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextFreeAbsoluteSerial(tt.used))
		})
	}
}

func TestDriverFromDSN(t *testing.T) {
	tests := []struct {
		dsn     string
		want    string
		wantErr bool
	}{
		{dsn: "postgres://u:p@localhost:5432/db?sslmode=disable", want: DriverPostgres},
		{dsn: "host=localhost user=u dbname=db", want: DriverPostgres},
		{dsn: "file:config_sets.db?_fk=1", want: DriverSQLite},
		{dsn: "data/config_sets.sqlite", want: DriverSQLite},
		{dsn: "", wantErr: true},
		{dsn: "mysql://x", wantErr: true},
	}

	for _, tt := range tests {
		got, err := DriverFromDSN(tt.dsn)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedDSN, tt.dsn)
			continue
		}
		require.NoError(t, err, tt.dsn)
		assert.Equal(t, tt.want, got, tt.dsn)
	}
}

func TestErrorClassifiers(t *testing.T) {
	pg := NewPostgresErrorClassifier()
	assert.True(t, pg.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, pg.IsUniqueViolation(assert.AnError))
	assert.Equal(t, Retryable, pg.Classify(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}))
	assert.Equal(t, NonRetryable, pg.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))

	lite := NewSQLiteErrorClassifier()
	assert.True(t, lite.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, lite.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
	assert.Equal(t, Retryable, lite.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
}

func TestSqliteFilePath(t *testing.T) {
	assert.Equal(t, "data/sets.db", sqliteFilePath("file:data/sets.db?cache=shared"))
	assert.Equal(t, "sets.db", sqliteFilePath("sets.db"))
}
