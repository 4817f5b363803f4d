package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrConfigSetNotFound is returned when the named config set does not
	// exist.
	ErrConfigSetNotFound = errors.New("config set not found")

	// ErrConfigSetConflict is returned when storing a config set violates a
	// uniqueness constraint (name, serial number, absolute serial number or
	// nickname).
	ErrConfigSetConflict = errors.New("config set conflicts with an existing one")

	// ErrUnsupportedDSN is returned when the DSN names neither PostgreSQL
	// nor an SQLite file.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrNoStorageConfigured is returned when neither a DSN nor a config
	// file path is configured.
	ErrNoStorageConfigured = errors.New("no storage configured")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan config set row")
	ErrScanningRows         = errors.New("failed to scan config set rows")
	ErrEncodingFields       = errors.New("failed to encode config set fields")
	ErrDecodingFields       = errors.New("failed to decode config set fields")
)

// File backend errors.
var (
	ErrReadingConfigFile = errors.New("error reading config file")
	ErrWritingConfigFile = errors.New("error writing config file")
	ErrReadingRegistry   = errors.New("error reading UI registry")
	ErrWritingRegistry   = errors.New("error writing UI registry")
)
