package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/models"
)

// configSetRepository is the SQL implementation of [ConfigSetRepository].
// Scalar fields are stored as a JSON object in the "fields" column; serial
// number and nickname are duplicated into their own columns so that the
// database enforces their uniqueness.
type configSetRepository struct {
	*DB
	logger *logger.Logger
}

// NewConfigSetRepository constructs a [ConfigSetRepository] backed by db.
func NewConfigSetRepository(db *DB, logger *logger.Logger) ConfigSetRepository {
	logger.Debug().Msg("creating config set repository")
	return &configSetRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *configSetRepository) ListConfigSets(ctx context.Context) (models.ConfigSets, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Select(configSetColumns...).
		From(tableConfigSets).
		OrderBy(colAbsoluteSerialNumber).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*configSetRepository.ListConfigSets").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*configSetRepository.ListConfigSets").Msg("failed to list config sets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sets := make(models.ConfigSets)
	for rows.Next() {
		name, entry, scanErr := scanConfigSet(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*configSetRepository.ListConfigSets").Msg("failed to scan config set row")
			return nil, scanErr
		}
		sets[name] = entry
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*configSetRepository.ListConfigSets").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sets, nil
}

func (r *configSetRepository) GetConfigSet(ctx context.Context, name string) (models.ConfigEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Select(configSetColumns...).
		From(tableConfigSets).
		Where(sq.Eq{colName: name}).
		ToSql()
	if err != nil {
		return models.ConfigEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, entry, err := scanConfigSet(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ConfigEntry{}, ErrConfigSetNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*configSetRepository.GetConfigSet").Str("name", name).Msg("failed to get config set")
		return models.ConfigEntry{}, err
	}

	return entry, nil
}

func (r *configSetRepository) CreateConfigSet(ctx context.Context, name string, entry models.ConfigEntry) (models.ConfigEntry, error) {
	log := logger.FromContext(ctx)

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*configSetRepository.CreateConfigSet").Msg("failed to begin transaction")
		return models.ConfigEntry{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	used, err := r.usedAbsoluteSerials(ctx, tx)
	if err != nil {
		log.Err(err).Str("func", "*configSetRepository.CreateConfigSet").Msg("failed to read used absolute serials")
		return models.ConfigEntry{}, err
	}

	stored := entry.Clone()
	stored.AbsoluteSerialNumber = NextFreeAbsoluteSerial(used)

	fields, options, err := encodeConfigSet(stored)
	if err != nil {
		return models.ConfigEntry{}, err
	}

	insertSet := r.builder.Insert(tableConfigSets).
		Columns(colName, colSerialNumber, colAbsoluteSerialNumber, colNicknamePath, colFields, colInstallOptions).
		Values(name, stored.Get(models.FieldSerialNumber), stored.AbsoluteSerialNumber,
			stored.Get(models.FieldNicknamePath), fields, options)
	if err = r.exec(ctx, tx, insertSet); err != nil {
		log.Err(err).Str("func", "*configSetRepository.CreateConfigSet").Str("name", name).Msg("failed to insert config set")
		return models.ConfigEntry{}, err
	}

	insertRegistry := r.builder.Insert(tableUIRegistry).
		Columns(colName, colAbsoluteSerialNumber, colSerialNumber, colNicknamePath).
		Values(name, stored.AbsoluteSerialNumber, stored.Get(models.FieldSerialNumber), stored.Get(models.FieldNicknamePath)).
		Suffix(upsertRegistrySuffix)
	if err = r.exec(ctx, tx, insertRegistry); err != nil {
		log.Err(err).Str("func", "*configSetRepository.CreateConfigSet").Str("name", name).Msg("failed to register config set")
		return models.ConfigEntry{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*configSetRepository.CreateConfigSet").Msg("failed to commit transaction")
		return models.ConfigEntry{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().Str("func", "*configSetRepository.CreateConfigSet").
		Str("name", name).
		Int("absolute_serial_number", stored.AbsoluteSerialNumber).
		Msg("config set created")

	return stored, nil
}

func (r *configSetRepository) UpdateConfigSet(ctx context.Context, name string, entry models.ConfigEntry) error {
	log := logger.FromContext(ctx)

	fields, options, err := encodeConfigSet(entry)
	if err != nil {
		return err
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	update := r.builder.Update(tableConfigSets).
		Set(colSerialNumber, entry.Get(models.FieldSerialNumber)).
		Set(colNicknamePath, entry.Get(models.FieldNicknamePath)).
		Set(colFields, fields).
		Set(colInstallOptions, options).
		Set(colUpdatedAt, sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{colName: name})

	affected, err := r.execAffected(ctx, tx, update)
	if err != nil {
		log.Err(err).Str("func", "*configSetRepository.UpdateConfigSet").Str("name", name).Msg("failed to update config set")
		return err
	}
	if affected == 0 {
		return ErrConfigSetNotFound
	}

	// keep the registry copy of the identifying fields current
	registry := r.builder.Update(tableUIRegistry).
		Set(colSerialNumber, entry.Get(models.FieldSerialNumber)).
		Set(colNicknamePath, entry.Get(models.FieldNicknamePath)).
		Where(sq.Eq{colName: name})
	if err = r.exec(ctx, tx, registry); err != nil {
		log.Err(err).Str("func", "*configSetRepository.UpdateConfigSet").Str("name", name).Msg("failed to update registry")
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *configSetRepository) DeleteConfigSet(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	affected, err := r.execAffected(ctx, tx, r.builder.Delete(tableConfigSets).Where(sq.Eq{colName: name}))
	if err != nil {
		log.Err(err).Str("func", "*configSetRepository.DeleteConfigSet").Str("name", name).Msg("failed to delete config set")
		return err
	}
	if affected == 0 {
		return ErrConfigSetNotFound
	}

	if err = r.exec(ctx, tx, r.builder.Delete(tableUIRegistry).Where(sq.Eq{colName: name})); err != nil {
		log.Err(err).Str("func", "*configSetRepository.DeleteConfigSet").Str("name", name).Msg("failed to unregister config set")
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *configSetRepository) IsUIManaged(ctx context.Context, name string) (bool, error) {
	query, args, err := r.builder.Select("COUNT(*)").
		From(tableUIRegistry + " r").
		Join(tableConfigSets + " c ON c.name = r.name").
		Where(sq.Eq{"r.name": name}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*configSetRepository.IsUIManaged").Str("name", name).Msg("failed to check registry")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *configSetRepository) PruneRegistry(ctx context.Context) (int, error) {
	query := r.builder.Delete(tableUIRegistry).
		Where(sq.Expr("name NOT IN (SELECT name FROM " + tableConfigSets + ")"))

	affected, err := r.execAffected(ctx, r.DB, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*configSetRepository.PruneRegistry").Msg("failed to prune registry")
		return 0, err
	}

	return int(affected), nil
}

func (r *configSetRepository) usedAbsoluteSerials(ctx context.Context, tx *sql.Tx) ([]int, error) {
	query, args, err := r.builder.Select(colAbsoluteSerialNumber).From(tableConfigSets).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	used := make([]int, 0, 16)
	for rows.Next() {
		var n int
		if err = rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		used = append(used, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return used, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *configSetRepository) exec(ctx context.Context, db execer, stmt sq.Sqlizer) error {
	_, err := r.execAffected(ctx, db, stmt)
	return err
}

func (r *configSetRepository) execAffected(ctx context.Context, db execer, stmt sq.Sqlizer) (int64, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.errorClassificator != nil && r.errorClassificator.IsUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %w", ErrConfigSetConflict, err)
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConfigSet(row rowScanner) (string, models.ConfigEntry, error) {
	var (
		name    string
		fields  string
		serial  int
		options sql.NullString
	)

	if err := row.Scan(&name, &fields, &serial, &options); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", models.ConfigEntry{}, err
		}
		return "", models.ConfigEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	entry := models.ConfigEntry{AbsoluteSerialNumber: serial}
	if err := json.Unmarshal([]byte(fields), &entry.Fields); err != nil {
		return "", models.ConfigEntry{}, fmt.Errorf("%w: %w", ErrDecodingFields, err)
	}
	if options.Valid && options.String != "" {
		if err := json.Unmarshal([]byte(options.String), &entry.InstallOptions); err != nil {
			return "", models.ConfigEntry{}, fmt.Errorf("%w: %w", ErrDecodingFields, err)
		}
	}
	if entry.Fields == nil {
		entry.Fields = make(map[string]string)
	}

	return name, entry, nil
}

func encodeConfigSet(entry models.ConfigEntry) (string, sql.NullString, error) {
	fields := entry.Fields
	if fields == nil {
		fields = map[string]string{}
	}

	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}

	if entry.InstallOptions == nil {
		return string(fieldsJSON), sql.NullString{}, nil
	}

	optionsJSON, err := json.Marshal(entry.InstallOptions)
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}

	return string(fieldsJSON), sql.NullString{String: string(optionsJSON), Valid: true}, nil
}

// NextFreeAbsoluteSerial returns the smallest number, starting from
// len(used)+1, that is not in used.
func NextFreeAbsoluteSerial(used []int) int {
	taken := make(map[int]struct{}, len(used))
	for _, n := range used {
		taken[n] = struct{}{}
	}

	next := len(used) + 1
	for {
		if _, ok := taken[next]; !ok {
			return next
		}
		next++
	}
}
