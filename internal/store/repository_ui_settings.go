package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/models"
)

type uiSettingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewUISettingsRepository constructs a SQL [UISettingsRepository].
func NewUISettingsRepository(db *DB, logger *logger.Logger) UISettingsRepository {
	logger.Debug().Msg("creating ui settings repository")
	return &uiSettingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *uiSettingsRepository) GetUISettings(ctx context.Context) (models.UISettings, error) {
	query, args, err := r.builder.Select(colTheme, colPort).
		From(tableUISettings).
		Where(sq.Eq{colID: uiSettingsRowID}).
		ToSql()
	if err != nil {
		return models.UISettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var settings models.UISettings
	err = r.QueryRowContext(ctx, query, args...).Scan(&settings.Theme, &settings.Port)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultUISettings(), nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*uiSettingsRepository.GetUISettings").Msg("failed to read ui settings")
		return models.UISettings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return settings, nil
}

func (r *uiSettingsRepository) SaveUISettings(ctx context.Context, settings models.UISettings) error {
	query, args, err := r.builder.Insert(tableUISettings).
		Columns(colID, colTheme, colPort).
		Values(uiSettingsRowID, string(settings.Theme), settings.Port).
		Suffix(upsertUISettingsSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*uiSettingsRepository.SaveUISettings").Msg("failed to save ui settings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
