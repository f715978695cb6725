package postgres

import (
	"context"
	"time"

	"vaultd/internal/domain/entity"
	domainerrors "vaultd/internal/domain/errors"
	"vaultd/internal/domain/repository"
	"vaultd/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// refreshErrorRepository implements the domain.RefreshErrorRepository interface using GORM.
type refreshErrorRepository struct {
	db *gorm.DB
}

// NewRefreshErrorRepository is the constructor for refreshErrorRepository.
func NewRefreshErrorRepository(db *gorm.DB) repository.RefreshErrorRepository {
	return &refreshErrorRepository{db: db}
}

// RecordFailure appends or updates the open failure record for a connection.
func (repo *refreshErrorRepository) RecordFailure(ctx context.Context, connectionID uuid.UUID, errorType, errorMessage string, at time.Time) (*entity.RefreshError, error) {
	var existing model.RefreshErrorModel
	err := repo.db.WithContext(ctx).
		Where("connection_id = ? AND error_type = ? AND resolved_at IS NULL", connectionID, errorType).
		Order("created_at DESC").
		First(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		record := &model.RefreshErrorModel{
			ConnectionID: connectionID,
			ErrorType:    errorType,
			ErrorMessage: errorMessage,
			RetryCount:   1,
			LastRetryAt:  &at,
		}
		if err := repo.db.WithContext(ctx).Create(record).Error; err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create refresh error record")
		}

		return toRefreshErrorDomain(record), nil
	case err != nil:
		return nil, errors.Wrap(err, "failed to look up open refresh error record")
	}

	existing.RetryCount++
	existing.ErrorMessage = errorMessage
	existing.LastRetryAt = &at

	updates := map[string]any{
		"retry_count":   existing.RetryCount,
		"error_message": existing.ErrorMessage,
		"last_retry_at": at,
	}
	err = repo.db.WithContext(ctx).
		Model(&model.RefreshErrorModel{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update refresh error record")
	}

	return toRefreshErrorDomain(&existing), nil
}

// Resolve closes all open failure records for a connection.
func (repo *refreshErrorRepository) Resolve(ctx context.Context, connectionID uuid.UUID, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.RefreshErrorModel{}).
		Where("connection_id = ? AND resolved_at IS NULL", connectionID).
		Update("resolved_at", at).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to resolve refresh error records")
	}

	return nil
}

// ListUnresolved retrieves open failure records, most recent first.
func (repo *refreshErrorRepository) ListUnresolved(ctx context.Context, limit int) ([]*entity.RefreshError, error) {
	query := repo.db.WithContext(ctx).
		Where("resolved_at IS NULL").
		Order("last_retry_at DESC NULLS LAST, created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []*model.RefreshErrorModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list unresolved refresh errors")
	}

	records := make([]*entity.RefreshError, 0, len(models))
	for _, m := range models {
		records = append(records, toRefreshErrorDomain(m))
	}

	return records, nil
}

// CountUnresolved returns the number of open failure records for a connection.
func (repo *refreshErrorRepository) CountUnresolved(ctx context.Context, connectionID uuid.UUID) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RefreshErrorModel{}).
		Where("connection_id = ? AND resolved_at IS NULL", connectionID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unresolved refresh errors")
	}

	return int(count), nil
}

// toRefreshErrorDomain converts a GORM RefreshErrorModel to a domain RefreshError entity.
func toRefreshErrorDomain(data *model.RefreshErrorModel) *entity.RefreshError {
	if data == nil {
		return nil
	}

	return &entity.RefreshError{
		ID:           data.ID,
		ConnectionID: data.ConnectionID,
		ErrorType:    data.ErrorType,
		ErrorMessage: data.ErrorMessage,
		RetryCount:   data.RetryCount,
		CreatedAt:    data.CreatedAt,
		LastRetryAt:  data.LastRetryAt,
		ResolvedAt:   data.ResolvedAt,
	}
}
