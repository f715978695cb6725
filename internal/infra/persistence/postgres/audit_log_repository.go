package postgres

import (
	"context"

	"vaultd/internal/domain/entity"
	domainerrors "vaultd/internal/domain/errors"
	"vaultd/internal/domain/repository"
	"vaultd/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// auditLogRepository implements the domain.AuditLogRepository interface using GORM.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

// AppendAccess records one credential access event.
func (repo *auditLogRepository) AppendAccess(ctx context.Context, log *entity.AccessLog) error {
	logM := &model.AccessLogModel{
		ConnectionID: log.ConnectionID,
		AccessType:   string(log.AccessType),
		AccessedBy:   log.AccessedBy,
		IPAddress:    log.IPAddress,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append access log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// AppendOAuthUsage records one use of a registered OAuth application.
func (repo *auditLogRepository) AppendOAuthUsage(ctx context.Context, log *entity.OAuthUsageLog) error {
	logM := &model.OAuthUsageLogModel{
		OAuthAppID:   log.OAuthAppID,
		OwnerID:      log.OwnerID,
		Action:       log.Action,
		Success:      log.Success,
		ErrorMessage: log.ErrorMessage,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append oauth usage log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}
