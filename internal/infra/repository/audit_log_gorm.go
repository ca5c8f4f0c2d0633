package repository

import (
	"context"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	repo "github.com/tsizion/DokaBackend/internal/repository"

	"gorm.io/gorm"
)

type auditLogGormRepository struct {
	db *gorm.DB
}

func NewAuditLogGormRepository(db *gorm.DB) repo.AuditLogRepository {
	return &auditLogGormRepository{db: db}
}

func (r *auditLogGormRepository) Create(ctx context.Context, log model.AuditLog) error {
	return r.db.WithContext(ctx).Create(&log).Error
}

func auditScope(q repo.AuditQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.AdminID != "" {
			db = db.Where("actor_id = ?", q.AdminID)
		}
		if len(q.Actions) > 0 {
			db = db.Where("action IN ?", q.Actions)
		}
		if q.ResourceType != "" {
			db = db.Where("resource_type = ?", q.ResourceType)
		}
		if q.ResourceID != "" {
			db = db.Where("resource_id = ?", q.ResourceID)
		}
		if !q.Since.IsZero() {
			db = db.Where("created_at >= ?", q.Since)
		}
		return db
	}
}

func (r *auditLogGormRepository) List(ctx context.Context, q repo.AuditQuery) (repo.AuditPage, error) {
	var page repo.AuditPage

	err := r.db.WithContext(ctx).Model(&model.AuditLog{}).
		Scopes(auditScope(q)).
		Count(&page.Total).Error
	if err != nil {
		return repo.AuditPage{}, err
	}

	limit, offset := q.Bounds()
	err = r.db.WithContext(ctx).
		Scopes(auditScope(q)).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&page.Logs).Error
	if err != nil {
		return repo.AuditPage{}, err
	}
	return page, nil
}

func (r *auditLogGormRepository) History(ctx context.Context, resourceType model.AuditResourceType, resourceID string) ([]model.AuditLog, error) {
	var logs []model.AuditLog
	err := r.db.WithContext(ctx).
		Where("resource_type = ? AND resource_id = ?", resourceType, resourceID).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
