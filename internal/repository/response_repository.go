package repository

import (
	"context"
	"time"

	"github.com/careermind/interviewprep/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResponseRepository is the append-only response log. Records are inserted
// once and never updated or deleted.
type ResponseRepository interface {
	Create(ctx context.Context, record *model.ResponseRecord) error
	// FindByUser returns the user's records newest first. limit <= 0 means no limit.
	FindByUser(ctx context.Context, userID string, limit int) ([]model.ResponseRecord, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(ctx context.Context, record *model.ResponseRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *responseRepository) FindByUser(ctx context.Context, userID string, limit int) ([]model.ResponseRecord, error) {
	var records []model.ResponseRecord
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
