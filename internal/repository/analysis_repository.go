package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"gorm.io/gorm"
)

type AnalysisRepository interface {
	Create(ctx context.Context, record *domain.AnalysisRecord) error
	// Latest returns the most recently created analysis for the user.
	Latest(ctx context.Context, userID uuid.UUID) (*domain.AnalysisRecord, error)
	// ListByUser returns up to limit analyses newest-first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AnalysisRecord, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(ctx context.Context, record *domain.AnalysisRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *analysisRepository) Latest(ctx context.Context, userID uuid.UUID) (*domain.AnalysisRecord, error) {
	var record domain.AnalysisRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *analysisRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AnalysisRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	var records []domain.AnalysisRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
