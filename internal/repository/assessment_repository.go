package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"github.com/savantarmorer/wellness-sub001/pkg/pagination"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *domain.DailyAssessment) error
	// List returns assessments newest-first with cursor pagination.
	List(ctx context.Context, userID uuid.UUID, filter domain.AssessmentFilter) ([]domain.DailyAssessment, error)
	// ListByRange returns assessments within [from, to) ordered by date ascending.
	ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyAssessment, error)
	// ListDescending returns up to limit assessments ordered by date descending.
	// limit <= 0 returns the full history. The descending order is what
	// streak calculation depends on.
	ListDescending(ctx context.Context, userID uuid.UUID, limit int) ([]domain.DailyAssessment, error)
	// ExistsForDay reports whether the user already submitted within [dayStart, dayEnd).
	ExistsForDay(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) (bool, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *domain.DailyAssessment) error {
	return r.db.WithContext(ctx).Create(assessment).Error
}

func (r *assessmentRepository) List(ctx context.Context, userID uuid.UUID, filter domain.AssessmentFilter) ([]domain.DailyAssessment, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC")

	if filter.From != nil {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(date < ?) OR (date = ? AND id < ?)",
				cursor.At, cursor.At, cursor.ID,
			)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var assessments []domain.DailyAssessment
	if err := query.Find(&assessments).Error; err != nil {
		return nil, err
	}

	return assessments, nil
}

func (r *assessmentRepository) ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyAssessment, error) {
	var assessments []domain.DailyAssessment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC").
		Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepository) ListDescending(ctx context.Context, userID uuid.UUID, limit int) ([]domain.DailyAssessment, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var assessments []domain.DailyAssessment
	if err := query.Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepository) ExistsForDay(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.DailyAssessment{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Count(&count).Error
	return count > 0, err
}
