package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"github.com/savantarmorer/wellness-sub001/pkg/pagination"
	"gorm.io/gorm"
)

type MoodEntryRepository interface {
	Create(ctx context.Context, entry *domain.MoodEntry) error
	// List returns entries newest-first with cursor pagination.
	List(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) ([]domain.MoodEntry, error)
	// ListByRange returns entries within [from, to] ordered by timestamp ascending.
	ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MoodEntry, error)
}

type moodEntryRepository struct {
	db *gorm.DB
}

func NewMoodEntryRepository(db *gorm.DB) MoodEntryRepository {
	return &moodEntryRepository{db: db}
}

func (r *moodEntryRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *moodEntryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) ([]domain.MoodEntry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC")

	if filter.From != nil {
		query = query.Where("timestamp >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("timestamp <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(timestamp < ?) OR (timestamp = ? AND id < ?)",
				cursor.At, cursor.At, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.MoodEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *moodEntryRepository) ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MoodEntry, error) {
	var entries []domain.MoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, from, to).
		Order("timestamp ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
