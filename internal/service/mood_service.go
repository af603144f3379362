package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"github.com/savantarmorer/wellness-sub001/internal/repository"
	"github.com/savantarmorer/wellness-sub001/pkg/pagination"
)

// MoodService records and lists mood entries. Entries are immutable: there is
// deliberately no update or delete.
type MoodService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodEntryRequest) (*domain.MoodEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) (*domain.MoodEntryListResponse, error)
}

type moodService struct {
	repo     repository.MoodEntryRepository
	userRepo repository.UserRepository
}

func NewMoodService(repo repository.MoodEntryRepository, userRepo repository.UserRepository) MoodService {
	return &moodService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *moodService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodEntryRequest) (*domain.MoodEntry, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != nil && !req.Timestamp.IsZero() {
		timestamp = req.Timestamp.UTC()
	}

	entry := &domain.MoodEntry{
		UserID:         userID,
		Timestamp:      timestamp,
		Primary:        req.Primary,
		Intensity:      req.Intensity,
		Secondary:      req.Secondary,
		Activities:     req.Activities,
		Triggers:       req.Triggers,
		Location:       req.Location,
		SocialContexts: req.SocialContexts,
		Notes:          req.Notes,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *moodService) List(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) (*domain.MoodEntryListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	entries, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit
	if hasMore {
		entries = entries[:limit]
	}

	response := &domain.MoodEntryListResponse{
		Data: entries,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{
			ID: last.ID,
			At: last.Timestamp,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
