package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"github.com/savantarmorer/wellness-sub001/internal/repository"
	"github.com/savantarmorer/wellness-sub001/pkg/pagination"
)

// AssessmentService records and lists daily assessments.
type AssessmentService interface {
	// Create stores an assessment for the request's UTC calendar day.
	// Returns ErrAlreadySubmittedToday when one exists for that day.
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateAssessmentRequest) (*domain.DailyAssessment, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.AssessmentFilter) (*domain.AssessmentListResponse, error)
}

type assessmentService struct {
	repo     repository.AssessmentRepository
	userRepo repository.UserRepository
}

func NewAssessmentService(repo repository.AssessmentRepository, userRepo repository.UserRepository) AssessmentService {
	return &assessmentService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *assessmentService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateAssessmentRequest) (*domain.DailyAssessment, error) {
	// Load the user to confirm existence and pick up the linked partner.
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	day := time.Now().UTC()
	if req.Date != nil && !req.Date.IsZero() {
		day = req.Date.UTC()
	}
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	// One assessment per user per UTC day.
	exists, err := s.repo.ExistsForDay(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadySubmittedToday
	}

	assessment := &domain.DailyAssessment{
		UserID:    userID,
		PartnerID: user.PartnerID,
		Date:      dayStart,
		Ratings:   req.Ratings,
		Comments:  req.Comments,
		Gratitude: req.Gratitude,
	}

	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, err
	}

	return assessment, nil
}

func (s *assessmentService) List(ctx context.Context, userID uuid.UUID, filter domain.AssessmentFilter) (*domain.AssessmentListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	assessments, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(assessments) > limit
	if hasMore {
		assessments = assessments[:limit]
	}

	response := &domain.AssessmentListResponse{
		Data: assessments,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	if hasMore && len(assessments) > 0 {
		last := assessments[len(assessments)-1]
		cursor := &pagination.Cursor{
			ID: last.ID,
			At: last.Date,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
