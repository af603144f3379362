package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
)

func TestAssessmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		svc := NewAssessmentService(NewMockAssessmentRepository(), NewMockUserRepository())
		_, err := svc.Create(ctx, uuid.New(), &domain.CreateAssessmentRequest{Ratings: uniformRatings(7)})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("stores the UTC day start and linked partner", func(t *testing.T) {
		assessmentRepo := NewMockAssessmentRepository()
		userRepo := NewMockUserRepository()
		userID := uuid.New()
		partnerID := uuid.New()
		userRepo.users[userID] = &domain.User{ID: userID, PartnerID: &partnerID}

		loc := time.FixedZone("UTC-3", -3*60*60)
		at := time.Date(2026, 3, 10, 20, 0, 0, 0, loc) // 2026-03-10 23:00 UTC

		svc := NewAssessmentService(assessmentRepo, userRepo)
		assessment, err := svc.Create(ctx, userID, &domain.CreateAssessmentRequest{
			Date:    &at,
			Ratings: uniformRatings(7),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantDay := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		if !assessment.Date.Equal(wantDay) {
			t.Errorf("expected day start %v, got %v", wantDay, assessment.Date)
		}
		if assessment.PartnerID == nil || *assessment.PartnerID != partnerID {
			t.Errorf("expected partner id carried, got %v", assessment.PartnerID)
		}
		if len(assessmentRepo.assessments) != 1 {
			t.Errorf("expected assessment persisted, got %d", len(assessmentRepo.assessments))
		}
	})

	t.Run("second submission on the same day conflicts", func(t *testing.T) {
		assessmentRepo := NewMockAssessmentRepository()
		userRepo := NewMockUserRepository()
		userID := uuid.New()
		userRepo.users[userID] = &domain.User{ID: userID}

		at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		svc := NewAssessmentService(assessmentRepo, userRepo)

		if _, err := svc.Create(ctx, userID, &domain.CreateAssessmentRequest{Date: &at, Ratings: uniformRatings(7)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		later := at.Add(8 * time.Hour)
		_, err := svc.Create(ctx, userID, &domain.CreateAssessmentRequest{Date: &later, Ratings: uniformRatings(5)})
		if !errors.Is(err, domain.ErrAlreadySubmittedToday) {
			t.Errorf("expected ErrAlreadySubmittedToday, got %v", err)
		}
	})

	t.Run("next day is accepted", func(t *testing.T) {
		assessmentRepo := NewMockAssessmentRepository()
		userRepo := NewMockUserRepository()
		userID := uuid.New()
		userRepo.users[userID] = &domain.User{ID: userID}

		at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		nextDay := at.AddDate(0, 0, 1)
		svc := NewAssessmentService(assessmentRepo, userRepo)

		if _, err := svc.Create(ctx, userID, &domain.CreateAssessmentRequest{Date: &at, Ratings: uniformRatings(7)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.Create(ctx, userID, &domain.CreateAssessmentRequest{Date: &nextDay, Ratings: uniformRatings(8)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAssessmentService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		svc := NewAssessmentService(NewMockAssessmentRepository(), NewMockUserRepository())
		_, err := svc.List(ctx, uuid.New(), domain.AssessmentFilter{})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("pages with a next cursor", func(t *testing.T) {
		assessmentRepo := NewMockAssessmentRepository()
		userRepo := NewMockUserRepository()
		userID := uuid.New()
		userRepo.users[userID] = &domain.User{ID: userID}

		base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 3; i++ {
			assessmentRepo.assessments = append(assessmentRepo.assessments, assessAt(userID, base.AddDate(0, 0, i), 7))
		}

		svc := NewAssessmentService(assessmentRepo, userRepo)
		resp, err := svc.List(ctx, userID, domain.AssessmentFilter{Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Data) != 2 {
			t.Fatalf("expected 2 assessments, got %d", len(resp.Data))
		}
		if !resp.Pagination.HasMore || resp.Pagination.NextCursor == "" {
			t.Errorf("expected open pagination, got %+v", resp.Pagination)
		}
		if !resp.Data[0].Date.After(resp.Data[1].Date) {
			t.Error("expected descending order")
		}
	})
}
