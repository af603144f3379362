package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
)

// MockMoodService is a mock implementation of MoodService
type MockMoodService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodEntryRequest) (*domain.MoodEntry, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) (*domain.MoodEntryListResponse, error)
}

func (m *MockMoodService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodEntryRequest) (*domain.MoodEntry, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.MoodEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Primary:   req.Primary,
		Intensity: req.Intensity,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockMoodService) List(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) (*domain.MoodEntryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.MoodEntryListResponse{
		Data:       []domain.MoodEntry{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockMoodAnalysisService is a mock implementation of MoodAnalysisService
type MockMoodAnalysisService struct {
	analyzeFunc func(ctx context.Context, userID uuid.UUID, timeframe domain.Timeframe) (*domain.MoodAnalysis, error)
}

func (m *MockMoodAnalysisService) Analyze(ctx context.Context, userID uuid.UUID, timeframe domain.Timeframe) (*domain.MoodAnalysis, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, userID, timeframe)
	}
	return nil, nil
}

// MockAssessmentService is a mock implementation of AssessmentService
type MockAssessmentService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateAssessmentRequest) (*domain.DailyAssessment, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.AssessmentFilter) (*domain.AssessmentListResponse, error)
}

func (m *MockAssessmentService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateAssessmentRequest) (*domain.DailyAssessment, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.DailyAssessment{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      time.Now().UTC().Truncate(24 * time.Hour),
		Ratings:   req.Ratings,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockAssessmentService) List(ctx context.Context, userID uuid.UUID, filter domain.AssessmentFilter) (*domain.AssessmentListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.AssessmentListResponse{
		Data:       []domain.DailyAssessment{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockTrendsService is a mock implementation of TrendsService
type MockTrendsService struct {
	timeSeriesFunc func(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.TimeSeriesPoint, error)
	radarFunc      func(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.RadarPoint, error)
	trendsFunc     func(ctx context.Context, userID uuid.UUID, windowDays int) (map[string]domain.CategoryAnalysis, domain.ScoreTrend, error)
}

func (m *MockTrendsService) TimeSeries(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.TimeSeriesPoint, error) {
	if m.timeSeriesFunc != nil {
		return m.timeSeriesFunc(ctx, userID, windowDays)
	}
	return []domain.TimeSeriesPoint{}, nil
}

func (m *MockTrendsService) Radar(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.RadarPoint, error) {
	if m.radarFunc != nil {
		return m.radarFunc(ctx, userID, windowDays)
	}
	return []domain.RadarPoint{}, nil
}

func (m *MockTrendsService) CategoryTrends(ctx context.Context, userID uuid.UUID, windowDays int) (map[string]domain.CategoryAnalysis, domain.ScoreTrend, error) {
	if m.trendsFunc != nil {
		return m.trendsFunc(ctx, userID, windowDays)
	}
	return map[string]domain.CategoryAnalysis{}, domain.ScoreTrend{Trend: domain.TrendStable}, nil
}

// MockSyncService is a mock implementation of SyncService
type MockSyncService struct {
	analyzeSyncFunc func(ctx context.Context, userID uuid.UUID) (*domain.RelationshipAnalysis, error)
}

func (m *MockSyncService) AnalyzeSync(ctx context.Context, userID uuid.UUID) (*domain.RelationshipAnalysis, error) {
	if m.analyzeSyncFunc != nil {
		return m.analyzeSyncFunc(ctx, userID)
	}
	analysis := domain.NewRelationshipAnalysis(domain.SourceHeuristic)
	return &analysis, nil
}

// MockAnalysisService is a mock implementation of AnalysisService
type MockAnalysisService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID, source domain.AnalysisSource) (*domain.RelationshipAnalysis, error)
	latestFunc   func(ctx context.Context, userID uuid.UUID) (*domain.AnalysisRecord, error)
	historyFunc  func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AnalysisRecord, error)
}

func (m *MockAnalysisService) Generate(ctx context.Context, userID uuid.UUID, source domain.AnalysisSource) (*domain.RelationshipAnalysis, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID, source)
	}
	analysis := domain.NewRelationshipAnalysis(source)
	return &analysis, nil
}

func (m *MockAnalysisService) Latest(ctx context.Context, userID uuid.UUID) (*domain.AnalysisRecord, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockAnalysisService) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AnalysisRecord, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, userID, limit)
	}
	return []domain.AnalysisRecord{}, nil
}

// MockGamificationService is a mock implementation of GamificationService
type MockGamificationService struct {
	statsFunc         func(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)
	checkFunc         func(ctx context.Context, userID uuid.UUID) ([]domain.AchievementStatus, error)
	listFunc          func(ctx context.Context, userID uuid.UUID) ([]domain.AchievementStatus, error)
	notificationsFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
}

func (m *MockGamificationService) GetUserStats(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx, userID)
	}
	return &domain.UserStats{Level: 1}, nil
}

func (m *MockGamificationService) CheckAchievements(ctx context.Context, userID uuid.UUID) ([]domain.AchievementStatus, error) {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, userID)
	}
	return []domain.AchievementStatus{}, nil
}

func (m *MockGamificationService) ListAchievements(ctx context.Context, userID uuid.UUID) ([]domain.AchievementStatus, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return []domain.AchievementStatus{}, nil
}

func (m *MockGamificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	if m.notificationsFunc != nil {
		return m.notificationsFunc(ctx, userID, limit)
	}
	return []domain.Notification{}, nil
}
