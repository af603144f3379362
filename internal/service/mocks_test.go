package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[user.ID] = user
	return nil
}

// MockMoodEntryRepository is a mock implementation of MoodEntryRepository
type MockMoodEntryRepository struct {
	entries []domain.MoodEntry
	err     error
}

func NewMockMoodEntryRepository() *MockMoodEntryRepository {
	return &MockMoodEntryRepository{}
}

func (m *MockMoodEntryRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	if m.err != nil {
		return m.err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *MockMoodEntryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.MoodEntryFilter) ([]domain.MoodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.MoodEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	if filter.Limit > 0 && len(result) > filter.Limit+1 {
		result = result[:filter.Limit+1]
	}
	return result, nil
}

func (m *MockMoodEntryRepository) ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MoodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.MoodEntry
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		if e.Timestamp.Before(from) || e.Timestamp.After(to) {
			continue
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result, nil
}

// MockAssessmentRepository is a mock implementation of AssessmentRepository
type MockAssessmentRepository struct {
	assessments []domain.DailyAssessment
	err         error
}

func NewMockAssessmentRepository() *MockAssessmentRepository {
	return &MockAssessmentRepository{}
}

func (m *MockAssessmentRepository) Create(ctx context.Context, assessment *domain.DailyAssessment) error {
	if m.err != nil {
		return m.err
	}
	if assessment.ID == uuid.Nil {
		assessment.ID = uuid.New()
	}
	assessment.CreatedAt = time.Now()
	m.assessments = append(m.assessments, *assessment)
	return nil
}

func (m *MockAssessmentRepository) List(ctx context.Context, userID uuid.UUID, filter domain.AssessmentFilter) ([]domain.DailyAssessment, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := m.forUser(userID)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	if filter.Limit > 0 && len(result) > filter.Limit+1 {
		result = result[:filter.Limit+1]
	}
	return result, nil
}

func (m *MockAssessmentRepository) ListByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyAssessment, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.DailyAssessment
	for _, a := range m.forUser(userID) {
		if a.Date.Before(from) || !a.Date.Before(to) {
			continue
		}
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func (m *MockAssessmentRepository) ListDescending(ctx context.Context, userID uuid.UUID, limit int) ([]domain.DailyAssessment, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := m.forUser(userID)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockAssessmentRepository) ExistsForDay(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, a := range m.forUser(userID) {
		if !a.Date.Before(dayStart) && a.Date.Before(dayEnd) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockAssessmentRepository) forUser(userID uuid.UUID) []domain.DailyAssessment {
	var result []domain.DailyAssessment
	for _, a := range m.assessments {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result
}

// MockAnalysisRepository is a mock implementation of AnalysisRepository
type MockAnalysisRepository struct {
	records []domain.AnalysisRecord
	err     error
}

func NewMockAnalysisRepository() *MockAnalysisRepository {
	return &MockAnalysisRepository{}
}

func (m *MockAnalysisRepository) Create(ctx context.Context, record *domain.AnalysisRecord) error {
	if m.err != nil {
		return m.err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()
	m.records = append(m.records, *record)
	return nil
}

func (m *MockAnalysisRepository) Latest(ctx context.Context, userID uuid.UUID) (*domain.AnalysisRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var latest *domain.AnalysisRecord
	for i := range m.records {
		r := &m.records[i]
		if r.UserID != userID {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) {
			latest = r
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	return latest, nil
}

func (m *MockAnalysisRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AnalysisRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.AnalysisRecord
	for _, r := range m.records {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	notifications []domain.Notification
	err           error
}

func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{}
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	if m.err != nil {
		return m.err
	}
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	notification.CreatedAt = time.Now()
	m.notifications = append(m.notifications, *notification)
	return nil
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
