package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"github.com/savantarmorer/wellness-sub001/internal/repository"
)

// AssessmentsPerLevel is how many assessments advance one level.
const AssessmentsPerLevel = 10

// UnlockStore tracks which achievements a user has unlocked. Injected so the
// unlock state can be reset between test runs or swapped for a durable store.
type UnlockStore interface {
	Unlocked(ctx context.Context, userID uuid.UUID) (map[string]bool, error)
	Unlock(ctx context.Context, userID uuid.UUID, achievementID string) error
}

// MemoryUnlockStore is the in-process UnlockStore. A restart loses unlock
// history; durability is a deliberate non-goal here.
type MemoryUnlockStore struct {
	mu       sync.Mutex
	unlocked map[uuid.UUID]map[string]bool
}

func NewMemoryUnlockStore() *MemoryUnlockStore {
	return &MemoryUnlockStore{unlocked: make(map[uuid.UUID]map[string]bool)}
}

func (s *MemoryUnlockStore) Unlocked(ctx context.Context, userID uuid.UUID) (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]bool, len(s.unlocked[userID]))
	for id := range s.unlocked[userID] {
		out[id] = true
	}
	return out, nil
}

func (s *MemoryUnlockStore) Unlock(ctx context.Context, userID uuid.UUID, achievementID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unlocked[userID] == nil {
		s.unlocked[userID] = make(map[string]bool)
	}
	s.unlocked[userID][achievementID] = true
	return nil
}

// Reset clears all unlock state.
func (s *MemoryUnlockStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlocked = make(map[uuid.UUID]map[string]bool)
}

// Notifier delivers an achievement notification. Delivery failures must not
// fail the unlock.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, title, body string) error
}

// storedNotifier writes notification rows; clients poll for them.
type storedNotifier struct {
	repo repository.NotificationRepository
}

// NewStoredNotifier creates a Notifier backed by the notifications table.
func NewStoredNotifier(repo repository.NotificationRepository) Notifier {
	return &storedNotifier{repo: repo}
}

func (n *storedNotifier) Notify(ctx context.Context, userID uuid.UUID, title, body string) error {
	return n.repo.Create(ctx, &domain.Notification{
		UserID: userID,
		Kind:   domain.NotificationAchievement,
		Title:  title,
		Body:   body,
	})
}

// AchievementCatalog is the static achievement list with unlock predicates.
var AchievementCatalog = []domain.Achievement{
	{
		ID: "primeiro-passo", Title: "Primeiro Passo", Icon: "🌱",
		Description: "Envie sua primeira avaliação diária.",
		Condition:   func(s domain.UserStats) bool { return s.TotalAssessments >= 1 },
	},
	{
		ID: "semana-completa", Title: "Semana Completa", Icon: "📅",
		Description: "Complete todos os dias de uma semana.",
		Condition:   func(s domain.UserStats) bool { return s.WeeklyCompletionRate >= 100 },
	},
	{
		ID: "sequencia-7", Title: "Sete Dias Seguidos", Icon: "🔥",
		Description: "Mantenha uma sequência de 7 dias.",
		Condition:   func(s domain.UserStats) bool { return s.Streak >= 7 },
	},
	{
		ID: "sequencia-30", Title: "Um Mês de Dedicação", Icon: "🏆",
		Description: "Mantenha uma sequência de 30 dias.", Reward: "Tema exclusivo",
		Condition: func(s domain.UserStats) bool { return s.Streak >= 30 },
	},
	{
		ID: "meio-centenario", Title: "Meio Centenário", Icon: "⭐",
		Description: "Acumule 50 avaliações.",
		Condition:   func(s domain.UserStats) bool { return s.TotalAssessments >= 50 },
	},
	{
		ID: "em-sintonia", Title: "Em Sintonia", Icon: "💞",
		Description: "Tenha 80% das avaliações com parceiro vinculado, com ao menos 10 enviadas.",
		Condition: func(s domain.UserStats) bool {
			return s.TotalAssessments >= 10 && s.PartnerSyncRate >= 80
		},
	},
	{
		ID: "em-ascensao", Title: "Em Ascensão", Icon: "📈",
		Description: "Melhore três categorias ao mesmo tempo.",
		Condition:   func(s domain.UserStats) bool { return len(s.ImprovingCategories) >= 3 },
	},
}

// GamificationService computes user stats and evaluates achievements.
type GamificationService interface {
	// GetUserStats derives the stats aggregate from assessment history.
	GetUserStats(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)
	// CheckAchievements evaluates predicates and returns newly unlocked
	// achievements, persisting unlock state and notifying the user.
	CheckAchievements(ctx context.Context, userID uuid.UUID) ([]domain.AchievementStatus, error)
	// ListAchievements returns the catalog with the user's unlock state.
	ListAchievements(ctx context.Context, userID uuid.UUID) ([]domain.AchievementStatus, error)
	// ListNotifications returns the user's stored notifications, newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
}

type gamificationService struct {
	assessmentRepo   repository.AssessmentRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	unlocks          UnlockStore
	notifier         Notifier
}

// NewGamificationService creates a new GamificationService. Construct one at
// startup and pass it around; there is no package-level singleton.
func NewGamificationService(
	assessmentRepo repository.AssessmentRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	unlocks UnlockStore,
	notifier Notifier,
) GamificationService {
	return &gamificationService{
		assessmentRepo:   assessmentRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		unlocks:          unlocks,
		notifier:         notifier,
	}
}

func (s *gamificationService) GetUserStats(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	history, err := s.assessmentRepo.ListDescending(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	stats := ComputeUserStats(history, time.Now().UTC())
	return &stats, nil
}

func (s *gamificationService) CheckAchievements(ctx context.Context, userID uuid.UUID) ([]domain.AchievementStatus, error) {
	stats, err := s.GetUserStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	unlocked, err := s.unlocks.Unlocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	newlyUnlocked := []domain.AchievementStatus{}
	for _, a := range AchievementCatalog {
		if unlocked[a.ID] || a.Condition == nil || !a.Condition(*stats) {
			continue
		}
		if err := s.unlocks.Unlock(ctx, userID, a.ID); err != nil {
			return nil, err
		}
		if err := s.notifier.Notify(ctx, userID, "Conquista desbloqueada: "+a.Title, a.Description); err != nil {
			log.Printf("achievement notification failed for user %s: %v", userID, err)
		}
		newlyUnlocked = append(newlyUnlocked, a.WithUnlocked(true))
	}

	return newlyUnlocked, nil
}

func (s *gamificationService) ListAchievements(ctx context.Context, userID uuid.UUID) ([]domain.AchievementStatus, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	unlocked, err := s.unlocks.Unlocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	statuses := make([]domain.AchievementStatus, 0, len(AchievementCatalog))
	for _, a := range AchievementCatalog {
		statuses = append(statuses, a.WithUnlocked(unlocked[a.ID]))
	}
	return statuses, nil
}

func (s *gamificationService) ListNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.notificationRepo.ListByUser(ctx, userID, limit)
}

// ComputeUserStats derives the stats aggregate from a date-descending
// assessment history.
func ComputeUserStats(history []domain.DailyAssessment, now time.Time) domain.UserStats {
	stats := domain.UserStats{
		Streak:               CalculateStreak(history, now),
		TotalAssessments:     len(history),
		WeeklyCompletionRate: calculateWeeklyCompletionRate(history, now),
		ImprovingCategories:  CalculateImprovingCategories(history),
		PartnerSyncRate:      calculatePartnerSyncRate(history),
	}
	stats.Level = Level(stats.TotalAssessments)
	stats.NextLevelProgress = NextLevelProgress(stats.TotalAssessments)
	return stats
}

// CalculateStreak counts consecutive daily submissions ending today.
// The history MUST be sorted date-descending; index i is expected to fall on
// today minus i days, and the first gap ends the streak. An unsorted input
// silently undercounts.
func CalculateStreak(history []domain.DailyAssessment, now time.Time) int {
	streak := 0
	for i, a := range history {
		expected := now.AddDate(0, 0, -i)
		if !sameUTCDay(a.Date, expected) {
			break
		}
		streak++
	}
	return streak
}

func sameUTCDay(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.Month() == bu.Month() && au.Day() == bu.Day()
}

// calculateWeeklyCompletionRate is the percentage of the last 7 calendar days
// with at least one submission.
func calculateWeeklyCompletionRate(history []domain.DailyAssessment, now time.Time) float64 {
	if len(history) == 0 {
		return 0
	}

	days := make(map[string]bool)
	cutoff := now.AddDate(0, 0, -6)
	cutoffDay := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, time.UTC)
	for _, a := range history {
		if a.Date.UTC().Before(cutoffDay) {
			continue
		}
		days[a.DateKey()] = true
	}

	return float64(len(days)) / 7.0 * 100
}

// CalculateImprovingCategories returns category keys whose three most recent
// scores strictly increased. Fewer than three assessments yields none.
func CalculateImprovingCategories(history []domain.DailyAssessment) []string {
	improving := []string{}
	if len(history) < 3 {
		return improving
	}

	// history is date-descending; reverse the three most recent into
	// chronological order.
	recent := []domain.DailyAssessment{history[2], history[1], history[0]}

	for _, c := range domain.Categories {
		a, b, cv := c.Get(recent[0].Ratings), c.Get(recent[1].Ratings), c.Get(recent[2].Ratings)
		if a < b && b < cv {
			improving = append(improving, c.Key)
		}
	}
	return improving
}

// calculatePartnerSyncRate is the percentage of assessments carrying a
// partner id, zero for an empty history.
func calculatePartnerSyncRate(history []domain.DailyAssessment) float64 {
	if len(history) == 0 {
		return 0
	}

	withPartner := 0
	for _, a := range history {
		if a.PartnerID != nil {
			withPartner++
		}
	}
	return float64(withPartner) / float64(len(history)) * 100
}

// Level is the user's gamification level for a given assessment total.
func Level(totalAssessments int) int {
	return totalAssessments/AssessmentsPerLevel + 1
}

// NextLevelProgress is the percent progress toward the next level.
func NextLevelProgress(totalAssessments int) float64 {
	return float64(totalAssessments%AssessmentsPerLevel) / float64(AssessmentsPerLevel) * 100
}
