package domain

// UserStats is the derived aggregate over a user's assessment history that
// achievement predicates are evaluated against.
// @Description Gamification statistics derived from assessment history.
type UserStats struct {
	// Consecutive-day submission count ending today
	Streak int `json:"streak"`
	// Total assessments ever submitted
	TotalAssessments int `json:"total_assessments"`
	// Percentage of the last 7 days with a submission (0-100)
	WeeklyCompletionRate float64 `json:"weekly_completion_rate"`
	// Category keys whose last three scores strictly increased
	ImprovingCategories []string `json:"improving_categories"`
	// Percentage of assessments carrying a partner id (0-100)
	PartnerSyncRate float64 `json:"partner_sync_rate"`
	// Level derived from total assessments
	Level int `json:"level"`
	// Percent progress toward the next level (0-100)
	NextLevelProgress float64 `json:"next_level_progress"`
}

// Achievement is a static catalog entry with a predicate over UserStats.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Reward      string `json:"reward,omitempty"`
	// Condition is the unlock predicate. Nil conditions never unlock.
	Condition func(UserStats) bool `json:"-"`
}

// AchievementStatus is an achievement with its unlock state for one user.
// @Description Achievement with per-user unlock state.
type AchievementStatus struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Reward      string `json:"reward,omitempty"`
	IsUnlocked  bool   `json:"is_unlocked"`
}

func (a Achievement) WithUnlocked(unlocked bool) AchievementStatus {
	return AchievementStatus{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Icon:        a.Icon,
		Reward:      a.Reward,
		IsUnlocked:  unlocked,
	}
}
