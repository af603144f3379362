package domain

import (
	"time"

	"github.com/google/uuid"
)

// MoodType is the closed set of mood labels users can report.
// Labels are kept in Portuguese to match the client vocabulary.
// @Description Mood label reported by the user.
type MoodType string

const (
	MoodFeliz       MoodType = "feliz"
	MoodAnimado     MoodType = "animado"
	MoodCalmo       MoodType = "calmo"
	MoodGrato       MoodType = "grato"
	MoodApaixonado  MoodType = "apaixonado"
	MoodConfiante   MoodType = "confiante"
	MoodEsperancoso MoodType = "esperançoso"

	MoodTriste     MoodType = "triste"
	MoodAnsioso    MoodType = "ansioso"
	MoodIrritado   MoodType = "irritado"
	MoodEstressado MoodType = "estressado"
	MoodCansado    MoodType = "cansado"
	MoodFrustrado  MoodType = "frustrado"
	MoodSolitario  MoodType = "solitário"
	MoodCulpado    MoodType = "culpado"
)

// PositiveMoods lists mood labels treated as positive valence.
// "esperançoso" is deliberately included here; see DESIGN.md.
var PositiveMoods = map[MoodType]bool{
	MoodFeliz:       true,
	MoodAnimado:     true,
	MoodCalmo:       true,
	MoodGrato:       true,
	MoodApaixonado:  true,
	MoodConfiante:   true,
	MoodEsperancoso: true,
}

// NegativeMoods lists mood labels treated as negative valence.
var NegativeMoods = map[MoodType]bool{
	MoodTriste:     true,
	MoodAnsioso:    true,
	MoodIrritado:   true,
	MoodEstressado: true,
	MoodCansado:    true,
	MoodFrustrado:  true,
	MoodSolitario:  true,
	MoodCulpado:    true,
}

// AllMoods is the canonical set of accepted mood labels.
var AllMoods = func() map[MoodType]bool {
	m := make(map[MoodType]bool, len(PositiveMoods)+len(NegativeMoods))
	for k := range PositiveMoods {
		m[k] = true
	}
	for k := range NegativeMoods {
		m[k] = true
	}
	return m
}()

// Polarity classifies a mood label.
type Polarity int

const (
	PolarityNeutral Polarity = iota
	PolarityPositive
	PolarityNegative
)

// MoodPolarity returns the valence of a mood label.
// Unknown labels are neutral and excluded from polarity-based scoring.
func MoodPolarity(m MoodType) Polarity {
	if PositiveMoods[m] {
		return PolarityPositive
	}
	if NegativeMoods[m] {
		return PolarityNegative
	}
	return PolarityNeutral
}

// MoodEntry is a single timestamped self-report of emotional state.
// Entries are immutable once created: they are only ever inserted and queried.
type MoodEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_mood_entries_user_ts" json:"user_id"`
	Timestamp time.Time `gorm:"not null;index:idx_mood_entries_user_ts,sort:desc" json:"timestamp"`

	Primary   MoodType   `gorm:"type:varchar(32);not null" json:"primary"`
	Intensity int        `gorm:"type:smallint;not null" json:"intensity"`
	Secondary []MoodType `gorm:"serializer:json" json:"secondary,omitempty"`

	Activities     []string `gorm:"serializer:json" json:"activities,omitempty"`
	Triggers       []string `gorm:"serializer:json" json:"triggers,omitempty"`
	Location       string   `gorm:"type:varchar(120)" json:"location,omitempty"`
	SocialContexts []string `gorm:"serializer:json" json:"social_contexts,omitempty"`

	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}

// CreateMoodEntryRequest is the request body for recording a mood entry.
// @Description Request payload for recording a mood self-report.
type CreateMoodEntryRequest struct {
	// When the mood was felt, RFC3339 (defaults to now when zero)
	Timestamp *time.Time `json:"timestamp,omitempty"`
	// Primary mood label
	Primary MoodType `json:"primary" validate:"required,moodtype"`
	// Intensity from 1 (mild) to 5 (overwhelming)
	Intensity int `json:"intensity" validate:"required,min=1,max=5"`
	// Optional secondary mood labels
	Secondary []MoodType `json:"secondary,omitempty" validate:"omitempty,dive,moodtype"`
	// Activities going on around the report (e.g. "trabalho", "exercício")
	Activities []string `json:"activities,omitempty" validate:"omitempty,dive,max=60"`
	// What triggered the mood, if known
	Triggers []string `json:"triggers,omitempty" validate:"omitempty,dive,max=60"`
	// Where the user was
	Location string `json:"location,omitempty" validate:"omitempty,max=120"`
	// Who the user was with
	SocialContexts []string `json:"social_contexts,omitempty" validate:"omitempty,dive,max=60"`
	// Free-form notes
	Notes string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// MoodEntryListResponse is the response body for listing mood entries.
// @Description Paginated list of mood entries.
type MoodEntryListResponse struct {
	Data       []MoodEntry        `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more"`
}

// MoodEntryFilter contains filter parameters for listing mood entries
type MoodEntryFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

// Timeframe selects the analysis window for mood pattern analysis.
type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
)

// Days returns the window length for the timeframe. Unknown values fall back to weekly.
func (t Timeframe) Days() int {
	switch t {
	case TimeframeDaily:
		return 1
	case TimeframeMonthly:
		return 30
	default:
		return 7
	}
}
