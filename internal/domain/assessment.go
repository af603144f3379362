package domain

import (
	"time"

	"github.com/google/uuid"
)

// CategoryRatings holds the 13 relational dimension scores, each 1-10.
// @Description Self-assessment ratings across relational dimensions.
type CategoryRatings struct {
	Comunicacao             int `gorm:"type:smallint;not null" json:"comunicacao" validate:"required,min=1,max=10"`
	ConexaoEmocional        int `gorm:"type:smallint;not null" json:"conexaoEmocional" validate:"required,min=1,max=10"`
	ApoioMutuo              int `gorm:"type:smallint;not null" json:"apoioMutuo" validate:"required,min=1,max=10"`
	TransparenciaConfianca  int `gorm:"type:smallint;not null" json:"transparenciaConfianca" validate:"required,min=1,max=10"`
	IntimidadeFisica        int `gorm:"type:smallint;not null" json:"intimidadeFisica" validate:"required,min=1,max=10"`
	SaudeMental             int `gorm:"type:smallint;not null" json:"saudeMental" validate:"required,min=1,max=10"`
	ResolucaoConflitos      int `gorm:"type:smallint;not null" json:"resolucaoConflitos" validate:"required,min=1,max=10"`
	SegurancaRelacionamento int `gorm:"type:smallint;not null" json:"segurancaRelacionamento" validate:"required,min=1,max=10"`
	AlinhamentoObjetivos    int `gorm:"type:smallint;not null" json:"alinhamentoObjetivos" validate:"required,min=1,max=10"`
	SatisfacaoGeral         int `gorm:"type:smallint;not null" json:"satisfacaoGeral" validate:"required,min=1,max=10"`
	Autocuidado             int `gorm:"type:smallint;not null" json:"autocuidado" validate:"required,min=1,max=10"`
	Gratidao                int `gorm:"type:smallint;not null" json:"gratidao" validate:"required,min=1,max=10"`
	TempoQualidade          int `gorm:"type:smallint;not null" json:"tempoQualidade" validate:"required,min=1,max=10"`
}

// Category names a single relational dimension and how to read it off CategoryRatings.
type Category struct {
	// Key is the camelCase identifier used in JSON payloads and joined
	// time-series keys ("userComunicacao", "partnerComunicacao", ...).
	Key string
	// Label is the human-readable name used in narrative output.
	Label string
	Get   func(CategoryRatings) int
}

// Categories is the canonical ordered list of the 13 rating dimensions.
var Categories = []Category{
	{"comunicacao", "Comunicação", func(r CategoryRatings) int { return r.Comunicacao }},
	{"conexaoEmocional", "Conexão Emocional", func(r CategoryRatings) int { return r.ConexaoEmocional }},
	{"apoioMutuo", "Apoio Mútuo", func(r CategoryRatings) int { return r.ApoioMutuo }},
	{"transparenciaConfianca", "Transparência e Confiança", func(r CategoryRatings) int { return r.TransparenciaConfianca }},
	{"intimidadeFisica", "Intimidade Física", func(r CategoryRatings) int { return r.IntimidadeFisica }},
	{"saudeMental", "Saúde Mental", func(r CategoryRatings) int { return r.SaudeMental }},
	{"resolucaoConflitos", "Resolução de Conflitos", func(r CategoryRatings) int { return r.ResolucaoConflitos }},
	{"segurancaRelacionamento", "Segurança no Relacionamento", func(r CategoryRatings) int { return r.SegurancaRelacionamento }},
	{"alinhamentoObjetivos", "Alinhamento de Objetivos", func(r CategoryRatings) int { return r.AlinhamentoObjetivos }},
	{"satisfacaoGeral", "Satisfação Geral", func(r CategoryRatings) int { return r.SatisfacaoGeral }},
	{"autocuidado", "Autocuidado", func(r CategoryRatings) int { return r.Autocuidado }},
	{"gratidao", "Gratidão", func(r CategoryRatings) int { return r.Gratidao }},
	{"tempoQualidade", "Tempo de Qualidade", func(r CategoryRatings) int { return r.TempoQualidade }},
}

// Average returns the mean of all 13 ratings.
func (r CategoryRatings) Average() float64 {
	sum := 0
	for _, c := range Categories {
		sum += c.Get(r)
	}
	return float64(sum) / float64(len(Categories))
}

// DailyAssessment is one user's self-assessment for a single calendar day.
// The service layer enforces at most one per user per UTC day.
type DailyAssessment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_assessments_user_date" json:"user_id"`
	PartnerID *uuid.UUID      `gorm:"type:uuid" json:"partner_id,omitempty"`
	Date      time.Time       `gorm:"not null;index:idx_assessments_user_date,sort:desc" json:"date"`
	Ratings   CategoryRatings `gorm:"embedded;embeddedPrefix:rating_" json:"ratings"`
	Comments  string          `gorm:"type:text" json:"comments,omitempty"`
	Gratitude string          `gorm:"type:text" json:"gratitude,omitempty"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DailyAssessment) TableName() string {
	return "daily_assessments"
}

// DateKey returns the canonical UTC calendar-day key used for joining
// two users' assessment series.
func (a *DailyAssessment) DateKey() string {
	return a.Date.UTC().Format("2006-01-02")
}

// CreateAssessmentRequest is the request body for submitting a daily assessment.
// @Description Request payload for the daily self-assessment.
type CreateAssessmentRequest struct {
	// Assessment day, RFC3339 (defaults to today when zero); only the UTC calendar day is kept
	Date *time.Time `json:"date,omitempty"`
	// The 13 category ratings, each 1-10
	Ratings CategoryRatings `json:"ratings" validate:"required"`
	// Free-form comments
	Comments string `json:"comments,omitempty" validate:"omitempty,max=2000"`
	// What the user is grateful for today
	Gratitude string `json:"gratitude,omitempty" validate:"omitempty,max=2000"`
}

// AssessmentListResponse is the response body for listing assessments.
// @Description Paginated list of daily assessments.
type AssessmentListResponse struct {
	Data       []DailyAssessment  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// AssessmentFilter contains filter parameters for listing assessments
type AssessmentFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

// TimeSeriesPoint is one joined calendar day of the couple's ratings.
// Keys are "date" plus "user<Categoria>" / "partner<Categoria>" per category;
// a side that did not submit that day contributes no keys at all, so
// consumers must treat a missing key as "no data", never as zero.
type TimeSeriesPoint map[string]any

// RadarPoint is the per-category average for both partners over a window.
// @Description Per-category averages for radar chart rendering.
type RadarPoint struct {
	Category string   `json:"category"`
	Label    string   `json:"label"`
	User     *float64 `json:"user,omitempty"`
	Partner  *float64 `json:"partner,omitempty"`
}
