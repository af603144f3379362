package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 40

var (
	seedUserID    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	seedPartnerID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

var seedActivities = []string{"trabalho", "exercício", "descanso", "encontro", "família", "leitura"}

// Run seeds the database with a demo couple, mood history and daily
// assessments. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.MoodEntry{}, &domain.DailyAssessment{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: seedUserID, DisplayName: "Ana", Timezone: "America/Sao_Paulo", PartnerID: &seedPartnerID},
		{ID: seedPartnerID, DisplayName: "Bruno", Timezone: "America/Sao_Paulo", PartnerID: &seedUserID},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedMoodEntriesForUser(db, user, rng); err != nil {
			return err
		}
		if err := seedAssessmentsForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedMoodEntriesForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	positive := []domain.MoodType{domain.MoodFeliz, domain.MoodCalmo, domain.MoodGrato, domain.MoodAnimado}
	negative := []domain.MoodType{domain.MoodTriste, domain.MoodAnsioso, domain.MoodCansado, domain.MoodEstressado}

	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)

		// One morning and one evening entry per day
		for _, hour := range []int{9, 21} {
			ts := time.Date(date.Year(), date.Month(), date.Day(), hour, rng.Intn(60), 0, 0, time.UTC)

			mood := positive[rng.Intn(len(positive))]
			if rng.Float32() < 0.3 {
				mood = negative[rng.Intn(len(negative))]
			}

			entry := domain.MoodEntry{
				UserID:     user.ID,
				Timestamp:  ts,
				Primary:    mood,
				Intensity:  2 + rng.Intn(4),
				Activities: []string{seedActivities[rng.Intn(len(seedActivities))]},
			}

			var count int64
			if err := db.Model(&domain.MoodEntry{}).
				Where("user_id = ? AND timestamp = ?", user.ID, ts).
				Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check mood entry: %w", err)
			}
			if count > 0 {
				continue
			}
			if err := db.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to create mood entry: %w", err)
			}
		}
	}
	return nil
}

func seedAssessmentsForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		// Skip the occasional day so streaks and completion rates vary
		if rng.Float32() < 0.15 {
			continue
		}

		date := now.AddDate(0, 0, -i)
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

		assessment := domain.DailyAssessment{
			UserID:    user.ID,
			PartnerID: user.PartnerID,
			Date:      day,
			Ratings: domain.CategoryRatings{
				Comunicacao:             5 + rng.Intn(5),
				ConexaoEmocional:        5 + rng.Intn(5),
				ApoioMutuo:              5 + rng.Intn(5),
				TransparenciaConfianca:  6 + rng.Intn(4),
				IntimidadeFisica:        4 + rng.Intn(6),
				SaudeMental:             4 + rng.Intn(6),
				ResolucaoConflitos:      4 + rng.Intn(5),
				SegurancaRelacionamento: 6 + rng.Intn(4),
				AlinhamentoObjetivos:    5 + rng.Intn(5),
				SatisfacaoGeral:         5 + rng.Intn(5),
				Autocuidado:             4 + rng.Intn(6),
				Gratidao:                5 + rng.Intn(5),
				TempoQualidade:          4 + rng.Intn(6),
			},
		}

		if err := db.Where("user_id = ? AND date = ?", user.ID, day).
			FirstOrCreate(&assessment).Error; err != nil {
			return fmt.Errorf("failed to create assessment: %w", err)
		}
	}
	return nil
}
