package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
)

func entryAt(userID uuid.UUID, ts time.Time, mood domain.MoodType, intensity int, secondary ...domain.MoodType) domain.MoodEntry {
	return domain.MoodEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Timestamp: ts,
		Primary:   mood,
		Intensity: intensity,
		Secondary: secondary,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMoodSimilarity(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	partnerID := uuid.New()

	tests := []struct {
		name string
		a    domain.MoodEntry
		b    domain.MoodEntry
		want float64
	}{
		{
			name: "same polarity same intensity",
			a:    entryAt(userID, base, domain.MoodFeliz, 3),
			b:    entryAt(partnerID, base, domain.MoodAnimado, 3),
			want: 1.0,
		},
		{
			name: "different polarity goes negative",
			a:    entryAt(userID, base, domain.MoodFeliz, 4),
			b:    entryAt(partnerID, base, domain.MoodTriste, 2),
			want: -0.1,
		},
		{
			name: "secondary overlap pushes past one",
			a:    entryAt(userID, base, domain.MoodFeliz, 3, domain.MoodGrato, domain.MoodCalmo),
			b:    entryAt(partnerID, base, domain.MoodAnimado, 3, domain.MoodGrato),
			want: 1.1,
		},
		{
			name: "secondary overlap weighted lower across polarities",
			a:    entryAt(userID, base, domain.MoodFeliz, 3, domain.MoodCansado),
			b:    entryAt(partnerID, base, domain.MoodTriste, 3, domain.MoodCansado),
			want: 0.4,
		},
		{
			name: "unknown mood never matches",
			a:    entryAt(userID, base, domain.MoodType("neutro"), 3),
			b:    entryAt(partnerID, base, domain.MoodType("neutro"), 3),
			want: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := moodSimilarity(tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("moodSimilarity() = %v, want %v", got, tt.want)
			}

			// Pair order must not matter
			reversed := moodSimilarity(tt.b, tt.a)
			if !almostEqual(got, reversed) {
				t.Errorf("moodSimilarity() not symmetric: %v vs %v", got, reversed)
			}
		})
	}
}

func TestPairEntries(t *testing.T) {
	userID := uuid.New()
	partnerID := uuid.New()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("picks nearest partner entry within window", func(t *testing.T) {
		userEntries := []domain.MoodEntry{
			entryAt(userID, base, domain.MoodFeliz, 3),
		}
		partnerEntries := []domain.MoodEntry{
			entryAt(partnerID, base.Add(-10*time.Hour), domain.MoodTriste, 3),
			entryAt(partnerID, base.Add(2*time.Hour), domain.MoodCalmo, 3),
		}

		pairs, flags := pairEntries(userEntries, partnerEntries)
		if len(pairs) != 1 {
			t.Fatalf("expected 1 pair, got %d", len(pairs))
		}
		if pairs[0].partner.Primary != domain.MoodCalmo {
			t.Errorf("expected nearest entry (calmo), got %s", pairs[0].partner.Primary)
		}
		if !flags[0] {
			t.Error("expected paired flag to be set")
		}
	})

	t.Run("skips entries beyond the window", func(t *testing.T) {
		userEntries := []domain.MoodEntry{
			entryAt(userID, base, domain.MoodFeliz, 3),
		}
		partnerEntries := []domain.MoodEntry{
			entryAt(partnerID, base.Add(25*time.Hour), domain.MoodFeliz, 3),
		}

		pairs, flags := pairEntries(userEntries, partnerEntries)
		if len(pairs) != 0 {
			t.Fatalf("expected no pairs, got %d", len(pairs))
		}
		if flags[0] {
			t.Error("expected paired flag to be unset")
		}
	})

	t.Run("exactly 24h apart still pairs", func(t *testing.T) {
		userEntries := []domain.MoodEntry{
			entryAt(userID, base, domain.MoodFeliz, 3),
		}
		partnerEntries := []domain.MoodEntry{
			entryAt(partnerID, base.Add(24*time.Hour), domain.MoodFeliz, 3),
		}

		pairs, _ := pairEntries(userEntries, partnerEntries)
		if len(pairs) != 1 {
			t.Fatalf("expected 1 pair, got %d", len(pairs))
		}
	})
}

func TestCollectDiscrepancies(t *testing.T) {
	ts := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	partnerID := uuid.New()

	pair := func(similarity float64) moodPair {
		return moodPair{
			user:       entryAt(userID, ts, domain.MoodFeliz, 3),
			partner:    entryAt(partnerID, ts, domain.MoodTriste, 3),
			similarity: similarity,
		}
	}

	tests := []struct {
		name       string
		similarity float64
		wantCount  int
		wantImpact domain.ImpactLevel
	}{
		{"below threshold ignored", 0.9, 0, ""},
		{"low impact", 0.55, 1, domain.ImpactLow},
		{"medium impact", 0.45, 1, domain.ImpactMedium},
		{"high impact", -0.1, 1, domain.ImpactHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectDiscrepancies([]moodPair{pair(tt.similarity)})
			if len(got) != tt.wantCount {
				t.Fatalf("expected %d discrepancies, got %d", tt.wantCount, len(got))
			}
			if tt.wantCount == 0 {
				return
			}
			if got[0].Impact != tt.wantImpact {
				t.Errorf("expected impact %q, got %q", tt.wantImpact, got[0].Impact)
			}
			if !almostEqual(got[0].Discrepancy, 1-tt.similarity) {
				t.Errorf("expected discrepancy %v, got %v", 1-tt.similarity, got[0].Discrepancy)
			}
		})
	}
}

func TestAnalyzeRelationshipEmotions(t *testing.T) {
	userID := uuid.New()
	partnerID := uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty inputs return fully-shaped defaults", func(t *testing.T) {
		analysis := AnalyzeRelationshipEmotions(nil, nil)

		if analysis.Source != domain.SourceHeuristic {
			t.Errorf("expected heuristic source, got %s", analysis.Source)
		}
		if analysis.EmotionalSync != 0 {
			t.Errorf("expected zero sync, got %v", analysis.EmotionalSync)
		}
		if analysis.MoodDiscrepancies == nil {
			t.Error("expected non-nil discrepancies slice")
		}
		if len(analysis.RiskFactors) != 0 {
			t.Errorf("expected no risk factors, got %v", analysis.RiskFactors)
		}
		if len(analysis.Insights) != 0 {
			t.Errorf("expected no insights, got %v", analysis.Insights)
		}
		// Zero sync is below the suggestion threshold, but with no pairs
		// there is nothing to act on.
		if len(analysis.Recommendations) != 0 {
			t.Errorf("expected no recommendations, got %v", analysis.Recommendations)
		}
	})

	t.Run("emotional sync is mean pair similarity", func(t *testing.T) {
		// Days far apart so each user entry pairs with exactly one partner entry.
		userEntries := []domain.MoodEntry{
			entryAt(userID, base, domain.MoodFeliz, 3),
			entryAt(userID, base.AddDate(0, 0, 3), domain.MoodFeliz, 4),
		}
		partnerEntries := []domain.MoodEntry{
			entryAt(partnerID, base, domain.MoodAnimado, 3),         // similarity 1.0
			entryAt(partnerID, base.AddDate(0, 0, 3), domain.MoodTriste, 2), // similarity -0.1
		}

		analysis := AnalyzeRelationshipEmotions(userEntries, partnerEntries)
		if !almostEqual(analysis.EmotionalSync, 0.45) {
			t.Errorf("expected sync 0.45, got %v", analysis.EmotionalSync)
		}
	})

	t.Run("swapping the inputs changes the pairing", func(t *testing.T) {
		// Pairing walks the first argument's entries, each matched to the
		// nearest entry of the second. Two entries on one side sharing the
		// nearest entry on the other therefore yield two pairs one way and
		// one pair the other, so sync is NOT symmetric at the list level:
		// forward (−0.1 + 1.0)/2 = 0.45, reversed the lone partner entry
		// matches the closer feliz report for −0.1.
		userEntries := []domain.MoodEntry{
			entryAt(userID, base, domain.MoodFeliz, 4),
			entryAt(userID, base.Add(time.Hour), domain.MoodTriste, 2),
		}
		partnerEntries := []domain.MoodEntry{
			entryAt(partnerID, base, domain.MoodTriste, 2),
		}

		forward := AnalyzeRelationshipEmotions(userEntries, partnerEntries)
		reversed := AnalyzeRelationshipEmotions(partnerEntries, userEntries)

		if !almostEqual(forward.EmotionalSync, 0.45) {
			t.Errorf("forward sync = %v, want 0.45", forward.EmotionalSync)
		}
		if !almostEqual(reversed.EmotionalSync, -0.1) {
			t.Errorf("reversed sync = %v, want -0.1", reversed.EmotionalSync)
		}

		// Both directions flag the feliz/triste pair (discrepancy 1.1, alto);
		// the forward direction's second pair is identical moods and is not
		// flagged, so the discrepancy counts agree even though sync differs.
		if len(forward.MoodDiscrepancies) != 1 || len(reversed.MoodDiscrepancies) != 1 {
			t.Fatalf("discrepancies = %d forward, %d reversed, want 1 each",
				len(forward.MoodDiscrepancies), len(reversed.MoodDiscrepancies))
		}
		if forward.MoodDiscrepancies[0].Impact != domain.ImpactHigh {
			t.Errorf("forward impact = %s, want alto", forward.MoodDiscrepancies[0].Impact)
		}
	})

	t.Run("low sync emits warning insight and suggestions", func(t *testing.T) {
		userEntries := []domain.MoodEntry{
			entryAt(userID, base, domain.MoodFeliz, 5),
		}
		partnerEntries := []domain.MoodEntry{
			entryAt(partnerID, base, domain.MoodTriste, 1),
		}

		analysis := AnalyzeRelationshipEmotions(userEntries, partnerEntries)

		foundWarning := false
		for _, in := range analysis.Insights {
			if in.Type == "warning" {
				foundWarning = true
			}
		}
		if !foundWarning {
			t.Error("expected low-sync warning insight")
		}

		// sync < 0.4 adds three fixed suggestions, the high-impact
		// discrepancy adds two more
		if len(analysis.Recommendations) != 5 {
			t.Errorf("expected 5 recommendations, got %d: %v", len(analysis.Recommendations), analysis.Recommendations)
		}
	})

	t.Run("pooled negativity flags risk", func(t *testing.T) {
		userEntries := []domain.MoodEntry{
			entryAt(userID, base, domain.MoodTriste, 3),
			entryAt(userID, base.AddDate(0, 0, 3), domain.MoodAnsioso, 3),
		}
		partnerEntries := []domain.MoodEntry{
			entryAt(partnerID, base, domain.MoodEstressado, 3),
			entryAt(partnerID, base.AddDate(0, 0, 3), domain.MoodFeliz, 3),
		}

		analysis := AnalyzeRelationshipEmotions(userEntries, partnerEntries)
		if len(analysis.RiskFactors) == 0 {
			t.Fatal("expected negativity risk factor")
		}
	})

	t.Run("no negativity risk at exactly the threshold", func(t *testing.T) {
		// Even pool: half negative is well below 0.7
		userEntries := []domain.MoodEntry{
			entryAt(userID, base, domain.MoodTriste, 3),
		}
		partnerEntries := []domain.MoodEntry{
			entryAt(partnerID, base, domain.MoodFeliz, 3),
		}

		analysis := AnalyzeRelationshipEmotions(userEntries, partnerEntries)
		for _, rf := range analysis.RiskFactors {
			if rf == "Predomínio de emoções negativas em ambos os parceiros no período." {
				t.Error("did not expect negativity risk factor")
			}
		}
	})
}

func TestHasDisconnectionRun(t *testing.T) {
	userID := uuid.New()
	partnerID := uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Opposite moods at max intensity distance produce similarity well
	// below the low-similarity threshold.
	lowDay := func(day int) (domain.MoodEntry, domain.MoodEntry) {
		ts := base.AddDate(0, 0, day*3)
		return entryAt(userID, ts, domain.MoodFeliz, 5), entryAt(partnerID, ts, domain.MoodTriste, 1)
	}
	highDay := func(day int) (domain.MoodEntry, domain.MoodEntry) {
		ts := base.AddDate(0, 0, day*3)
		return entryAt(userID, ts, domain.MoodFeliz, 3), entryAt(partnerID, ts, domain.MoodAnimado, 3)
	}

	t.Run("three consecutive low pairs trigger", func(t *testing.T) {
		var userEntries, partnerEntries []domain.MoodEntry
		for day := 0; day < 3; day++ {
			u, p := lowDay(day)
			userEntries = append(userEntries, u)
			partnerEntries = append(partnerEntries, p)
		}

		analysis := AnalyzeRelationshipEmotions(userEntries, partnerEntries)
		found := false
		for _, in := range analysis.Insights {
			if in.Type == "disconnection" {
				found = true
			}
		}
		if !found {
			t.Error("expected disconnection insight")
		}
	})

	t.Run("recovery resets the run", func(t *testing.T) {
		var userEntries, partnerEntries []domain.MoodEntry
		for day := 0; day < 5; day++ {
			var u, p domain.MoodEntry
			if day == 2 {
				u, p = highDay(day)
			} else {
				u, p = lowDay(day)
			}
			userEntries = append(userEntries, u)
			partnerEntries = append(partnerEntries, p)
		}

		analysis := AnalyzeRelationshipEmotions(userEntries, partnerEntries)
		for _, in := range analysis.Insights {
			if in.Type == "disconnection" {
				t.Error("did not expect disconnection insight after recovery")
			}
		}
	})
}

func TestSyncService_AnalyzeSync(t *testing.T) {
	ctx := context.Background()

	t.Run("requires linked partner", func(t *testing.T) {
		userRepo := NewMockUserRepository()
		moodRepo := NewMockMoodEntryRepository()
		user := &domain.User{ID: uuid.New(), DisplayName: "Ana"}
		userRepo.users[user.ID] = user

		svc := NewSyncService(moodRepo, userRepo)
		_, err := svc.AnalyzeSync(ctx, user.ID)
		if !errors.Is(err, domain.ErrNoPartner) {
			t.Errorf("expected ErrNoPartner, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewSyncService(NewMockMoodEntryRepository(), NewMockUserRepository())
		_, err := svc.AnalyzeSync(ctx, uuid.New())
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("correlates both partners' recent entries", func(t *testing.T) {
		userRepo := NewMockUserRepository()
		moodRepo := NewMockMoodEntryRepository()

		userID := uuid.New()
		partnerID := uuid.New()
		userRepo.users[userID] = &domain.User{ID: userID, PartnerID: &partnerID}
		userRepo.users[partnerID] = &domain.User{ID: partnerID, PartnerID: &userID}

		now := time.Now().UTC()
		moodRepo.entries = []domain.MoodEntry{
			entryAt(userID, now.Add(-2*time.Hour), domain.MoodFeliz, 3),
			entryAt(partnerID, now.Add(-3*time.Hour), domain.MoodAnimado, 3),
		}

		svc := NewSyncService(moodRepo, userRepo)
		analysis, err := svc.AnalyzeSync(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(analysis.EmotionalSync, 1.0) {
			t.Errorf("expected sync 1.0, got %v", analysis.EmotionalSync)
		}
	})
}
