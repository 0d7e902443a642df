package services

import (
	"testing"
	"time"

	"github.com/pathwise-app/pathwise_client/model"
	"github.com/pathwise-app/pathwise_client/shared"
)

type memProgressStore struct {
	record *model.GamificationRecord
	saves  int
}

func (s *memProgressStore) LoadRecord() (*model.GamificationRecord, error) {
	if s.record == nil {
		return nil, nil
	}
	clone := *s.record
	return &clone, nil
}

func (s *memProgressStore) SaveRecord(record *model.GamificationRecord) error {
	clone := *record
	s.record = &clone
	s.saves++
	return nil
}

func newTestEngine(t *testing.T) (*GamificationService, *memProgressStore, *time.Time) {
	t.Helper()

	catalog, err := loadCatalog()
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := &memProgressStore{}
	svc := &GamificationService{
		store:   store,
		catalog: catalog,
		rules:   buildRules(catalog),
	}
	svc.now = func() time.Time { return now }
	return svc, store, &now
}

func TestAddXPAccumulates(t *testing.T) {
	svc, _, _ := newTestEngine(t)

	first, err := svc.AddXP(30, "step")
	if err != nil {
		t.Fatalf("AddXP: %v", err)
	}
	if first.TotalXP != 30 || first.Level != 1 || first.LeveledUp {
		t.Fatalf("after 30 XP got total=%d level=%d leveledUp=%v", first.TotalXP, first.Level, first.LeveledUp)
	}

	second, err := svc.AddXP(70, "step")
	if err != nil {
		t.Fatalf("AddXP: %v", err)
	}
	if second.TotalXP != 100 {
		t.Fatalf("expected total 100, got %d", second.TotalXP)
	}
	if second.Level != 2 || !second.LeveledUp {
		t.Fatalf("expected level up to 2, got level=%d leveledUp=%v", second.Level, second.LeveledUp)
	}
}

func TestAddXPRejectsNegative(t *testing.T) {
	svc, store, _ := newTestEngine(t)

	if _, err := svc.AddXP(-10, "step"); !shared.HasCode(err, shared.ErrCodeBadRequest) {
		t.Fatalf("expected bad_request, got %v", err)
	}
	if store.saves != 0 {
		t.Fatalf("negative XP must not persist, saves=%d", store.saves)
	}
}

func TestLevelAchievementUnlocks(t *testing.T) {
	svc, _, _ := newTestEngine(t)

	result, err := svc.AddXP(1600, "bulk")
	if err != nil {
		t.Fatalf("AddXP: %v", err)
	}
	if result.Level != 5 {
		t.Fatalf("expected level 5 at 1600 XP, got %d", result.Level)
	}
	if !containsAchievement(result.Unlocked, "level_5") {
		t.Fatalf("expected level_5 unlocked, got %v", achievementIDs(result.Unlocked))
	}
	if containsAchievement(result.Unlocked, "level_10") {
		t.Fatal("level_10 must stay locked at level 5")
	}
}

func TestRecordActivitySameDayIdempotent(t *testing.T) {
	svc, store, _ := newTestEngine(t)

	first, err := svc.RecordActivity()
	if err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	if first.CurrentStreak != 1 || first.AlreadyCounted {
		t.Fatalf("first activity got streak=%d alreadyCounted=%v", first.CurrentStreak, first.AlreadyCounted)
	}

	saves := store.saves
	second, err := svc.RecordActivity()
	if err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	if !second.AlreadyCounted || second.CurrentStreak != 1 {
		t.Fatalf("same-day repeat got streak=%d alreadyCounted=%v", second.CurrentStreak, second.AlreadyCounted)
	}
	if store.saves != saves {
		t.Fatal("same-day repeat must not rewrite the record")
	}
}

func TestStreakProgressionAndReset(t *testing.T) {
	svc, _, now := newTestEngine(t)

	day1, _ := svc.RecordActivity()
	if day1.CurrentStreak != 1 {
		t.Fatalf("day 1 streak=%d", day1.CurrentStreak)
	}

	*now = now.AddDate(0, 0, 1)
	day2, _ := svc.RecordActivity()
	if day2.CurrentStreak != 2 || day2.LongestStreak != 2 {
		t.Fatalf("day 2 streak=%d longest=%d", day2.CurrentStreak, day2.LongestStreak)
	}

	// Skip day 3 entirely.
	*now = now.AddDate(0, 0, 2)
	day4, _ := svc.RecordActivity()
	if day4.CurrentStreak != 1 {
		t.Fatalf("after a gap streak=%d, want 1", day4.CurrentStreak)
	}
	if day4.LongestStreak != 2 {
		t.Fatalf("longest streak lost on reset, got %d", day4.LongestStreak)
	}
}

func TestStreakAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	svc, _, now := newTestEngine(t)

	// DST starts 2025-03-09 in New York; the midnight-to-midnight gap to
	// the next day is 23 hours.
	*now = time.Date(2025, 3, 9, 8, 0, 0, 0, loc)
	day1, err := svc.RecordActivity()
	if err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	if day1.CurrentStreak != 1 {
		t.Fatalf("day 1 streak=%d", day1.CurrentStreak)
	}

	*now = time.Date(2025, 3, 10, 8, 0, 0, 0, loc)
	day2, err := svc.RecordActivity()
	if err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	if day2.CurrentStreak != 2 {
		t.Fatalf("streak across the transition=%d, want 2", day2.CurrentStreak)
	}
}

func TestClockMovedBackwardIsNoOp(t *testing.T) {
	svc, store, now := newTestEngine(t)

	*now = now.AddDate(0, 0, 1)
	if _, err := svc.RecordActivity(); err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	saves := store.saves

	*now = now.AddDate(0, 0, -1)
	result, err := svc.RecordActivity()
	if err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	if !result.AlreadyCounted || result.CurrentStreak != 1 {
		t.Fatalf("backward clock got streak=%d alreadyCounted=%v", result.CurrentStreak, result.AlreadyCounted)
	}
	if store.saves != saves {
		t.Fatal("backward clock must not rewrite the record")
	}
}

func TestStreakUnlocksBatchTogether(t *testing.T) {
	svc, store, now := newTestEngine(t)

	// Seed a record one activity short of a 7-day streak, with nothing
	// unlocked yet.
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	store.record = &model.GamificationRecord{
		ID:               "seed",
		CurrentLevel:     1,
		CurrentStreak:    6,
		LongestStreak:    6,
		LastActivityDate: yesterday,
	}

	result, err := svc.RecordActivity()
	if err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	if result.CurrentStreak != 7 {
		t.Fatalf("streak=%d, want 7", result.CurrentStreak)
	}
	if !containsAchievement(result.Unlocked, "streak_3") || !containsAchievement(result.Unlocked, "streak_7") {
		t.Fatalf("expected streak_3 and streak_7 in one batch, got %v", achievementIDs(result.Unlocked))
	}
	if containsAchievement(result.Unlocked, "streak_30") {
		t.Fatal("streak_30 must stay locked at 7 days")
	}
}

func TestUnlockIsMonotonic(t *testing.T) {
	svc, store, now := newTestEngine(t)

	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	store.record = &model.GamificationRecord{
		ID:               "seed",
		CurrentLevel:     1,
		CurrentStreak:    2,
		LongestStreak:    2,
		LastActivityDate: yesterday,
	}

	first, err := svc.RecordActivity()
	if err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	if !containsAchievement(first.Unlocked, "streak_3") {
		t.Fatalf("expected streak_3 at streak 3, got %v", achievementIDs(first.Unlocked))
	}

	summary, err := svc.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	var unlockedAt *time.Time
	for _, a := range summary.Achievements {
		if a.ID == "streak_3" {
			if !a.IsUnlocked || a.UnlockedAt == nil {
				t.Fatal("streak_3 not persisted as unlocked")
			}
			unlockedAt = a.UnlockedAt
		}
	}

	*now = now.AddDate(0, 0, 1)
	second, err := svc.RecordActivity()
	if err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	if containsAchievement(second.Unlocked, "streak_3") {
		t.Fatal("streak_3 reported unlocked twice")
	}

	summary, _ = svc.Summary()
	for _, a := range summary.Achievements {
		if a.ID == "streak_3" && !a.UnlockedAt.Equal(*unlockedAt) {
			t.Fatal("UnlockedAt rewritten on a later evaluation")
		}
	}
}

func TestCatalogEntriesWithoutRulesStayLocked(t *testing.T) {
	svc, _, _ := newTestEngine(t)

	unlocked, err := svc.CompleteRoadmap()
	if err != nil {
		t.Fatalf("CompleteRoadmap: %v", err)
	}
	if len(unlocked) != 0 {
		t.Fatalf("no evaluator covers roadmap criteria, got %v", achievementIDs(unlocked))
	}

	summary, _ := svc.Summary()
	if summary.CompletedRoadmaps != 1 {
		t.Fatalf("completed roadmaps=%d, want 1", summary.CompletedRoadmaps)
	}
	if len(summary.Achievements) != len(svc.catalog) {
		t.Fatalf("summary lists %d achievements, catalog has %d", len(summary.Achievements), len(svc.catalog))
	}
}

func TestAddStudyMinutes(t *testing.T) {
	svc, store, _ := newTestEngine(t)

	if err := svc.AddStudyMinutes(25); err != nil {
		t.Fatalf("AddStudyMinutes: %v", err)
	}
	if err := svc.AddStudyMinutes(35); err != nil {
		t.Fatalf("AddStudyMinutes: %v", err)
	}
	if store.record.TotalStudyMinutes != 60 {
		t.Fatalf("total minutes=%d, want 60", store.record.TotalStudyMinutes)
	}

	if err := svc.AddStudyMinutes(-5); !shared.HasCode(err, shared.ErrCodeBadRequest) {
		t.Fatalf("expected bad_request, got %v", err)
	}
}

func TestSummaryProgress(t *testing.T) {
	svc, _, _ := newTestEngine(t)

	if _, err := svc.AddXP(350, "seed"); err != nil {
		t.Fatalf("AddXP: %v", err)
	}

	summary, err := svc.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.Level != 2 {
		t.Fatalf("level=%d, want 2", summary.Level)
	}
	if summary.LevelProgress != 50 {
		t.Fatalf("progress=%v, want 50", summary.LevelProgress)
	}
	if summary.XPToNextLevel != 250 {
		t.Fatalf("xp to next=%d, want 250", summary.XPToNextLevel)
	}
}

func containsAchievement(achievements []model.Achievement, id string) bool {
	for _, a := range achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

func achievementIDs(achievements []model.Achievement) []string {
	ids := make([]string, len(achievements))
	for i, a := range achievements {
		ids[i] = a.ID
	}
	return ids
}
