package services

import (
	"math"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"github.com/pathwise-app/pathwise_client/model"
	"github.com/pathwise-app/pathwise_client/shared"
)

// ProgressStore is the typed repository the engine persists through.
type ProgressStore interface {
	LoadRecord() (*model.GamificationRecord, error)
	SaveRecord(*model.GamificationRecord) error
}

// GamificationService owns the per-install progression record: XP, level,
// daily streak, study time and achievement unlocks. Every operation loads
// the record, mutates it in memory and rewrites it whole. A mutex serializes
// writers since the CLI goroutine and the pomodoro ticker can both mutate.
type GamificationService struct {
	context.DefaultService

	store   ProgressStore
	catalog []CatalogEntry
	rules   []UnlockRule
	now     func() time.Time

	mu sync.Mutex
}

const GAMIFICATION_SVC = "gamification_svc"

const dateLayout = "2006-01-02"

func (svc *GamificationService) Id() string {
	return GAMIFICATION_SVC
}

func (svc *GamificationService) Configure(ctx *context.Context) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	svc.catalog = catalog
	svc.rules = buildRules(catalog)
	svc.now = time.Now

	return svc.DefaultService.Configure(ctx)
}

func (svc *GamificationService) Start() error {
	svc.store = svc.Service(SQLITE_SVC).(*SqliteService)
	return nil
}

type XPResult struct {
	XPGained  int                 `json:"xp_gained"`
	TotalXP   int                 `json:"total_xp"`
	Level     int                 `json:"level"`
	LeveledUp bool                `json:"leveled_up"`
	Unlocked  []model.Achievement `json:"unlocked,omitempty"`
}

// AddXP credits XP and recomputes the level from the curve. The level is
// never written from anywhere else.
func (svc *GamificationService) AddXP(amount int, reason string) (*XPResult, error) {
	if amount < 0 {
		return nil, shared.NewBadRequestError(nil, "XP amount cannot be negative")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	record, err := svc.loadOrInit()
	if err != nil {
		return nil, err
	}

	oldLevel := record.CurrentLevel
	record.TotalXP += amount
	record.CurrentLevel = shared.LevelForXP(record.TotalXP)

	unlocked := svc.checkAchievements(record)

	if err := svc.store.SaveRecord(record); err != nil {
		return nil, err
	}

	leveledUp := record.CurrentLevel > oldLevel
	if leveledUp {
		recordLevelUp()
		log.WithField("level", record.CurrentLevel).WithField("reason", reason).Info("Level up")
	}
	recordXPGained(amount)

	return &XPResult{
		XPGained:  amount,
		TotalXP:   record.TotalXP,
		Level:     record.CurrentLevel,
		LeveledUp: leveledUp,
		Unlocked:  unlocked,
	}, nil
}

// AddStudyMinutes only touches the study-time counter. Achievements are not
// re-evaluated here; no unlock rule reads study time.
func (svc *GamificationService) AddStudyMinutes(minutes int) error {
	if minutes < 0 {
		return shared.NewBadRequestError(nil, "Study minutes cannot be negative")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	record, err := svc.loadOrInit()
	if err != nil {
		return err
	}

	record.TotalStudyMinutes += minutes
	return svc.store.SaveRecord(record)
}

type ActivityResult struct {
	CurrentStreak  int                 `json:"current_streak"`
	LongestStreak  int                 `json:"longest_streak"`
	AlreadyCounted bool                `json:"already_counted"`
	Unlocked       []model.Achievement `json:"unlocked,omitempty"`
}

// RecordActivity advances the daily streak machine. Calling it twice on the
// same calendar date is a no-op, and a clock moved backward is treated the
// same way.
func (svc *GamificationService) RecordActivity() (*ActivityResult, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	record, err := svc.loadOrInit()
	if err != nil {
		return nil, err
	}

	now := svc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayStr := today.Format(dateLayout)

	if record.LastActivityDate == todayStr {
		return &ActivityResult{
			CurrentStreak:  record.CurrentStreak,
			LongestStreak:  record.LongestStreak,
			AlreadyCounted: true,
		}, nil
	}

	if record.LastActivityDate == "" {
		record.CurrentStreak = 1
	} else {
		lastDay, err := time.ParseInLocation(dateLayout, record.LastActivityDate, now.Location())
		if err != nil {
			// Corrupt date; start over rather than guess.
			record.CurrentStreak = 1
		} else {
			// Rounded so a 23h or 25h midnight gap across a DST shift
			// still counts as one day.
			diffDays := int(math.Round(today.Sub(lastDay).Hours() / 24))
			switch {
			case diffDays == 1:
				record.CurrentStreak++
			case diffDays > 1:
				record.CurrentStreak = 1
			default:
				// Clock moved backward; leave streak state untouched.
				return &ActivityResult{
					CurrentStreak:  record.CurrentStreak,
					LongestStreak:  record.LongestStreak,
					AlreadyCounted: true,
				}, nil
			}
		}
	}

	if record.CurrentStreak > record.LongestStreak {
		record.LongestStreak = record.CurrentStreak
	}
	record.LastActivityDate = todayStr

	unlocked := svc.checkAchievements(record)

	if err := svc.store.SaveRecord(record); err != nil {
		return nil, err
	}
	recordStreak(record.CurrentStreak)

	return &ActivityResult{
		CurrentStreak: record.CurrentStreak,
		LongestStreak: record.LongestStreak,
		Unlocked:      unlocked,
	}, nil
}

// CompleteRoadmap bumps the completed-roadmaps counter. XP for completion is
// awarded separately by the roadmap flow.
func (svc *GamificationService) CompleteRoadmap() ([]model.Achievement, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	record, err := svc.loadOrInit()
	if err != nil {
		return nil, err
	}

	record.CompletedRoadmaps++
	unlocked := svc.checkAchievements(record)

	if err := svc.store.SaveRecord(record); err != nil {
		return nil, err
	}
	return unlocked, nil
}

type ProgressionSummary struct {
	TotalXP           int                 `json:"total_xp"`
	Level             int                 `json:"level"`
	LevelProgress     float64             `json:"level_progress"`
	XPToNextLevel     int                 `json:"xp_to_next_level"`
	CurrentStreak     int                 `json:"current_streak"`
	LongestStreak     int                 `json:"longest_streak"`
	LastActivityDate  string              `json:"last_activity_date,omitempty"`
	TotalStudyMinutes int                 `json:"total_study_minutes"`
	CompletedRoadmaps int                 `json:"completed_roadmaps"`
	Achievements      []model.Achievement `json:"achievements"`
}

func (svc *GamificationService) Summary() (*ProgressionSummary, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	record, err := svc.loadOrInit()
	if err != nil {
		return nil, err
	}

	return &ProgressionSummary{
		TotalXP:           record.TotalXP,
		Level:             record.CurrentLevel,
		LevelProgress:     shared.LevelProgress(record.TotalXP),
		XPToNextLevel:     shared.XPFloorForLevel(record.CurrentLevel+1) - record.TotalXP,
		CurrentStreak:     record.CurrentStreak,
		LongestStreak:     record.LongestStreak,
		LastActivityDate:  record.LastActivityDate,
		TotalStudyMinutes: record.TotalStudyMinutes,
		CompletedRoadmaps: record.CompletedRoadmaps,
		Achievements:      svc.achievementsOf(record),
	}, nil
}

// ==================== INTERNALS ====================

// loadOrInit fetches the record or builds the default one (level 1, full
// catalog locked).
func (svc *GamificationService) loadOrInit() (*model.GamificationRecord, error) {
	record, err := svc.store.LoadRecord()
	if err != nil {
		return nil, err
	}
	if record != nil {
		return record, nil
	}

	record = &model.GamificationRecord{CurrentLevel: 1}
	record.Achievements = svc.marshalAchievements(svc.defaultAchievements())
	return record, nil
}

func (svc *GamificationService) defaultAchievements() []model.Achievement {
	achievements := make([]model.Achievement, len(svc.catalog))
	for i, entry := range svc.catalog {
		achievements[i] = model.Achievement{
			ID:          entry.ID,
			Name:        entry.Name,
			Description: entry.Description,
			Icon:        entry.Icon,
		}
	}
	return achievements
}

// achievementsOf decodes the stored unlock state and projects it onto the
// catalog order, so entries added to the catalog later show up locked.
func (svc *GamificationService) achievementsOf(record *model.GamificationRecord) []model.Achievement {
	stored := map[string]model.Achievement{}
	var decoded []model.Achievement
	if len(record.Achievements) > 0 {
		if err := sonic.Unmarshal(record.Achievements, &decoded); err != nil {
			log.WithError(err).Warn("Stored achievements unreadable, resetting unlock state")
		}
	}
	for _, a := range decoded {
		stored[a.ID] = a
	}

	achievements := svc.defaultAchievements()
	for i := range achievements {
		if prev, ok := stored[achievements[i].ID]; ok && prev.IsUnlocked {
			achievements[i].IsUnlocked = true
			achievements[i].UnlockedAt = prev.UnlockedAt
		}
	}
	return achievements
}

// checkAchievements runs the rule table against the record and performs the
// unlock transitions. Unlock is monotonic: a satisfied rule on an already
// unlocked achievement changes nothing, and nothing ever re-locks.
func (svc *GamificationService) checkAchievements(record *model.GamificationRecord) []model.Achievement {
	achievements := svc.achievementsOf(record)
	byID := make(map[string]int, len(achievements))
	for i, a := range achievements {
		byID[a.ID] = i
	}

	var unlocked []model.Achievement
	for _, rule := range svc.rules {
		i, ok := byID[rule.AchievementID]
		if !ok || achievements[i].IsUnlocked {
			continue
		}
		if !rule.Satisfied(record) {
			continue
		}

		when := svc.now()
		achievements[i].IsUnlocked = true
		achievements[i].UnlockedAt = &when
		unlocked = append(unlocked, achievements[i])
	}

	if len(unlocked) > 0 {
		recordAchievementsUnlocked(len(unlocked))
		for _, a := range unlocked {
			log.WithField("achievement", a.ID).Info("Achievement unlocked")
		}
	}

	record.Achievements = svc.marshalAchievements(achievements)
	return unlocked
}

func (svc *GamificationService) marshalAchievements(achievements []model.Achievement) []byte {
	raw, err := sonic.Marshal(achievements)
	if err != nil {
		// Achievements are plain serializable structs; this cannot fail with
		// real data.
		log.WithError(err).Error("Failed to marshal achievements")
		return []byte("[]")
	}
	return raw
}
