package shared

// Level curve: level 2 costs 100 XP, every level after that costs another 500.
const (
	baseLevelXP = 100
	perLevelXP  = 500
)

// LevelForXP derives the level from cumulative XP. Levels are never stored
// independently of this function.
func LevelForXP(xp int) int {
	if xp < baseLevelXP {
		return 1
	}
	return (xp-baseLevelXP)/perLevelXP + 2
}

// XPFloorForLevel returns the cumulative XP at which the given level begins.
func XPFloorForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return baseLevelXP + (level-2)*perLevelXP
}

// LevelProgress returns percent progress (0-100) from the current level
// toward the next, clamped at 100.
func LevelProgress(xp int) float64 {
	level := LevelForXP(xp)
	if level == 1 {
		return clampPercent(float64(xp) / float64(baseLevelXP) * 100)
	}
	floor := XPFloorForLevel(level)
	ceil := XPFloorForLevel(level + 1)
	return clampPercent(float64(xp-floor) / float64(ceil-floor) * 100)
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
