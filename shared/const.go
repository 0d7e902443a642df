package shared

const (
	// Local store keys (one row per key in the settings table).
	KeyAuthToken  = "auth_token"
	KeyCachedUser = "cached_user"
	KeyTheme      = "theme_preference"

	// XP awards handed to the gamification engine by the roadmap flow.
	XPStepCompleted    = 50
	XPRoadmapCompleted = 200

	// Achievement criteria types the unlock evaluator understands.
	CriteriaStreak = "streak"
	CriteriaLevel  = "level"

	// Catalog criteria with no evaluator; entries carrying these never fire.
	CriteriaRoadmapCreated   = "roadmap_created"
	CriteriaRoadmapCompleted = "roadmap_completed"
	CriteriaSingleSession    = "single_session_minutes"

	ThemeLight = "light"
	ThemeDark  = "dark"
)
