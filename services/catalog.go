package services

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/pathwise-app/pathwise_client/model"
	"github.com/pathwise-app/pathwise_client/shared"
)

//go:embed achievements.yaml
var achievementCatalogYAML []byte

type CatalogCriteria struct {
	Type      string `yaml:"type"`
	Threshold int    `yaml:"threshold"`
}

type CatalogEntry struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Icon        string          `yaml:"icon"`
	Criteria    CatalogCriteria `yaml:"criteria"`
}

func loadCatalog() ([]CatalogEntry, error) {
	var doc struct {
		Achievements []CatalogEntry `yaml:"achievements"`
	}
	if err := yaml.Unmarshal(achievementCatalogYAML, &doc); err != nil {
		return nil, err
	}
	return doc.Achievements, nil
}

// UnlockRule pairs one achievement with its predicate over the record. The
// evaluator walks this table; mutation call sites never know about
// individual achievements.
type UnlockRule struct {
	AchievementID string
	Satisfied     func(*model.GamificationRecord) bool
}

// buildRules turns catalog criteria into predicates. Criteria types without
// a case here produce no rule, so their entries stay locked.
func buildRules(catalog []CatalogEntry) []UnlockRule {
	rules := make([]UnlockRule, 0, len(catalog))
	for _, entry := range catalog {
		threshold := entry.Criteria.Threshold

		switch entry.Criteria.Type {
		case shared.CriteriaStreak:
			rules = append(rules, UnlockRule{
				AchievementID: entry.ID,
				Satisfied: func(r *model.GamificationRecord) bool {
					return r.CurrentStreak >= threshold
				},
			})
		case shared.CriteriaLevel:
			rules = append(rules, UnlockRule{
				AchievementID: entry.ID,
				Satisfied: func(r *model.GamificationRecord) bool {
					return r.CurrentLevel >= threshold
				},
			})
		}
	}
	return rules
}
