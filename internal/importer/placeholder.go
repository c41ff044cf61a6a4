package importer

import (
	"time"

	"alcyxob/program-service/internal/domain"
)

// PlaceholderExercises synthesizes a placeholder Exercise for every
// referenced id missing from storage, in reference order: humanized display
// name, generic strength category, placeholder flag set so curators can find
// the row later. Ids already present produce nothing — import never
// overwrites curated exercise data.
func PlaceholderExercises(referenced []string, existing map[string]bool, now time.Time) []domain.Exercise {
	var out []domain.Exercise
	for _, id := range referenced {
		if existing[id] {
			continue
		}
		out = append(out, domain.Exercise{
			ID:          id,
			Name:        HumanizeExerciseID(id),
			Category:    domain.CategoryStrength,
			Placeholder: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return out
}
