// internal/domain/exercise.go
package domain

import (
	"time"
)

// CategoryStrength is the generic category assigned to placeholder
// exercises materialized during import.
const CategoryStrength = "Strength"

// Exercise represents a single exercise definition in the library.
// The ID is the slug-like token used by program documents to reference it
// (e.g. "barbell-row"); import materializes a placeholder row for any
// referenced id that does not exist yet.
type Exercise struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Category    string `bson:"category" json:"category"` // e.g. "Strength", "Cardio", "Mobility"
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	MuscleGroup      string `bson:"muscleGroup,omitempty" json:"muscleGroup,omitempty"`           // e.g., "Chest", "Legs", "Back"
	Equipment        string `bson:"equipment,omitempty" json:"equipment,omitempty"`               // e.g., "Barbell", "Dumbbell", "None"
	ExecutionTechnic string `bson:"executionTechnic,omitempty" json:"executionTechnic,omitempty"` // Detailed instructions
	VideoURL         string `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`                 // Optional URL to an example video

	// Placeholder marks rows auto-created by import so curators can find
	// and enrich them later.
	Placeholder bool `bson:"placeholder" json:"placeholder"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
