package domain

// Workout represents a single trainable session definition, reusable across
// schedule days. The ID is derived deterministically from the source day's
// title and index (see importer.WorkoutID), so a re-import of the same
// document regenerates the exact same ids.
type Workout struct {
	ID              string `bson:"_id" json:"id"`
	Name            string `bson:"name" json:"name"`
	DurationMinutes int    `bson:"durationMinutes" json:"durationMinutes"`
	// TargetMuscleGroups is never populated by import; curators fill it
	// later via the workout update endpoint.
	TargetMuscleGroups []string `bson:"targetMuscleGroups" json:"targetMuscleGroups"`
}

// SetType describes how the sets of an exercise mapping are structured.
type SetType string

const (
	// SetTypeSingle is the default assigned on import; the document format
	// carries no per-set training parameters.
	SetTypeSingle SetType = "SINGLE"
	SetTypeSuper  SetType = "SUPERSET"
	SetTypeDrop   SetType = "DROPSET"
)

// ExerciseInWorkout is one ordered exercise slot within a workout,
// keyed by (WorkoutID, OrderIndex). OrderIndex is 0-based and preserves
// the document author's ordering.
type ExerciseInWorkout struct {
	WorkoutID  string  `bson:"workoutId" json:"workoutId"`
	OrderIndex int     `bson:"orderIndex" json:"orderIndex"`
	ExerciseID string  `bson:"exerciseId" json:"exerciseId"`
	SetType    SetType `bson:"setType" json:"setType"`
	// TargetReps is a freeform string like "15, 12, 8". Empty means
	// "no target recorded" (downstream consumers fall back to history),
	// never "zero sets".
	TargetReps string `bson:"targetReps" json:"targetReps"`
	Notes      string `bson:"notes,omitempty" json:"notes,omitempty"`
}
