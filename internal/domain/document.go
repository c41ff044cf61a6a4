// internal/domain/document.go
package domain

// ProgramDocument is the in-memory form of an externally authored program
// description. It is untrusted input: the importer parses and validates it
// before anything derived from it reaches storage.
type ProgramDocument struct {
	Version      string      `json:"version,omitempty"` // Informational only
	ID           string      `json:"id,omitempty"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	Author       string      `json:"author,omitempty"`
	DurationDays int         `json:"durationDays"`
	WeightUnit   string      `json:"weightUnit,omitempty"`
	Phases       []PhaseSpec `json:"phases,omitempty"`
	Days         []DaySpec   `json:"days"`
}

// PhaseSpec describes one declared phase of a program document.
// The optional Days list names the day indices belonging to the phase;
// the current expansion parses it but does not consult it (every workout
// attaches to the first declared phase).
type PhaseSpec struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	DurationWeeks int    `json:"durationWeeks"`
	Days          []int  `json:"days,omitempty"`
}

// DaySpec describes a single scheduled day of the document.
type DaySpec struct {
	DayIndex        int      `json:"dayIndex"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	DurationMinutes int      `json:"durationMinutes,omitempty"`
	VideoURL        string   `json:"video_url,omitempty"`
	RestDay         bool     `json:"rest_day,omitempty"`
	ExercisesOrder  []string `json:"exercisesOrder,omitempty"` // Exercise ids, order-significant
	Notes           string   `json:"notes,omitempty"`
}
