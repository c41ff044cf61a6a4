package importer

import (
	"encoding/json"
	"fmt"

	"alcyxob/program-service/internal/domain"
)

// rawDocument mirrors domain.ProgramDocument with pointers on the required
// fields so that "field absent" can be told apart from "field zero".
// Absence of a required field is a parse failure, not a validation failure.
type rawDocument struct {
	Version      string     `json:"version"`
	ID           string     `json:"id"`
	Title        *string    `json:"title"`
	Description  string     `json:"description"`
	Author       string     `json:"author"`
	DurationDays *int       `json:"durationDays"`
	WeightUnit   string     `json:"weightUnit"`
	Phases       []rawPhase `json:"phases"`
	Days         *[]rawDay  `json:"days"`
}

type rawPhase struct {
	ID            string  `json:"id"`
	Name          *string `json:"name"`
	DurationWeeks *int    `json:"durationWeeks"`
	Days          []int   `json:"days"`
}

type rawDay struct {
	DayIndex        *int     `json:"dayIndex"`
	Title           *string  `json:"title"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"durationMinutes"`
	VideoURL        string   `json:"video_url"`
	RestDay         bool     `json:"rest_day"`
	ExercisesOrder  []string `json:"exercisesOrder"`
	Notes           string   `json:"notes"`
}

// ParseDocument decodes raw bytes into a ProgramDocument. Any syntactic
// problem (bad JSON, wrong field type, missing required field) is reported
// as a *ParseError; semantic checks are left to Validate.
func ParseDocument(raw []byte) (*domain.ProgramDocument, error) {
	var rd rawDocument
	if err := json.Unmarshal(raw, &rd); err != nil {
		return nil, &ParseError{Reason: "document is not valid JSON for the expected shape", Err: err}
	}

	if rd.Title == nil {
		return nil, &ParseError{Reason: "required field 'title' is missing"}
	}
	if rd.DurationDays == nil {
		return nil, &ParseError{Reason: "required field 'durationDays' is missing"}
	}
	if rd.Days == nil {
		return nil, &ParseError{Reason: "required field 'days' is missing"}
	}

	doc := &domain.ProgramDocument{
		Version:      rd.Version,
		ID:           rd.ID,
		Title:        *rd.Title,
		Description:  rd.Description,
		Author:       rd.Author,
		DurationDays: *rd.DurationDays,
		WeightUnit:   rd.WeightUnit,
	}

	for i, p := range rd.Phases {
		if p.Name == nil {
			return nil, &ParseError{Reason: fmt.Sprintf("phase %d: required field 'name' is missing", i)}
		}
		if p.DurationWeeks == nil {
			return nil, &ParseError{Reason: fmt.Sprintf("phase %d: required field 'durationWeeks' is missing", i)}
		}
		doc.Phases = append(doc.Phases, domain.PhaseSpec{
			ID:            p.ID,
			Name:          *p.Name,
			DurationWeeks: *p.DurationWeeks,
			Days:          p.Days,
		})
	}

	for i, d := range *rd.Days {
		if d.DayIndex == nil {
			return nil, &ParseError{Reason: fmt.Sprintf("day %d: required field 'dayIndex' is missing", i)}
		}
		if d.Title == nil {
			return nil, &ParseError{Reason: fmt.Sprintf("day %d: required field 'title' is missing", i)}
		}
		doc.Days = append(doc.Days, domain.DaySpec{
			DayIndex:        *d.DayIndex,
			Title:           *d.Title,
			Description:     d.Description,
			DurationMinutes: d.DurationMinutes,
			VideoURL:        d.VideoURL,
			RestDay:         d.RestDay,
			ExercisesOrder:  d.ExercisesOrder,
			Notes:           d.Notes,
		})
	}

	return doc, nil
}
