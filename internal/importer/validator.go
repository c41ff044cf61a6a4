package importer

import (
	"fmt"
	"strings"

	"alcyxob/program-service/internal/domain"
)

// Validate checks the semantic rules a parsed document must satisfy before
// expansion. It returns a *ValidationError describing the first violation
// found; validation is all-or-nothing and a failed document produces no
// storage mutation whatsoever.
func Validate(doc *domain.ProgramDocument) error {
	if strings.TrimSpace(doc.Title) == "" {
		return &ValidationError{Reason: "title must not be blank"}
	}
	if doc.DurationDays <= 0 {
		return &ValidationError{Reason: fmt.Sprintf("durationDays must be positive, got %d", doc.DurationDays)}
	}
	if len(doc.Days) == 0 {
		return &ValidationError{Reason: "document must contain at least one day"}
	}

	seen := make(map[int]bool, len(doc.Days))
	for _, day := range doc.Days {
		if day.DayIndex <= 0 {
			return &ValidationError{Reason: fmt.Sprintf("day %q: dayIndex must be positive, got %d", day.Title, day.DayIndex)}
		}
		// Schedule day numbers must stay within 1..durationDays.
		if day.DayIndex > doc.DurationDays {
			return &ValidationError{Reason: fmt.Sprintf("day %q: dayIndex %d exceeds durationDays %d", day.Title, day.DayIndex, doc.DurationDays)}
		}
		if seen[day.DayIndex] {
			return &ValidationError{Reason: fmt.Sprintf("duplicate dayIndex %d", day.DayIndex)}
		}
		seen[day.DayIndex] = true
	}

	return nil
}
