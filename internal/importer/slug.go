package importer

import (
	"strconv"
	"strings"
)

// Slugify lowercases s, collapses every maximal run of characters outside
// [a-z0-9] into a single hyphen and strips leading/trailing hyphens.
// The rule is load-bearing: workout ids are derived from it, and re-importing
// the same document must regenerate byte-identical ids.
func Slugify(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// WorkoutID derives the persistent workout id for a document day:
// slug(trim(title) + "-day-" + dayIndex), e.g. ("Push Day", 1) -> "push-day-day-1".
func WorkoutID(title string, dayIndex int) string {
	return Slugify(strings.TrimSpace(title) + "-day-" + strconv.Itoa(dayIndex))
}

// HumanizeExerciseID turns a slug-like exercise id into a display name:
// separator runs become spaces and every word is title-cased,
// e.g. "incline-db-press" -> "Incline Db Press".
func HumanizeExerciseID(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'))
	})
	for i, w := range words {
		if w[0] >= 'a' && w[0] <= 'z' {
			words[i] = string(w[0]-'a'+'A') + w[1:]
		}
	}
	return strings.Join(words, " ")
}
