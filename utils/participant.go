package utils

import (
	"strings"
	"unicode"

	"trial-shop/models"
)

const maxParticipantIDLength = 64

// FormatParticipantID trims and upper-cases a participant-supplied ID. Inner
// whitespace becomes '-'; anything other than letters, digits, '-' and '_' is
// rejected.
func FormatParticipantID(raw string) (string, error) {
	id := strings.ToUpper(strings.Join(strings.Fields(raw), "-"))
	if id == "" {
		return "", models.NewValidationError("participant_id", "participant ID is required")
	}
	if len(id) > maxParticipantIDLength {
		return "", models.NewValidationError("participant_id", "participant ID is too long")
	}
	for _, r := range id {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return "", models.NewValidationError("participant_id", "participant ID may only contain letters, digits, '-' and '_'")
		}
	}
	return id, nil
}
