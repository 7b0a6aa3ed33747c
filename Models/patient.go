package Models

import (
	"fmt"
	"strings"
)

// MergedPatient is one entry of the unified patient listing. The ID carries
// an appt_/lead_ prefix so callers can tell which table a row came from.
type MergedPatient struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Email  string `json:"email"`
}

// FetchAllPatients merges appointments and website leads into one list,
// appointments first. No de-duplication is attempted; the same person booked
// through both channels appears twice.
func FetchAllPatients() ([]MergedPatient, error) {
	merged := []MergedPatient{}

	_, appointments, err := FetchRows("appointments")
	if err != nil {
		return nil, err
	}
	for _, row := range appointments {
		merged = append(merged, MergedPatient{
			ID:     fmt.Sprintf("appt_%v", row["id"]),
			Name:   stringField(row, "name"),
			Mobile: stringField(row, "mobile"),
			Email:  stringField(row, "email"),
		})
	}

	_, leads, err := FetchRows("website_leads")
	if err != nil {
		return nil, err
	}
	for _, row := range leads {
		email := stringField(row, "email")
		if email == "" {
			// Old lead rows predate the email column; the booking form used
			// to drop the address into the free-text message instead.
			email = DetectEmail(stringField(row, "message"))
		}
		merged = append(merged, MergedPatient{
			ID:     fmt.Sprintf("lead_%v", row["id"]),
			Name:   stringField(row, "name"),
			Mobile: stringField(row, "mobile"),
			Email:  email,
		})
	}

	return merged, nil
}

// DetectEmail treats a free-text value as an email only when it contains an
// @ and no whitespace. Anything else comes back empty.
func DetectEmail(text string) string {
	if strings.Contains(text, "@") && !strings.ContainsAny(text, " \t\n") {
		return text
	}
	return ""
}

func stringField(row map[string]interface{}, key string) string {
	value, ok := row[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
