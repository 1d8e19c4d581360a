package embedding

import (
	"strings"
	"time"
)

const fieldSep = ". "

// Fields are the descriptive parts of an item that feed its embedding.
type Fields struct {
	Name        string
	Description string
	Location    string
	Date        *time.Time
	// used when no structured Date is available
	DateText string
}

// BuildItemText renders labeled fields in a fixed order, skipping empty ones.
func BuildItemText(f Fields) string {
	parts := make([]string, 0, 4)
	add := func(label, v string) {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, label+": "+v)
		}
	}
	add("Name", f.Name)
	add("Description", f.Description)
	add("Location", f.Location)
	if f.Date != nil && !f.Date.IsZero() {
		add("Date", f.Date.Format("2006-01-02"))
	} else {
		add("Date", f.DateText)
	}
	return strings.Join(parts, fieldSep)
}
