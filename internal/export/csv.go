// Package export renders the scored cohort as CSV for operator download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/terval-edu/orienta/internal/analytics"
	"github.com/terval-edu/orienta/internal/compat"
)

var header = []string{
	"id", "firstName", "lastName", "email", "track", "gradeBand",
	"specialties", "elective", "englishLevel", "objective",
	"axisAScore", "axisBScore", "sourceChannel", "status",
	"engineeringCompatible", "engineeringScore",
	"businessCompatible", "businessScore",
	"createdAt",
}

// WriteCSV streams the cohort to w, one row per candidate.
func WriteCSV(w io.Writer, entries []analytics.Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range entries {
		rec := e.Record
		engineering := e.Compat[compat.ProfileEngineering]
		business := e.Compat[compat.ProfileBusiness]

		row := []string{
			rec.ID,
			rec.FirstName,
			rec.LastName,
			rec.Email,
			string(rec.Track),
			string(rec.GradeBand),
			strings.Join(rec.Specialties, "|"),
			rec.Elective,
			string(rec.EnglishLevel),
			string(rec.Objective),
			fmt.Sprintf("%g", rec.AxisAScore),
			fmt.Sprintf("%g", rec.AxisBScore),
			rec.SourceChannel,
			string(rec.Status),
			fmt.Sprintf("%t", engineering.Compatible),
			fmt.Sprintf("%d", engineering.Score),
			fmt.Sprintf("%t", business.Compatible),
			fmt.Sprintf("%d", business.Score),
			rec.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", rec.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
