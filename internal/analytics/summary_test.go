package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terval-edu/orienta/internal/compat"
	"github.com/terval-edu/orienta/internal/types"
)

func entry(id string, axisA, axisB float64, track types.Track, specialties ...string) Entry {
	return Entry{
		Record: types.CandidateRecord{
			ID:          id,
			FirstName:   "First-" + id,
			LastName:    "Last-" + id,
			Track:       track,
			AxisAScore:  axisA,
			AxisBScore:  axisB,
			Specialties: specialties,
		},
		Compat: map[compat.ProfileID]compat.Result{},
	}
}

func withVerdict(e Entry, id compat.ProfileID, compatible bool, score int) Entry {
	e.Compat[id] = compat.Result{Compatible: compatible, Score: score}
	return e
}

func TestSummarizeEmptyCohort(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0.0, s.AxisAPercent)
	assert.Equal(t, 0.0, s.AxisBPercent)
	assert.Equal(t, NotApplicable, s.TopSpecialty)
	assert.Empty(t, s.TopEngineering)
	assert.Empty(t, s.Insights)
}

func TestAxisCountsAndPercentages(t *testing.T) {
	entries := []Entry{
		entry("1", 70, 30, types.TrackGeneral),
		entry("2", 60, 40, types.TrackGeneral),
		entry("3", 20, 80, types.TrackGeneral),
		entry("4", 50, 50, types.TrackGeneral),
	}
	s := Summarize(entries)

	assert.Equal(t, 2, s.AxisACount)
	assert.Equal(t, 1, s.AxisBCount)
	assert.Equal(t, 1, s.TieCount)
	assert.Equal(t, 50.0, s.AxisAPercent)
	assert.Equal(t, 25.0, s.AxisBPercent)
	assert.Equal(t, 50.0, s.AverageAxisA)
	assert.Equal(t, 50.0, s.AverageAxisB)
}

func TestModeFirstEncounteredWinsTies(t *testing.T) {
	entries := []Entry{
		entry("1", 1, 0, types.TrackGeneral, "NSI", "SES"),
		entry("2", 1, 0, types.TrackGeneral, "SES", "NSI"),
	}
	s := Summarize(entries)

	// NSI and SES both appear twice; NSI was seen first.
	assert.Equal(t, "NSI", s.TopSpecialty)
	require.Len(t, s.SpecialtyCounts, 2)
	assert.Equal(t, SpecialtyCount{Name: "NSI", Count: 2}, s.SpecialtyCounts[0])
}

func TestTopRankedFiltersAndSorts(t *testing.T) {
	entries := []Entry{
		withVerdict(entry("low", 40, 0, types.TrackGeneral), compat.ProfileEngineering, true, 55),
		withVerdict(entry("best", 90, 0, types.TrackGeneral), compat.ProfileEngineering, true, 85),
		withVerdict(entry("incompatible", 99, 0, types.TrackGeneral), compat.ProfileEngineering, false, 95),
		withVerdict(entry("mid", 70, 0, types.TrackGeneral), compat.ProfileEngineering, true, 70),
		withVerdict(entry("alsomid", 75, 0, types.TrackGeneral), compat.ProfileEngineering, true, 70),
	}
	s := Summarize(entries)

	require.Len(t, s.TopEngineering, 3)
	assert.Equal(t, "best", s.TopEngineering[0].ID)
	assert.Equal(t, 85, s.TopEngineering[0].Score)
	// Equal compatibility scores fall back to the raw axis score.
	assert.Equal(t, "alsomid", s.TopEngineering[1].ID)
	assert.Equal(t, "mid", s.TopEngineering[2].ID)

	for _, r := range s.TopEngineering {
		assert.NotEqual(t, "incompatible", r.ID)
	}
}

func TestTopRankedCapsAtThree(t *testing.T) {
	var entries []Entry
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		entries = append(entries, withVerdict(entry(id, 60, 0, types.TrackGeneral), compat.ProfileBusiness, true, 60))
	}
	s := Summarize(entries)
	assert.Len(t, s.TopBusiness, 3)
}

func TestSummarizeIdempotent(t *testing.T) {
	entries := []Entry{
		withVerdict(entry("1", 70, 30, types.TrackGeneral, "Maths"), compat.ProfileEngineering, true, 80),
		withVerdict(entry("2", 20, 80, types.TrackProfessional, "Arts"), compat.ProfileBusiness, true, 60),
		entry("3", 50, 50, types.TrackTechnological, "SES"),
	}

	first := Summarize(entries)
	second := Summarize(entries)
	assert.Equal(t, first, second)
}

func TestTrackDominanceInsight(t *testing.T) {
	// 3 of 4 general-track respondents favor axis A: 75% > 60%.
	entries := []Entry{
		entry("1", 70, 30, types.TrackGeneral),
		entry("2", 60, 40, types.TrackGeneral),
		entry("3", 80, 20, types.TrackGeneral),
		entry("4", 20, 80, types.TrackGeneral),
	}
	s := Summarize(entries)

	require.NotEmpty(t, s.Insights)
	assert.Contains(t, s.Insights[0], "general-track")
	assert.Contains(t, s.Insights[0], "analytical")
	assert.Contains(t, s.Insights[0], "75%")
}

func TestCohortDominanceInsight(t *testing.T) {
	entries := []Entry{
		entry("1", 10, 90, types.TrackGeneral),
		entry("2", 20, 80, types.TrackTechnological),
		entry("3", 30, 70, types.TrackProfessional),
		entry("4", 40, 60, types.TrackGeneral),
	}
	s := Summarize(entries)

	found := false
	for _, insight := range s.Insights {
		if insight == "The cohort leans strongly entrepreneurial (100% favor axis B)." {
			found = true
		}
	}
	assert.True(t, found, "expected cohort-wide insight, got %v", s.Insights)
}

func TestNoInsightBelowCutoff(t *testing.T) {
	entries := []Entry{
		entry("1", 70, 30, types.TrackGeneral),
		entry("2", 30, 70, types.TrackGeneral),
	}
	s := Summarize(entries)
	assert.Empty(t, s.Insights)
}
