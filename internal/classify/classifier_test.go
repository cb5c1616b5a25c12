package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/terval-edu/orienta/internal/types"
)

func record(track types.Track, band types.GradeBand, specialties ...string) types.CandidateRecord {
	return types.CandidateRecord{
		Track:       track,
		GradeBand:   band,
		Specialties: specialties,
	}
}

func TestTieAlwaysNeutral(t *testing.T) {
	tests := []struct {
		name string
		rec  types.CandidateRecord
	}{
		{"strong profile", record(types.TrackGeneral, types.GradeBand16Plus, "Maths", "NSI")},
		{"weak profile", record(types.TrackTechnological, types.GradeBandBelow11)},
		{"no attributes at all", types.CandidateRecord{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(42, 42, tt.rec)
			assert.Equal(t, BadgeExplorer, res.Badge)
		})
	}
}

func TestAnalystFullMatch(t *testing.T) {
	rec := record(types.TrackGeneral, types.GradeBand16Plus, "Maths")
	res := Classify(70, 30, rec)

	assert.Equal(t, BadgeAnalyst, res.Badge)
	assert.Equal(t, 100, res.MatchPercentage)
}

func TestAnalystPotentialBelowGradeGate(t *testing.T) {
	rec := record(types.TrackGeneral, types.GradeBand11to13, "Maths")
	res := Classify(70, 30, rec)

	assert.Equal(t, BadgeAnalystPotential, res.Badge)
	assert.Contains(t, res.Message, "grade average of 14-15 or above")
	assert.Equal(t, 67, res.MatchPercentage)
}

func TestAnalystPotentialMissingSpecialty(t *testing.T) {
	rec := record(types.TrackGeneral, types.GradeBand16Plus, "SES")
	res := Classify(70, 30, rec)

	assert.Equal(t, BadgeAnalystPotential, res.Badge)
	assert.Contains(t, res.Message, "quantitative specialty")
}

func TestAnalystElectiveBonus(t *testing.T) {
	rec := record(types.TrackGeneral, types.GradeBand11to13, "Maths")
	rec.Elective = "Maths expertes"
	res := Classify(70, 30, rec)

	// Bonus lifts the potential match but never gates it.
	assert.Equal(t, BadgeAnalystPotential, res.Badge)
	assert.Equal(t, 77, res.MatchPercentage)

	full := record(types.TrackGeneral, types.GradeBand16Plus, "Maths")
	full.Elective = "Maths expertes"
	res = Classify(70, 30, full)
	assert.Equal(t, BadgeAnalyst, res.Badge)
	assert.Equal(t, 100, res.MatchPercentage, "bonus is capped at 100")
}

func TestBuilderFullMatch(t *testing.T) {
	tests := []struct {
		name  string
		track types.Track
	}{
		{"general track", types.TrackGeneral},
		{"technological track", types.TrackTechnological},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := record(tt.track, types.GradeBand11to13, "SES")
			res := Classify(30, 70, rec)
			assert.Equal(t, BadgeBuilder, res.Badge)
			assert.Equal(t, 100, res.MatchPercentage)
		})
	}
}

func TestBuilderPotentialBelowGradeGate(t *testing.T) {
	rec := record(types.TrackGeneral, types.GradeBandBelow11)
	res := Classify(30, 70, rec)

	assert.Equal(t, BadgeBuilderPotential, res.Badge)
	assert.Contains(t, res.Message, "grade average of 11-13 or above")
}

func TestProfessionalTrackTable(t *testing.T) {
	tests := []struct {
		name  string
		axisA float64
		axisB float64
		badge Badge
		match int
	}{
		{"analytical lean", 70, 30, BadgeAnalystPotential, 70},
		{"builder lean", 30, 70, BadgeBuilderPotential, 70},
		{"tie", 50, 50, BadgeExplorer, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The professional table ignores grade and specialty gates.
			rec := record(types.TrackProfessional, types.GradeBandBelow11)
			res := Classify(tt.axisA, tt.axisB, rec)
			assert.Equal(t, tt.badge, res.Badge)
			assert.Equal(t, tt.match, res.MatchPercentage)
		})
	}
}

func TestUnknownGradeBandIsNeutral(t *testing.T) {
	rec := record(types.TrackGeneral, "", "Maths")
	res := Classify(70, 30, rec)
	assert.Equal(t, BadgeExplorer, res.Badge)
}

func TestMatchPercentageBounds(t *testing.T) {
	tracks := []types.Track{types.TrackGeneral, types.TrackTechnological, types.TrackProfessional, ""}
	bands := []types.GradeBand{types.GradeBandBelow11, types.GradeBand11to13, types.GradeBand14to15, types.GradeBand16Plus, ""}
	scores := [][2]float64{{0, 0}, {100, 0}, {0, 100}, {55, 45}, {45, 55}}

	for _, track := range tracks {
		for _, band := range bands {
			for _, s := range scores {
				rec := record(track, band, "Maths")
				rec.Elective = "Maths expertes"
				res := Classify(s[0], s[1], rec)
				assert.GreaterOrEqual(t, res.MatchPercentage, 0)
				assert.LessOrEqual(t, res.MatchPercentage, 100)
			}
		}
	}
}
