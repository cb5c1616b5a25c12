package analytics

import (
	"fmt"

	"github.com/terval-edu/orienta/internal/types"
)

// Dominance cutoffs for insight generation. Per-track checks fire above
// 60%, the cohort-wide check above 70%. Each check emits at most one
// sentence; insights are additive, never mutually exclusive.
const (
	trackDominanceCutoff  = 60.0
	cohortDominanceCutoff = 70.0
)

var insightTracks = []types.Track{
	types.TrackGeneral,
	types.TrackTechnological,
	types.TrackProfessional,
}

var axisLabels = map[types.Axis]string{
	types.AxisA: "analytical",
	types.AxisB: "entrepreneurial",
}

// insights runs every threshold check against the cohort and collects
// the sentences that fire.
func insights(entries []Entry, s Summary) []string {
	var out []string

	for _, track := range insightTracks {
		if sentence := trackInsight(entries, track); sentence != "" {
			out = append(out, sentence)
		}
	}

	if s.Total > 0 {
		if s.AxisAPercent > cohortDominanceCutoff {
			out = append(out, fmt.Sprintf("The cohort leans strongly %s (%.0f%% favor axis A).", axisLabels[types.AxisA], s.AxisAPercent))
		} else if s.AxisBPercent > cohortDominanceCutoff {
			out = append(out, fmt.Sprintf("The cohort leans strongly %s (%.0f%% favor axis B).", axisLabels[types.AxisB], s.AxisBPercent))
		}
	}

	return out
}

// trackInsight reports the dominant axis within one track's subgroup
// when its share exceeds the per-track cutoff.
func trackInsight(entries []Entry, track types.Track) string {
	var total, countA, countB int
	for _, e := range entries {
		if e.Record.Track != track {
			continue
		}
		total++
		switch types.FavoredAxis(e.Record.AxisAScore, e.Record.AxisBScore) {
		case types.AxisA:
			countA++
		case types.AxisB:
			countB++
		}
	}
	if total == 0 {
		return ""
	}

	shareA := 100 * float64(countA) / float64(total)
	shareB := 100 * float64(countB) / float64(total)

	if shareA > trackDominanceCutoff {
		return fmt.Sprintf("Most %s-track respondents lean %s (%.0f%%).", track, axisLabels[types.AxisA], shareA)
	}
	if shareB > trackDominanceCutoff {
		return fmt.Sprintf("Most %s-track respondents lean %s (%.0f%%).", track, axisLabels[types.AxisB], shareB)
	}
	return ""
}
