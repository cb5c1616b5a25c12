package classify

import "github.com/terval-edu/orienta/internal/types"

// Badge is the categorical outcome of the classifier.
type Badge string

const (
	BadgeAnalyst          Badge = "analyst"
	BadgeAnalystPotential Badge = "analyst-potential"
	BadgeBuilder          Badge = "builder"
	BadgeBuilderPotential Badge = "builder-potential"
	BadgeExplorer         Badge = "explorer"
)

// Gate thresholds for the standard decision table.
var (
	// Analytical full match needs at least a 14-15 grade band and one
	// quantitative specialty.
	analystGradeRank = types.GradeBand14to15.Rank()
	// Creative/entrepreneurial full match needs at least an 11-13 band
	// and a general or technological track.
	builderGradeRank = types.GradeBand11to13.Rank()

	quantitativeSpecialties = map[string]bool{
		"Maths":             true,
		"Physics-Chemistry": true,
		"NSI":               true,
	}

	builderTracks = map[types.Track]bool{
		types.TrackGeneral:       true,
		types.TrackTechnological: true,
	}
)

// Elective bonus: a non-gating extra for the analytical branch. Its
// absence never blocks a match.
const (
	bonusElective   = "Maths expertes"
	bonusPercentage = 10
)

// explorerMatch is the fixed percentage of the neutral outcome.
const explorerMatch = 50

type outcome struct {
	badge    Badge
	subtitle string
	message  string
	advice   string
	match    int
}

// professionalOutcomes is the separate decision table for the
// professional track, branching purely on the favored axis. Standard
// academic gates do not apply to this track.
var professionalOutcomes = map[types.Axis]outcome{
	types.AxisA: {
		badge:    BadgeAnalystPotential,
		subtitle: "Analytical lean",
		message:  "Your answers lean analytical. Coming from a professional track, a bridging year can open the engineering path.",
		advice:   "Ask about the integrated preparatory cycle and its bridging options.",
		match:    70,
	},
	types.AxisB: {
		badge:    BadgeBuilderPotential,
		subtitle: "Builder lean",
		message:  "Your answers lean toward building and creating. Professional-track experience is a real asset for project-driven programmes.",
		advice:   "Look at the entrepreneurship programme's work-study format.",
		match:    70,
	},
	types.AxisTie: {
		badge:    BadgeExplorer,
		subtitle: "Still exploring",
		message:  "Your answers balance both directions. That is a fine place to start from.",
		advice:   "Book an orientation interview to narrow things down.",
		match:    explorerMatch,
	},
}

var explorerOutcome = outcome{
	badge:    BadgeExplorer,
	subtitle: "Still exploring",
	message:  "No single direction dominates your answers yet.",
	advice:   "Try the open-day workshops for both programmes before deciding.",
	match:    explorerMatch,
}
