package classify

import (
	"fmt"
	"math"
	"strings"

	"github.com/terval-edu/orienta/internal/types"
)

// Result is the classification handed to persistence and presentation.
// Field names are part of the stored-document contract.
type Result struct {
	Badge           Badge  `json:"badge"`
	Subtitle        string `json:"subtitle"`
	Message         string `json:"message"`
	MatchPercentage int    `json:"matchPercentage"`
	Advice          string `json:"advice"`
}

// Classify maps final axis totals plus the candidate's categorical
// attributes to one outcome. It is an ordered decision list: the
// professional-track table short-circuits the standard one, ties and
// unknown grade bands always resolve to the neutral badge.
func Classify(axisA, axisB float64, rec types.CandidateRecord) Result {
	favored := types.FavoredAxis(axisA, axisB)

	if rec.Track == types.TrackProfessional {
		return fromOutcome(professionalOutcomes[favored])
	}

	if favored == types.AxisTie || rec.GradeBand.Rank() < 0 {
		return fromOutcome(explorerOutcome)
	}

	if favored == types.AxisA {
		return classifyAnalyst(rec)
	}
	return classifyBuilder(rec)
}

func classifyAnalyst(rec types.CandidateRecord) Result {
	gradeOK := rec.GradeBand.Rank() >= analystGradeRank
	specialtyOK := rec.HasAnySpecialty(quantitativeSpecialties)

	var missing []string
	if !gradeOK {
		missing = append(missing, fmt.Sprintf("a grade average of %s or above", types.GradeBand14to15))
	}
	if !specialtyOK {
		missing = append(missing, "one quantitative specialty (Maths, Physics-Chemistry or NSI)")
	}

	match := matchPercentage(3, 3-len(missing))
	if rec.Elective == bonusElective {
		match = clampPercent(match + bonusPercentage)
	}

	if len(missing) == 0 {
		return Result{
			Badge:           BadgeAnalyst,
			Subtitle:        "Analytical profile",
			Message:         "Your scores and background point clearly toward the analytical, engineering-oriented path.",
			MatchPercentage: match,
			Advice:          "Apply to the engineering programme; your profile meets its admission criteria.",
		}
	}

	return Result{
		Badge:           BadgeAnalystPotential,
		Subtitle:        "Analytical potential",
		Message:         "Your analytical side leads, but a full match still needs " + joinMissing(missing) + ".",
		MatchPercentage: match,
		Advice:          "Discuss the missing prerequisites with an advisor; a preparatory term can close the gap.",
	}
}

func classifyBuilder(rec types.CandidateRecord) Result {
	gradeOK := rec.GradeBand.Rank() >= builderGradeRank
	trackOK := builderTracks[rec.Track]

	var missing []string
	if !gradeOK {
		missing = append(missing, fmt.Sprintf("a grade average of %s or above", types.GradeBand11to13))
	}
	if !trackOK {
		missing = append(missing, "a general or technological track")
	}

	match := matchPercentage(3, 3-len(missing))

	if len(missing) == 0 {
		return Result{
			Badge:           BadgeBuilder,
			Subtitle:        "Builder profile",
			Message:         "Your scores point toward the creative, entrepreneurial path.",
			MatchPercentage: match,
			Advice:          "Apply to the business-creation programme; your profile meets its admission criteria.",
		}
	}

	return Result{
		Badge:           BadgeBuilderPotential,
		Subtitle:        "Builder potential",
		Message:         "Your entrepreneurial side leads, but a full match still needs " + joinMissing(missing) + ".",
		MatchPercentage: match,
		Advice:          "Talk to an advisor about alternative entry routes to the programme.",
	}
}

// matchPercentage rounds 100 * satisfied / total sub-criteria.
func matchPercentage(total, satisfied int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(satisfied) / float64(total)))
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func joinMissing(missing []string) string {
	return strings.Join(missing, " and ")
}

func fromOutcome(o outcome) Result {
	return Result{
		Badge:           o.badge,
		Subtitle:        o.subtitle,
		Message:         o.message,
		MatchPercentage: o.match,
		Advice:          o.advice,
	}
}
