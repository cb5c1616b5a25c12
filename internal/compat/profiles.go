package compat

import "github.com/terval-edu/orienta/internal/types"

// ProfileID identifies one of the two admission rule sets.
type ProfileID string

const (
	ProfileEngineering ProfileID = "A"
	ProfileBusiness    ProfileID = "B"
)

// Predicate is one weighted boolean criterion over a candidate record.
// Gating predicates veto compatibility when unsatisfied no matter how
// high the accumulated score is; advisory predicates only move the score.
type Predicate struct {
	Label  string
	Points int
	Gating bool
	Check  func(types.CandidateRecord) bool
}

// Profile is an ordered list of predicates plus the score a candidate
// must reach to be admissible.
type Profile struct {
	ID            ProfileID
	Name          string
	PassThreshold int
	Predicates    []Predicate
}

var quantitativeSpecialties = map[string]bool{
	"Maths":             true,
	"Physics-Chemistry": true,
	"NSI":               true,
}

// trackIn builds a track gate. An empty track never disqualifies: records
// from in-progress or legacy sessions may lack one, and those candidates
// still pass track gates.
func trackIn(tracks ...types.Track) func(types.CandidateRecord) bool {
	return func(r types.CandidateRecord) bool {
		if r.Track == "" {
			return true
		}
		for _, t := range tracks {
			if r.Track == t {
				return true
			}
		}
		return false
	}
}

// profiles holds both admission rule sets. Point values per profile sum
// to 100; editing them is configuration, not algorithm work.
var profiles = map[ProfileID]Profile{
	ProfileEngineering: {
		ID:            ProfileEngineering,
		Name:          "Engineering programme",
		PassThreshold: 50,
		Predicates: []Predicate{
			{
				Label:  "grade average of 14-15 or above",
				Points: 15,
				Gating: true,
				Check: func(r types.CandidateRecord) bool {
					return r.GradeBand.Rank() >= types.GradeBand14to15.Rank()
				},
			},
			{
				Label:  "at least one quantitative specialty",
				Points: 15,
				Gating: true,
				Check: func(r types.CandidateRecord) bool {
					return r.HasAnySpecialty(quantitativeSpecialties)
				},
			},
			{
				Label:  "analytical score of 50 or above",
				Points: 25,
				Check:  func(r types.CandidateRecord) bool { return r.AxisAScore >= 50 },
			},
			{
				Label:  "Maths specialty",
				Points: 15,
				Check:  func(r types.CandidateRecord) bool { return r.HasSpecialty("Maths") },
			},
			{
				Label:  "general track",
				Points: 10,
				Check:  func(r types.CandidateRecord) bool { return r.Track == types.TrackGeneral },
			},
			{
				Label:  "Maths expertes elective",
				Points: 10,
				Check:  func(r types.CandidateRecord) bool { return r.Elective == "Maths expertes" },
			},
			{
				Label:  "English level B2 or above",
				Points: 5,
				Check: func(r types.CandidateRecord) bool {
					return r.EnglishLevel.Rank() >= types.EnglishB2.Rank()
				},
			},
			{
				Label:  "long-studies objective",
				Points: 5,
				Check:  func(r types.CandidateRecord) bool { return r.Objective == types.ObjectiveLongStudies },
			},
		},
	},
	ProfileBusiness: {
		ID:            ProfileBusiness,
		Name:          "Business-creation programme",
		PassThreshold: 50,
		Predicates: []Predicate{
			{
				Label:  "grade average of 11-13 or above",
				Points: 10,
				Gating: true,
				Check: func(r types.CandidateRecord) bool {
					return r.GradeBand.Rank() >= types.GradeBand11to13.Rank()
				},
			},
			{
				Label:  "general or technological track",
				Points: 10,
				Gating: true,
				Check:  trackIn(types.TrackGeneral, types.TrackTechnological),
			},
			{
				Label:  "entrepreneurial score of 50 or above",
				Points: 30,
				Check:  func(r types.CandidateRecord) bool { return r.AxisBScore >= 50 },
			},
			{
				Label:  "SES or Management specialty",
				Points: 20,
				Check: func(r types.CandidateRecord) bool {
					return r.HasSpecialty("SES") || r.HasSpecialty("Management")
				},
			},
			{
				Label:  "entrepreneurship objective",
				Points: 10,
				Check: func(r types.CandidateRecord) bool {
					return r.Objective == types.ObjectiveEntrepreneurship
				},
			},
			{
				Label:  "English level B1 or above",
				Points: 10,
				Check: func(r types.CandidateRecord) bool {
					return r.EnglishLevel.Rank() >= types.EnglishB1.Rank()
				},
			},
			{
				Label:  "HGGSP specialty",
				Points: 10,
				Check:  func(r types.CandidateRecord) bool { return r.HasSpecialty("HGGSP") },
			},
		},
	},
}

// Profiles returns the rule sets in a fixed order for reporting.
func Profiles() []Profile {
	return []Profile{profiles[ProfileEngineering], profiles[ProfileBusiness]}
}
