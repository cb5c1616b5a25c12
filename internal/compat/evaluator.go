package compat

import "github.com/terval-edu/orienta/internal/types"

// Result is the admissibility verdict for one candidate against one
// profile. It is always derived on demand and never stored on its own.
// Field names are part of the stored-document contract.
type Result struct {
	Compatible       bool     `json:"compatible"`
	Score            int      `json:"score"`
	SatisfiedReasons []string `json:"satisfiedReasons"`
	MissingCriteria  []string `json:"missingCriteria"`
}

// Evaluate scores one candidate against one profile. Every predicate is
// evaluated in list order: satisfied ones add their points and their
// label to SatisfiedReasons, failed ones land in MissingCriteria. A
// failed gating predicate forces Compatible=false regardless of score.
func Evaluate(rec types.CandidateRecord, id ProfileID) Result {
	profile, ok := profiles[id]
	if !ok {
		return Result{}
	}

	res := Result{}
	gatingOK := true
	for _, p := range profile.Predicates {
		if p.Check(rec) {
			res.Score += p.Points
			res.SatisfiedReasons = append(res.SatisfiedReasons, p.Label)
			continue
		}
		res.MissingCriteria = append(res.MissingCriteria, p.Label)
		if p.Gating {
			gatingOK = false
		}
	}

	res.Score = clampScore(res.Score)
	res.Compatible = gatingOK && res.Score >= profile.PassThreshold
	return res
}

// EvaluateAll runs both profiles independently and symmetrically.
func EvaluateAll(rec types.CandidateRecord) map[ProfileID]Result {
	return map[ProfileID]Result{
		ProfileEngineering: Evaluate(rec, ProfileEngineering),
		ProfileBusiness:    Evaluate(rec, ProfileBusiness),
	}
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
