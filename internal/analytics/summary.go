package analytics

import (
	"math"
	"sort"

	"github.com/terval-edu/orienta/internal/compat"
	"github.com/terval-edu/orienta/internal/types"
)

// NotApplicable is the sentinel used when a statistic has no data to
// draw on, so zero denominators never surface as errors.
const NotApplicable = "n/a"

const topN = 3

// Entry pairs a candidate record with its per-profile verdicts, as
// produced at submission time.
type Entry struct {
	Record types.CandidateRecord              `json:"record"`
	Compat map[compat.ProfileID]compat.Result `json:"compat"`
}

// SpecialtyCount is one specialty's frequency, in first-encounter order.
type SpecialtyCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RankedCandidate is one row of a top-N list.
type RankedCandidate struct {
	ID         string  `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Score      int     `json:"score"`
	AxisAScore float64 `json:"axisAScore"`
	AxisBScore float64 `json:"axisBScore"`
}

// Summary is the operator dashboard aggregate. It is recomputed fresh
// from the current collection on every call and never persisted.
type Summary struct {
	Total           int               `json:"total"`
	AxisACount      int               `json:"axisACount"`
	AxisBCount      int               `json:"axisBCount"`
	TieCount        int               `json:"tieCount"`
	AxisAPercent    float64           `json:"axisAPercent"`
	AxisBPercent    float64           `json:"axisBPercent"`
	AverageAxisA    float64           `json:"averageAxisA"`
	AverageAxisB    float64           `json:"averageAxisB"`
	TopSpecialty    string            `json:"topSpecialty"`
	SpecialtyCounts []SpecialtyCount  `json:"specialtyCounts"`
	TopEngineering  []RankedCandidate `json:"topEngineering"`
	TopBusiness     []RankedCandidate `json:"topBusiness"`
	Insights        []string          `json:"insights"`
}

// Summarize aggregates a snapshot of scored candidates. Input is never
// mutated; identical input always produces identical output.
func Summarize(entries []Entry) Summary {
	s := Summary{Total: len(entries), TopSpecialty: NotApplicable}

	var sumA, sumB float64
	for _, e := range entries {
		sumA += e.Record.AxisAScore
		sumB += e.Record.AxisBScore
		switch types.FavoredAxis(e.Record.AxisAScore, e.Record.AxisBScore) {
		case types.AxisA:
			s.AxisACount++
		case types.AxisB:
			s.AxisBCount++
		default:
			s.TieCount++
		}
	}

	s.AxisAPercent = percent(s.AxisACount, s.Total)
	s.AxisBPercent = percent(s.AxisBCount, s.Total)
	if s.Total > 0 {
		s.AverageAxisA = round1(sumA / float64(s.Total))
		s.AverageAxisB = round1(sumB / float64(s.Total))
	}

	s.SpecialtyCounts = specialtyCounts(entries)
	if top := modeSpecialty(s.SpecialtyCounts); top != "" {
		s.TopSpecialty = top
	}

	s.TopEngineering = topRanked(entries, compat.ProfileEngineering)
	s.TopBusiness = topRanked(entries, compat.ProfileBusiness)
	s.Insights = insights(entries, s)

	return s
}

// specialtyCounts tallies specialties preserving first-encounter order
// across the collection, which also fixes the mode's tie-break.
func specialtyCounts(entries []Entry) []SpecialtyCount {
	index := map[string]int{}
	var counts []SpecialtyCount
	for _, e := range entries {
		for _, sp := range e.Record.Specialties {
			if i, seen := index[sp]; seen {
				counts[i].Count++
				continue
			}
			index[sp] = len(counts)
			counts = append(counts, SpecialtyCount{Name: sp, Count: 1})
		}
	}
	return counts
}

// modeSpecialty picks the highest count; on ties the specialty
// encountered first in insertion order wins.
func modeSpecialty(counts []SpecialtyCount) string {
	best := ""
	bestCount := 0
	for _, c := range counts {
		if c.Count > bestCount {
			best = c.Name
			bestCount = c.Count
		}
	}
	return best
}

// topRanked filters to compatible candidates and ranks them by
// compatibility score, then grade band, then the profile's own axis
// score, descending at every level.
func topRanked(entries []Entry, id compat.ProfileID) []RankedCandidate {
	type scored struct {
		entry  Entry
		result compat.Result
	}
	var pool []scored
	for _, e := range entries {
		if r, ok := e.Compat[id]; ok && r.Compatible {
			pool = append(pool, scored{entry: e, result: r})
		}
	}

	axisScore := func(r types.CandidateRecord) float64 {
		if id == compat.ProfileEngineering {
			return r.AxisAScore
		}
		return r.AxisBScore
	}

	sort.SliceStable(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		if a.result.Score != b.result.Score {
			return a.result.Score > b.result.Score
		}
		ar, br := a.entry.Record.GradeBand.Rank(), b.entry.Record.GradeBand.Rank()
		if ar != br {
			return ar > br
		}
		return axisScore(a.entry.Record) > axisScore(b.entry.Record)
	})

	if len(pool) > topN {
		pool = pool[:topN]
	}

	ranked := make([]RankedCandidate, 0, len(pool))
	for _, p := range pool {
		ranked = append(ranked, RankedCandidate{
			ID:         p.entry.Record.ID,
			FirstName:  p.entry.Record.FirstName,
			LastName:   p.entry.Record.LastName,
			Score:      p.result.Score,
			AxisAScore: p.entry.Record.AxisAScore,
			AxisBScore: p.entry.Record.AxisBScore,
		})
	}
	return ranked
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(100 * float64(part) / float64(total))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
