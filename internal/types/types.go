package types

import "time"

// Track is the academic track a candidate is enrolled in.
type Track string

const (
	TrackGeneral       Track = "general"
	TrackTechnological Track = "technological"
	TrackProfessional  Track = "professional"
)

// GradeBand is the candidate's overall grade average bucket.
type GradeBand string

const (
	GradeBandBelow11 GradeBand = "<11"
	GradeBand11to13  GradeBand = "11-13"
	GradeBand14to15  GradeBand = "14-15"
	GradeBand16Plus  GradeBand = "16+"
)

// Rank returns the ordinal position of the band, lowest first.
// Unknown or empty bands rank below every defined band.
func (g GradeBand) Rank() int {
	switch g {
	case GradeBandBelow11:
		return 0
	case GradeBand11to13:
		return 1
	case GradeBand14to15:
		return 2
	case GradeBand16Plus:
		return 3
	default:
		return -1
	}
}

// EnglishLevel follows the CEFR scale.
type EnglishLevel string

const (
	EnglishA2 EnglishLevel = "A2"
	EnglishB1 EnglishLevel = "B1"
	EnglishB2 EnglishLevel = "B2"
	EnglishC1 EnglishLevel = "C1"
)

// Rank returns the ordinal position of the level, lowest first.
func (e EnglishLevel) Rank() int {
	switch e {
	case EnglishA2:
		return 0
	case EnglishB1:
		return 1
	case EnglishB2:
		return 2
	case EnglishC1:
		return 3
	default:
		return -1
	}
}

// Objective is the candidate's stated post-graduation goal.
type Objective string

const (
	ObjectiveLongStudies      Objective = "long-studies"
	ObjectiveEntrepreneurship Objective = "entrepreneurship"
	ObjectiveQuickJob         Objective = "quick-job"
	ObjectiveUndecided        Objective = "undecided"
)

// Status tracks the operator-side follow-up state of a candidate.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusEnrolled  Status = "enrolled"
	StatusArchived  Status = "archived"
)

// Axis identifies one of the two competing score totals, or a tie
// between them.
type Axis string

const (
	AxisA   Axis = "A"
	AxisB   Axis = "B"
	AxisTie Axis = "tie"
)

// FavoredAxis returns the axis with the strictly greater total.
func FavoredAxis(axisA, axisB float64) Axis {
	switch {
	case axisA > axisB:
		return AxisA
	case axisB > axisA:
		return AxisB
	default:
		return AxisTie
	}
}

// CandidateRecord is one completed quiz session. It is created once
// when a respondent finishes the quiz; only Status is mutated afterwards.
// Field names are part of the stored-document contract and must not change.
type CandidateRecord struct {
	ID            string       `json:"id"`
	FirstName     string       `json:"firstName"`
	LastName      string       `json:"lastName"`
	Email         string       `json:"email"`
	Track         Track        `json:"track"`
	GradeBand     GradeBand    `json:"gradeBand"`
	Specialties   []string     `json:"specialties"`
	Elective      string       `json:"elective"`
	EnglishLevel  EnglishLevel `json:"englishLevel"`
	Objective     Objective    `json:"objective"`
	AxisAScore    float64      `json:"axisAScore"`
	AxisBScore    float64      `json:"axisBScore"`
	SourceChannel string       `json:"sourceChannel"`
	Status        Status       `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// HasSpecialty reports whether the candidate selected the given specialty.
func (r CandidateRecord) HasSpecialty(name string) bool {
	for _, s := range r.Specialties {
		if s == name {
			return true
		}
	}
	return false
}

// HasAnySpecialty reports whether at least one of the candidate's
// specialties appears in the given set.
func (r CandidateRecord) HasAnySpecialty(set map[string]bool) bool {
	for _, s := range r.Specialties {
		if set[s] {
			return true
		}
	}
	return false
}

// SubmitRequest is the payload for the quiz submission endpoint.
type SubmitRequest struct {
	FirstName     string   `json:"firstName" binding:"required"`
	LastName      string   `json:"lastName" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Track         string   `json:"track"`
	GradeBand     string   `json:"gradeBand"`
	Specialties   []string `json:"specialties"`
	Elective      string   `json:"elective"`
	EnglishLevel  string   `json:"englishLevel"`
	Objective     string   `json:"objective"`
	AxisAScore    float64  `json:"axisAScore"`
	AxisBScore    float64  `json:"axisBScore"`
	SourceChannel string   `json:"sourceChannel"`
}

// Record converts a submission into a CandidateRecord without an ID;
// the persistence layer assigns one.
func (req SubmitRequest) Record() CandidateRecord {
	return CandidateRecord{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Track:         Track(req.Track),
		GradeBand:     GradeBand(req.GradeBand),
		Specialties:   req.Specialties,
		Elective:      req.Elective,
		EnglishLevel:  EnglishLevel(req.EnglishLevel),
		Objective:     Objective(req.Objective),
		AxisAScore:    req.AxisAScore,
		AxisBScore:    req.AxisBScore,
		SourceChannel: req.SourceChannel,
		Status:        StatusNew,
	}
}
