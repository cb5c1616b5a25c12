package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/terval-edu/orienta/internal/analytics"
	"github.com/terval-edu/orienta/internal/classify"
	"github.com/terval-edu/orienta/internal/compat"
	"github.com/terval-edu/orienta/internal/types"
)

// Repository handles candidate persistence. Records are created once,
// mutated only via status updates, and never deleted in the normal flow.
type Repository struct {
	db *DB
}

// NewRepository creates a new repository.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// SaveCandidate stores a completed quiz session with its classification
// and per-profile verdicts, assigning the record an ID.
func (r *Repository) SaveCandidate(rec types.CandidateRecord, cls classify.Result, verdicts map[compat.ProfileID]compat.Result) (types.CandidateRecord, error) {
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()
	if rec.Status == "" {
		rec.Status = types.StatusNew
	}

	specialties, err := json.Marshal(rec.Specialties)
	if err != nil {
		return rec, fmt.Errorf("failed to encode specialties: %w", err)
	}
	compatJSON, err := json.Marshal(verdicts)
	if err != nil {
		return rec, fmt.Errorf("failed to encode verdicts: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO candidates (
			id, first_name, last_name, email, track, grade_band, specialties,
			elective, english_level, objective, axis_a_score, axis_b_score,
			source_channel, status, badge, match_percentage, compat_json, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.FirstName, rec.LastName, rec.Email, string(rec.Track),
		string(rec.GradeBand), string(specialties), rec.Elective,
		string(rec.EnglishLevel), string(rec.Objective), rec.AxisAScore,
		rec.AxisBScore, rec.SourceChannel, string(rec.Status),
		string(cls.Badge), cls.MatchPercentage, string(compatJSON), rec.CreatedAt)
	if err != nil {
		return rec, fmt.Errorf("failed to save candidate: %w", err)
	}

	return rec, nil
}

// ListEntries returns every stored candidate with its verdicts, oldest
// first so downstream insertion-order tie-breaks stay stable.
func (r *Repository) ListEntries() ([]analytics.Entry, error) {
	rows, err := r.db.Query(`
		SELECT id, first_name, last_name, email, track, grade_band, specialties,
			elective, english_level, objective, axis_a_score, axis_b_score,
			source_channel, status, compat_json, created_at
		FROM candidates
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var entries []analytics.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// UpdateStatus changes a candidate's follow-up status, the only mutation
// operators may perform.
func (r *Repository) UpdateStatus(id string, status types.Status) error {
	res, err := r.db.Exec(`UPDATE candidates SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check status update: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanEntry(rows *sql.Rows) (analytics.Entry, error) {
	var (
		rec         types.CandidateRecord
		track       string
		gradeBand   string
		specialties string
		english     string
		objective   string
		status      string
		compatJSON  string
	)
	err := rows.Scan(&rec.ID, &rec.FirstName, &rec.LastName, &rec.Email,
		&track, &gradeBand, &specialties, &rec.Elective, &english,
		&objective, &rec.AxisAScore, &rec.AxisBScore, &rec.SourceChannel,
		&status, &compatJSON, &rec.CreatedAt)
	if err != nil {
		return analytics.Entry{}, fmt.Errorf("failed to scan candidate: %w", err)
	}

	rec.Track = types.Track(track)
	rec.GradeBand = types.GradeBand(gradeBand)
	rec.EnglishLevel = types.EnglishLevel(english)
	rec.Objective = types.Objective(objective)
	rec.Status = types.Status(status)

	if specialties != "" {
		if err := json.Unmarshal([]byte(specialties), &rec.Specialties); err != nil {
			return analytics.Entry{}, fmt.Errorf("failed to decode specialties for %s: %w", rec.ID, err)
		}
	}

	verdicts := map[compat.ProfileID]compat.Result{}
	if compatJSON != "" {
		if err := json.Unmarshal([]byte(compatJSON), &verdicts); err != nil {
			return analytics.Entry{}, fmt.Errorf("failed to decode verdicts for %s: %w", rec.ID, err)
		}
	}

	return analytics.Entry{Record: rec, Compat: verdicts}, nil
}
