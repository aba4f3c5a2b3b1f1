package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionDenied   SubmissionStatus = "denied"
)

// Submission is a user-proposed venue awaiting an operator decision.
// Resolved rows are kept with a terminal status for audit, never reused.
type Submission struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	Address    string           `json:"address"`
	Phone      string           `json:"phone"`
	MapURL     string           `json:"map_url"`
	Images     []string         `json:"images"`
	Status     SubmissionStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	ResolvedAt *time.Time       `json:"resolved_at,omitempty"`
}

type SubmissionStore struct {
	db *sql.DB
}

func (s *SubmissionStore) Create(ctx context.Context, submission *Submission) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	submission.Status = SubmissionPending
	submission.CreatedAt = time.Now().UTC()

	query := `
        INSERT INTO submissions (name, address, phone, map_url, images, status, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	res, err := s.db.ExecContext(ctx, query,
		submission.Name,
		submission.Address,
		submission.Phone,
		submission.MapURL,
		encodeImages(submission.Images),
		submission.Status,
		submission.CreatedAt,
	)
	if err != nil {
		return err
	}

	submission.ID, err = res.LastInsertId()
	return err
}

// GetPending returns the submission only while it is still pending. A
// resolved or unknown id yields ErrNotFound either way: callers must not
// be able to tell a settled submission from a missing one.
func (s *SubmissionStore) GetPending(ctx context.Context, id int64) (*Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        SELECT id, name, address, phone, map_url, images, status, created_at, resolved_at
        FROM submissions
        WHERE id = ? AND status = ?
    `
	submission, err := scanSubmission(s.db.QueryRowContext(ctx, query, id, SubmissionPending))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return submission, nil
}

func (s *SubmissionStore) ListPending(ctx context.Context) ([]Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        SELECT id, name, address, phone, map_url, images, status, created_at, resolved_at
        FROM submissions
        WHERE status = ?
        ORDER BY created_at, id
    `
	rows, err := s.db.QueryContext(ctx, query, SubmissionPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := []Submission{}
	for rows.Next() {
		submission, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *submission)
	}
	return submissions, rows.Err()
}

// Approve flips the submission to approved and publishes venue in one
// transaction: either both land or neither does, so a failed insert leaves
// the submission pending and retryable. The status guard makes the flip
// single-shot; when two operators race, the loser gets ErrNotFound.
func (s *SubmissionStore) Approve(ctx context.Context, id int64, venue *Venue) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        UPDATE submissions
        SET status = ?, resolved_at = ?
        WHERE id = ? AND status = ?
    `
	res, err := tx.ExecContext(ctx, query, SubmissionApproved, time.Now().UTC(), id, SubmissionPending)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}

	query = `
        INSERT INTO venues (name, address, phone, map_url, images)
        VALUES (?, ?, ?, ?, ?)
    `
	res, err = tx.ExecContext(ctx, query,
		venue.Name,
		venue.Address,
		venue.Phone,
		venue.MapURL,
		encodeImages(venue.Images),
	)
	if err != nil {
		return err
	}
	venueID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	created, err := (&VenueStore{s.db}).GetByID(ctx, venueID)
	if err != nil {
		return err
	}
	*venue = *created
	return nil
}

func (s *SubmissionStore) MarkDenied(ctx context.Context, id int64) error {
	return s.resolve(ctx, id, SubmissionDenied)
}

// resolve flips a pending submission to a terminal status. The status guard
// in the WHERE clause makes the transition single-shot: when two operators
// race on the same id, the first update wins and the second sees ErrNotFound.
func (s *SubmissionStore) resolve(ctx context.Context, id int64, status SubmissionStatus) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        UPDATE submissions
        SET status = ?, resolved_at = ?
        WHERE id = ? AND status = ?
    `
	res, err := s.db.ExecContext(ctx, query, status, time.Now().UTC(), id, SubmissionPending)
	if err != nil {
		return err
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSubmission(row rowScanner) (*Submission, error) {
	var (
		submission Submission
		images     string
		resolvedAt sql.NullTime
	)
	err := row.Scan(
		&submission.ID,
		&submission.Name,
		&submission.Address,
		&submission.Phone,
		&submission.MapURL,
		&images,
		&submission.Status,
		&submission.CreatedAt,
		&resolvedAt,
	)
	if err != nil {
		return nil, err
	}

	submission.Images = decodeImages(images)
	if resolvedAt.Valid {
		submission.ResolvedAt = &resolvedAt.Time
	}
	return &submission, nil
}
