package store

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

type Review struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Rating    int       `json:"rating"` // 1-5
	CreatedAt time.Time `json:"created_at"`
}

type ReviewStore struct {
	db *sql.DB
}

func (s *ReviewStore) Create(ctx context.Context, review *Review) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	review.CreatedAt = time.Now().UTC()

	query := `
        INSERT INTO reviews (venue_id, author, body, rating, created_at)
        VALUES (?, ?, ?, ?, ?)
    `
	res, err := s.db.ExecContext(ctx, query,
		review.VenueID,
		review.Author,
		review.Body,
		review.Rating,
		review.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint") {
			return ErrNotFound
		}
		return err
	}

	review.ID, err = res.LastInsertId()
	return err
}

func (s *ReviewStore) ListByVenue(ctx context.Context, venueID int64) ([]Review, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        SELECT id, venue_id, author, body, rating, created_at
        FROM reviews
        WHERE venue_id = ?
        ORDER BY created_at DESC, id DESC
    `
	rows, err := s.db.QueryContext(ctx, query, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ID,
			&review.VenueID,
			&review.Author,
			&review.Body,
			&review.Rating,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (s *ReviewStore) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ReviewStore) Stats(ctx context.Context, venueID int64) (total int, average float64, err error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        SELECT COUNT(id), COALESCE(AVG(rating), 0)
        FROM reviews
        WHERE venue_id = ?
    `
	err = s.db.QueryRowContext(ctx, query, venueID).Scan(&total, &average)
	return total, average, err
}
