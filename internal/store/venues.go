package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"time"
)

type Venue struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Phone   string   `json:"phone"`
	MapURL  string   `json:"map_url"`
	Images  []string `json:"images"`

	// AverageRating is nil until the venue has at least one review.
	AverageRating *float64  `json:"average_rating"`
	TotalReviews  int       `json:"total_reviews"`
	CreatedAt     time.Time `json:"created_at"`
}

type VenueStore struct {
	db *sql.DB
}

func (s *VenueStore) Create(ctx context.Context, venue *Venue) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        INSERT INTO venues (name, address, phone, map_url, images)
        VALUES (?, ?, ?, ?, ?)
    `
	res, err := s.db.ExecContext(ctx, query,
		venue.Name,
		venue.Address,
		venue.Phone,
		venue.MapURL,
		encodeImages(venue.Images),
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}

	created, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	*venue = *created
	return nil
}

func (s *VenueStore) GetByID(ctx context.Context, id int64) (*Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        SELECT v.id, v.name, v.address, v.phone, v.map_url, v.images, v.created_at,
               COUNT(r.id), AVG(r.rating)
        FROM venues v
        LEFT JOIN reviews r ON r.venue_id = v.id
        WHERE v.id = ?
        GROUP BY v.id
    `
	venue, err := scanVenue(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return venue, nil
}

func (s *VenueStore) List(ctx context.Context) ([]Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        SELECT v.id, v.name, v.address, v.phone, v.map_url, v.images, v.created_at,
               COUNT(r.id), AVG(r.rating)
        FROM venues v
        LEFT JOIN reviews r ON r.venue_id = v.id
        GROUP BY v.id
        ORDER BY v.id
    `
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := []Venue{}
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, *venue)
	}
	return venues, rows.Err()
}

func (s *VenueStore) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(row rowScanner) (*Venue, error) {
	var (
		venue  Venue
		images string
		avg    sql.NullFloat64
	)
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.Address,
		&venue.Phone,
		&venue.MapURL,
		&images,
		&venue.CreatedAt,
		&venue.TotalReviews,
		&avg,
	)
	if err != nil {
		return nil, err
	}

	venue.Images = decodeImages(images)
	if avg.Valid {
		rounded := math.Round(avg.Float64*10) / 10
		venue.AverageRating = &rounded
	}
	return &venue, nil
}

func encodeImages(images []string) string {
	if images == nil {
		images = []string{}
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

// decodeImages tolerates malformed stored data: a listing must not fail
// because one row carries a bad image column.
func decodeImages(raw string) []string {
	var images []string
	if err := json.Unmarshal([]byte(raw), &images); err != nil || images == nil {
		return []string{}
	}
	return images
}
