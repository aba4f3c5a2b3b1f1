package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueCreateAndGet(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	venue := createTestVenue(t, s, "Salón Aurora")
	require.NotZero(t, venue.ID)
	assert.False(t, venue.CreatedAt.IsZero())

	got, err := s.Venues.GetByID(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, "Salón Aurora", got.Name)
	assert.Equal(t, []string{"venues/a.jpg"}, got.Images)
	assert.Nil(t, got.AverageRating)
	assert.Zero(t, got.TotalReviews)
}

func TestVenueGetUnknown(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.Venues.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVenueListEmpty(t *testing.T) {
	s, _ := newTestStorage(t)

	venues, err := s.Venues.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, venues)
	assert.Empty(t, venues)
}

func TestVenueAverageRatingRounding(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	venue := createTestVenue(t, s, "Salón Aurora")
	for _, rating := range []int{1, 1, 2} {
		review := &Review{VenueID: venue.ID, Author: "ana", Body: "ok", Rating: rating}
		require.NoError(t, s.Reviews.Create(ctx, review))
	}

	got, err := s.Venues.GetByID(ctx, venue.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AverageRating)
	// 4/3 rounds to one decimal place.
	assert.Equal(t, 1.3, *got.AverageRating)
	assert.Equal(t, 3, got.TotalReviews)
}

func TestVenueListAggregatesPerVenue(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	rated := createTestVenue(t, s, "Con reseñas")
	bare := createTestVenue(t, s, "Sin reseñas")

	review := &Review{VenueID: rated.ID, Author: "ana", Body: "ok", Rating: 4}
	require.NoError(t, s.Reviews.Create(ctx, review))

	venues, err := s.Venues.List(ctx)
	require.NoError(t, err)
	require.Len(t, venues, 2)

	byID := map[int64]Venue{}
	for _, v := range venues {
		byID[v.ID] = v
	}

	require.NotNil(t, byID[rated.ID].AverageRating)
	assert.Equal(t, 4.0, *byID[rated.ID].AverageRating)
	assert.Equal(t, 1, byID[rated.ID].TotalReviews)
	assert.Nil(t, byID[bare.ID].AverageRating)
}

func TestVenueMalformedImagesColumn(t *testing.T) {
	s, database := newTestStorage(t)
	ctx := context.Background()

	res, err := database.Exec(
		`INSERT INTO venues (name, address, phone, map_url, images) VALUES ('x', 'y', 'z', '', 'not json')`,
	)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	got, err := s.Venues.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Images)
}

func TestVenueDelete(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	venue := createTestVenue(t, s, "Salón Aurora")

	require.NoError(t, s.Venues.Delete(ctx, venue.ID))

	_, err := s.Venues.GetByID(ctx, venue.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Venues.Delete(ctx, venue.ID), ErrNotFound)
}

func TestVenueDeleteCascadesReviews(t *testing.T) {
	s, database := newTestStorage(t)
	ctx := context.Background()

	venue := createTestVenue(t, s, "Salón Aurora")
	review := &Review{VenueID: venue.ID, Author: "ana", Body: "ok", Rating: 5}
	require.NoError(t, s.Reviews.Create(ctx, review))

	require.NoError(t, s.Venues.Delete(ctx, venue.ID))

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM reviews`).Scan(&count))
	assert.Zero(t, count)
}
