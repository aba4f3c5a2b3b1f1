package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCreateUnknownVenue(t *testing.T) {
	s, _ := newTestStorage(t)

	review := &Review{VenueID: 404, Author: "ana", Body: "ok", Rating: 3}
	err := s.Reviews.Create(context.Background(), review)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewListNewestFirst(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	venue := createTestVenue(t, s, "Salón Aurora")

	var ids []int64
	for _, body := range []string{"primera", "segunda", "tercera"} {
		review := &Review{VenueID: venue.ID, Author: "ana", Body: body, Rating: 4}
		require.NoError(t, s.Reviews.Create(ctx, review))
		ids = append(ids, review.ID)
	}

	reviews, err := s.Reviews.ListByVenue(ctx, venue.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 3)

	// Ties on created_at fall back to id, so insertion order reverses.
	assert.Equal(t, ids[2], reviews[0].ID)
	assert.Equal(t, ids[1], reviews[1].ID)
	assert.Equal(t, ids[0], reviews[2].ID)
	assert.Equal(t, "tercera", reviews[0].Body)
}

func TestReviewListEmptyVenue(t *testing.T) {
	s, _ := newTestStorage(t)

	venue := createTestVenue(t, s, "Salón Aurora")

	reviews, err := s.Reviews.ListByVenue(context.Background(), venue.ID)
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestReviewDelete(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	venue := createTestVenue(t, s, "Salón Aurora")
	review := &Review{VenueID: venue.ID, Author: "ana", Body: "ok", Rating: 2}
	require.NoError(t, s.Reviews.Create(ctx, review))

	require.NoError(t, s.Reviews.Delete(ctx, review.ID))
	assert.ErrorIs(t, s.Reviews.Delete(ctx, review.ID), ErrNotFound)
}

func TestReviewStats(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	venue := createTestVenue(t, s, "Salón Aurora")

	total, average, err := s.Reviews.Stats(ctx, venue.ID)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, average)

	for _, rating := range []int{2, 4} {
		review := &Review{VenueID: venue.ID, Author: "ana", Body: "ok", Rating: rating}
		require.NoError(t, s.Reviews.Create(ctx, review))
	}

	total, average, err = s.Reviews.Stats(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 3.0, average)
}
