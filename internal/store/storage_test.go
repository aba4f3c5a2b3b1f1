package store

import (
	"context"
	"database/sql"
	"testing"

	"festivo/internal/db"

	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (Storage, *sql.DB) {
	t.Helper()

	database, err := db.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return NewStorage(database), database
}

func createTestVenue(t *testing.T, s Storage, name string) *Venue {
	t.Helper()

	venue := &Venue{
		Name:    name,
		Address: "Av. Siempre Viva 742",
		Phone:   "+591 70000000",
		MapURL:  "https://maps.example/v",
		Images:  []string{"venues/a.jpg"},
	}
	require.NoError(t, s.Venues.Create(context.Background(), venue))
	return venue
}
