package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("resource not found")
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Venues interface {
		Create(context.Context, *Venue) error
		GetByID(context.Context, int64) (*Venue, error)
		List(context.Context) ([]Venue, error)
		Delete(context.Context, int64) error
	}
	Reviews interface {
		Create(context.Context, *Review) error
		ListByVenue(context.Context, int64) ([]Review, error)
		Delete(context.Context, int64) error
		Stats(context.Context, int64) (int, float64, error)
	}
	Submissions interface {
		Create(context.Context, *Submission) error
		GetPending(context.Context, int64) (*Submission, error)
		ListPending(context.Context) ([]Submission, error)
		Approve(context.Context, int64, *Venue) error
		MarkDenied(context.Context, int64) error
	}
	Sessions interface {
		Create(context.Context, *Session) error
		Get(context.Context, string) (*Session, error)
		Delete(context.Context, string) error
	}
}

func NewStorage(db *sql.DB) Storage {
	return Storage{
		Venues:      &VenueStore{db},
		Reviews:     &ReviewStore{db},
		Submissions: &SubmissionStore{db},
		Sessions:    &SessionStore{db},
	}
}
