package main

import (
	"errors"
	"html"
	"net/http"
	"strconv"
	"strings"

	"festivo/internal/store"

	"github.com/go-chi/chi/v5"
)

type createReviewPayload struct {
	Author string `json:"author" validate:"required,max=100"`
	Body   string `json:"body" validate:"required,max=500"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

// CreateReview godoc
//
//	@Summary		Add a review to a venue
//	@Description	Public route. Author and body are sanitized and run through the profanity filter before storage.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			venueID	path		int					true	"Venue ID"
//	@Param			payload	body		createReviewPayload	true	"Review payload"
//	@Success		201		{object}	store.Review
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Router			/api/venues/{venueID}/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid venue ID"))
		return
	}

	var payload createReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload.Author = strings.TrimSpace(payload.Author)
	payload.Body = strings.TrimSpace(payload.Body)

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// Confirm the venue exists before writing anything.
	if _, err := app.store.Venues.GetByID(r.Context(), venueID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	review := &store.Review{
		VenueID: venueID,
		Author:  app.filter.Mask(html.EscapeString(payload.Author)),
		Body:    app.filter.Mask(html.EscapeString(payload.Body)),
		Rating:  payload.Rating,
	}

	if err := app.store.Reviews.Create(r.Context(), review); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, review); err != nil {
		app.internalServerError(w, r, err)
	}
}

// GetVenueReviews godoc
//
//	@Summary		List reviews for a venue
//	@Description	Public route. Reviews come back newest first.
//	@Tags			Reviews
//	@Produce		json
//	@Param			venueID	path	int	true	"Venue ID"
//	@Success		200		{array}	store.Review
//	@Failure		400		{object}	error
//	@Router			/api/venues/{venueID}/reviews [get]
func (app *application) getVenueReviewsHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid venue ID"))
		return
	}

	reviews, err := app.store.Reviews.ListByVenue(r.Context(), venueID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, reviews); err != nil {
		app.internalServerError(w, r, err)
	}
}

// DeleteReview godoc
//
//	@Summary		Delete a review (operator)
//	@Tags			Reviews
//	@Produce		json
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{object}	map[string]string
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Router			/api/reviews/{reviewID} [delete]
func (app *application) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := strconv.ParseInt(chi.URLParam(r, "reviewID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	if err := app.store.Reviews.Delete(r.Context(), reviewID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "review deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
