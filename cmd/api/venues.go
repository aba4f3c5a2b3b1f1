package main

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"festivo/internal/store"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// indexHandler renders the public listing page: every venue with its
// images and aggregated rating.
func (app *application) indexHandler(w http.ResponseWriter, r *http.Request) {
	venues, err := app.store.Venues.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, map[string]any{"Venues": venues}); err != nil {
		app.logger.Errorw("render index", "error", err.Error())
	}
}

// ListVenues godoc
//
//	@Summary		List all venues
//	@Description	Public route. Every venue with its image list and average rating (null without reviews).
//	@Tags			Venues
//	@Produce		json
//	@Success		200	{array}	store.Venue
//	@Router			/api/venues [get]
func (app *application) listVenuesHandler(w http.ResponseWriter, r *http.Request) {
	venues, err := app.store.Venues.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, venues); err != nil {
		app.internalServerError(w, r, err)
	}
}

// DeleteVenue godoc
//
//	@Summary		Delete a venue (operator)
//	@Description	Deletes the venue; its reviews go with it.
//	@Tags			Venues
//	@Produce		json
//	@Param			venueID	path		int	true	"Venue ID"
//	@Success		200		{object}	map[string]string
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Router			/admin/venues/{venueID}/delete [post]
func (app *application) deleteVenueHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid venue ID"))
		return
	}

	if err := app.store.Venues.Delete(r.Context(), venueID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "venue deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
