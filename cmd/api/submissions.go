package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"festivo/internal/store"

	"github.com/go-chi/chi/v5"
)

const (
	maxSubmissionImages = 3
	maxUploadBytes      = 15 * 1024 * 1024 // 15MB
)

// SubmitVenue godoc
//
//	@Summary		Propose a new venue (file upload)
//	@Description	Public route. Multipart form with venue fields and 1-3 image files. The proposal lands in the moderation queue.
//	@Tags			Submissions
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name	formData	string	true	"Venue name"
//	@Param			address	formData	string	true	"Venue address"
//	@Param			phone	formData	string	true	"Contact phone"
//	@Param			map_url	formData	string	true	"Map link"
//	@Param			images	formData	[]file	true	"1 to 3 images"
//	@Success		201		{object}	store.Submission
//	@Failure		400		{object}	error
//	@Router			/submit-venue [post]
func (app *application) submitVenueHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("failed to parse form: %w", err))
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	address := strings.TrimSpace(r.FormValue("address"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	mapURL := strings.TrimSpace(r.FormValue("map_url"))

	if name == "" || address == "" || phone == "" || mapURL == "" {
		app.badRequestResponse(w, r, errors.New("name, address, phone and map_url are required"))
		return
	}

	files := nonEmptyFiles(r.MultipartForm.File["images"])
	if len(files) < 1 {
		app.badRequestResponse(w, r, errors.New("at least one image is required"))
		return
	}
	if len(files) > maxSubmissionImages {
		app.badRequestResponse(w, r, fmt.Errorf("at most %d images are allowed", maxSubmissionImages))
		return
	}

	images := make([]string, 0, len(files))
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			app.badRequestResponse(w, r, fmt.Errorf("open upload: %w", err))
			return
		}

		path, err := app.assets.Save(r.Context(), fileHeader.Filename, file)
		file.Close()
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		images = append(images, path)
	}

	app.createSubmission(w, r, name, address, phone, mapURL, images)
}

type recommendVenuePayload struct {
	Name    string          `json:"name" validate:"required,max=100"`
	Address string          `json:"address" validate:"required,max=255"`
	Phone   string          `json:"phone" validate:"required,max=30"`
	MapURL  string          `json:"map_url" validate:"required,max=500"`
	Images  json.RawMessage `json:"images" validate:"required"`
}

// RecommendVenue godoc
//
//	@Summary		Propose a new venue (JSON)
//	@Description	Public route. Same as /submit-venue but image paths are passed directly, either as a JSON array of strings or as a JSON-encoded string containing one.
//	@Tags			Submissions
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		recommendVenuePayload	true	"Venue proposal"
//	@Success		201		{object}	store.Submission
//	@Failure		400		{object}	error
//	@Router			/api/venues/recommended [post]
func (app *application) recommendVenueHandler(w http.ResponseWriter, r *http.Request) {
	var payload recommendVenuePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Address = strings.TrimSpace(payload.Address)
	payload.Phone = strings.TrimSpace(payload.Phone)
	payload.MapURL = strings.TrimSpace(payload.MapURL)

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	images, err := decodeImagesPayload(payload.Images)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if len(images) < 1 || len(images) > maxSubmissionImages {
		app.badRequestResponse(w, r, fmt.Errorf("images must contain between 1 and %d entries", maxSubmissionImages))
		return
	}
	for _, image := range images {
		if strings.TrimSpace(image) == "" {
			app.badRequestResponse(w, r, errors.New("images must not contain blank entries"))
			return
		}
	}

	app.createSubmission(w, r, payload.Name, payload.Address, payload.Phone, payload.MapURL, images)
}

// createSubmission sanitizes the free-text fields and queues the proposal
// as pending. Name and address go through the profanity filter just like
// review text does.
func (app *application) createSubmission(w http.ResponseWriter, r *http.Request, name, address, phone, mapURL string, images []string) {
	submission := &store.Submission{
		Name:    app.filter.Mask(html.EscapeString(name)),
		Address: app.filter.Mask(html.EscapeString(address)),
		Phone:   html.EscapeString(phone),
		MapURL:  mapURL,
		Images:  images,
	}

	if err := app.store.Submissions.Create(r.Context(), submission); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, submission); err != nil {
		app.internalServerError(w, r, err)
	}
}

// decodeImagesPayload accepts either a JSON array of path strings or a
// JSON string holding an encoded array, and normalizes both to a slice.
func decodeImagesPayload(raw json.RawMessage) ([]string, error) {
	var images []string
	if err := json.Unmarshal(raw, &images); err == nil {
		return images, nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &images); err == nil {
			return images, nil
		}
	}
	return nil, errors.New("images must be a JSON array of path strings")
}

func nonEmptyFiles(files []*multipart.FileHeader) []*multipart.FileHeader {
	// Some browsers report one empty file part when nothing was selected.
	kept := files[:0]
	for _, f := range files {
		if f != nil && f.Filename != "" {
			kept = append(kept, f)
		}
	}
	return kept
}

// ListPendingSubmissions godoc
//
//	@Summary		List pending venue submissions (operator)
//	@Tags			Submissions
//	@Produce		json
//	@Success		200	{array}	store.Submission
//	@Failure		403	{object}	error
//	@Router			/admin/pending-venues [get]
func (app *application) listPendingSubmissionsHandler(w http.ResponseWriter, r *http.Request) {
	submissions, err := app.store.Submissions.ListPending(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, submissions); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ApproveSubmission godoc
//
//	@Summary		Approve a pending submission (operator)
//	@Description	Publishes the proposal as a venue and settles the submission. A second resolve of the same id is a 404.
//	@Tags			Submissions
//	@Produce		json
//	@Param			submissionID	path		int	true	"Submission ID"
//	@Success		200				{object}	map[string]int64
//	@Failure		403				{object}	error
//	@Failure		404				{object}	error
//	@Router			/admin/pending-venues/{submissionID}/approve [post]
func (app *application) approveSubmissionHandler(w http.ResponseWriter, r *http.Request) {
	submissionID, err := strconv.ParseInt(chi.URLParam(r, "submissionID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid submission ID"))
		return
	}

	submission, err := app.store.Submissions.GetPending(r.Context(), submissionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	venue := &store.Venue{
		Name:    html.EscapeString(html.UnescapeString(submission.Name)),
		Address: html.EscapeString(html.UnescapeString(submission.Address)),
		Phone:   html.EscapeString(html.UnescapeString(submission.Phone)),
		MapURL:  submission.MapURL,
		Images:  submission.Images,
	}

	// The status flip and the venue insert commit together. A concurrent
	// resolve that got here first surfaces as ErrNotFound; a failed insert
	// leaves the submission pending so the operator can retry.
	if err := app.store.Submissions.Approve(r.Context(), submissionID, venue); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]int64{"venue_id": venue.ID}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// DenySubmission godoc
//
//	@Summary		Deny a pending submission (operator)
//	@Description	Settles the proposal without publishing anything.
//	@Tags			Submissions
//	@Produce		json
//	@Param			submissionID	path		int	true	"Submission ID"
//	@Success		200				{object}	map[string]string
//	@Failure		403				{object}	error
//	@Failure		404				{object}	error
//	@Router			/admin/pending-venues/{submissionID}/deny [post]
func (app *application) denySubmissionHandler(w http.ResponseWriter, r *http.Request) {
	submissionID, err := strconv.ParseInt(chi.URLParam(r, "submissionID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid submission ID"))
		return
	}

	if err := app.store.Submissions.MarkDenied(r.Context(), submissionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "submission denied"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
