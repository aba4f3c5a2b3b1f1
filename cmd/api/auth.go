package main

import (
	"errors"
	"net/http"
	"time"

	"festivo/internal/auth"
	"festivo/internal/store"

	"github.com/google/uuid"
)

type operatorLoginPayload struct {
	User   string `json:"user" validate:"required"`
	Secret string `json:"secret" validate:"required"`
}

// OperatorLogin godoc
//
//	@Summary		Operator login
//	@Description	Verifies operator credentials and sets a server-side session cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		operatorLoginPayload	true	"Credentials"
//	@Success		200		{object}	map[string]string
//	@Failure		401		{object}	error
//	@Router			/admin/login [post]
func (app *application) operatorLoginHandler(w http.ResponseWriter, r *http.Request) {
	var payload operatorLoginPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.authenticator.Verify(payload.User, payload.Secret); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	session := &store.Session{
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().UTC().Add(app.config.session.ttl),
	}
	if err := app.store.Sessions.Create(r.Context(), session); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "login successful"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// OperatorLogout godoc
//
//	@Summary		Operator logout
//	@Description	Deletes the server-side session and clears the cookie.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		403	{object}	error
//	@Router			/admin/logout [post]
func (app *application) operatorLogoutHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := app.store.Sessions.Delete(r.Context(), cookie.Value); err != nil {
			app.internalServerError(w, r, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "session closed"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
