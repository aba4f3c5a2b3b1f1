package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"festivo/docs" //required to register the swagger spec
	"festivo/internal/assets"
	"festivo/internal/auth"
	"festivo/internal/profanity"
	"festivo/internal/ratelimiter"
	"festivo/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         store.Storage
	logger        *zap.SugaredLogger
	assets        assets.Store
	filter        *profanity.Filter
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
}

type config struct {
	addr        string
	env         string
	apiURL      string
	frontendURL string
	db          dbConfig
	assets      assetsConfig
	session     sessionConfig
	auth        authConfig
	rateLimiter ratelimiter.Config
}

type dbConfig struct {
	path string
}

type assetsConfig struct {
	backend       string // "local" or "cloudinary"
	dir           string // public static directory (local backend)
	cloudinaryURL string
	folder        string
}

type sessionConfig struct {
	user       string
	secretHash string
	ttl        time.Duration
}

type authConfig struct {
	basic basicConfig
}

type basicConfig struct {
	user string
	pass string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	allowedOrigins := []string{"https://*", "http://*"}
	if app.config.frontendURL != "" {
		allowedOrigins = []string{app.config.frontendURL}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", app.indexHandler)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(app.config.assets.dir))))

	r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
	r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

	docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

	r.Route("/api", func(r chi.Router) {
		r.Get("/venues", app.listVenuesHandler)
		r.Route("/venues/{venueID}", func(r chi.Router) {
			r.Get("/reviews", app.getVenueReviewsHandler)
			r.With(app.RateLimiterMiddleware).Post("/reviews", app.createReviewHandler)
		})
		r.With(app.RateLimiterMiddleware).Post("/venues/recommended", app.recommendVenueHandler)
		r.With(app.OperatorSessionMiddleware).Delete("/reviews/{reviewID}", app.deleteReviewHandler)
	})

	r.With(app.RateLimiterMiddleware).Post("/submit-venue", app.submitVenueHandler)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", app.operatorLoginHandler)

		r.Group(func(r chi.Router) {
			r.Use(app.OperatorSessionMiddleware)
			r.Post("/logout", app.operatorLogoutHandler)
			r.Get("/pending-venues", app.listPendingSubmissionsHandler)
			r.Post("/pending-venues/{submissionID}/approve", app.approveSubmissionHandler)
			r.Post("/pending-venues/{submissionID}/deny", app.denySubmissionHandler)
			r.Post("/venues/{venueID}/delete", app.deleteVenueHandler)
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
