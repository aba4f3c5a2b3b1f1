package main

import (
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"festivo/internal/assets"
	assetscloudinary "festivo/internal/assets/cloudinary"
	assetslocal "festivo/internal/assets/local"
	"festivo/internal/auth"
	"festivo/internal/db"
	"festivo/internal/profanity"
	"festivo/internal/ratelimiter"
	"festivo/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "1.0.0"

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	defaultRequests := 20
	defaultEnabled := false

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            time.Minute,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

func getEnv(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return fallback
}

//	@title			Festivo API
//	@description	Directory of event venues with moderated listings and reviews.

//	@BasePath	/

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	sessionTTL, err := time.ParseDuration(getEnv("ADMIN_SESSION_TTL", "24h"))
	if err != nil {
		log.Fatalf("Invalid value for ADMIN_SESSION_TTL: %v", err)
	}

	cfg := config{
		addr:        getEnv("ADDR", ":8080"),
		env:         getEnv("ENV", "development"),
		apiURL:      getEnv("EXTERNAL_URL", "localhost:8080"),
		frontendURL: getEnv("FRONTEND_URL", ""),
		db: dbConfig{
			path: getEnv("DB_PATH", "festivo.db"),
		},
		assets: assetsConfig{
			backend:       getEnv("ASSETS_BACKEND", "local"),
			dir:           getEnv("ASSETS_DIR", "static"),
			cloudinaryURL: os.Getenv("CLOUDINARY_URL"),
			folder:        getEnv("ASSETS_FOLDER", "venues"),
		},
		session: sessionConfig{
			user:       os.Getenv("ADMIN_USER"),
			secretHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			ttl:        sessionTTL,
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
		},
		rateLimiter: LoadRateLimiterConfig(),
	}

	if cfg.session.user == "" || cfg.session.secretHash == "" {
		log.Fatal("ADMIN_USER and ADMIN_PASSWORD_HASH must be set")
	}

	// Logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Database
	database, err := db.New(cfg.db.path)
	if err != nil {
		logger.Fatal(err)
	}
	defer database.Close()
	logger.Infow("database ready", "path", cfg.db.path)

	// Storage
	str := store.NewStorage(database)

	// Image assets
	assetStore, err := newAssetStore(cfg.assets)
	if err != nil {
		logger.Fatal(err)
	}

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:        cfg,
		logger:        logger,
		store:         str,
		assets:        assetStore,
		filter:        profanity.Default(),
		authenticator: auth.NewOperatorAuthenticator(cfg.session.user, cfg.session.secretHash),
		rateLimiter:   rateLimiter,
	}

	// Metrics collected at /debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		return database.Stats()
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

func newAssetStore(cfg assetsConfig) (assets.Store, error) {
	switch cfg.backend {
	case "cloudinary":
		return assetscloudinary.NewStore(cfg.cloudinaryURL, cfg.folder)
	default:
		return assetslocal.NewStore(
			fmt.Sprintf("%s/%s", cfg.dir, cfg.folder),
			cfg.folder,
		)
	}
}
