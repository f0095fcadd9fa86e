package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/KragoN96/berries-web-app/internal/facades"
	"github.com/KragoN96/berries-web-app/internal/handlers"
	"github.com/KragoN96/berries-web-app/internal/jwt"
	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/middlewares"
	"github.com/KragoN96/berries-web-app/internal/repositories"
	"github.com/KragoN96/berries-web-app/internal/services"
	"github.com/KragoN96/berries-web-app/internal/storage"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Berries Lost & Found API
// @version 1.0.0
// @description Campus lost & found backend: item feed, comments, auth, uploads
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, publicURL, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, migrationsPath,
		redisHost, redisPort, redisDB, redisPassword, itemCacheTTLSecond,
		kafkaBroker, kafkaEmailTopic,
		s3Bucket, s3KeyPrefix, s3PublicURL, ipinfoBaseURL,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, publicURL, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, migrationsPath,
		redisHost, redisPort, redisDB, redisPassword, itemCacheTTLSecond,
		kafkaBroker, kafkaEmailTopic,
		s3Bucket, s3KeyPrefix, s3PublicURL, ipinfoBaseURL,
		jwtSecret, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, S3, lookup, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, publicURL, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int, migrationsPath string,
	redisHost string, redisPort, redisDB int, redisPassword string, itemCacheTTLSecond int,
	kafkaBroker, kafkaEmailTopic string,
	s3Bucket, s3KeyPrefix, s3PublicURL, ipinfoBaseURL string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	publicURL = getEnv("APP_PUBLIC_URL", "http://localhost:3000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "lostfound")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}
	migrationsPath = getEnv("MIGRATIONS_PATH", "./migrations")

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if itemCacheTTLSecond, err = strconv.Atoi(getEnv("ITEM_CACHE_TTL_SECOND", "60")); err != nil {
		return
	}

	// Kafka config
	kafkaBroker = getEnv("KAFKA_BROKER", "localhost:9092")
	kafkaEmailTopic = getEnv("KAFKA_EMAIL_TOPIC", "emails")

	// Object storage config
	s3Bucket = getEnv("S3_BUCKET", "")
	s3KeyPrefix = getEnv("S3_KEY_PREFIX", "lostandfound/items")
	s3PublicURL = getEnv("S3_PUBLIC_URL", "")

	// IP lookup config
	ipinfoBaseURL = getEnv("IPINFO_BASE_URL", "")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "604800")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, object storage, and
// HTTP server. It applies migrations, sets up routes, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, publicURL, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int, migrationsPath string,
	redisHost string, redisPort, redisDB int, redisPassword string, itemCacheTTLSecond int,
	kafkaBroker, kafkaEmailTopic string,
	s3Bucket, s3KeyPrefix, s3PublicURL, ipinfoBaseURL string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply migrations
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		logger.Log.Fatal("Migration init failed:", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Log.Fatal("Migration up failed:", err)
	}
	logger.Log.Info("Migrations applied")

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka producer for outbound email jobs
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBroker),
		Topic:    kafkaEmailTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Object storage for item images
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Log.Fatal("Failed to load AWS config:", err)
	}
	imageStore := storage.NewS3Service(s3.NewFromConfig(awsCfg), s3Bucket, s3KeyPrefix, s3PublicURL)

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	itemReadRepo := repositories.NewItemReadRepository(db)
	itemWriteRepo := repositories.NewItemWriteRepository(db)
	itemCacheRepo := repositories.NewItemCacheRepository(rdb, time.Duration(itemCacheTTLSecond)*time.Second)
	visitReadRepo := repositories.NewVisitReadRepository(db)
	visitWriteRepo := repositories.NewVisitWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc, kafkaWriter, publicURL)
	itemService := services.NewItemService(itemReadRepo, itemWriteRepo, userReadRepo, itemCacheRepo)
	trackService := services.NewTrackService(facades.NewIPInfoFacade(ipinfoBaseURL), visitWriteRepo, visitReadRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	forgotPasswordHandler := handlers.NewForgotPasswordHandler(authService)
	resetPasswordHandler := handlers.NewResetPasswordHandler(authService)
	changeEmailHandler := handlers.NewChangeEmailHandler(authService)
	itemsListHandler := handlers.NewItemsListHandler(itemService)
	itemsCreateHandler := handlers.NewItemsCreateHandler(itemService)
	itemsGetHandler := handlers.NewItemsGetHandler(itemService)
	commentsAddHandler := handlers.NewCommentsAddHandler(itemService)
	commentsEditHandler := handlers.NewCommentsEditHandler(itemService)
	commentsDeleteHandler := handlers.NewCommentsDeleteHandler(itemService)
	uploadsHandler := handlers.NewUploadsHandler(imageStore)
	trackIPHandler := handlers.NewTrackIPHandler(trackService)
	locationsHandler := handlers.NewLocationsHandler(trackService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/api/auth/register", registerHandler)
	r.Post("/api/auth/login", loginHandler)
	r.Post("/api/auth/forgot-password", forgotPasswordHandler)
	r.Post("/api/auth/reset-password", resetPasswordHandler)
	r.Get("/api/items", itemsListHandler)
	r.Get("/api/items/{id}", itemsGetHandler)
	r.Get("/api/track-ip", trackIPHandler)
	r.Get("/api/locations", locationsHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Patch("/api/auth/change-email", changeEmailHandler)
		r.Post("/api/items", itemsCreateHandler)
		r.Post("/api/items/{id}/comments", commentsAddHandler)
		r.Patch("/api/items/{itemId}/comments/{commentId}", commentsEditHandler)
		r.Delete("/api/items/{itemId}/comments/{commentId}", commentsDeleteHandler)
		r.Post("/api/uploads", uploadsHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
