package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-user-accounts/internal/handlers"

	"github.com/sbilibin2017/gw-user-accounts/internal/jwt"
	"github.com/sbilibin2017/gw-user-accounts/internal/logger"
	"github.com/sbilibin2017/gw-user-accounts/internal/metrics"
	"github.com/sbilibin2017/gw-user-accounts/internal/repositories"
	"github.com/sbilibin2017/gw-user-accounts/internal/services"

	"github.com/sbilibin2017/gw-user-accounts/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-user-accounts API
// @version 1.0.0
// @description Microservice for user accounts, email verification and profile images
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.basic BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisVerifiedTTL,
		kafkaBrokers, kafkaTopic,
		s3Region, s3Bucket, s3AccessKey, s3SecretKey, s3Endpoint,
		verificationExpMinute,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisVerifiedTTL,
		kafkaBrokers, kafkaTopic,
		s3Region, s3Bucket, s3AccessKey, s3SecretKey, s3Endpoint,
		verificationExpMinute,
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
// application, database, Redis, Kafka, object store, verification, logging,
// and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisVerifiedTTLSecond int,
	kafkaBrokers, kafkaTopic string,
	s3Region, s3Bucket, s3AccessKey, s3SecretKey, s3Endpoint string,
	verificationExpMinute int,
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
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisVerifiedTTLSecond, err = strconv.Atoi(getEnv("REDIS_VERIFIED_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config, empty brokers disable publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "user-verifications")

	// Object store config
	s3Region = getEnv("S3_REGION", "us-east-1")
	s3Bucket = getEnv("S3_BUCKET", "user-images")
	s3AccessKey = getEnv("S3_ACCESS_KEY", "")
	s3SecretKey = getEnv("S3_SECRET_KEY", "")
	s3Endpoint = getEnv("S3_ENDPOINT", "")

	// Verification config
	if verificationExpMinute, err = strconv.Atoi(getEnv("VERIFICATION_EXP_MINUTE", "30")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, object store, and HTTP
// server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisVerifiedTTLSecond int,
	kafkaBrokers, kafkaTopic string,
	s3Region, s3Bucket, s3AccessKey, s3SecretKey, s3Endpoint string,
	verificationExpMinute int,
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
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for verification messages. Left nil when no brokers are
	// configured, the verification service skips publishing in that case.
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Warnw("Kafka brokers not configured, verification messages will not be published")
	}

	// S3 client for image objects
	s3Client, err := repositories.NewS3Client(ctx, s3Region, s3AccessKey, s3SecretKey, s3Endpoint)
	if err != nil {
		logger.Log.Errorw("S3 client error", "error", err)
		return err
	}

	// Metrics
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	verificationReadRepo := repositories.NewVerificationReadRepository(db)
	verificationWriteRepo := repositories.NewVerificationWriteRepository(db)
	imageReadRepo := repositories.NewImageReadRepository(db)
	imageWriteRepo := repositories.NewImageWriteRepository(db)
	imageObjectRepo := repositories.NewImageObjectRepository(s3Client, s3Bucket)
	verifiedCacheRepo := repositories.NewVerifiedCacheRepository(rdb, time.Duration(redisVerifiedTTLSecond)*time.Second)

	// Initialize services
	verificationService := services.NewVerificationService(
		verificationReadRepo,
		verificationWriteRepo,
		kafkaWriter,
		time.Duration(verificationExpMinute)*time.Minute,
		collector,
	)
	userService := services.NewUserService(userReadRepo, userWriteRepo, verificationService, verifiedCacheRepo, collector)
	imageService := services.NewImageService(imageReadRepo, imageWriteRepo, imageObjectRepo, collector)
	authService := services.NewAuthService(userReadRepo, jwtSvc)

	// Initialize handlers
	createUserHandler := handlers.NewCreateUserHandler(userService)
	getUserHandler := handlers.NewGetUserHandler(userService)
	updateUserHandler := handlers.NewUpdateUserHandler(userService)
	verifyEmailHandler := handlers.NewVerifyEmailHandler(verificationService)
	loginHandler := handlers.NewLoginHandler(authService)
	getImageHandler := handlers.NewGetImageHandler(userService, imageService)
	uploadImageHandler := handlers.NewUploadImageHandler(userService, imageService)
	deleteImageHandler := handlers.NewDeleteImageHandler(userService, imageService)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware(collector))

	// Public routes
	r.Post("/v1/user", createUserHandler)
	r.Get("/v1/verifyEmail", verifyEmailHandler)
	r.Post("/v1/login", loginHandler)
	r.Get("/healthz", healthHandler)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Protected routes behind identity and verification middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.IdentityMiddleware(jwtSvc, authService))
		r.Use(middlewares.VerificationMiddleware(userService))

		r.Get("/v1/user/self", getUserHandler)
		r.Put("/v1/user/self", updateUserHandler)

		r.Get("/v1/user/self/pic", getImageHandler)
		r.Post("/v1/user/self/pic", uploadImageHandler)
		r.Delete("/v1/user/self/pic", deleteImageHandler)
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
