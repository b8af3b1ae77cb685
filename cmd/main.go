package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-admin-auth/docs"
	"github.com/sbilibin2017/gw-admin-auth/internal/jwt"
	"github.com/sbilibin2017/gw-admin-auth/internal/logger"
	"github.com/sbilibin2017/gw-admin-auth/internal/middlewares"
	"github.com/sbilibin2017/gw-admin-auth/internal/models"
	"github.com/sbilibin2017/gw-admin-auth/internal/repositories"
	"github.com/sbilibin2017/gw-admin-auth/internal/services"
	"github.com/sbilibin2017/gw-admin-auth/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-admin-auth API
// @version 1.0.0
// @description Admin authentication service: login, versioned login and per-client throttling
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, throttle store, database, Kafka writer, gRPC health
// server and HTTP server, then blocks until ctx is done or a shutdown signal arrives.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Initialize throttle store
	window := time.Duration(cfg.ThrottleWindowSecond) * time.Second
	var throttler middlewares.Throttler
	switch cfg.ThrottleStore {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		throttler = repositories.NewThrottleRedisRepository(rdb, cfg.ThrottleLimit, window)
	case "memory":
		throttler = repositories.NewThrottleMemoryRepository(cfg.ThrottleLimit, window)
	default:
		return fmt.Errorf("unknown throttle store %q", cfg.ThrottleStore)
	}
	log.Infow("Throttling configured",
		"store", cfg.ThrottleStore,
		"limit", cfg.ThrottleLimit,
		"window", window,
		"header", cfg.ThrottleHeader,
	)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db.DB, migrations.FS); err != nil {
		return err
	}

	// Kafka login events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					log.Errorw("Failed to deliver login events", "count", len(messages), "error", err)
				}
			},
		}
		defer w.Close()
		kafkaWriter = w
		log.Infow("Kafka login events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		log.Warn("Kafka brokers not configured, login events disabled")
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
		jwt.WithIssuer(cfg.JWTIssuer),
	)

	// Initialize repositories
	adminReadRepo := repositories.NewAdminReadRepository(db)
	adminWriteRepo := repositories.NewAdminWriteRepository(db)

	// Initialize services
	authService := services.NewAdminAuthService(adminReadRepo, adminWriteRepo, tokens, kafkaWriter)

	if err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword, models.DefaultAdminPermissions()); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	// gRPC health service
	healthLis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCHealthPort))
	if err != nil {
		return fmt.Errorf("gRPC health listen: %w", err)
	}
	grpcServer, healthServer := newHealthServer()

	// Setup router
	r := newRouter(routerDeps{
		loginer:        authService,
		tokener:        tokens,
		throttler:      throttler,
		throttleHeader: cfg.ThrottleHeader,
		log:            log,
		swaggerURL:     fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("gRPC health server listening on %s", healthLis.Addr())
		if err := grpcServer.Serve(healthLis); err != nil {
			errChan <- fmt.Errorf("gRPC health server failed: %w", err)
		}
	}()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		log.Errorw("Server stopped unexpectedly", "error", serveErr)
	}

	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcServer.GracefulStop()

	if serveErr != nil {
		return serveErr
	}
	log.Info("Servers stopped gracefully")
	return nil
}
