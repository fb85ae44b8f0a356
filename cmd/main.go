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
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-event-planner/internal/handlers"
	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-event-planner/internal/repositories"
	"github.com/sbilibin2017/gw-event-planner/internal/schema"
	"github.com/sbilibin2017/gw-event-planner/internal/services"
	"github.com/sbilibin2017/gw-event-planner/internal/transactions"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-event-planner API
// @version 1.0.0
// @description Service for planning events: users, events, attendances and tasks
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, logEncoding, provisionSchema,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, pgStatementTimeoutMS,
		kafkaBrokers, kafkaTopic,
		bcryptCost,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, logEncoding, provisionSchema,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, pgStatementTimeoutMS,
		kafkaBrokers, kafkaTopic,
		bcryptCost,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Kafka and hashing configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, logEncoding string, provisionSchema bool,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns, pgStatementTimeoutMS int,
	kafkaBrokers []string, kafkaTopic string,
	bcryptCost int,
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
	logEncoding = getEnv("APP_LOG_ENCODING", "json")
	if provisionSchema, err = strconv.ParseBool(getEnv("APP_PROVISION_SCHEMA", "true")); err != nil {
		return
	}

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
	if pgStatementTimeoutMS, err = strconv.Atoi(getEnv("POSTGRES_STATEMENT_TIMEOUT_MS", "0")); err != nil {
		return
	}

	// Kafka config
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			kafkaBrokers = append(kafkaBrokers, broker)
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "event-planner.changes")

	// Password hashing
	if bcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost))); err != nil {
		return
	}

	return
}

// postgresDSN builds the pgx connection string. A positive statement timeout
// is passed as a server-side runtime parameter.
func postgresDSN(pgHost string, pgPort int, pgUser, pgPassword, pgDB string, statementTimeoutMS int) string {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	if statementTimeoutMS > 0 {
		dsn += "&statement_timeout=" + strconv.Itoa(statementTimeoutMS)
	}
	return dsn
}

// newRouter wires the HTTP surface onto the services.
func newRouter(
	users *services.UserService,
	events *services.EventService,
	attendances *services.AttendanceService,
	tasks *services.TaskService,
	swaggerURL string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/", handlers.NewHealthHandler())

	r.Route("/users", func(r chi.Router) {
		r.Post("/", handlers.NewRegisterUserHandler(users))
		r.Get("/{id}", handlers.NewGetUserHandler(users))
		r.Patch("/{id}", handlers.NewUpdateUserHandler(users))
		r.Delete("/{id}", handlers.NewDeleteUserHandler(users))
	})

	r.Route("/events", func(r chi.Router) {
		r.Post("/", handlers.NewCreateEventHandler(events))
		r.Get("/", handlers.NewListEventsHandler(events))
		r.Get("/all", handlers.NewListAllEventsHandler(events))
		r.Get("/{id}", handlers.NewGetEventHandler(events))
		r.Patch("/{id}", handlers.NewUpdateEventHandler(events))
		r.Delete("/{id}", handlers.NewDeleteEventHandler(events))
		r.Get("/{id}/tasks", handlers.NewListEventTasksHandler(events))
		r.Get("/{id}/attendances", handlers.NewListEventAttendancesHandler(events))
	})

	r.Route("/attendances", func(r chi.Router) {
		r.Post("/", handlers.NewCreateAttendanceHandler(attendances))
		r.Get("/{id}", handlers.NewGetAttendanceHandler(attendances))
		r.Patch("/{id}", handlers.NewUpdateAttendanceHandler(attendances))
		r.Delete("/{id}", handlers.NewDeleteAttendanceHandler(attendances))
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", handlers.NewCreateTaskHandler(tasks))
		r.Get("/{id}", handlers.NewGetTaskHandler(tasks))
		r.Patch("/{id}", handlers.NewUpdateTaskHandler(tasks))
		r.Delete("/{id}", handlers.NewDeleteTaskHandler(tasks))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}

// run initializes the logger, database, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, logEncoding string, provisionSchema bool,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns, pgStatementTimeoutMS int,
	kafkaBrokers []string, kafkaTopic string,
	bcryptCost int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel, logEncoding); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infow("logger initialized", "level", logLevel, "encoding", logEncoding)

	// Connect to PostgreSQL
	logger.Log.Infow("connecting to postgres", "host", pgHost, "port", pgPort, "db", pgDB)
	db, err := sqlx.ConnectContext(ctx, "pgx",
		postgresDSN(pgHost, pgPort, pgUser, pgPassword, pgDB, pgStatementTimeoutMS))
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	if provisionSchema {
		if err := schema.Provision(ctx, db); err != nil {
			return fmt.Errorf("provision schema: %w", err)
		}
		logger.Log.Info("schema provisioned")
	}

	// Change feed
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(kafkaBrokers...),
			Topic:                  kafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("change feed enabled", "brokers", kafkaBrokers, "topic", kafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, change feed disabled")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, transactions.FromContext)
	eventRepo := repositories.NewEventRepository(db, transactions.FromContext)
	attendanceRepo := repositories.NewAttendanceRepository(db, transactions.FromContext)
	taskRepo := repositories.NewTaskRepository(db, transactions.FromContext)

	// Initialize services
	tm := transactions.NewManager(db, nil)
	userService := services.NewUserService(userRepo, tm, kafkaWriter, bcryptCost)
	eventService := services.NewEventService(eventRepo, taskRepo, attendanceRepo, tm, kafkaWriter)
	attendanceService := services.NewAttendanceService(attendanceRepo, tm, kafkaWriter)
	taskService := services.NewTaskService(taskRepo, tm, kafkaWriter)

	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: newRouter(userService, eventService, attendanceService, taskService,
			fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
