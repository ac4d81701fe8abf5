package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tripora/travel-booking-backend/internal/config"
	"github.com/tripora/travel-booking-backend/internal/handlers"
	"github.com/tripora/travel-booking-backend/internal/middleware"
	"github.com/tripora/travel-booking-backend/internal/repository"
	"github.com/tripora/travel-booking-backend/internal/repository/memory"
	"github.com/tripora/travel-booking-backend/internal/repository/postgres"
	"github.com/tripora/travel-booking-backend/internal/seed"
	"github.com/tripora/travel-booking-backend/internal/services"
	"github.com/tripora/travel-booking-backend/pkg/jwt"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

// repositories bundles the storage layer behind one struct so the wiring
// below does not care which backend is active.
type repositories struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	bookings repository.BookingRepository
	catalog  repository.CatalogRepository
	ping     func() error
	close    func() error
}

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Tripora Travel Booking Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize storage backend
	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize storage: %v", err)
	}
	defer repos.close()

	// Initialize services
	logger.Info("Initializing services...")
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authService := services.NewAuthService(repos.users, repos.sessions, jwtService, cfg.Session.TTL, cfg.Security.BcryptCost)
	bookingService := services.NewBookingService(repos.bookings)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.Session)
	catalogHandler := handlers.NewCatalogHandler(repos.catalog)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	if cfg.Security.EnableRequestLog {
		router.Use(requestLogger(logger))
	}

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheckHandler(cfg.Storage.Backend, repos.ping))

	// Identity resolution for every API route
	router.Use(middleware.Authenticate(authService, jwtService, cfg.Session.CookieName))

	api := router.Group("/api")
	handlers.RegisterRoutes(api, authHandler, catalogHandler, bookingHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// buildRepositories selects and wires the storage backend. The in-memory
// store is the default; STORAGE_BACKEND=postgres switches to the
// database-backed implementation.
func buildRepositories(cfg *config.Config, logger *logrus.Logger) (*repositories, error) {
	if cfg.Storage.Backend == "postgres" {
		logger.Info("Connecting to database...")
		conn, err := postgres.Connect(cfg.Storage.Database)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection established")

		return &repositories{
			users:    postgres.NewUserRepository(conn),
			sessions: postgres.NewSessionRepository(conn),
			bookings: postgres.NewBookingRepository(conn),
			catalog:  postgres.NewCatalogRepository(conn),
			ping:     conn.Ping,
			close:    conn.Close,
		}, nil
	}

	logger.Info("Using in-memory storage")
	store := memory.NewStore()

	// A fresh in-memory store is empty; load the demo catalog outside
	// production so the API has something to serve.
	if cfg.Server.Environment != "production" {
		if err := seed.Catalog(store.Catalog); err != nil {
			return nil, err
		}
		logger.Info("Demo catalog seeded")
	}

	return &repositories{
		users:    store.Users,
		sessions: store.Sessions,
		bookings: store.Bookings,
		catalog:  store.Catalog,
		ping:     func() error { return nil },
		close:    func() error { return nil },
	}, nil
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		}

		if userCtx, exists := middleware.GetUserContext(c); exists {
			fields["user_id"] = userCtx.UserID
		}

		entry := logger.WithFields(fields)
		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}

// healthCheckHandler reports process and storage health
func healthCheckHandler(backend string, ping func() error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"storage": backend,
				"error":   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"storage":   backend,
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
