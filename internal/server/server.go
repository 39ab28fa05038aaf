package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gear-rental/internal/config"
	"gear-rental/internal/database"
	custommiddleware "gear-rental/internal/middleware"
	"gear-rental/internal/repository"
	"gear-rental/internal/service"
	"gear-rental/internal/store"
	"gear-rental/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *database.Service
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *database.Service) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware())
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Initialize the document store and repositories
	docStore := store.NewMongoStore(db.Database())
	gearRepo := repository.NewGearRepository(docStore)
	txnRepo := repository.NewTransactionRepository(docStore)
	userRepo := repository.NewUserRepository(docStore)
	messageRepo := repository.NewMessageRepository(docStore)

	// Initialize services
	catalogService := service.NewCatalogService(gearRepo)
	rentalService := service.NewRentalService(gearRepo, txnRepo)
	userService := service.NewUserService(userRepo)
	messageService := service.NewMessageService(messageRepo)

	// Initialize handlers
	healthHandler := transport.NewHealthHandler(db, logger)
	gearHandler := transport.NewGearHandler(catalogService, logger)
	transactionHandler := transport.NewTransactionHandler(rentalService, logger)
	userHandler := transport.NewUserHandler(userService, logger)
	messageHandler := transport.NewMessageHandler(messageService, logger)

	// Register routes
	healthHandler.RegisterRoutes(router)
	gearHandler.RegisterRoutes(router)
	transactionHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	messageHandler.RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	// Disconnect the shared Mongo client
	if s.db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.db.Close(ctx); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
