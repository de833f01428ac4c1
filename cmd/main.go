// Package main is the entry point for the application
// It initializes all components and starts the HTTP server
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"travel-crm-service/config"
	httpDelivery "travel-crm-service/delivery/http"
	"travel-crm-service/domain/model"
	"travel-crm-service/gateway/flightdata"
	pgRepository "travel-crm-service/repository/postgres"
	"travel-crm-service/usecase"

	"travel-crm-service/pkg/httpclient"
	"travel-crm-service/pkg/jwt"
	"travel-crm-service/pkg/kafka"
	"travel-crm-service/pkg/logger"
	"travel-crm-service/pkg/postgres"
	"travel-crm-service/pkg/redis"
)

// main wires the service together:
// 1. Logger and configuration
// 2. Postgres, Redis, Kafka and JWT clients
// 3. Repositories, usecases and HTTP handlers
// 4. Routes and the HTTP server with graceful shutdown
func main() {
	// configure logger
	appLogger := logger.NewJSONDefault()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		appLogger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize PostgreSQL client
	postgresClient, err := postgres.NewPostgresClient(postgres.Config{
		Host:            cfg.Infrastructure.Postgres.Host,
		Port:            cfg.Infrastructure.Postgres.Port,
		User:            cfg.Infrastructure.Postgres.User,
		Password:        cfg.Infrastructure.Postgres.Password,
		DBName:          cfg.Infrastructure.Postgres.DBName,
		Schema:          cfg.Infrastructure.Postgres.Schema,
		SSLMode:         cfg.Infrastructure.Postgres.SSLMode,
		MaxIdleConns:    cfg.Infrastructure.Postgres.MaxIdleConns,
		MaxOpenConns:    cfg.Infrastructure.Postgres.MaxOpenConns,
		ConnMaxIdleTime: cfg.Infrastructure.Postgres.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.Infrastructure.Postgres.ConnMaxLifetime,
		Debug:           cfg.Infrastructure.Postgres.Debug,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if cfg.Infrastructure.Postgres.IsUseMigrate {
		// Run database migrations
		err = postgresClient.Migrate(
			&model.Company{},
			&model.User{},
			&model.Client{},
			&model.Lead{},
			&model.Quote{},
			&model.Flight{},
			&model.QuotePassenger{},
			&model.SaleItem{},
			&model.AccountPayable{},
			&model.AccountReceivable{},
			&model.Supplier{},
			&model.Category{},
			&model.PaymentMethod{},
			&model.Airline{},
			&model.Task{},
			&model.Appointment{},
		)
		if err != nil {
			appLogger.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	// Initialize Redis client
	redisClient, redisErr := redis.New(
		redis.WithAddrs(cfg.Infrastructure.Redis.Addrs),
		redis.WithUsername(cfg.Infrastructure.Redis.Username),
		redis.WithPassword(cfg.Infrastructure.Redis.Password),
		redis.WithDB(cfg.Infrastructure.Redis.DB),
		redis.WithPoolSize(cfg.Infrastructure.Redis.PoolSize),
	)
	if redisErr != nil {
		appLogger.Error("Failed to initialize Redis client", "error", redisErr)
		os.Exit(1)
	}

	// Initialize Kafka client
	kafkaClient, kafkaErr := kafka.New(
		kafka.WithBrokers(cfg.Infrastructure.Kafka.Brokers...),
	)
	if kafkaErr != nil {
		appLogger.Error("Failed to initialize Kafka client", "error", kafkaErr)
		os.Exit(1)
	}

	// Initialize JWT client for access tokens and CRM sign-in links
	jwtClient, err := jwt.New(
		jwt.WithAccessTokenSecret(cfg.Security.JWT.AccessTokenSecret),
		jwt.WithSignInTokenSecret(cfg.Security.JWT.SignInTokenSecret),
		jwt.WithAccessTokenExpiry(time.Duration(cfg.Security.JWT.AccessTokenExpiry)*time.Minute),
		jwt.WithSignInTokenExpiry(time.Duration(cfg.Security.JWT.SignInTokenExpiry)*time.Minute),
	)
	if err != nil {
		appLogger.Error("Failed to initialize JWT client", "error", err)
		os.Exit(1)
	}

	// Initialize the flight-schedule gateway when an API is configured
	var schedules flightdata.Gateway
	if cfg.Integrations.FlightData.BaseURL != "" {
		flightClient := httpclient.New(
			httpclient.WithBaseURL(cfg.Integrations.FlightData.BaseURL),
			httpclient.WithTimeout(time.Duration(cfg.Integrations.FlightData.TimeoutSeconds)*time.Second),
		)
		schedules = flightdata.New(flightClient, cfg.Integrations.FlightData.APIKey, appLogger)
	}

	// Initialize repositories
	db := postgresClient.GetDB()
	clientRepo := pgRepository.NewClientRepository(db, appLogger)
	leadRepo := pgRepository.NewLeadRepository(db, appLogger)
	quoteRepo := pgRepository.NewQuoteRepository(db, appLogger)
	flightRepo := pgRepository.NewFlightRepository(db, appLogger)
	passengerRepo := pgRepository.NewPassengerRepository(db, appLogger)
	saleItemRepo := pgRepository.NewSaleItemRepository(db, appLogger)
	payableRepo := pgRepository.NewPayableRepository(db, appLogger)
	receivableRepo := pgRepository.NewReceivableRepository(db, appLogger)
	supplierRepo := pgRepository.NewSupplierRepository(db, appLogger)
	categoryRepo := pgRepository.NewCategoryRepository(db, appLogger)
	methodRepo := pgRepository.NewPaymentMethodRepository(db, appLogger)
	airlineRepo := pgRepository.NewAirlineRepository(db, appLogger)
	taskRepo := pgRepository.NewTaskRepository(db, appLogger)
	appointmentRepo := pgRepository.NewAppointmentRepository(db, appLogger)
	companyRepo := pgRepository.NewCompanyRepository(db, appLogger)
	userRepo := pgRepository.NewUserRepository(db, appLogger)

	// Initialize usecases
	clientUsecase := usecase.NewClientUseCase(clientRepo, appLogger)
	quoteUsecase := usecase.NewQuoteUseCase(quoteRepo, clientRepo, appLogger)
	leadUsecase := usecase.NewLeadUseCase(
		leadRepo,
		taskRepo,
		quoteUsecase,
		redisClient,
		kafkaClient,
		cfg.Infrastructure.Kafka.Topics.LeadsChanged,
		time.Duration(cfg.Infrastructure.Redis.LeadCacheTTL)*time.Second,
		appLogger,
	)
	flightUsecase := usecase.NewFlightUseCase(flightRepo, quoteRepo, schedules, usecase.CheckInWindows{
		DomesticHours:      cfg.Integrations.FlightData.DomesticCheckInHours,
		InternationalHours: cfg.Integrations.FlightData.InternationalCheckInHours,
	}, appLogger)
	passengerUsecase := usecase.NewPassengerUseCase(passengerRepo, quoteRepo, clientRepo, flightRepo, appLogger)
	saleUsecase := usecase.NewSaleUseCase(quoteRepo, saleItemRepo, payableRepo, receivableRepo, appLogger)
	boardUsecase := usecase.NewBoardUseCase(quoteRepo, leadUsecase, saleUsecase, appLogger)
	financeUsecase := usecase.NewFinanceUseCase(payableRepo, receivableRepo, appLogger)
	agendaUsecase := usecase.NewAgendaUseCase(taskRepo, appointmentRepo, leadRepo, appLogger)
	lookupUsecase := usecase.NewLookupUseCase(supplierRepo, categoryRepo, methodRepo, airlineRepo, companyRepo, appLogger)
	adminUsecase := usecase.NewAdminUseCase(userRepo, companyRepo, jwtClient, cfg.Integrations.CRMBaseURL, appLogger)
	printUsecase, err := usecase.NewPrintUseCase(quoteRepo, companyRepo, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize print usecase", "error", err)
		os.Exit(1)
	}

	// Initialize the webhook proxy client
	var webhookClient httpclient.HTTPClient
	if cfg.Integrations.AutomationWebhookURL != "" {
		webhookClient = httpclient.New(
			httpclient.WithBaseURL(cfg.Integrations.AutomationWebhookURL),
		)
	}

	// Initialize handlers and the router
	router := &httpDelivery.Router{
		ClientHandler:    httpDelivery.NewClientHandler(clientUsecase, appLogger),
		LeadHandler:      httpDelivery.NewLeadHandler(leadUsecase, appLogger),
		QuoteHandler:     httpDelivery.NewQuoteHandler(quoteUsecase, appLogger),
		FlightHandler:    httpDelivery.NewFlightHandler(flightUsecase, appLogger),
		PassengerHandler: httpDelivery.NewPassengerHandler(passengerUsecase, clientUsecase, appLogger),
		SaleHandler:      httpDelivery.NewSaleHandler(saleUsecase, appLogger),
		BoardHandler:     httpDelivery.NewBoardHandler(boardUsecase, appLogger),
		FinanceHandler:   httpDelivery.NewFinanceHandler(financeUsecase, appLogger),
		AgendaHandler:    httpDelivery.NewAgendaHandler(agendaUsecase, appLogger),
		LookupHandler:    httpDelivery.NewLookupHandler(lookupUsecase, appLogger),
		PrintHandler:     httpDelivery.NewPrintHandler(printUsecase, appLogger),
		AdminHandler:     httpDelivery.NewAdminHandler(adminUsecase, appLogger),
		WebhookHandler:   httpDelivery.NewWebhookHandler(webhookClient, cfg.Integrations.AutomationWebhookURL, appLogger),
		HealthHandler:    httpDelivery.NewHealthHandler(appLogger),
		AdminServiceKey:  cfg.Security.AdminServiceKey,
		AppLogger:        appLogger,
	}

	// Setup routes
	httpHandler := router.SetupRoutes()

	// Start server
	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Create channel to listen for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start HTTP server in a separate goroutine
	go func() {
		appLogger.Info("Service starting", "name", cfg.Application.Name, "version", cfg.Application.Version, "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-quit
	appLogger.Info("Shutting down server...")

	// Create a context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Shutdown the server gracefully
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Close database connection
	if err := postgresClient.Close(); err != nil {
		appLogger.Warn("Error closing database connection", "error", err)
	}

	appLogger.Info("Server exited")
}
