package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkCollisionHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/check_collision"
	createBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_slots"
	getBookableDaysHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_bookable_days"
	getBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_booking"
	getFirstAvailableHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_first_available"
	getStaffBookingsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_staff_bookings"
	getVenueHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_venue"
	listServicesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/list_services"
	snapBookingTimeHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/snap_booking_time"
	updateBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_booking"
	updateBusinessHoursHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_business_hours"
	upsertServicesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/upsert_services"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	venueCache "github.com/m04kA/SMC-SalonBooking/internal/infra/cache/venue"
	bookingRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/booking"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
	venueRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/venue"
	staffServiceClient "github.com/m04kA/SMC-SalonBooking/internal/integrations/staffservice"
	bookingsService "github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	venuesService "github.com/m04kA/SMC-SalonBooking/internal/service/venues"
	checkCollisionUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/check_collision"
	createBookingUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	getBookableDaysUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_bookable_days"
	getFirstAvailableUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_first_available"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/schedule"
	snapBookingTimeUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/snap_booking_time"
	updateBookingUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/update_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

// venueStore репозиторий площадок: PostgreSQL или PostgreSQL за кешем Redis
type venueStore interface {
	schedule.VenueRepository
	venuesService.VenueRepository
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены). nil-коллектор безопасен для всех вызовов.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)

	var venues venueStore = venueRepo.NewRepository(wrappedDB)

	// Кеш площадок (если задан адрес Redis)
	if cfg.Redis.Address != "" {
		redisClient, err := venueCache.NewRedisClient(context.Background(),
			cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()

		venues = venueCache.NewCachedRepository(
			venues,
			redisClient,
			time.Duration(cfg.Cache.VenueTTL)*time.Second,
			metricsCollector,
			log,
		)
		log.Info("Venue cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Address, cfg.Cache.VenueTTL)
	}

	// Транзакции с повтором при ошибках сериализации
	txMgr := txmanager.NewTransactionManager(
		wrappedDB,
		txmanager.WithMaxRetries(cfg.Booking.TxMaxRetries),
		txmanager.WithObserver(metricsCollector),
	)

	// Инициализируем интеграционных клиентов
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StaffService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Движок доступности
	engine, err := availability.NewEngine(availability.Config{StepMinutes: cfg.Booking.SlotStepMinutes})
	if err != nil {
		log.Fatal("Failed to create availability engine: %v", err)
	}

	loader := schedule.NewLoader(venues, serviceRepository, bookingRepository, log)
	verifier := schedule.NewStaffVerifier(staffClient, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	venueSvc := venuesService.NewService(venues, log)
	catalogSvc := catalogService.NewService(
		serviceRepository,
		venues,
		txMgr,
		cfg.Booking.ServiceLengthChunkMinutes,
		log,
	)

	// Инициализируем use cases
	checkCollisionUseCase := checkCollisionUC.NewUseCase(loader, engine, metricsCollector, log)
	getFirstAvailableUseCase := getFirstAvailableUC.NewUseCase(loader, engine, metricsCollector, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(loader, engine, metricsCollector, log)
	getBookableDaysUseCase := getBookableDaysUC.NewUseCase(loader, engine, metricsCollector, log)
	snapBookingTimeUseCase := snapBookingTimeUC.NewUseCase(loader, engine, metricsCollector, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		loader,
		verifier,
		engine,
		txMgr,
		metricsCollector,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		loader,
		verifier,
		engine,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	checkCollision := checkCollisionHandler.NewHandler(checkCollisionUseCase, log)
	getFirstAvailable := getFirstAvailableHandler.NewHandler(getFirstAvailableUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBookableDays := getBookableDaysHandler.NewHandler(getBookableDaysUseCase, log)
	snapBookingTime := snapBookingTimeHandler.NewHandler(snapBookingTimeUseCase, log)
	getVenue := getVenueHandler.NewHandler(venueSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(venueSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	upsertServices := upsertServicesHandler.NewHandler(catalogSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getStaffBookings := getStaffBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Доступность ---
	api.HandleFunc("/venues/{venueId}/availability/collision", checkCollision.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/availability/first", getFirstAvailable.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/availability/days", getBookableDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/availability/snap", snapBookingTime.Handle).Methods(http.MethodGet)

	// --- Площадки и услуги ---
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}/services", listServices.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление площадкой ---
	protected.HandleFunc("/venues/{venueId}/business-hours", updateBusinessHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services/upsert-many", upsertServices.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/staff/{staffId}/bookings", getStaffBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
