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

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getAvailableSlotsHandler "github.com/consultly/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/consultly/booking-service/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/consultly/booking-service/internal/api/handlers/get_bookings"
	getMeetingHandler "github.com/consultly/booking-service/internal/api/handlers/get_meeting"
	getMeetingServicesHandler "github.com/consultly/booking-service/internal/api/handlers/get_meeting_services"
	healthHandler "github.com/consultly/booking-service/internal/api/handlers/health"
	submitBookingHandler "github.com/consultly/booking-service/internal/api/handlers/submit_booking"
	"github.com/consultly/booking-service/internal/api/middleware"
	"github.com/consultly/booking-service/internal/config"
	"github.com/consultly/booking-service/internal/infra/storage/booking"
	"github.com/consultly/booking-service/internal/meetings"
	googleProvider "github.com/consultly/booking-service/internal/meetings/google"
	"github.com/consultly/booking-service/internal/meetings/simple"
	"github.com/consultly/booking-service/internal/notifier"
	"github.com/consultly/booking-service/internal/scheduler"
	bookingsService "github.com/consultly/booking-service/internal/service/bookings"
	getAvailableSlotsUC "github.com/consultly/booking-service/internal/usecase/get_available_slots"
	submitBookingUC "github.com/consultly/booking-service/internal/usecase/submit_booking"
	"github.com/consultly/booking-service/pkg/dbmetrics"
	"github.com/consultly/booking-service/pkg/logger"
	"github.com/consultly/booking-service/pkg/metrics"
)

func main() {
	// Загружаем .env, если он есть; секреты попадают в окружение до чтения конфига
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
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

	log.Info("Starting consultation booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозиторий бронирований (с метриками или без)
	var bookingRepository *booking.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		bookingRepository = booking.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		bookingRepository = booking.NewRepository(db)
	}

	// Провайдер встреч выбирается один раз на старте
	provider, err := buildMeetingProvider(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize meeting provider: %v", err)
	}
	log.Info("Meeting provider initialized: %s", cfg.Meeting.Provider)

	// Почтовый нотификатор; без учетных данных работает в режиме no-op
	emailNotifier := notifier.NewEmailNotifier(notifier.SMTPOptions{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log, metricsCollector)
	if emailNotifier.Configured() {
		log.Info("Email notifications enabled (host=%s, port=%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	}

	// Инициализируем сервисы и use cases
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(bookingRepository, provider, emailNotifier, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(log)

	// Инициализируем handlers
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getMeeting := getMeetingHandler.NewHandler(provider, log)
	getMeetingServices := getMeetingServicesHandler.NewHandler()
	health := healthHandler.NewHandler(cfg.Metrics.ServiceName)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API виджета бронирования; все маршруты публичные
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/book", submitBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/meeting/{meetingId}", getMeeting.Handle).Methods(http.MethodGet)
	api.HandleFunc("/meeting-services", getMeetingServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Виджет встраивается через iframe с чужих доменов, поэтому CORS открытый
	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{"*"}),
		gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	// Запускаем планировщик напоминаний
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()

	if cfg.Scheduler.Enabled {
		sweeper := scheduler.NewReminderSweeper(
			bookingRepository,
			emailNotifier,
			time.Duration(cfg.Scheduler.IntervalSeconds)*time.Second,
			time.Duration(cfg.Scheduler.ReminderLeadMinutes)*time.Minute,
			log,
			metricsCollector,
		)
		go sweeper.Run(schedulerCtx)
	} else {
		log.Warn("Reminder scheduler is disabled by configuration")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      cors(r),
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем планировщик и сбор метрик
	stopScheduler()
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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

// buildMeetingProvider выбирает провайдера встреч по конфигурации
func buildMeetingProvider(cfg *config.Config, log *logger.Logger) (meetings.Provider, error) {
	switch cfg.Meeting.Provider {
	case "google":
		return googleProvider.NewProvider(context.Background(), googleProvider.Options{
			ClientID:     cfg.Meeting.GoogleClientID,
			ClientSecret: cfg.Meeting.GoogleClientSecret,
			TokenFile:    cfg.Meeting.GoogleTokenFile,
			CalendarID:   cfg.Meeting.GoogleCalendarID,
		}, log)
	default:
		return simple.NewGenerator(), nil
	}
}
