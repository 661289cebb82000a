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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers/check_availability"
	createHolidayRuleHandler "github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers/create_holiday_rule"
	createReservationHandler "github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers/create_reservation"
	deleteDateOverrideHandler "github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers/delete_date_override"
	getCalendarConfigHandler "github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers/get_calendar_config"
	getCategoryReservationsHandler "github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers/get_category_reservations"
	getGuestReservationsHandler "github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers/get_guest_reservations"
	getPriceCalendarHandler "github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers/get_price_calendar"
	getReservationHandler "github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers/get_reservation"
	quotePriceHandler "github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers/quote_price"
	updateHolidayRuleHandler "github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers/update_holiday_rule"
	updateReservationStatusHandler "github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers/update_reservation_status"
	upsertDateOverrideHandler "github.com/m04kA/HMS-RoomInventoryService/internal/api/handlers/upsert_date_override"
	"github.com/m04kA/HMS-RoomInventoryService/internal/api/middleware"
	"github.com/m04kA/HMS-RoomInventoryService/internal/config"
	calendarRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/calendar"
	categoryRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/category"
	reservationRepo "github.com/m04kA/HMS-RoomInventoryService/internal/infra/storage/reservation"
	lunarCalendarClient "github.com/m04kA/HMS-RoomInventoryService/internal/integrations/lunarcalendar"
	notifyServiceClient "github.com/m04kA/HMS-RoomInventoryService/internal/integrations/notifyservice"
	"github.com/m04kA/HMS-RoomInventoryService/internal/pricing"
	calendarService "github.com/m04kA/HMS-RoomInventoryService/internal/service/calendar"
	reservationsService "github.com/m04kA/HMS-RoomInventoryService/internal/service/reservations"
	checkAvailabilityUC "github.com/m04kA/HMS-RoomInventoryService/internal/usecase/check_availability"
	createReservationUC "github.com/m04kA/HMS-RoomInventoryService/internal/usecase/create_reservation"
	quotePriceUC "github.com/m04kA/HMS-RoomInventoryService/internal/usecase/quote_price"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/dbmetrics"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/logger"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/metrics"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/simpletxmanager"
	"github.com/m04kA/HMS-RoomInventoryService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
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

	log.Info("Starting HMS-RoomInventoryService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем интеграционных клиентов
	lunarClient := lunarCalendarClient.NewClient(
		cfg.LunarCalendar.URL,
		time.Duration(cfg.LunarCalendar.Timeout)*time.Second,
		log,
	)
	log.Info("Lunar calendar client initialized (url=%s, timeout=%ds)",
		cfg.LunarCalendar.URL, cfg.LunarCalendar.Timeout)

	var notifyClient createReservationUC.NotifyServiceClient
	if cfg.Notifications.Enabled {
		notifyClient = notifyServiceClient.NewClient(
			cfg.Notifications.URL,
			time.Duration(cfg.Notifications.Timeout)*time.Second,
			log,
		)
		log.Info("Notification client initialized (url=%s, timeout=%ds)",
			cfg.Notifications.URL, cfg.Notifications.Timeout)
	}

	// Опции транзакции бронирования
	txOpts := txmanager.Options{
		Timeout:    time.Duration(cfg.Booking.ReserveTimeoutSeconds) * time.Second,
		MaxRetries: cfg.Booking.ReserveMaxRetries,
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		categoryRepository    *categoryRepo.Repository
		calendarRepository    *calendarRepo.Repository
	)

	var txMgr createReservationUC.TransactionManager
	var usecaseMetrics createReservationUC.Metrics

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		categoryRepository = categoryRepo.NewRepository(wrappedDB)
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB, txOpts)
		usecaseMetrics = metricsCollector
	} else {
		// Инициализируем репозитории без метрик
		reservationRepository = reservationRepo.NewRepository(db)
		categoryRepository = categoryRepo.NewRepository(db)
		calendarRepository = calendarRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db, txOpts)
	}

	// Ценовой калькулятор (общий для quote_price и create_reservation)
	calculator := pricing.NewCalculator(lunarClient, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		reservationRepository,
		categoryRepository,
		log,
	)

	quotePriceUseCase := quotePriceUC.NewUseCase(
		categoryRepository,
		calendarRepository,
		calculator,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		categoryRepository,
		calendarRepository,
		notifyClient,
		txMgr,
		calculator,
		usecaseMetrics,
		log,
	)

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		categoryRepository,
		log,
	)
	calendarSvc := calendarService.NewService(
		calendarRepository,
		categoryRepository,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	getPriceCalendar := getPriceCalendarHandler.NewHandler(quotePriceUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	getCategoryReservations := getCategoryReservationsHandler.NewHandler(reservationSvc, log)
	getGuestReservations := getGuestReservationsHandler.NewHandler(reservationSvc, log)
	getCalendarConfig := getCalendarConfigHandler.NewHandler(calendarSvc, log)
	upsertDateOverride := upsertDateOverrideHandler.NewHandler(calendarSvc, log)
	deleteDateOverride := deleteDateOverrideHandler.NewHandler(calendarSvc, log)
	createHolidayRule := createHolidayRuleHandler.NewHandler(calendarSvc, log)
	updateHolidayRule := updateHolidayRuleHandler.NewHandler(calendarSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности категории на диапазон дат
	api.HandleFunc("/categories/{categoryId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Расчет стоимости проживания
	api.HandleFunc("/categories/{categoryId}/quote",
		quotePrice.Handle).Methods(http.MethodGet)

	// Цены на календарный месяц
	api.HandleFunc("/categories/{categoryId}/price-calendar",
		getPriceCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID или UUID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Переход статуса бронирования (административный workflow)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// История бронирований гостя
	protected.HandleFunc("/guests/reservations", getGuestReservations.Handle).Methods(http.MethodGet)

	// --- Управление категорией (для администраторов) ---
	// Список бронирований категории
	protected.HandleFunc("/categories/{categoryId}/reservations", getCategoryReservations.Handle).Methods(http.MethodGet)

	// Ценовой календарь категории
	protected.HandleFunc("/categories/{categoryId}/calendar", getCalendarConfig.Handle).Methods(http.MethodGet)

	// Переопределение цены на дату
	protected.HandleFunc("/categories/{categoryId}/calendar/overrides", upsertDateOverride.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/categories/{categoryId}/calendar/overrides/{date}", deleteDateOverride.Handle).Methods(http.MethodDelete)

	// Праздничные правила
	protected.HandleFunc("/categories/{categoryId}/calendar/holidays", createHolidayRule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/calendar/holidays/{ruleId}/active", updateHolidayRule.Handle).Methods(http.MethodPatch)

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
