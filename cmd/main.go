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

	checkAvailabilityHandler "github.com/m04kA/CBO-CourseService/internal/api/handlers/check_availability"
	commitSessionHandler "github.com/m04kA/CBO-CourseService/internal/api/handlers/commit_session"
	generateDatesHandler "github.com/m04kA/CBO-CourseService/internal/api/handlers/generate_dates"
	getIntervalDiscountsHandler "github.com/m04kA/CBO-CourseService/internal/api/handlers/get_interval_discounts"
	getOccupancyHandler "github.com/m04kA/CBO-CourseService/internal/api/handlers/get_occupancy"
	listSelectionsHandler "github.com/m04kA/CBO-CourseService/internal/api/handlers/list_selections"
	priceQuoteHandler "github.com/m04kA/CBO-CourseService/internal/api/handlers/price_quote"
	removeSelectionHandler "github.com/m04kA/CBO-CourseService/internal/api/handlers/remove_selection"
	stageSelectionHandler "github.com/m04kA/CBO-CourseService/internal/api/handlers/stage_selection"
	updateIntervalDiscountsHandler "github.com/m04kA/CBO-CourseService/internal/api/handlers/update_interval_discounts"
	"github.com/m04kA/CBO-CourseService/internal/api/middleware"
	"github.com/m04kA/CBO-CourseService/internal/config"
	selectionRepo "github.com/m04kA/CBO-CourseService/internal/infra/storage/selection"
	courseServiceClient "github.com/m04kA/CBO-CourseService/internal/integrations/courseservice"
	discountsService "github.com/m04kA/CBO-CourseService/internal/service/discounts"
	occupancyService "github.com/m04kA/CBO-CourseService/internal/service/occupancy"
	selectionsService "github.com/m04kA/CBO-CourseService/internal/service/selections"
	allocateSubgroupUC "github.com/m04kA/CBO-CourseService/internal/usecase/allocate_subgroup"
	checkConflictsUC "github.com/m04kA/CBO-CourseService/internal/usecase/check_conflicts"
	commitBookingUC "github.com/m04kA/CBO-CourseService/internal/usecase/commit_booking"
	generateDatesUC "github.com/m04kA/CBO-CourseService/internal/usecase/generate_dates"
	priceSelectionUC "github.com/m04kA/CBO-CourseService/internal/usecase/price_selection"
	"github.com/m04kA/CBO-CourseService/pkg/dbmetrics"
	"github.com/m04kA/CBO-CourseService/pkg/logger"
	"github.com/m04kA/CBO-CourseService/pkg/metrics"
	"github.com/m04kA/CBO-CourseService/pkg/simpletxmanager"
	"github.com/m04kA/CBO-CourseService/pkg/txmanager"
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

	log.Info("Starting CBO-CourseService...")
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

	// Инициализируем клиента persistence API курсов
	courseClient := courseServiceClient.NewClient(
		cfg.CourseService.URL,
		time.Duration(cfg.CourseService.Timeout)*time.Second,
		log,
	)
	log.Info("CourseService client initialized (url=%s, timeout=%ds)",
		cfg.CourseService.URL, cfg.CourseService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		selectionRepository *selectionRepo.Repository
		txMgr               TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		selectionRepository = selectionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		selectionRepository = selectionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем use cases
	generateDatesUseCase := generateDatesUC.NewUseCase(courseClient, log)
	allocateSubgroupUseCase := allocateSubgroupUC.NewUseCase(courseClient, log)
	checkConflictsUseCase := checkConflictsUC.NewUseCase(selectionRepository, courseClient, log)
	priceSelectionUseCase := priceSelectionUC.NewUseCase(courseClient, log)
	commitBookingUseCase := commitBookingUC.NewUseCase(
		selectionRepository,
		courseClient,
		checkConflictsUseCase,
		txMgr,
		log,
	)

	// Инициализируем сервисы
	selectionsSvc := selectionsService.NewService(selectionRepository, checkConflictsUseCase, log)
	discountsSvc := discountsService.NewService(courseClient, log)
	occupancySvc := occupancyService.NewService(courseClient, log)
	defer occupancySvc.Stop()

	// Инициализируем handlers
	generateDates := generateDatesHandler.NewHandler(generateDatesUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(allocateSubgroupUseCase, log)
	getOccupancy := getOccupancyHandler.NewHandler(occupancySvc, log)
	getIntervalDiscounts := getIntervalDiscountsHandler.NewHandler(discountsSvc, log)
	updateIntervalDiscounts := updateIntervalDiscountsHandler.NewHandler(discountsSvc, log)
	priceQuote := priceQuoteHandler.NewHandler(priceSelectionUseCase, log)
	stageSelection := stageSelectionHandler.NewHandler(selectionsSvc, log)
	listSelections := listSelectionsHandler.NewHandler(selectionsSvc, log)
	removeSelection := removeSelectionHandler.NewHandler(selectionsSvc, log)
	commitSession := commitSessionHandler.NewHandler(commitBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Проверка вместимости подгрупп на дате курса
	api.HandleFunc("/courses/{courseId}/dates/{dateId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Индикаторы занятости подгрупп интервала
	api.HandleFunc("/courses/{courseId}/intervals/{intervalId}/occupancy",
		getOccupancy.Handle).Methods(http.MethodGet)

	// Правила скидок интервала
	api.HandleFunc("/intervals/{intervalId}/discounts",
		getIntervalDiscounts.Handle).Methods(http.MethodGet)

	// Расчет цены выбранных дат
	api.HandleFunc("/pricing/quote", priceQuote.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание курса ---
	// Генерация дат интервала
	protected.HandleFunc("/courses/{courseId}/intervals/{intervalId}/generate-dates",
		generateDates.Handle).Methods(http.MethodPost)

	// Замена правил скидок интервала
	protected.HandleFunc("/intervals/{intervalId}/discounts",
		updateIntervalDiscounts.Handle).Methods(http.MethodPut)

	// --- Сессия бронирования ---
	// Постановка активности в сессию (с проверкой пересечений)
	protected.HandleFunc("/sessions/{sessionId}/selections",
		stageSelection.Handle).Methods(http.MethodPost)

	// Список staged-активностей сессии
	protected.HandleFunc("/sessions/{sessionId}/selections",
		listSelections.Handle).Methods(http.MethodGet)

	// Удаление staged-активности
	protected.HandleFunc("/sessions/{sessionId}/selections/{selectionId}",
		removeSelection.Handle).Methods(http.MethodDelete)

	// Фиксация сессии в backend
	protected.HandleFunc("/sessions/{sessionId}/commit",
		commitSession.Handle).Methods(http.MethodPost)

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
