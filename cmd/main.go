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
	"github.com/rs/cors"

	approveBookingHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/approve_booking"
	attemptBookingHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/attempt_booking"
	cancelBookingHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/cancel_booking"
	exportBookingsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/export_bookings"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_slots"
	getSettingsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_settings"
	listBookingsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_bookings"
	togglePaidHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/toggle_paid"
	updateProfileHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_profile"
	updateSettingsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/api/ws"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/document"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
	notifierClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/notifier"
	"github.com/m04kA/SMC-AppointmentService/internal/overlay"
	bookingsService "github.com/m04kA/SMC-AppointmentService/internal/service/bookings"
	moderationService "github.com/m04kA/SMC-AppointmentService/internal/service/moderation"
	settingsService "github.com/m04kA/SMC-AppointmentService/internal/service/settings"
	"github.com/m04kA/SMC-AppointmentService/internal/syncbus"
	attemptBookingUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/attempt_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
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

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Шина изменений: каждая успешная запись публикует событие,
	// WebSocket-хаб транслирует его открытым представлениям
	bus := syncbus.New()

	// Документное хранилище и репозитории поверх него
	store := document.NewPostgresStore(db)
	if cfg.Metrics.Enabled {
		store.WithMetrics(metricsCollector)
		bus.WithMetrics(metricsCollector)
	}
	bookingRepository := bookingRepo.NewRepository(store, bus)

	// Стартовые настройки чистой базы: телефон администратора приходит
	// из конфигурации, иначе модерация была бы недоступна
	bootstrap := domain.DefaultSettings()
	bootstrap.MasterName = cfg.Service.MasterName
	bootstrap.AdminPhone = cfg.Service.AdminPhone
	settingsRepository := settingsRepo.NewRepository(store, bus).WithDefaults(bootstrap)

	// Реестр сессионных оверлеев (двухфазные пометки слотов)
	overlays := overlay.NewRegistry()

	// Клиент сервиса уведомлений
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	log.Info("Notifier client initialized (url=%s, timeout=%ds)",
		cfg.Notifier.URL, cfg.Notifier.Timeout)

	// Инициализируем сервисы
	moderationSvc := moderationService.NewService(
		bookingRepository,
		settingsRepository,
		notifier,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		settingsRepository,
		log,
	)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	attemptBookingUseCase := attemptBookingUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		overlays,
		notifier,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		overlays,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	attemptBooking := attemptBookingHandler.NewHandler(attemptBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingsSvc, log)
	approveBooking := approveBookingHandler.NewHandler(moderationSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(moderationSvc, log)
	togglePaid := togglePaidHandler.NewHandler(moderationSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	updateProfile := updateProfileHandler.NewHandler(bookingsSvc, log)

	// WebSocket-хаб поверх шины изменений
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()

	hub := ws.NewHub(bus, log)
	go hub.Run(hubCtx)

	// После каждой записи коллекции подтвержденные пометки сессий
	// снимаются: занятость слота дальше видна из самой коллекции
	go overlays.Run(hubCtx, bus)

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
	// PUBLIC ROUTES (identity опциональна)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.WithIdentity)

	// Слоты дня с признаком доступности
	public.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Чтение настроек (рабочее окно, каталог услуг)
	public.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// WebSocket: трансляция событий изменений
	public.HandleFunc("/ws", hub.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-Name и X-User-Phone)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Попытка бронирования слота
	protected.HandleFunc("/bookings", attemptBooking.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрацией (только админ)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Снимок для экспорта (только админ)
	protected.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)

	// --- Модерация ---
	// Подтверждение бронирования (только админ)
	protected.HandleFunc("/bookings/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования (владелец или админ)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Переключение отметки оплаты (только админ)
	protected.HandleFunc("/bookings/{bookingId}/paid", togglePaid.Handle).Methods(http.MethodPatch)

	// --- Настройки и профиль ---
	// Обновление настроек (только админ)
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Обновление профиля с переносом identity в бронирования
	protected.HandleFunc("/profile", updateProfile.Handle).Methods(http.MethodPut)

	// CORS: сервис обслуживает браузерные клиенты напрямую
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Content-Type", "X-User-Name", "X-User-Phone",
			"X-User-Email", "X-User-Instagram", "X-Session-ID",
		},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	// Останавливаем трансляцию событий
	stopHub()

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
