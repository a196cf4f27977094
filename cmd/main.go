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

	cancelBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_booking"
	getCancellationPolicyHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_cancellation_policy"
	getSessionHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_session"
	getUserBookingsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_user_bookings"
	listRoomsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/list_rooms"
	oauthSignInHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/oauth_sign_in"
	signInHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/sign_in"
	signOutHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/sign_out"
	signUpHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/sign_up"
	submitPaymentHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/submit_payment"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/config"
	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/internal/infra/cache"
	"github.com/m04kA/SMC-HotelBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBookingService/internal/infra/throttle"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/identity"
	authService "github.com/m04kA/SMC-HotelBookingService/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	roomsService "github.com/m04kA/SMC-HotelBookingService/internal/service/rooms"
	createBookingUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
	submitPaymentUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/submit_payment"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/jwtverifier"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/metrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/txmanager"
)

const throttlePrefix = "hotel:throttle:"

// Издатель событий, закрываемый при остановке
type closablePublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
	Close() error
}

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

	log.Info("Starting SMC-HotelBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены). nil коллектор безопасен для всех Record* методов
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

	// Без метрик обёртка работает как прозрачный прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	roomRepository := roomRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)

	// Redis: кэш каталога и cool-down форм. Без Redis cool-down хранится в памяти процесса
	var (
		roomsCache   roomsService.RoomsCache
		formThrottle createBookingUC.Throttle
	)

	if cfg.Redis.Enabled {
		redisClient, err := cache.NewClient(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()

		roomsCache = cache.NewRoomsCache(redisClient, time.Duration(cfg.Redis.RoomsCacheTTL)*time.Second)
		formThrottle = throttle.NewRedisThrottle(redisClient, throttlePrefix)
		log.Info("Redis enabled (addr=%s, rooms_cache_ttl=%ds)", cfg.Redis.Addr, cfg.Redis.RoomsCacheTTL)
	} else {
		formThrottle = throttle.NewMemoryThrottle()
		log.Info("Redis disabled, using in-memory cool-down")
	}

	// Kafka: события жизненного цикла бронирований
	var publisher closablePublisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.BookingEventsTopic, log)
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.BookingEventsTopic)
	}

	// Инициализируем интеграцию с провайдером идентификации
	identityClient := identity.NewClient(
		cfg.Auth.ProviderURL,
		cfg.Auth.APIKey,
		time.Duration(cfg.Auth.Timeout)*time.Second,
		log,
	)
	verifier := jwtverifier.New(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenLeeway)*time.Second)
	log.Info("Identity provider client initialized (url=%s timeout=%ds)", cfg.Auth.ProviderURL, cfg.Auth.Timeout)

	cooldown := cfg.Booking.SubmitCooldown()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)
	roomSvc := roomsService.NewService(roomRepository, roomsCache, log)
	authSvc := authService.NewService(identityClient, formThrottle, cooldown, cfg.Auth.OAuthRedirectURL, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		roomRepository,
		bookingRepository,
		txMgr,
		formThrottle,
		publisher,
		metricsCollector,
		createBookingUC.Options{
			PreventOverlap: cfg.Booking.PreventOverlap,
			Cooldown:       cooldown,
		},
		log,
	)

	submitPaymentUseCase := submitPaymentUC.NewUseCase(
		bookingSvc,
		submitPaymentUC.NewRandomAuthorizer(cfg.Payment.SuccessProbability),
		formThrottle,
		publisher,
		metricsCollector,
		submitPaymentUC.ConfirmMode(cfg.Payment.ConfirmMode),
		cooldown,
		log,
	)
	log.Info("Booking flow configured (prevent_overlap=%t, confirm_mode=%s, success_probability=%.2f)",
		cfg.Booking.PreventOverlap, cfg.Payment.ConfirmMode, cfg.Payment.SuccessProbability)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getCancellationPolicy := getCancellationPolicyHandler.NewHandler(domain.DefaultCancellationPolicy())
	signIn := signInHandler.NewHandler(authSvc, log)
	signUp := signUpHandler.NewHandler(authSvc, log)
	signOut := signOutHandler.NewHandler(authSvc, log)
	oauthSignIn := oauthSignInHandler.NewHandler(authSvc, log)
	getSession := getSessionHandler.NewHandler(authSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	submitPayment := submitPaymentHandler.NewHandler(submitPaymentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.ForwardedFor(cfg.Server.TrustForwardedFor))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог доступных номеров
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)

	// Правила отмены (описательные)
	api.HandleFunc("/policies/cancellation", getCancellationPolicy.Handle).Methods(http.MethodGet)

	// --- Аутентификация ---
	api.HandleFunc("/auth/sign-in", signIn.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/sign-up", signUp.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/oauth/{provider}", oauthSignIn.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <access token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(verifier, log))

	// --- Сессия ---
	protected.HandleFunc("/auth/session", getSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/auth/sign-out", signOut.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Оплата бронирования
	protected.HandleFunc("/bookings/{bookingId}/payments", submitPayment.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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

	if err := publisher.Close(); err != nil {
		log.Error("Failed to close event publisher: %v", err)
	}

	log.Info("Server stopped gracefully")
}
