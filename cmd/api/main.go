package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mbanq-accounts/config"
	httpHandler "mbanq-accounts/internal/adapter/http/handler"
	"mbanq-accounts/internal/adapter/messaging/rabbitmq"
	"mbanq-accounts/internal/adapter/storage/memory"
	pgStorage "mbanq-accounts/internal/adapter/storage/postgres"
	redisStorage "mbanq-accounts/internal/adapter/storage/redis"
	"mbanq-accounts/internal/core/ports"
	"mbanq-accounts/internal/service"
	"mbanq-accounts/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	openAPIPath     = "docs/api/openapi.yaml"
	shutdownTimeout = 10 * time.Second
)

// stores groups the repositories of whichever storage driver is selected.
type stores struct {
	accounts    ports.AccountRepository
	credentials ports.CredentialRepository
	addresses   ports.AddressRepository
	kyc         ports.KYCRepository
	ledger      ports.LedgerRepository
	audit       ports.AuditRepository
	tx          ports.DBTransactor
	health      []ports.HealthChecker
	close       func()
}

func main() {
	cfg, err := config.Load(os.Getenv("MBQ_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Str("otp_store", cfg.OTP.Store).
		Msg("Starting Mbanq accounts service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer st.close()

	var rdb *goredis.Client
	if cfg.Redis.Enabled {
		rdb, err = redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		st.health = append(st.health, redisStorage.NewHealthCheck(rdb))
		log.Info().Msg("Redis connected")
	}

	var otpStore ports.OTPStore
	if cfg.OTP.Store == config.DriverRedis {
		otpStore = redisStorage.NewOTPStore(rdb)
	} else {
		mem := memory.NewOTPStore()
		mem.StartReaper(ctx, cfg.OTP.ReapInterval, log)
		otpStore = mem
	}

	var idempotency ports.IdempotencyCache
	if rdb != nil {
		idempotency = redisStorage.NewIdempotencyCache(rdb)
	}

	publisher := openPublisher(cfg.RabbitMQ, logger.Component(log, "events"))
	defer publisher.Close()

	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	adminAuth, err := service.NewAdminAuthenticator(service.AdminCredentials{
		Name:         cfg.Admin.Name,
		Email:        cfg.Admin.Email,
		PhoneKey:     cfg.Admin.PhoneKey(),
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
		APIKey:       cfg.Admin.APIKey,
	}, hashSvc)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize admin authenticator")
	}
	if !cfg.Admin.HasAdminLogin() {
		log.Warn().Msg("No admin email login configured")
	}

	credSvc := service.NewCredentialService(st.credentials, hashSvc)
	otpSvc := service.NewOTPService(otpStore, publisher, cfg.OTP.TTL, logger.Component(log, "otp"))
	kycSvc := service.NewKYCService(st.accounts, st.kyc, st.addresses, st.tx, encSvc, sigSvc, cfg.AES.IndexKey, publisher, logger.Component(log, "kyc"))
	ledgerSvc := service.NewLedgerService(st.ledger, st.accounts, st.tx, idempotency, publisher, logger.Component(log, "ledger"))
	accountSvc := service.NewAccountService(
		st.accounts,
		st.addresses,
		st.kyc,
		credSvc,
		kycSvc,
		ledgerSvc,
		st.tx,
		publisher,
		cfg.App.WelcomeMessage,
		logger.Component(log, "accounts"),
	)
	authSvc := service.NewAuthService(st.accounts, credSvc, otpSvc, tokenSvc, adminAuth, accountSvc, cfg.App.WelcomeMessage, logger.Component(log, "auth"))
	auditSvc := service.NewAuditService(st.audit, logger.Component(log, "audit"))

	specBytes, err := os.ReadFile(openAPIPath)
	if err != nil {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
		specBytes = nil
	}

	gin.SetMode(cfg.Server.Mode)
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		AccountSvc:     accountSvc,
		KYCSvc:         kycSvc,
		LedgerSvc:      ledgerSvc,
		TokenSvc:       tokenSvc,
		AdminAuth:      adminAuth,
		AuditSvc:       auditSvc,
		HealthCheckers: st.health,
		OpenAPISpec:    specBytes,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Logger:         logger.Component(log, "http"),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	if cfg.Storage.Driver == config.DriverMemory {
		log.Warn().Msg("Using in-memory storage; data is lost on restart")
		m := memory.NewStore()
		return &stores{
			accounts:    m.Accounts(),
			credentials: m.Credentials(),
			addresses:   m.Addresses(),
			kyc:         m.KYC(),
			ledger:      m.Ledger(),
			audit:       m.Audit(),
			tx:          m,
			close:       func() {},
		}, nil
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	if cfg.Storage.Migrate {
		if err := pgStorage.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, err
		}
	}
	log.Info().Msg("PostgreSQL connected")

	return &stores{
		accounts:    pgStorage.NewAccountRepo(pool),
		credentials: pgStorage.NewCredentialRepo(pool),
		addresses:   pgStorage.NewAddressRepo(pool),
		kyc:         pgStorage.NewKYCRepo(pool),
		ledger:      pgStorage.NewLedgerRepo(pool),
		audit:       pgStorage.NewAuditRepo(pool),
		tx:          pgStorage.NewTransactor(pool, log),
		health:      []ports.HealthChecker{pgStorage.NewHealthCheck(pool)},
		close:       pool.Close,
	}, nil
}

// openPublisher falls back to logging events when no broker is configured
// or reachable, so OTP codes still reach an operator.
func openPublisher(cfg config.RabbitMQConfig, log zerolog.Logger) ports.EventPublisher {
	if cfg.URL == "" {
		log.Warn().Msg("No RabbitMQ URL configured, events are logged only")
		return rabbitmq.NewLogPublisher(log)
	}
	p, err := rabbitmq.NewPublisher(cfg.URL, cfg.Exchange, log)
	if err != nil {
		log.Error().Err(err).Msg("RabbitMQ unavailable, events are logged only")
		return rabbitmq.NewLogPublisher(log)
	}
	log.Info().Str("exchange", cfg.Exchange).Msg("RabbitMQ connected")
	return p
}
