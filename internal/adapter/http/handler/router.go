package handler

import (
	"mbanq-accounts/internal/adapter/http/middleware"
	"mbanq-accounts/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultMaxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	AccountSvc     ports.AccountService
	KYCSvc         ports.KYCService
	LedgerSvc      ports.LedgerService
	TokenSvc       ports.TokenService
	AdminAuth      ports.AdminAuthenticator
	AuditSvc       ports.AuditService // nil = audit logging disabled
	HealthCheckers []ports.HealthChecker
	OpenAPISpec    []byte // nil = /swagger/spec serves 404
	MaxBodyBytes   int64  // 0 = 1 MB
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBody))
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := NewSwagger(deps.OpenAPISpec)
	r.GET("/swagger", swagger.UI)
	r.GET("/swagger/spec", swagger.Spec)

	api := r.Group("", middleware.Authenticate(deps.TokenSvc, deps.AdminAuth))
	admin := middleware.RequireAdmin()
	owner := middleware.RequireOwnerOrAdmin("id")
	session := middleware.RequireAccount()

	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := api.Group("/auth")
	{
		auth.POST("/login/email", authHandler.LoginEmail)
		auth.POST("/login/phone", authHandler.RequestOTP)
		auth.POST("/login/phone/verify", authHandler.VerifyOTP)
		auth.POST("/login/passcode", authHandler.LoginPasscode)
		auth.PUT("/password", session, authHandler.ChangePassword)
		auth.PUT("/passcode", session, authHandler.SetPasscode)
	}

	userHandler := NewUserHandler(deps.AccountSvc)
	users := api.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.GET("/me/dashboard", session, userHandler.Dashboard)
		users.GET("/admin/list", admin, userHandler.ListAccounts)
		users.DELETE("/admin/deactivate/:id", admin, userHandler.Deactivate)
		users.DELETE("/admin/delete/:id", admin, userHandler.Delete)
		users.PUT("/admin/update/:id", admin, userHandler.AdminUpdate)
		users.GET("/:id", owner, userHandler.GetProfile)
	}

	kycHandler := NewKYCHandler(deps.KYCSvc)
	kyc := api.Group("/kyc")
	{
		kyc.POST("/submit/:id", owner, kycHandler.Submit)
		kyc.PUT("/admin/verify/:id", admin, kycHandler.Decide)
		kyc.GET("/:id", owner, kycHandler.Status)
	}

	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	ledger := api.Group("/ledger")
	{
		ledger.POST("/admin/record/:id", admin, ledgerHandler.Record)
		ledger.GET("/:id/balance", owner, ledgerHandler.Balance)
		ledger.GET("/:id/transactions", owner, ledgerHandler.History)
	}

	return r
}
