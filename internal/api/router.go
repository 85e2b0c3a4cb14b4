package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/api/handler"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/ports"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/infrastructure/http/handlers"
)

// RouterDeps bundles everything the router wires together.
type RouterDeps struct {
	Verifier   ports.VerificationService
	AntiSpoof  ports.AntiSpoofingService
	Branches   ports.BranchRepository
	AuditRepo  ports.AuditRepository
	Dispatcher handler.AuditDispatcher
	Mongo      *mongo.Database
	Redis      *redis.Client
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("locver"))

	// --- Engine routes ---
	verificationHandler := handler.NewVerificationHandler(deps.Verifier, deps.AntiSpoof, deps.Branches, deps.Dispatcher)
	auditHandler := handler.NewAuditHandler(deps.AuditRepo)

	e.POST("/v1/locations/verify", verificationHandler.VerifyLocation)
	e.POST("/v1/clock-events/validate", verificationHandler.ValidateClockEvent)
	e.POST("/v1/movement/check", verificationHandler.CheckMovement)
	e.GET("/v1/audit/:employee_id", auditHandler.ListByEmployee)

	// --- Operational routes ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
