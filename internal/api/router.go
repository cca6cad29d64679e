package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hostaly/rooms-api/internal/api/handler"
	"github.com/hostaly/rooms-api/internal/api/middleware"
	"github.com/hostaly/rooms-api/internal/core/domain"
	"github.com/hostaly/rooms-api/internal/core/ports"
)

// Dependencies carries everything the router composes. Services and token
// plumbing are interfaces so the full pipeline is testable without real
// storage; Mongo and Redis are only needed for the readiness probe and may
// be nil in tests.
type Dependencies struct {
	Auth     ports.AuthService
	Rooms    ports.RoomService
	Verifier ports.TokenVerifier
	Revoker  ports.TokenRevoker
	Mongo    *mongo.Database
	Redis    *redis.Client
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Protected routes run Auth before RBAC before the handler; a short-circuit
// in either middleware stops the chain.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rooms"))

	// --- Auth pipeline ---
	authn := middleware.Auth(deps.Verifier, deps.Revoker)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Users ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	users := e.Group("/api/v1/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/logout", authHandler.Logout, authn)

	// --- Room inventory ---
	roomHandler := handler.NewRoomHandler(deps.Rooms)
	v1 := e.Group("/api/v1")
	v1.GET("/rooms-types", roomHandler.ListRoomTypes)
	v1.POST("/rooms-types", roomHandler.CreateRoomType, authn, adminOnly)
	v1.GET("/rooms", roomHandler.ListRooms)
	v1.POST("/rooms", roomHandler.CreateRoom, authn, adminOnly)
	v1.PATCH("/rooms/:roomId", roomHandler.UpdateRoom, authn, adminOnly)
	v1.DELETE("/rooms/:roomId", roomHandler.DeleteRoom, authn, adminOnly)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", handler.NewHealthHandler().Liveness)
	if deps.Mongo != nil && deps.Redis != nil {
		readiness := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
		e.GET("/health/ready", readiness.Readiness)
	}

	return e
}
