package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"lostfound-backend/internal/adapter/middleware"
)

type Handlers struct {
	Health        *Handler
	Items         *ItemHandler
	Matches       *MatchHandler
	Claims        *ClaimHandler
	Notifications *NotificationHandler
}

type RouterConfig struct {
	JWTSecret []byte
	// nil disables request idempotency
	Redis          *redis.Client
	IdempotencyTTL time.Duration
	Metrics        http.Handler
	Logger         *zap.Logger
}

func NewRouter(h Handlers, cfg RouterConfig) *echo.Echo {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger.Named("http")))

	e.GET("/health", h.Health.Health)
	if cfg.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics))
	}

	api := e.Group("", middleware.Authenticate(cfg.JWTSecret))
	idem := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	if cfg.Redis != nil {
		idem = middleware.Idempotency(cfg.Redis, cfg.IdempotencyTTL, logger.Named("idempotency"))
	}

	api.POST("/items/lost", h.Items.ReportLost, idem)
	api.POST("/items/found", h.Items.ReportFound, idem)
	api.GET("/items", h.Items.ListMine)
	api.GET("/items/lost/:id", h.Items.GetLost)
	api.PUT("/items/lost/:id", h.Items.UpdateLost)
	api.POST("/items/lost/:id/close", h.Items.CloseLost)
	api.GET("/items/found/:id", h.Items.GetFound)
	api.PUT("/items/found/:id", h.Items.UpdateFound)

	api.GET("/matches", h.Matches.ListMine)

	api.POST("/claims", h.Claims.Submit, idem)

	api.GET("/notifications", h.Notifications.Recent)
	api.GET("/notifications/unread-count", h.Notifications.UnreadCount)
	api.POST("/notifications/read-all", h.Notifications.MarkAllRead)
	api.POST("/notifications/:id/read", h.Notifications.MarkRead)
	api.DELETE("/notifications/:id", h.Notifications.Delete)

	admin := api.Group("/admin")
	admin.GET("/claims", h.Claims.List)
	admin.POST("/claims/:id/approve", h.Claims.Approve)
	admin.POST("/claims/:id/reject", h.Claims.Reject)
	admin.POST("/claims/:id/link", h.Claims.LinkItem)
	admin.POST("/matching/run", h.Matches.Run)

	return e
}
