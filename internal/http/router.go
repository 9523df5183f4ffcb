package api

import (
	stdhttp "net/http"

	intconfig "skyrio/internal/config"
	h "skyrio/internal/http/handlers"
	"skyrio/internal/http/middleware"
	"skyrio/internal/repositories"
	"skyrio/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Deps are the long-lived collaborators the router wires into handlers.
type Deps struct {
	Airports *repositories.AirportRepository
	// Chat replaces the placeholder Atlas responder when set.
	Chat     h.ChatResponder
	Redis    *redis.Client
	Logger   *zap.Logger
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger), middleware.Recovery(logger), middleware.CORS(env.CORSOrigins))

	if deps.Redis != nil && env.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(deps.Redis, env.RateLimitRPS, logger))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })
	r.NoRoute(h.NotFound)

	airports := services.AirportService{Repo: deps.Airports, Logger: logger}
	var chat h.ChatResponder = services.ChatService{Reply: env.AtlasReply, Logger: logger}
	if deps.Chat != nil {
		chat = deps.Chat
	}
	budget := services.BudgetService{}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes(r))

		api.GET("/airports", h.SearchAirports(airports))

		ai := api.Group("/ai", h.AtlasRecovery(logger))
		ai.POST("/chat", h.AtlasChat(chat, logger))

		api.POST("/budget/pace", h.PaceBudget(budget))
	}

	return r
}
