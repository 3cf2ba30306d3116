package http

import (
	"github.com/gin-gonic/gin"

	"intent-router/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.POST("/classify", h.Classify)
	rg.POST("/candidates", h.Candidates)
	rg.POST("/multi-intent", h.MultiIntent)
	rg.POST("/slots", h.ExtractSlots)

	disambiguation := rg.Group("/disambiguation")
	{
		disambiguation.POST("", h.Disambiguate)
		disambiguation.POST("/resolve", h.Resolve)
	}

	intents := rg.Group("/intents")
	{
		intents.GET("", h.ListIntents)
		intents.GET("/:name", h.IntentDetail)
	}

	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:id", h.SessionContext)
		sessions.GET("/:id/next", h.NextPending)
		sessions.DELETE("/:id", h.ClearSession)
	}
}
