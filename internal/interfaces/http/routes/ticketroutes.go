package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			config.RateLimiter.Limit(),
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.AuthMiddleware.OptionalAuth(),
			config.TicketHandler.ListTickets)

		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.GET("/stats",
			config.TicketHandler.GetStats)

		// Per-ticket action endpoints
		tickets.POST("/:id/vote",
			config.RateLimiter.Limit(),
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.ApplyVote)
		tickets.POST("/:id/replies",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.ReplyTicket)
		tickets.POST("/:id/close",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.CloseTicket)
		tickets.POST("/:id/suggest-reply",
			config.AuthMiddleware.RequireAuth(),
			config.TicketHandler.SuggestReply)
		tickets.GET("/:id/permissions",
			config.AuthMiddleware.OptionalAuth(),
			config.TicketHandler.GetPermissions)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.AuthMiddleware.OptionalAuth(),
			config.TicketHandler.GetTicket)
	}
}
