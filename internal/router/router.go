// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/academyhq/academy-admin/internal/config"
	"github.com/academyhq/academy-admin/internal/handler"
	"github.com/academyhq/academy-admin/internal/middleware"
)

// Handlers collects every handler the router needs. Fields are wired in
// main and must all be non-nil.
type Handlers struct {
	Auth       *handler.AuthHandler
	Venues     *handler.VenueHandler
	Players    *handler.PlayerHandler
	Coaches    *handler.CoachHandler
	Attendance *handler.AttendanceHandler
	CoachDash  *handler.CoachDashboardHandler
	ParentDash *handler.ParentDashboardHandler
}

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the full API surface. The staff endpoints are
// served without an auth gate: the admin frontend runs inside the academy
// network. The coach and parent dashboards carry the JWT gate plus a role
// check; their handlers additionally pin the caller to their own data.
func RegisterAPI(e *echo.Echo, h *Handlers, jwtSecret string, rdb *redis.Client) {
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)

	api := e.Group("/api", limiter)

	// session management
	api.POST("/signup", h.Auth.Signup)
	api.POST("/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.POST("/auth/logout", h.Auth.Logout)

	// venues
	api.GET("/venues-Details", h.Venues.ListVenues, cache)
	api.POST("/venue-data/add", h.Venues.AddVenue)
	api.DELETE("/venues-delete/:id", h.Venues.DeleteVenue)

	// players
	api.GET("/players-details", h.Players.ListPlayers, cache)
	api.POST("/players-add", h.Players.AddPlayer)
	api.GET("/Player-edit", h.Players.GetPlayerForEdit)
	api.PUT("/Player-Edit/:id", h.Players.UpdatePlayer)
	api.DELETE("/Player-Delete/:id", h.Players.DeletePlayer)
	api.GET("/players-agssign", h.Players.ListAssignments)
	api.POST("/update-coach", h.Players.AssignCoach)

	// coaches
	api.GET("/coach-details", h.Coaches.ListCoaches, cache)
	api.GET("/coaches-list", h.Coaches.ListCoachNames)
	api.POST("/coaches-add", h.Coaches.AddCoach)
	api.PUT("/coaches-update/:coach_id", h.Coaches.UpdateCoach)
	api.PUT("/coaches-deactivate/:coach_id", h.Coaches.DeactivateCoach)

	// coach dashboard
	coach := api.Group("", middleware.JWTAuth(jwtSecret), middleware.RequireRole("coach"))
	coach.POST("/attendance", h.Attendance.Record)
	coach.GET("/coach-data/:coachId", h.CoachDash.Roster)

	// parent dashboard
	parent := api.Group("", middleware.JWTAuth(jwtSecret), middleware.RequireRole("parent"))
	parent.GET("/player-details/:email", h.ParentDash.Children)

	// token introspection for any authenticated role
	me := api.Group("", middleware.JWTAuth(jwtSecret))
	me.GET("/me", h.Auth.Me)
}
