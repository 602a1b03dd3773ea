// Package router defines how HTTP routes are registered for the API.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/figmm/event-seat-reservation/internal/config"
	"github.com/figmm/event-seat-reservation/internal/handler"
	"github.com/figmm/event-seat-reservation/internal/middleware"
)

// RegisterRoutes registers the health check, the static assets (logo
// and floor-plan reference images) and the JSON not-found fallback.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.Static("/assets", "web/assets")
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error":   "not_found",
			"message": "Página no encontrada",
		})
	})
}

// RegisterAcceso registers the access gate. The route is rate limited
// per client IP since no identity exists before the code validates.
func RegisterAcceso(e *echo.Echo, h *handler.AccessHandler, rdb *redis.Client) {
	e.POST("/v1/acceso", h.ValidarCodigo,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
}

// RegisterVenue registers the read-only seat map endpoints. The full
// venue read sits behind the Redis response cache; the viewport and
// info endpoints are cheap and uncached.
func RegisterVenue(e *echo.Echo, h *handler.VenueHandler, rdb *redis.Client) {
	e.GET("/v1/venue", h.GetVenue,
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	e.GET("/v1/venue/viewport", h.GetViewport)
	e.GET("/v1/venue/info", h.GetInfo)
}

// RegisterReservas registers the reservation commit and the result
// projection consumed by the success and details screens.
func RegisterReservas(e *echo.Echo, h *handler.ReservaHandler) {
	e.POST("/v1/reservas", h.Crear)
	e.GET("/v1/reservas/latest", h.Latest)
}
