package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/phonecustody/internal/handler"
	"github.com/deppfellow/phonecustody/static"
)

// registerSystemRoutes registers the endpoints outside the custody API:
// health, the docs UI and its static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.HEAD("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.Files)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
