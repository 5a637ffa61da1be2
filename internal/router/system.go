package router

import (
	"io/fs"
	"net/http"

	"github.com/Alexeyalexeyalex/FastApi/internal/handler"
	"github.com/Alexeyalexeyalex/FastApi/internal/model"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the entity API:
// the root greeting, health status, docs UI and the static documentation assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, assets fs.FS) {
	r.GET("/", handler.Handle[model.ListRequest](h.Root.Handler, h.Root.Hello, http.StatusOK))

	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", assets)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
