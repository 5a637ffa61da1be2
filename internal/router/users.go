package router

import (
	"net/http"

	"github.com/Alexeyalexeyalex/FastApi/internal/handler"
	"github.com/Alexeyalexeyalex/FastApi/internal/model"
	"github.com/labstack/echo/v4"
)

func registerUserRoutes(r *echo.Echo, h *handler.Handlers) {
	users := h.Users

	r.GET("/fake_users/:count", handler.Handle[model.FakeRequest](users.Handler, users.FakeUsers, http.StatusOK))

	g := r.Group("/users")
	g.GET("", handler.Handle[model.ListRequest](users.Handler, users.ListUsers, http.StatusOK))
	g.POST("", handler.Handle[model.UserRequest](users.Handler, users.CreateUser, http.StatusCreated))
	g.GET("/:id", handler.Handle[model.IDRequest](users.Handler, users.GetUser, http.StatusOK))
	g.PUT("/:id", handler.Handle[model.UpdateUserRequest](users.Handler, users.UpdateUser, http.StatusOK))
	g.DELETE("/:id", handler.Handle[model.IDRequest](users.Handler, users.DeleteUser, http.StatusOK))
}
