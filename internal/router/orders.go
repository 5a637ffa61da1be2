package router

import (
	"net/http"

	"github.com/Alexeyalexeyalex/FastApi/internal/handler"
	"github.com/Alexeyalexeyalex/FastApi/internal/model"
	"github.com/labstack/echo/v4"
)

func registerOrderRoutes(r *echo.Echo, h *handler.Handlers) {
	orders := h.Orders

	r.GET("/fake_orders/:count", handler.Handle[model.FakeRequest](orders.Handler, orders.FakeOrders, http.StatusOK))

	g := r.Group("/orders")
	g.GET("", handler.Handle[model.ListRequest](orders.Handler, orders.ListOrders, http.StatusOK))
	g.POST("", handler.Handle[model.OrderRequest](orders.Handler, orders.CreateOrder, http.StatusCreated))
	g.GET("/:id", handler.Handle[model.IDRequest](orders.Handler, orders.GetOrder, http.StatusOK))
	g.PUT("/:id", handler.Handle[model.UpdateOrderRequest](orders.Handler, orders.UpdateOrder, http.StatusOK))
	g.DELETE("/:id", handler.Handle[model.IDRequest](orders.Handler, orders.DeleteOrder, http.StatusOK))
}
