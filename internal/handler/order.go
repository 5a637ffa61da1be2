package handler

import (
	"fmt"

	"github.com/Alexeyalexeyalex/FastApi/internal/model"
	"github.com/Alexeyalexeyalex/FastApi/internal/server"
	"github.com/Alexeyalexeyalex/FastApi/internal/service"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	Handler
	orders *service.OrderService
}

func NewOrderHandler(s *server.Server, orders *service.OrderService) *OrderHandler {
	return &OrderHandler{
		Handler: NewHandler(s),
		orders:  orders,
	}
}

func (h *OrderHandler) FakeOrders(c echo.Context, req *model.FakeRequest) (*model.MessageResponse, error) {
	count, err := h.orders.Fake(c.Request().Context(), req.Count)
	if err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: fmt.Sprintf("%d fake orders created", count)}, nil
}

func (h *OrderHandler) ListOrders(c echo.Context, _ *model.ListRequest) ([]model.Order, error) {
	return h.orders.List(c.Request().Context())
}

// GetOrder returns nil (JSON null) when the id does not exist.
func (h *OrderHandler) GetOrder(c echo.Context, req *model.IDRequest) (*model.Order, error) {
	return h.orders.Get(c.Request().Context(), req.ID)
}

func (h *OrderHandler) CreateOrder(c echo.Context, req *model.OrderRequest) (*model.Order, error) {
	return h.orders.Create(c.Request().Context(), req.Payload())
}

func (h *OrderHandler) UpdateOrder(c echo.Context, req *model.UpdateOrderRequest) (*model.Order, error) {
	return h.orders.Update(c.Request().Context(), req.ID, req.Payload())
}

func (h *OrderHandler) DeleteOrder(c echo.Context, req *model.IDRequest) (*model.MessageResponse, error) {
	if err := h.orders.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: h.orders.DeletedMessage()}, nil
}
