package handler

import (
	"fmt"

	"github.com/Alexeyalexeyalex/FastApi/internal/model"
	"github.com/Alexeyalexeyalex/FastApi/internal/server"
	"github.com/Alexeyalexeyalex/FastApi/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UserHandler) FakeUsers(c echo.Context, req *model.FakeRequest) (*model.MessageResponse, error) {
	count, err := h.users.Fake(c.Request().Context(), req.Count)
	if err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: fmt.Sprintf("%d fake users created", count)}, nil
}

func (h *UserHandler) ListUsers(c echo.Context, _ *model.ListRequest) ([]model.User, error) {
	return h.users.List(c.Request().Context())
}

// GetUser returns nil (JSON null) when the id does not exist.
func (h *UserHandler) GetUser(c echo.Context, req *model.IDRequest) (*model.User, error) {
	return h.users.Get(c.Request().Context(), req.ID)
}

func (h *UserHandler) CreateUser(c echo.Context, req *model.UserRequest) (*model.User, error) {
	return h.users.Create(c.Request().Context(), req.Payload())
}

func (h *UserHandler) UpdateUser(c echo.Context, req *model.UpdateUserRequest) (*model.User, error) {
	return h.users.Update(c.Request().Context(), req.ID, req.Payload())
}

func (h *UserHandler) DeleteUser(c echo.Context, req *model.IDRequest) (*model.MessageResponse, error) {
	if err := h.users.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: h.users.DeletedMessage()}, nil
}
