package handler

import (
	"github.com/Alexeyalexeyalex/FastApi/internal/model"
	"github.com/Alexeyalexeyalex/FastApi/internal/server"
	"github.com/labstack/echo/v4"
)

type RootHandler struct {
	Handler
}

func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{Handler: NewHandler(s)}
}

func (h *RootHandler) Hello(c echo.Context, _ *model.ListRequest) (*model.MessageResponse, error) {
	return &model.MessageResponse{Message: "Hello World"}, nil
}
