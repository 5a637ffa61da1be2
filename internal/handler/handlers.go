package handler

import (
	"io/fs"

	"github.com/Alexeyalexeyalex/FastApi/internal/server"
	"github.com/Alexeyalexeyalex/FastApi/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Root     *RootHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Users    *UserHandler
	Products *ProductHandler
	Orders   *OrderHandler
}

// NewHandlers builds every handler; assets holds the documentation files.
func NewHandlers(s *server.Server, services *service.Services, assets fs.FS) *Handlers {
	return &Handlers{
		Root:     NewRootHandler(s),
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s, assets),
		Users:    NewUserHandler(s, services.Users),
		Products: NewProductHandler(s, services.Products),
		Orders:   NewOrderHandler(s, services.Orders),
	}
}
