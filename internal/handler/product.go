package handler

import (
	"fmt"

	"github.com/Alexeyalexeyalex/FastApi/internal/model"
	"github.com/Alexeyalexeyalex/FastApi/internal/server"
	"github.com/Alexeyalexeyalex/FastApi/internal/service"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	Handler
	products *service.ProductService
}

func NewProductHandler(s *server.Server, products *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:  NewHandler(s),
		products: products,
	}
}

func (h *ProductHandler) FakeProducts(c echo.Context, req *model.FakeRequest) (*model.MessageResponse, error) {
	count, err := h.products.Fake(c.Request().Context(), req.Count)
	if err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: fmt.Sprintf("%d fake products created", count)}, nil
}

func (h *ProductHandler) ListProducts(c echo.Context, _ *model.ListRequest) ([]model.Product, error) {
	return h.products.List(c.Request().Context())
}

// GetProduct returns nil (JSON null) when the id does not exist.
func (h *ProductHandler) GetProduct(c echo.Context, req *model.IDRequest) (*model.Product, error) {
	return h.products.Get(c.Request().Context(), req.ID)
}

func (h *ProductHandler) CreateProduct(c echo.Context, req *model.ProductRequest) (*model.Product, error) {
	return h.products.Create(c.Request().Context(), req.Payload())
}

func (h *ProductHandler) UpdateProduct(c echo.Context, req *model.UpdateProductRequest) (*model.Product, error) {
	return h.products.Update(c.Request().Context(), req.ID, req.Payload())
}

func (h *ProductHandler) DeleteProduct(c echo.Context, req *model.IDRequest) (*model.MessageResponse, error) {
	if err := h.products.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &model.MessageResponse{Message: h.products.DeletedMessage()}, nil
}
