package router

import (
	"net/http"

	"github.com/Alexeyalexeyalex/FastApi/internal/handler"
	"github.com/Alexeyalexeyalex/FastApi/internal/model"
	"github.com/labstack/echo/v4"
)

func registerProductRoutes(r *echo.Echo, h *handler.Handlers) {
	products := h.Products

	r.GET("/fake_products/:count", handler.Handle[model.FakeRequest](products.Handler, products.FakeProducts, http.StatusOK))

	g := r.Group("/products")
	g.GET("", handler.Handle[model.ListRequest](products.Handler, products.ListProducts, http.StatusOK))
	g.POST("", handler.Handle[model.ProductRequest](products.Handler, products.CreateProduct, http.StatusCreated))
	g.GET("/:id", handler.Handle[model.IDRequest](products.Handler, products.GetProduct, http.StatusOK))
	g.PUT("/:id", handler.Handle[model.UpdateProductRequest](products.Handler, products.UpdateProduct, http.StatusOK))
	g.DELETE("/:id", handler.Handle[model.IDRequest](products.Handler, products.DeleteProduct, http.StatusOK))
}
