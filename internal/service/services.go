package service

import (
	"github.com/Alexeyalexeyalex/FastApi/internal/lib/fake"
	"github.com/Alexeyalexeyalex/FastApi/internal/model"
	"github.com/Alexeyalexeyalex/FastApi/internal/repository"
	"github.com/Alexeyalexeyalex/FastApi/internal/server"
)

type Services struct {
	Users    *UserService
	Products *ProductService
	Orders   *OrderService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	generator := fake.New(s.Config.Fake)

	return &Services{
		Users:    NewUserService(s, repos.Users, generator),
		Products: NewProductService(s, repos.Products, generator),
		Orders:   NewOrderService(s, repos.Orders, generator),
	}, nil
}

type UserService struct {
	*crud[model.User, model.UserPayload]
}

func NewUserService(s *server.Server, repo *repository.UserRepository, generator *fake.Generator) *UserService {
	return &UserService{&crud[model.User, model.UserPayload]{
		server: s,
		entity: "users",
		repo:   repo,
		build: func(id int64, p model.UserPayload) model.User {
			return model.User{ID: id, UserPayload: p}
		},
		generate: generator.Users,
	}}
}

// DeletedMessage is the body returned after a delete.
func (s *UserService) DeletedMessage() string {
	return deletedMessage("User")
}

type ProductService struct {
	*crud[model.Product, model.ProductPayload]
}

func NewProductService(s *server.Server, repo *repository.ProductRepository, generator *fake.Generator) *ProductService {
	return &ProductService{&crud[model.Product, model.ProductPayload]{
		server: s,
		entity: "products",
		repo:   repo,
		build: func(id int64, p model.ProductPayload) model.Product {
			return model.Product{ID: id, ProductPayload: p}
		},
		generate: generator.Products,
	}}
}

func (s *ProductService) DeletedMessage() string {
	return deletedMessage("Product")
}

type OrderService struct {
	*crud[model.Order, model.OrderPayload]
}

func NewOrderService(s *server.Server, repo *repository.OrderRepository, generator *fake.Generator) *OrderService {
	return &OrderService{&crud[model.Order, model.OrderPayload]{
		server: s,
		entity: "orders",
		repo:   repo,
		build: func(id int64, p model.OrderPayload) model.Order {
			return model.Order{ID: id, OrderPayload: p}
		},
		generate: generator.Orders,
	}}
}

func (s *OrderService) DeletedMessage() string {
	return deletedMessage("Order")
}
