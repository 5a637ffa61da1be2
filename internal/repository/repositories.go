package repository

import (
	"github.com/Alexeyalexeyalex/FastApi/internal/model"
	"github.com/Alexeyalexeyalex/FastApi/internal/server"
)

type UserRepository struct {
	*table[model.User]
}

type ProductRepository struct {
	*table[model.Product]
}

type OrderRepository struct {
	*table[model.Order]
}

// Repositories is a container for all repository instances.
type Repositories struct {
	Users    *UserRepository
	Products *ProductRepository
	Orders   *OrderRepository
}

// NewRepositories builds every repository on the server's storage handle.
func NewRepositories(s *server.Server) *Repositories {
	db := s.DB.DB
	batchSize := s.Config.Fake.BatchSize

	return &Repositories{
		Users:    &UserRepository{newTable[model.User](db, "users", batchSize)},
		Products: &ProductRepository{newTable[model.Product](db, "products", batchSize)},
		Orders:   &OrderRepository{newTable[model.Order](db, "orders", batchSize)},
	}
}
