// Package fake builds placeholder users, products and orders for seeding.
//
// Text fields follow fixed patterns indexed by position (first_name0,
// first_name1, ...); prices, order dates and order statuses are random.
package fake

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/Alexeyalexeyalex/FastApi/internal/config"
	"github.com/Alexeyalexeyalex/FastApi/internal/model"
)

const (
	productDescription = "description"
	orderMonth         = "2024-01"
	daysInOrderMonth   = 31
)

// Generator is safe for concurrent use.
type Generator struct {
	cfg config.FakeConfig

	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a generator seeded from the runtime's random source.
func New(cfg config.FakeConfig) *Generator {
	return NewWithSource(cfg, rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewWithSource returns a generator drawing from src, for reproducible output.
func NewWithSource(cfg config.FakeConfig, src rand.Source) *Generator {
	return &Generator{
		cfg: cfg,
		rnd: rand.New(src),
	}
}

// Users returns count users; a non-positive count returns none.
func (g *Generator) Users(count int) []model.User {
	users := make([]model.User, 0, max(count, 0))
	for i := 0; i < count; i++ {
		users = append(users, model.User{
			UserPayload: model.UserPayload{
				FirstName:  fmt.Sprintf("first_name%d", i),
				SecondName: fmt.Sprintf("second_name%d", i),
				Email:      fmt.Sprintf("mail%d@mail.ru", i),
				Password:   fmt.Sprintf("password%d", i),
			},
		})
	}
	return users
}

// Products returns count products priced in [MinPrice, MaxPrice].
func (g *Generator) Products(count int) []model.Product {
	products := make([]model.Product, 0, max(count, 0))

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := 0; i < count; i++ {
		products = append(products, model.Product{
			ProductPayload: model.ProductPayload{
				Name:        fmt.Sprintf("name%d", i),
				Description: productDescription,
				Price:       g.cfg.MinPrice + g.rnd.IntN(g.cfg.MaxPrice-g.cfg.MinPrice+1),
			},
		})
	}
	return products
}

// Orders returns count orders for the configured user and product, dated
// within January 2024 and carrying one of the configured statuses.
func (g *Generator) Orders(count int) []model.Order {
	orders := make([]model.Order, 0, max(count, 0))

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := 0; i < count; i++ {
		orders = append(orders, model.Order{
			OrderPayload: model.OrderPayload{
				UsersTableID:    g.cfg.OrderUserID,
				ProductsTableID: g.cfg.OrderProductID,
				OrderDate:       fmt.Sprintf("%s-%02d", orderMonth, 1+g.rnd.IntN(daysInOrderMonth)),
				OrderStatus:     g.cfg.OrderStatuses[g.rnd.IntN(len(g.cfg.OrderStatuses))],
			},
		})
	}
	return orders
}
