package router_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/Alexeyalexeyalex/FastApi/internal/errs"
	"github.com/Alexeyalexeyalex/FastApi/internal/middleware"
	"github.com/Alexeyalexeyalex/FastApi/internal/model"
	"github.com/Alexeyalexeyalex/FastApi/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RouterSuite struct {
	suite.Suite
	app *testutil.App
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.app = testutil.NewTestApp(s.T(), nil)
}

func (s *RouterSuite) count(path string) int {
	rec := s.app.Do(s.T(), http.MethodGet, path, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	return len(testutil.DecodeJSON[[]map[string]any](s.T(), rec))
}

func (s *RouterSuite) TestRoot() {
	rec := s.app.Do(s.T(), http.MethodGet, "/", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(model.MessageResponse{Message: "Hello World"}, testutil.DecodeJSON[model.MessageResponse](s.T(), rec))
	s.NotEmpty(rec.Header().Get(middleware.RequestIDHeader))
}

func (s *RouterSuite) TestCreateThenGetReturnsSameFields() {
	payload := model.UserPayload{
		FirstName:  "Ann",
		SecondName: "Lee",
		Email:      "ann@mail.ru",
		Password:   "secret",
	}

	rec := s.app.Do(s.T(), http.MethodPost, "/users/", payload)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	created := testutil.DecodeJSON[model.User](s.T(), rec)
	s.NotZero(created.ID)
	s.Equal(payload, created.UserPayload)

	rec = s.app.Do(s.T(), http.MethodGet, fmt.Sprintf("/users/%d", created.ID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(created, testutil.DecodeJSON[model.User](s.T(), rec))
}

func (s *RouterSuite) TestListIsEmptyArray() {
	for _, path := range []string{"/users", "/products/", "/orders"} {
		rec := s.app.Do(s.T(), http.MethodGet, path, nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String(), path)
	}
}

func (s *RouterSuite) TestFakeUsersIncreasesCountByN() {
	before := s.count("/users")

	rec := s.app.Do(s.T(), http.MethodGet, "/fake_users/7", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("7 fake users created", testutil.DecodeJSON[model.MessageResponse](s.T(), rec).Message)

	s.Equal(before+7, s.count("/users"))

	rec = s.app.Do(s.T(), http.MethodGet, "/users", nil)
	users := testutil.DecodeJSON[[]model.User](s.T(), rec)
	for i, u := range users {
		s.Equal(fmt.Sprintf("first_name%d", i), u.FirstName)
		s.Equal(fmt.Sprintf("second_name%d", i), u.SecondName)
		s.Equal(fmt.Sprintf("mail%d@mail.ru", i), u.Email)
		s.Equal(fmt.Sprintf("password%d", i), u.Password)
	}
}

func (s *RouterSuite) TestFakeCountLimits() {
	rec := s.app.Do(s.T(), http.MethodGet, "/fake_products/-3", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Zero(s.count("/products"))

	rec = s.app.Do(s.T(), http.MethodGet, "/fake_products/10001", nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.app.Do(s.T(), http.MethodGet, "/fake_products/many", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestDeleteThenGetReturnsNull() {
	rec := s.app.Do(s.T(), http.MethodPost, "/users", model.UserPayload{FirstName: "gone"})
	s.Require().Equal(http.StatusCreated, rec.Code)
	user := testutil.DecodeJSON[model.User](s.T(), rec)

	rec = s.app.Do(s.T(), http.MethodDelete, fmt.Sprintf("/users/%d", user.ID), nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":"User deleted"}`, rec.Body.String())

	rec = s.app.Do(s.T(), http.MethodGet, fmt.Sprintf("/users/%d", user.ID), nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("null", strings.TrimSpace(rec.Body.String()))

	// Deleting again still succeeds.
	rec = s.app.Do(s.T(), http.MethodDelete, fmt.Sprintf("/users/%d", user.ID), nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterSuite) TestDeleteMessages() {
	for entity, message := range map[string]string{
		"products": "Product deleted",
		"orders":   "Order deleted",
	} {
		rec := s.app.Do(s.T(), http.MethodDelete, "/"+entity+"/1", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(message, testutil.DecodeJSON[model.MessageResponse](s.T(), rec).Message)
	}
}

func (s *RouterSuite) TestUpdateOrderTargetsExactRow() {
	rec := s.app.Do(s.T(), http.MethodGet, "/fake_orders/3", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	orders := testutil.DecodeJSON[[]model.Order](s.T(), s.app.Do(s.T(), http.MethodGet, "/orders", nil))
	s.Require().Len(orders, 3)
	target := orders[1]

	update := model.OrderPayload{
		UsersTableID:    11,
		ProductsTableID: 12,
		OrderDate:       "2024-02-02",
		OrderStatus:     "cancelled",
	}
	rec = s.app.Do(s.T(), http.MethodPut, fmt.Sprintf("/orders/%d", target.ID), update)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal(model.Order{ID: target.ID, OrderPayload: update}, testutil.DecodeJSON[model.Order](s.T(), rec))

	after := testutil.DecodeJSON[[]model.Order](s.T(), s.app.Do(s.T(), http.MethodGet, "/orders", nil))
	s.Require().Len(after, 3)
	for i, o := range after {
		if o.ID == target.ID {
			s.Equal(update, o.OrderPayload)
		} else {
			s.Equal(orders[i], o)
		}
	}
}

func (s *RouterSuite) TestUpdateMissingIDEchoesPayload() {
	rec := s.app.Do(s.T(), http.MethodPut, "/products/404", model.ProductPayload{Name: "ghost", Price: 9})

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"id":404,"name":"ghost","description":"","price":9}`, rec.Body.String())
	s.Zero(s.count("/products"))
}

func (s *RouterSuite) TestRequestsDoNotShareState() {
	full := model.UserPayload{FirstName: "a", SecondName: "b", Email: "a@mail.ru", Password: "p"}
	rec := s.app.Do(s.T(), http.MethodPut, "/users/1", full)
	s.Require().Equal(http.StatusOK, rec.Code)

	// A later partial body must not be completed from the previous request.
	rec = s.app.Do(s.T(), http.MethodPut, "/users/2", map[string]any{"first_name": "b"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestMissingFieldsAreRejected() {
	for _, path := range []string{"/users", "/products", "/orders"} {
		rec := s.app.DoRaw(s.T(), http.MethodPost, path, `{}`)
		s.Equal(http.StatusBadRequest, rec.Code, path)
		body := testutil.DecodeJSON[errs.HTTPError](s.T(), rec)
		s.NotEmpty(body.Errors, path)

		rec = s.app.Do(s.T(), http.MethodPost, path, nil)
		s.Equal(http.StatusBadRequest, rec.Code, path)

		s.Zero(s.count(path), path)
	}
}

func (s *RouterSuite) TestPartialReplaceKeepsStoredRow() {
	stored := model.UserPayload{FirstName: "Ann", SecondName: "Lee", Email: "ann@mail.ru", Password: "secret"}
	rec := s.app.Do(s.T(), http.MethodPost, "/users", stored)
	s.Require().Equal(http.StatusCreated, rec.Code)
	user := testutil.DecodeJSON[model.User](s.T(), rec)

	rec = s.app.Do(s.T(), http.MethodPut, fmt.Sprintf("/users/%d", user.ID), map[string]any{"first_name": "a"})
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	body := testutil.DecodeJSON[errs.HTTPError](s.T(), rec)
	s.Equal([]errs.FieldError{
		{Field: "second_name", Error: "is required"},
		{Field: "email", Error: "is required"},
		{Field: "password", Error: "is required"},
	}, body.Errors)

	rec = s.app.Do(s.T(), http.MethodGet, fmt.Sprintf("/users/%d", user.ID), nil)
	s.Equal(model.User{ID: user.ID, UserPayload: stored}, testutil.DecodeJSON[model.User](s.T(), rec))
}

func (s *RouterSuite) TestEmptyValuesAreAccepted() {
	rec := s.app.DoRaw(s.T(), http.MethodPost, "/products", `{"name":"","description":"","price":0}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.JSONEq(`{"id":1,"name":"","description":"","price":0}`, rec.Body.String())
}

func (s *RouterSuite) TestFakeProductPricesInRange() {
	rec := s.app.Do(s.T(), http.MethodGet, "/fake_products/200", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal("200 fake products created", testutil.DecodeJSON[model.MessageResponse](s.T(), rec).Message)

	products := testutil.DecodeJSON[[]model.Product](s.T(), s.app.Do(s.T(), http.MethodGet, "/products", nil))
	s.Require().Len(products, 200)
	for _, p := range products {
		s.GreaterOrEqual(p.Price, 1)
		s.LessOrEqual(p.Price, 100)
		s.Equal("description", p.Description)
	}
}

func (s *RouterSuite) TestFakeOrderStatusesFromConfiguredSet() {
	rec := s.app.Do(s.T(), http.MethodGet, "/fake_orders/100", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	orders := testutil.DecodeJSON[[]model.Order](s.T(), s.app.Do(s.T(), http.MethodGet, "/orders", nil))
	s.Require().Len(orders, 100)
	for _, o := range orders {
		s.Contains([]string{"in progress", "done"}, o.OrderStatus)
		s.Equal(int64(2), o.UsersTableID)
		s.Equal(int64(1), o.ProductsTableID)
	}
}

func (s *RouterSuite) TestValidationErrors() {
	rec := s.app.Do(s.T(), http.MethodPost, "/products", map[string]any{
		"name":        strings.Repeat("n", 33),
		"description": "",
		"price":       1,
	})
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	body := testutil.DecodeJSON[errs.HTTPError](s.T(), rec)
	s.Equal("BAD_REQUEST", body.Code)
	s.True(body.Override)
	s.Require().Len(body.Errors, 1)
	s.Equal("name", body.Errors[0].Field)

	rec = s.app.DoRaw(s.T(), http.MethodPost, "/users", `{"first_name": 5}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.app.DoRaw(s.T(), http.MethodPut, "/orders/1", `{not json`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.app.Do(s.T(), http.MethodGet, "/users/abc", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestUnknownRoute() {
	rec := s.app.Do(s.T(), http.MethodGet, "/customers", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	body := testutil.DecodeJSON[errs.HTTPError](s.T(), rec)
	s.Equal("NOT_FOUND", body.Code)
	s.Equal("Route not found", body.Message)
}

func (s *RouterSuite) TestStatus() {
	rec := s.app.Do(s.T(), http.MethodGet, "/status", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	body := testutil.DecodeJSON[map[string]any](s.T(), rec)
	s.Equal("healthy", body["status"])
	s.Equal("test", body["environment"])

	checks, ok := body["checks"].(map[string]any)
	s.Require().True(ok)
	database, ok := checks["database"].(map[string]any)
	s.Require().True(ok)
	s.Equal("healthy", database["status"])
	s.Equal("sqlite", database["driver"])
}

func (s *RouterSuite) TestDocs() {
	rec := s.app.Do(s.T(), http.MethodGet, "/docs", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "/static/openapi.json")
	s.Equal("no-cache", rec.Header().Get("Cache-Control"))

	rec = s.app.Do(s.T(), http.MethodGet, "/static/openapi.json", nil)
	s.Equal(http.StatusOK, rec.Code)

	doc := testutil.DecodeJSON[map[string]any](s.T(), rec)
	paths, ok := doc["paths"].(map[string]any)
	s.Require().True(ok)
	for _, path := range []string{"/users", "/users/{id}", "/fake_users/{count}", "/orders/{id}", "/fake_products/{count}"} {
		s.Contains(paths, path)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := testutil.NewTestConfig()
	cfg.Server.RateLimit = 1

	app := testutil.NewTestApp(t, cfg)

	rec := app.Do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.Do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", testutil.DecodeJSON[errs.HTTPError](t, rec).Code)
}

func TestForeignKeyEnforcement(t *testing.T) {
	cfg := testutil.NewTestConfig()
	cfg.Database.EnforceForeignKeys = true

	app := testutil.NewTestApp(t, cfg)

	orphan := model.OrderPayload{UsersTableID: 42, ProductsTableID: 42, OrderDate: "2024-01-01", OrderStatus: "done"}
	rec := app.Do(t, http.MethodPost, "/orders", orphan)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, "RECORD_NOT_FOUND", testutil.DecodeJSON[errs.HTTPError](t, rec).Code)

	require.Equal(t, http.StatusCreated, app.Do(t, http.MethodPost, "/users", model.UserPayload{FirstName: "a"}).Code)
	require.Equal(t, http.StatusCreated, app.Do(t, http.MethodPost, "/products", model.ProductPayload{Name: "b"}).Code)

	rec = app.Do(t, http.MethodPost, "/orders", model.OrderPayload{UsersTableID: 1, ProductsTableID: 1, OrderStatus: "done"})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}
