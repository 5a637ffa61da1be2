// Package model defines the table-backed records and the request
// payloads of the three entities: users, products and orders.
//
// Every entity comes in two shapes: a payload without identifier (what
// clients send) and the record with identifier (what the API returns).
package model

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Alexeyalexeyalex/FastApi/internal/validation"
	"github.com/go-playground/validator/v10"
)

// validate reports fields by their JSON (or path param) name.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "param"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})
	return v
}

// MaxFakeCount bounds a single /fake_* request.
const MaxFakeCount = 10000

// IDRequest carries a record identifier from the path.
type IDRequest struct {
	ID int64 `param:"id"`
}

func (r *IDRequest) Validate() error {
	return validate.Struct(r)
}

// ListRequest has no input; it exists to run list endpoints through the typed pipeline.
type ListRequest struct{}

func (r *ListRequest) Validate() error {
	return nil
}

// FakeRequest asks for Count synthetic records.
// Negative counts generate nothing.
type FakeRequest struct {
	Count int `param:"count"`
}

func (r *FakeRequest) Validate() error {
	if r.Count > MaxFakeCount {
		return validation.CustomValidationErrors{{
			Field:   "count",
			Message: fmt.Sprintf("must not exceed %d", MaxFakeCount),
		}}
	}
	return nil
}

// MessageResponse is the body of fake-generation and delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
