// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, builds the
// typed records, and calls repository methods to interact
// with the data
package service

import (
	"context"
	"fmt"

	"github.com/Alexeyalexeyalex/FastApi/internal/server"
	"github.com/rs/zerolog"
)

// store is the statement set every entity repository provides.
type store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, row *T) error
	CreateBatch(ctx context.Context, rows []T) error
	Update(ctx context.Context, id int64, columns map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// payload is the identifier-less shape clients send.
type payload interface {
	Columns() map[string]interface{}
}

// crud implements the operations shared by users, products and orders.
//
// build turns a payload and an id into the record shape; generate
// produces synthetic records for seeding.
type crud[T any, P payload] struct {
	server   *server.Server
	entity   string
	repo     store[T]
	build    func(id int64, p P) T
	generate func(count int) []T
}

// Fake inserts count generated records and returns the count requested.
// A non-positive count inserts nothing.
func (s *crud[T, P]) Fake(ctx context.Context, count int) (int, error) {
	rows := s.generate(count)
	if err := s.repo.CreateBatch(ctx, rows); err != nil {
		return 0, err
	}

	s.logger(ctx).Info().
		Str("entity", s.entity).
		Int("count", len(rows)).
		Msg("generated fake records")

	return count, nil
}

func (s *crud[T, P]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

// Get returns nil without error when id does not exist.
func (s *crud[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	return s.repo.Get(ctx, id)
}

// Create stores p and returns the record with its assigned id.
func (s *crud[T, P]) Create(ctx context.Context, p P) (*T, error) {
	row := s.build(0, p)
	if err := s.repo.Create(ctx, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// Update replaces every field of the record with id and echoes p with id.
// The stored row is not read back; a missing id is not an error.
func (s *crud[T, P]) Update(ctx context.Context, id int64, p P) (*T, error) {
	affected, err := s.repo.Update(ctx, id, p.Columns())
	if err != nil {
		return nil, err
	}

	if affected == 0 {
		s.logger(ctx).Debug().
			Str("entity", s.entity).
			Int64("id", id).
			Msg("update matched no rows")
	}

	row := s.build(id, p)
	return &row, nil
}

// Delete removes the record with id; a missing id is not an error.
func (s *crud[T, P]) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if affected == 0 {
		s.logger(ctx).Debug().
			Str("entity", s.entity).
			Int64("id", id).
			Msg("delete matched no rows")
	}
	return nil
}

// logger prefers the request logger stored in ctx.
func (s *crud[T, P]) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.server.Logger
}

func deletedMessage(entity string) string {
	return fmt.Sprintf("%s deleted", entity)
}
