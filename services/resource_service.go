package services

import (
	"context"
	"fmt"

	"github.com/yeremiapane/restaurant-api/repository"
)

var (
	ErrNotFound         = repository.ErrNotFound
	ErrReferenceMissing = repository.ErrReferenceMissing
)

// CreateInput is a validated create payload that knows how to build its entity.
type CreateInput[T any] interface {
	Validate() error
	Model() T
}

// UpdateInput is a validated partial payload applied onto a loaded entity.
type UpdateInput[T any] interface {
	Validate() error
	Apply(*T)
}

type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (T, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, id uint, apply func(*T) error) (T, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// ResourceService runs the CRUD operations of one resource. Inputs are
// expected to be validated by the caller; the optional checks cover the rules
// that need the store, such as foreign references.
type ResourceService[T any, C CreateInput[T], U UpdateInput[T]] struct {
	store       Store[T]
	createCheck func(ctx context.Context, in C) error
	updateCheck func(ctx context.Context, in U) error
	mapErr      func(err error) error
}

func NewResourceService[T any, C CreateInput[T], U UpdateInput[T]](store Store[T]) *ResourceService[T, C, U] {
	return &ResourceService[T, C, U]{
		store: store,
	}
}

// OnCreate registers a check that runs before a create is persisted.
func (s *ResourceService[T, C, U]) OnCreate(check func(ctx context.Context, in C) error) *ResourceService[T, C, U] {
	s.createCheck = check
	return s
}

// OnUpdate registers a check that runs before the update transaction starts.
func (s *ResourceService[T, C, U]) OnUpdate(check func(ctx context.Context, in U) error) *ResourceService[T, C, U] {
	s.updateCheck = check
	return s
}

// MapStoreError registers a translation for errors coming back from writes.
func (s *ResourceService[T, C, U]) MapStoreError(fn func(err error) error) *ResourceService[T, C, U] {
	s.mapErr = fn
	return s
}

func (s *ResourceService[T, C, U]) storeError(op string, err error) error {
	if s.mapErr != nil {
		if mapped := s.mapErr(err); mapped != nil {
			return mapped
		}
	}

	return fmt.Errorf("s.store.%s -> %w", op, err)
}

func (s *ResourceService[T, C, U]) List(ctx context.Context) ([]T, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.store.List -> %w", err)
	}

	return items, nil
}

func (s *ResourceService[T, C, U]) Create(ctx context.Context, in C) (T, error) {
	var zero T

	if s.createCheck != nil {
		if err := s.createCheck(ctx, in); err != nil {
			return zero, err
		}
	}

	entity := in.Model()
	if err := s.store.Create(ctx, &entity); err != nil {
		return zero, s.storeError("Create", err)
	}

	return entity, nil
}

func (s *ResourceService[T, C, U]) Get(ctx context.Context, id uint) (T, error) {
	entity, err := s.store.FindByID(ctx, id)
	if err != nil {
		return entity, fmt.Errorf("s.store.FindByID -> %w", err)
	}

	return entity, nil
}

func (s *ResourceService[T, C, U]) Exists(ctx context.Context, id uint) (bool, error) {
	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("s.store.Exists -> %w", err)
	}

	return exists, nil
}

func (s *ResourceService[T, C, U]) Update(ctx context.Context, id uint, in U) (T, error) {
	if s.updateCheck != nil {
		if err := s.updateCheck(ctx, in); err != nil {
			var zero T
			return zero, err
		}
	}

	entity, err := s.store.Update(ctx, id, func(entity *T) error {
		in.Apply(entity)
		return nil
	})
	if err != nil {
		return entity, s.storeError("Update", err)
	}

	return entity, nil
}

// Delete reports whether a row was removed. A missing id is not an error.
func (s *ResourceService[T, C, U]) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("s.store.Delete -> %w", err)
	}

	return deleted, nil
}
