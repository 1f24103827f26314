package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mysqlNoReferencedRow is ER_NO_REFERENCED_ROW_2.
const mysqlNoReferencedRow = 1452

var (
	ErrNotFound = errors.New("record not found")
	// ErrReferenceMissing is returned when a write points at a parent row
	// that does not exist.
	ErrReferenceMissing = errors.New("referenced record does not exist")
)

// Repository is the gorm-backed store for one entity type. Writes never touch
// associations; a reservation is saved by its table_id column only.
type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{
		db: db,
	}
}

// List returns every row ordered by primary key.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	items := make([]T, 0)

	result := r.db.WithContext(ctx).Order("id ASC").Find(&items)
	if result.Error != nil {
		return nil, fmt.Errorf("r.db.Find -> %w", result.Error)
	}

	return items, nil
}

func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(entity)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return ErrReferenceMissing
		}

		return fmt.Errorf("r.db.Create -> %w", result.Error)
	}

	return nil
}

func (r *Repository[T]) FindByID(ctx context.Context, id uint) (T, error) {
	var entity T

	result := r.db.WithContext(ctx).First(&entity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity, ErrNotFound
		}

		return entity, fmt.Errorf("r.db.First -> %w", result.Error)
	}

	return entity, nil
}

func (r *Repository[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64

	result := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("r.db.Count -> %w", result.Error)
	}

	return count > 0, nil
}

// Update loads the row under a write lock, lets apply mutate it and saves it,
// all inside one transaction. apply must not use the repository's connection.
func (r *Repository[T]) Update(ctx context.Context, id uint, apply func(*T) error) (T, error) {
	var entity T

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&entity, id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}

			return fmt.Errorf("tx.First -> %w", result.Error)
		}

		if err := apply(&entity); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Save(&entity).Error; err != nil {
			if isForeignKeyViolation(err) {
				return ErrReferenceMissing
			}

			return fmt.Errorf("tx.Save -> %w", err)
		}

		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return entity, nil
}

// Delete removes the row and reports whether it existed.
func (r *Repository[T]) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return false, fmt.Errorf("r.db.Delete -> %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func isForeignKeyViolation(err error) bool {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlNoReferencedRow
	}

	return false
}
