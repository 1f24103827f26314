package services

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/requests"
)

var ErrTableNotFound = errors.New("the selected table does not exist")

type ReservationService = ResourceService[models.Reservation, requests.CreateReservation, requests.UpdateReservation]

type TableLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type tableReferrer interface {
	TableRef() (uint, bool)
}

// NewReservationService rejects reservations pointing at a table that does not
// exist, reported on table_id like any other validation failure.
func NewReservationService(store Store[models.Reservation], tables TableLookup) *ReservationService {
	svc := NewResourceService[models.Reservation, requests.CreateReservation, requests.UpdateReservation](store)

	svc.OnCreate(func(ctx context.Context, in requests.CreateReservation) error {
		return checkTable(ctx, tables, in)
	})
	svc.OnUpdate(func(ctx context.Context, in requests.UpdateReservation) error {
		return checkTable(ctx, tables, in)
	})
	// The table can disappear between the check and the write.
	svc.MapStoreError(func(err error) error {
		if errors.Is(err, ErrReferenceMissing) {
			return validation.Errors{"table_id": ErrTableNotFound}
		}
		return nil
	})

	return svc
}

func checkTable(ctx context.Context, tables TableLookup, in tableReferrer) error {
	id, ok := in.TableRef()
	if !ok {
		return nil
	}

	exists, err := tables.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("tables.Exists -> %w", err)
	}
	if !exists {
		return validation.Errors{"table_id": ErrTableNotFound}
	}

	return nil
}
