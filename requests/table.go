package requests

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yeremiapane/restaurant-api/models"
)

// CreateTable is the body of POST /tables.
type CreateTable struct {
	Number   string `json:"number" form:"number"`
	Capacity Number `json:"capacity" form:"capacity"`
	Location string `json:"location" form:"location"`
}

func (r CreateTable) Validate() error {
	return validation.ValidateStruct(
		&r,
		validation.Field(&r.Number, Required, validation.Length(0, 50)),
		validation.Field(&r.Capacity, Required, IsInteger, AtLeast(1)),
		validation.Field(&r.Location, validation.Length(0, 100)),
	)
}

func (r CreateTable) Model() models.Table {
	return models.Table{
		Number:   strings.TrimSpace(r.Number),
		Capacity: r.Capacity.Int(),
		Location: strings.TrimSpace(r.Location),
	}
}

// UpdateTable is a partial update of a table; nil fields are left untouched.
type UpdateTable struct {
	Number   *string `json:"number" form:"number"`
	Capacity *Number `json:"capacity" form:"capacity"`
	Location *string `json:"location" form:"location"`
}

func (r UpdateTable) Validate() error {
	return validation.ValidateStruct(
		&r,
		validation.Field(&r.Number, Filled, validation.Length(0, 50)),
		validation.Field(&r.Capacity, Filled, IsInteger, AtLeast(1)),
		validation.Field(&r.Location, validation.Length(0, 100)),
	)
}

func (r UpdateTable) Apply(t *models.Table) {
	if r.Number != nil {
		t.Number = strings.TrimSpace(*r.Number)
	}
	if r.Capacity != nil {
		t.Capacity = r.Capacity.Int()
	}
	if r.Location != nil {
		t.Location = strings.TrimSpace(*r.Location)
	}
}
