package requests

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yeremiapane/restaurant-api/models"
)

// CreateMenu is the body of POST /menus.
type CreateMenu struct {
	Name        string `json:"name" form:"name"`
	Price       Number `json:"price" form:"price"`
	Stock       Number `json:"stock" form:"stock"`
	Description string `json:"description" form:"description"`
}

func (r CreateMenu) Validate() error {
	return validation.ValidateStruct(
		&r,
		validation.Field(&r.Name, Required, validation.Length(0, 255)),
		validation.Field(&r.Price, Required, IsNumber, Money),
		validation.Field(&r.Stock, Required, IsNumber, Money),
	)
}

func (r CreateMenu) Model() models.Menu {
	return models.Menu{
		Name:        strings.TrimSpace(r.Name),
		Price:       r.Price.Decimal(),
		Stock:       r.Stock.Decimal(),
		Description: r.Description,
	}
}

// UpdateMenu is a partial update: nil fields are left untouched.
type UpdateMenu struct {
	Name        *string `json:"name" form:"name"`
	Price       *Number `json:"price" form:"price"`
	Stock       *Number `json:"stock" form:"stock"`
	Description *string `json:"description" form:"description"`
}

func (r UpdateMenu) Validate() error {
	return validation.ValidateStruct(
		&r,
		validation.Field(&r.Name, Filled, validation.Length(0, 255)),
		validation.Field(&r.Price, Filled, IsNumber, Money),
		validation.Field(&r.Stock, Filled, IsNumber, Money),
	)
}

func (r UpdateMenu) Apply(m *models.Menu) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Price != nil {
		m.Price = r.Price.Decimal()
	}
	if r.Stock != nil {
		m.Stock = r.Stock.Decimal()
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
}
