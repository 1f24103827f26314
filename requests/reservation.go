package requests

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/yeremiapane/restaurant-api/models"
)

// CreateReservation is the body of POST /reservations.
type CreateReservation struct {
	TableID       Number `json:"table_id" form:"table_id"`
	CustomerName  string `json:"customer_name" form:"customer_name"`
	CustomerPhone string `json:"customer_phone" form:"customer_phone"`
	CustomerEmail string `json:"customer_email" form:"customer_email"`
	PartySize     Number `json:"party_size" form:"party_size"`
	ReservedAt    string `json:"reserved_at" form:"reserved_at"`
	Notes         string `json:"notes" form:"notes"`
}

func (r CreateReservation) Validate() error {
	return validation.ValidateStruct(
		&r,
		validation.Field(&r.TableID, Required, IsInteger, AtLeast(1)),
		validation.Field(&r.CustomerName, Required, validation.Length(0, 255)),
		validation.Field(&r.CustomerPhone, validation.Length(0, 50)),
		validation.Field(&r.CustomerEmail, is.Email),
		validation.Field(&r.PartySize, Required, IsInteger, AtLeast(1)),
		validation.Field(&r.ReservedAt, Required, IsDateTime),
	)
}

func (r CreateReservation) Model() models.Reservation {
	reservedAt, _ := ParseDateTime(r.ReservedAt)

	return models.Reservation{
		TableID:       uint(r.TableID.Int()),
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerPhone: strings.TrimSpace(r.CustomerPhone),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
		PartySize:     r.PartySize.Int(),
		ReservedAt:    reservedAt,
		Notes:         r.Notes,
	}
}

// TableRef returns the referenced table id.
func (r CreateReservation) TableRef() (uint, bool) {
	return uint(r.TableID.Int()), true
}

// UpdateReservation is a partial update of a reservation; nil fields are left
// untouched.
type UpdateReservation struct {
	TableID       *Number `json:"table_id" form:"table_id"`
	CustomerName  *string `json:"customer_name" form:"customer_name"`
	CustomerPhone *string `json:"customer_phone" form:"customer_phone"`
	CustomerEmail *string `json:"customer_email" form:"customer_email"`
	PartySize     *Number `json:"party_size" form:"party_size"`
	ReservedAt    *string `json:"reserved_at" form:"reserved_at"`
	Notes         *string `json:"notes" form:"notes"`
}

func (r UpdateReservation) Validate() error {
	return validation.ValidateStruct(
		&r,
		validation.Field(&r.TableID, Filled, IsInteger, AtLeast(1)),
		validation.Field(&r.CustomerName, Filled, validation.Length(0, 255)),
		validation.Field(&r.CustomerPhone, validation.Length(0, 50)),
		validation.Field(&r.CustomerEmail, is.Email),
		validation.Field(&r.PartySize, Filled, IsInteger, AtLeast(1)),
		validation.Field(&r.ReservedAt, Filled, IsDateTime),
	)
}

func (r UpdateReservation) Apply(res *models.Reservation) {
	if r.TableID != nil {
		res.TableID = uint(r.TableID.Int())
	}
	if r.CustomerName != nil {
		res.CustomerName = strings.TrimSpace(*r.CustomerName)
	}
	if r.CustomerPhone != nil {
		res.CustomerPhone = strings.TrimSpace(*r.CustomerPhone)
	}
	if r.CustomerEmail != nil {
		res.CustomerEmail = strings.TrimSpace(*r.CustomerEmail)
	}
	if r.PartySize != nil {
		res.PartySize = r.PartySize.Int()
	}
	if r.ReservedAt != nil {
		res.ReservedAt, _ = ParseDateTime(*r.ReservedAt)
	}
	if r.Notes != nil {
		res.Notes = *r.Notes
	}
}

// TableRef reports the table id the update moves the reservation to, if any.
func (r UpdateReservation) TableRef() (uint, bool) {
	if r.TableID == nil {
		return 0, false
	}
	return uint(r.TableID.Int()), true
}
