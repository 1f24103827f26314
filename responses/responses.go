package responses

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yeremiapane/restaurant-api/models"
)

func init() {
	// Prices and stock go out as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Menu is the wire shape of a menu item.
type Menu struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       decimal.Decimal `json:"stock"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewMenu renders a stored menu item.
func NewMenu(m models.Menu) Menu {
	return Menu{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Stock:       m.Stock,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Table is the wire shape of a dining table.
type Table struct {
	ID        uint      `json:"id"`
	Number    string    `json:"number"`
	Capacity  int       `json:"capacity"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTable renders a stored table.
func NewTable(t models.Table) Table {
	return Table{
		ID:        t.ID,
		Number:    t.Number,
		Capacity:  t.Capacity,
		Location:  t.Location,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// Reservation is the wire shape of a booking. ReservedAt is always UTC.
type Reservation struct {
	ID            uint      `json:"id"`
	Code          string    `json:"code"`
	TableID       uint      `json:"table_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email"`
	PartySize     int       `json:"party_size"`
	ReservedAt    time.Time `json:"reserved_at"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewReservation renders a stored reservation.
func NewReservation(r models.Reservation) Reservation {
	return Reservation{
		ID:            r.ID,
		Code:          r.Code,
		TableID:       r.TableID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		PartySize:     r.PartySize,
		ReservedAt:    r.ReservedAt.UTC(),
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
