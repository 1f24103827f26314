package requests

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-api/models"
)

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()

	var fields validation.Errors
	require.True(t, errors.As(err, &fields), "expected validation.Errors, got %v", err)
	return fields
}

func TestNumberUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Number
	}{
		{name: "json number", body: `{"price": 9.50}`, want: "9.50"},
		{name: "json string", body: `{"price": " 12 "}`, want: "12"},
		{name: "null", body: `{"price": null}`, want: ""},
		{name: "bool kept for validation", body: `{"price": true}`, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in CreateMenu
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			assert.Equal(t, tt.want, in.Price)
		})
	}
}

func TestCreateMenuValidate(t *testing.T) {
	valid := CreateMenu{Name: "Burger", Price: "9.5", Stock: "20"}
	assert.NoError(t, valid.Validate())

	fields := fieldErrors(t, CreateMenu{}.Validate())
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "stock")
	assert.NotContains(t, fields, "description")

	fields = fieldErrors(t, CreateMenu{Name: "  ", Price: "abc", Stock: "1e3"}.Validate())
	assert.EqualError(t, fields["name"], "is required")
	assert.EqualError(t, fields["price"], "must be a number")
	assert.NotContains(t, fields, "stock")
}

func TestCreateMenuModel(t *testing.T) {
	m := CreateMenu{Name: " Burger ", Price: "9.55", Stock: "20", Description: "Beef"}.Model()

	assert.Equal(t, "Burger", m.Name)
	assert.True(t, decimal.RequireFromString("9.55").Equal(m.Price), m.Price.String())
	assert.True(t, decimal.NewFromInt(20).Equal(m.Stock))
	assert.Equal(t, "Beef", m.Description)
}

func TestMenuNumbersMustFitTheColumn(t *testing.T) {
	tests := []struct {
		name  string
		price Number
		want  string
	}{
		{name: "exponent beyond decimal range", price: "1e99999999999", want: "must be a number"},
		{name: "huge in-range exponent", price: "1e300000000", want: "must have at most 8 digits before the decimal point"},
		{name: "nine integer digits", price: "123456789", want: "must have at most 8 digits before the decimal point"},
		{name: "three decimal places", price: "9.555", want: "must have at most 2 decimal places"},
		{name: "tiny exponent", price: "1e-300000000", want: "must have at most 2 decimal places"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := fieldErrors(t, CreateMenu{Name: "Burger", Price: tt.price, Stock: "1"}.Validate())
			assert.EqualError(t, fields["price"], tt.want)
			assert.NotContains(t, fields, "stock")
		})
	}

	for _, ok := range []Number{"12345678.99", "9.50", "9.500", "1e3", "0.01", "0"} {
		assert.NoError(t, CreateMenu{Name: "Burger", Price: ok, Stock: ok}.Validate(), string(ok))
	}

	stock := Number("1.005")
	fields := fieldErrors(t, UpdateMenu{Stock: &stock}.Validate())
	assert.EqualError(t, fields["stock"], "must have at most 2 decimal places")
}

func TestUpdateMenuOnlyTouchesSuppliedFields(t *testing.T) {
	var in UpdateMenu
	require.NoError(t, json.Unmarshal([]byte(`{"stock": 15}`), &in))
	require.NoError(t, in.Validate())

	m := models.Menu{Name: "Burger", Price: decimal.RequireFromString("9.5"), Stock: decimal.NewFromInt(20)}
	in.Apply(&m)

	assert.Equal(t, "Burger", m.Name)
	assert.True(t, decimal.RequireFromString("9.5").Equal(m.Price))
	assert.True(t, decimal.NewFromInt(15).Equal(m.Stock))
}

func TestUpdateMenuRejectsBlankAndNonNumeric(t *testing.T) {
	var in UpdateMenu
	require.NoError(t, json.Unmarshal([]byte(`{"name": "", "price": "cheap"}`), &in))

	fields := fieldErrors(t, in.Validate())
	assert.EqualError(t, fields["name"], "is required")
	assert.EqualError(t, fields["price"], "must be a number")
	assert.NotContains(t, fields, "stock")
}

func TestCreateTableValidate(t *testing.T) {
	assert.NoError(t, CreateTable{Number: "T1", Capacity: "4"}.Validate())

	fields := fieldErrors(t, CreateTable{Number: "T1", Capacity: "0"}.Validate())
	assert.EqualError(t, fields["capacity"], "must be at least 1")

	fields = fieldErrors(t, CreateTable{Number: "T1", Capacity: "4.5"}.Validate())
	assert.EqualError(t, fields["capacity"], "must be an integer")

	fields = fieldErrors(t, CreateTable{Capacity: "99999999999999999999999"}.Validate())
	assert.EqualError(t, fields["number"], "is required")
	assert.EqualError(t, fields["capacity"], "must be an integer")
}

func TestCreateReservationValidate(t *testing.T) {
	in := CreateReservation{
		TableID:       "1",
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.com",
		PartySize:     "2",
		ReservedAt:    "2025-01-02 19:30",
	}
	require.NoError(t, in.Validate())

	res := in.Model()
	assert.Equal(t, uint(1), res.TableID)
	assert.Equal(t, 2, res.PartySize)
	assert.Equal(t, time.Date(2025, 1, 2, 19, 30, 0, 0, time.UTC), res.ReservedAt)

	id, ok := in.TableRef()
	assert.True(t, ok)
	assert.Equal(t, uint(1), id)

	in.CustomerEmail = "not-an-email"
	in.ReservedAt = "tomorrow"
	in.PartySize = "0"
	fields := fieldErrors(t, in.Validate())
	assert.Contains(t, fields, "customer_email")
	assert.EqualError(t, fields["reserved_at"], "must be a valid date-time")
	assert.EqualError(t, fields["party_size"], "must be at least 1")
}

func TestUpdateReservationTableRef(t *testing.T) {
	_, ok := UpdateReservation{}.TableRef()
	assert.False(t, ok)

	tableID := Number("3")
	id, ok := UpdateReservation{TableID: &tableID}.TableRef()
	assert.True(t, ok)
	assert.Equal(t, uint(3), id)
}

func TestParseDateTime(t *testing.T) {
	want := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	for _, s := range []string{
		"2025-06-01T18:00:00Z",
		"2025-06-01T20:00:00+02:00",
		"2025-06-01T18:00",
		"2025-06-01 18:00:00",
		"2025-06-01 18:00",
	} {
		got, err := ParseDateTime(s)
		require.NoError(t, err, s)
		assert.True(t, want.Equal(got), s)
		assert.Equal(t, time.UTC, got.Location(), s)
	}

	_, err := ParseDateTime("01/06/2025")
	assert.Error(t, err)
}
