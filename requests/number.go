package requests

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a numeric input field kept in its textual form so that a bad
// value ("abc", true, {}) reaches validation instead of failing the bind.
// JSON numbers, JSON strings and form values are all accepted.
type Number string

func (n *Number) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*n = ""
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = s
	}

	*n = Number(strings.TrimSpace(raw))
	return nil
}

// UnmarshalParam is used by gin's form binding.
func (n *Number) UnmarshalParam(param string) error {
	*n = Number(strings.TrimSpace(param))
	return nil
}

func (n Number) String() string {
	return string(n)
}

// Decimal returns the value as a decimal. It is only meaningful after the
// field passed IsNumber.
func (n Number) Decimal() decimal.Decimal {
	d, err := decimal.NewFromString(string(n))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Int returns the value as an int. It is only meaningful after the field
// passed IsInteger.
func (n Number) Int() int {
	i, err := strconv.Atoi(strings.TrimPrefix(string(n), "+"))
	if err != nil {
		return 0
	}
	return i
}
