package requests

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

var (
	numberPattern  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	integerPattern = regexp.MustCompile(`^[+-]?\d+$`)

	dateTimeLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	}
)

var (
	errRequired = errors.New("is required")
	errNumber   = errors.New("must be a number")
	errInteger  = errors.New("must be an integer")
	errDateTime = errors.New("must be a valid date-time")
)

var (
	// Required rejects missing, nil and whitespace-only values.
	Required = presenceRule{allowNil: false}
	// Filled accepts a nil pointer (field absent) but rejects an empty value.
	Filled = presenceRule{allowNil: true}

	IsNumber   = numberRule{}
	IsInteger  = integerRule{}
	IsDateTime = dateTimeRule{}

	// Money fits a decimal(10,2) column: 8 integer digits, 2 decimal places.
	Money = scaleRule{intDigits: 8, places: 2}
)

type presenceRule struct {
	allowNil bool
}

func (r presenceRule) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		if r.allowNil {
			return nil
		}
		return errRequired
	}

	if s, ok := asString(value); ok {
		if strings.TrimSpace(s) == "" {
			return errRequired
		}
		return nil
	}

	if validation.IsEmpty(value) {
		return errRequired
	}
	return nil
}

// numberRule also rejects exponents the decimal type cannot represent.
type numberRule struct{}

func (numberRule) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}

	s, ok := asString(value)
	s = strings.TrimSpace(s)
	if !ok || !numberPattern.MatchString(s) {
		return errNumber
	}
	if _, err := decimal.NewFromString(s); err != nil {
		return errNumber
	}
	return nil
}

// scaleRule bounds a number's integer digits and decimal places. Values that
// are not numbers are left to IsNumber.
type scaleRule struct {
	intDigits int64
	places    int64
}

func (r scaleRule) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}

	s, ok := asString(value)
	if !ok {
		return nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil
	}

	intDigits, places := digits(d)
	if places > r.places {
		return fmt.Errorf("must have at most %d decimal places", r.places)
	}
	if intDigits > r.intDigits {
		return fmt.Errorf("must have at most %d digits before the decimal point", r.intDigits)
	}
	return nil
}

// digits counts the significant integer digits and decimal places of d
// without rescaling it, so huge exponents stay cheap.
func digits(d decimal.Decimal) (intDigits, places int64) {
	if d.IsZero() {
		return 0, 0
	}

	coef := strings.TrimLeft(d.Coefficient().String(), "-")
	trimmed := strings.TrimRight(coef, "0")
	exp := int64(d.Exponent()) + int64(len(coef)-len(trimmed))

	intDigits = int64(len(trimmed)) + exp
	if exp < 0 {
		places = -exp
	}
	return intDigits, places
}

// integerRule also rejects values that overflow int.
type integerRule struct{}

func (integerRule) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}

	s, ok := asString(value)
	s = strings.TrimSpace(s)
	if !ok || !integerPattern.MatchString(s) {
		return errInteger
	}
	if _, err := strconv.Atoi(strings.TrimPrefix(s, "+")); err != nil {
		return errInteger
	}
	return nil
}

type minRule struct {
	min int
}

// AtLeast checks an integer Number against a lower bound. Values that are not
// integers are left to IsInteger.
func AtLeast(min int) validation.Rule {
	return minRule{min: min}
}

func (r minRule) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}

	n, ok := value.(Number)
	if !ok {
		return nil
	}
	i, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(string(n)), "+"))
	if err != nil {
		return nil
	}
	if i < r.min {
		return fmt.Errorf("must be at least %d", r.min)
	}
	return nil
}

type dateTimeRule struct{}

func (dateTimeRule) Validate(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}

	s, ok := asString(value)
	if !ok {
		return errDateTime
	}
	if _, err := ParseDateTime(s); err != nil {
		return errDateTime
	}
	return nil
}

// ParseDateTime accepts RFC 3339 and the common "YYYY-MM-DD HH:MM[:SS]"
// forms. Values without a zone are taken as UTC.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date-time %q", s)
}

func asString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case Number:
		return string(v), true
	default:
		return "", false
	}
}
