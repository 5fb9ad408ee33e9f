package voucher

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCode        = errors.New("invalid voucher code format")
	ErrInvalidDescription = errors.New("voucher description must be between 1 and 255 characters")
	ErrInvalidAmount      = errors.New("voucher amount must be positive, at most 9999999999.99, with at most 2 decimal places")
)

const (
	MaxCodeLength        = 64
	MaxDescriptionLength = 255
	AmountScale          = 2
)

// MaxAmount is the largest value a NUMERIC(12,2) column holds.
var MaxAmount = decimal.RequireFromString("9999999999.99")

// codes are case-sensitive
var codeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(code)
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Description string

func NewDescription(description string) (Description, error) {
	description = strings.TrimSpace(description)
	n := utf8.RuneCountInString(description)
	if n == 0 || n > MaxDescriptionLength {
		return Description(""), ErrInvalidDescription
	}
	return Description(description), nil
}

func (d Description) String() string {
	return string(d)
}

type Amount struct {
	value decimal.Decimal
}

func NewAmount(value decimal.Decimal) (Amount, error) {
	if !value.IsPositive() || value.GreaterThan(MaxAmount) {
		return Amount{}, ErrInvalidAmount
	}
	if !value.Equal(value.Truncate(AmountScale)) {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: value}, nil
}

func ParseAmount(raw string) (Amount, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	return NewAmount(value)
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// String renders the amount with its fixed scale, e.g. "5.00".
func (a Amount) String() string {
	return a.value.StringFixed(AmountScale)
}

func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

// RestoreAmount skips validation for values loaded from the store.
func RestoreAmount(value decimal.Decimal) Amount {
	return Amount{value: value}
}
