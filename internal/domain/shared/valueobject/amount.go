package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of fractional digits an amount keeps
const AmountPlaces int32 = 2

// ErrNonPositiveAmount is returned when an amount is zero or negative after rounding
var ErrNonPositiveAmount = errors.New("amount must be greater than zero")

// Amount is a strictly positive monetary value with cent precision.
// The sign of a ledger entry comes from its type, never from the amount.
// It is immutable - all operations return new Amount instances
type Amount struct {
	value decimal.Decimal
}

// NewAmount rounds d to cents and checks that it is positive
func NewAmount(d decimal.Decimal) (Amount, error) {
	rounded := d.Round(AmountPlaces)
	if !rounded.IsPositive() {
		return Amount{}, ErrNonPositiveAmount
	}
	return Amount{value: rounded}, nil
}

// NewAmountFromString parses a decimal string into an Amount
func NewAmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount string: %w", err)
	}
	return NewAmount(d)
}

// MustNewAmount is NewAmount for constants and tests; it panics on invalid input
func MustNewAmount(s string) Amount {
	a, err := NewAmountFromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the underlying decimal value
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsZero reports whether a is the zero Amount (never produced by NewAmount)
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Equals compares two amounts by value
func (a Amount) Equals(other Amount) bool {
	return a.value.Equal(other.value)
}

// String returns the amount with exactly two fractional digits
func (a Amount) String() string {
	return a.value.StringFixed(AmountPlaces)
}

// MarshalJSON renders the amount as a string to avoid float precision loss
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both a JSON number and a numeric string
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	parsed, err := NewAmount(d)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value implements driver.Valuer for database storage
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner. SQLite hands back REAL columns as float64.
func (a *Amount) Scan(value any) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return fmt.Errorf("cannot scan %T into Amount: %w", value, err)
	}
	a.value = d.Round(AmountPlaces)
	return nil
}
