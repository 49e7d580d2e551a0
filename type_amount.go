package tayeb

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// PlatformCurrency is the settlement currency every balance and
// investment amount is denominated in.
const PlatformCurrency = "USD"

// Amount represents a non-negative quantity of platform funds.
//
// It is backed by an arbitrary-precision decimal, so credits cannot
// overflow; the no-negative invariant is enforced by the constructors
// and by the ledger's sufficiency-checked debit path.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from a numeric value. It panics on negative input:
// amounts come from validated commands, a negative literal is a
// programming error, not a user condition.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	d := newDecimal(value)
	if d.IsNegative() {
		panic("negative amount: " + d.String())
	}
	return Amount{value: d}
}

func newDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	case decimal.Decimal:
		return v
	}
	panic(fmt.Sprintf("unsupported amount type %T", value))
}

// ParseAmount parses a decimal string into an Amount, rejecting
// negative values.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("invalid amount %q: must not be negative", s)
	}
	return Amount{value: d}, nil
}

func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) Add(b Amount) Amount       { return Amount{value: a.value.Add(b.value)} }

// Sub subtracts b from a. It panics when b exceeds a: every spending
// path checks sufficiency first, an underflow here is a bug.
func (a Amount) Sub(b Amount) Amount {
	if a.value.LessThan(b.value) {
		panic("amount underflow: " + a.value.String() + " - " + b.value.String())
	}
	return Amount{value: a.value.Sub(b.value)}
}

// String formats the amount in the platform currency.
func (a Amount) String() string {
	cur := money.New(0, PlatformCurrency).Currency()
	return cur.Formatter().Format(a.value.Shift(int32(cur.Fraction)).IntPart())
}

// MarshalJSON persists the amount as a bare decimal number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

// UnmarshalJSON reads a bare decimal number, rejecting negatives.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	if d.IsNegative() {
		return fmt.Errorf("invalid amount %s: must not be negative", d)
	}
	a.value = d
	return nil
}
