package domain

import (
	"fmt"
	"math/big"
)

// Money represents a monetary value with precise decimal arithmetic using big.Rat.
// It stores the value as a rational number (numerator/denominator) to avoid
// floating-point drift across chained adjustments.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a new Money instance from numerator and denominator.
// Example: NewMoney(249900, 100) represents 2499.00
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// NewMoneyFromFloat creates a Money from a float64 value.
// Intended for configuration values (floors, fixed adjustments) that arrive
// as decimals; price math itself stays rational.
func NewMoneyFromFloat(value float64) *Money {
	rat := new(big.Rat)
	if rat.SetFloat64(value) == nil {
		// NaN/Inf have no monetary meaning, collapse to zero
		return &Money{rat: big.NewRat(0, 1)}
	}
	return &Money{rat: rat}
}

// NewMoneyFromRat creates a new Money instance from a big.Rat.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{rat: big.NewRat(0, 1)}
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// Numerator returns the numerator of the rational number.
func (m *Money) Numerator() int64 {
	return m.rat.Num().Int64()
}

// Denominator returns the denominator of the rational number.
func (m *Money) Denominator() int64 {
	return m.rat.Denom().Int64()
}

// Normalize returns a copy with the fraction reduced to lowest terms.
// big.Rat keeps values normalized internally; this exists so storage code
// can rely on a canonical representation explicitly.
func (m *Money) Normalize() *Money {
	return m.Copy()
}

// IsSafeForStorage reports whether numerator and denominator both fit in int64.
func (m *Money) IsSafeForStorage() bool {
	return m.rat.Num().IsInt64() && m.rat.Denom().IsInt64()
}

// Add adds two Money values and returns a new Money instance.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract subtracts another Money value from this one and returns a new Money instance.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyByRat multiplies this Money value by a rational number and returns a new Money instance.
func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// ApplyPercent returns m scaled by (1 + percent/100).
// A negative percent reduces the value.
func (m *Money) ApplyPercent(percent float64) *Money {
	return m.MultiplyByRat(new(big.Rat).Add(big.NewRat(1, 1), percentRat(percent)))
}

// PercentOf returns percent% of m.
func (m *Money) PercentOf(percent float64) *Money {
	return m.MultiplyByRat(percentRat(percent))
}

// percentRat converts a percentage (e.g. 12.5) to its multiplier (0.125).
func percentRat(percent float64) *big.Rat {
	rat := new(big.Rat)
	if rat.SetFloat64(percent) == nil {
		return big.NewRat(0, 1)
	}
	return rat.Quo(rat, big.NewRat(100, 1))
}

// IsZero returns true if the money value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the money value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsPositive returns true if the money value is positive.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// LessThan returns true if this Money value is less than another.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if this Money value is greater than another.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if this Money value equals another.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Round rounds the value to the given number of decimal places using the
// supplied mode. The second return value reports whether rounding actually
// changed the value. RoundingNone returns the value untouched.
//
// Tie and direction semantics follow the reference behavior:
// RoundingNearest rounds half up (toward +inf), RoundingCeil rounds toward
// +inf, RoundingFloor rounds toward -inf.
func (m *Money) Round(decimals int, mode RoundingMode) (*Money, bool) {
	if mode == RoundingNone {
		return m.Copy(), false
	}
	if decimals < 0 {
		decimals = 0
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	scaled := new(big.Rat).Mul(m.rat, new(big.Rat).SetInt(scale))

	num := scaled.Num()
	den := scaled.Denom() // always positive for big.Rat

	// Euclidean division: quo is floor(num/den), rem is in [0, den)
	quo, rem := new(big.Int).DivMod(num, den, new(big.Int))

	switch mode {
	case RoundingCeil:
		if rem.Sign() != 0 {
			quo.Add(quo, big.NewInt(1))
		}
	case RoundingFloor:
		// floor already
	default: // RoundingNearest
		twice := new(big.Int).Lsh(rem, 1)
		if twice.Cmp(den) >= 0 {
			quo.Add(quo, big.NewInt(1))
		}
	}

	rounded := &Money{rat: new(big.Rat).SetFrac(quo, scale)}
	return rounded, !rounded.Equals(m)
}

// Float64 returns an approximate float64 representation (for display only, not calculations).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns a string representation of the money value.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
