package domain

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money creation", func(t *testing.T) {
		m, err := NewMoney(249900, 100)
		require.NoError(t, err)
		assert.Equal(t, "2499.00", m.String())
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		assert.Error(t, err)
	})

	t.Run("negative numerator allowed", func(t *testing.T) {
		m, err := NewMoney(-100, 1)
		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("regular value", func(t *testing.T) {
		m := NewMoneyFromFloat(104.5)
		assert.Equal(t, "104.50", m.String())
	})

	t.Run("NaN collapses to zero", func(t *testing.T) {
		m := NewMoneyFromFloat(math.NaN())
		assert.True(t, m.IsZero())
	})

	t.Run("Inf collapses to zero", func(t *testing.T) {
		m := NewMoneyFromFloat(math.Inf(1))
		assert.True(t, m.IsZero())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	hundred := NewMoneyFromFloat(100)

	t.Run("add", func(t *testing.T) {
		assert.Equal(t, "150.00", hundred.Add(NewMoneyFromFloat(50)).String())
	})

	t.Run("subtract", func(t *testing.T) {
		assert.Equal(t, "70.00", hundred.Subtract(NewMoneyFromFloat(30)).String())
	})

	t.Run("multiply by rat", func(t *testing.T) {
		assert.Equal(t, "150.00", hundred.MultiplyByRat(big.NewRat(3, 2)).String())
	})

	t.Run("apply positive percent", func(t *testing.T) {
		assert.Equal(t, "110.00", hundred.ApplyPercent(10).String())
	})

	t.Run("apply negative percent", func(t *testing.T) {
		assert.Equal(t, "90.00", hundred.ApplyPercent(-10).String())
	})

	t.Run("percent of", func(t *testing.T) {
		assert.Equal(t, "12.50", hundred.PercentOf(12.5).String())
	})

	t.Run("chained adjustments keep precision", func(t *testing.T) {
		// 100 * 1.1 then minus 5% of the result, no float drift
		adjusted := hundred.ApplyPercent(10)
		final := adjusted.Subtract(adjusted.PercentOf(5))
		assert.Equal(t, "104.50", final.String())
	})

	t.Run("original value is never mutated", func(t *testing.T) {
		m := NewMoneyFromFloat(100)
		_ = m.Add(NewMoneyFromFloat(1))
		_ = m.ApplyPercent(50)
		assert.Equal(t, "100.00", m.String())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	a := NewMoneyFromFloat(10)
	b := NewMoneyFromFloat(20)

	assert.True(t, a.LessThan(b))
	assert.True(t, b.GreaterThan(a))
	assert.False(t, a.Equals(b))
	assert.True(t, a.Equals(a.Copy()))
	assert.True(t, NewMoneyFromFloat(0).IsZero())
	assert.True(t, NewMoneyFromFloat(-1).IsNegative())
	assert.True(t, a.IsPositive())
}

func TestMoney_Round(t *testing.T) {
	tests := []struct {
		name     string
		num      int64
		den      int64
		decimals int
		mode     RoundingMode
		want     string
		changed  bool
	}{
		{"nearest rounds down below half", 10444, 1000, 2, RoundingNearest, "10.44", true},
		{"nearest rounds tie up", 10445, 1000, 2, RoundingNearest, "10.45", true},
		{"nearest rounds up above half", 10446, 1000, 2, RoundingNearest, "10.45", true},
		{"nearest exact value unchanged", 1045, 100, 2, RoundingNearest, "10.45", false},
		{"ceil any remainder goes up", 10441, 1000, 2, RoundingCeil, "10.45", true},
		{"ceil exact value unchanged", 1044, 100, 2, RoundingCeil, "10.44", false},
		{"floor truncates", 10449, 1000, 2, RoundingFloor, "10.44", true},
		{"zero decimals", 1045, 100, 0, RoundingNearest, "10.00", true},
		{"negative value floor goes toward minus inf", -10441, 1000, 2, RoundingFloor, "-10.45", true},
		{"negative value ceil goes toward plus inf", -10449, 1000, 2, RoundingCeil, "-10.44", true},
		{"negative value nearest half goes toward plus inf", -10445, 1000, 2, RoundingNearest, "-10.44", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoney(tt.num, tt.den)
			require.NoError(t, err)

			rounded, changed := m.Round(tt.decimals, tt.mode)
			assert.Equal(t, tt.want, rounded.String())
			assert.Equal(t, tt.changed, changed)
		})
	}

	t.Run("none returns value untouched", func(t *testing.T) {
		m, _ := NewMoney(10446, 1000)
		rounded, changed := m.Round(2, RoundingNone)
		assert.True(t, rounded.Equals(m))
		assert.False(t, changed)
	})

	t.Run("rounding is idempotent", func(t *testing.T) {
		m, _ := NewMoney(10446, 1000)
		once, _ := m.Round(2, RoundingNearest)
		twice, changed := once.Round(2, RoundingNearest)
		assert.True(t, once.Equals(twice))
		assert.False(t, changed)
	})
}

func TestMoney_Storage(t *testing.T) {
	m, err := NewMoney(4999, 100)
	require.NoError(t, err)

	assert.Equal(t, int64(4999), m.Numerator())
	assert.Equal(t, int64(100), m.Denominator())
	assert.True(t, m.IsSafeForStorage())

	t.Run("normalize reduces to lowest terms", func(t *testing.T) {
		m, err := NewMoney(500, 100)
		require.NoError(t, err)
		n := m.Normalize()
		assert.Equal(t, int64(5), n.Numerator())
		assert.Equal(t, int64(1), n.Denominator())
	})
}
