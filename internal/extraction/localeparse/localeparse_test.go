package localeparse_test

import (
	"testing"
	"time"

	"pedidos/internal/extraction/localeparse"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"slash four-digit year", "12/05/2025", time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC), true},
		{"dash four-digit year", "12-05-2025", time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC), true},
		{"slash two-digit year", "12/05/25", time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC), true},
		{"dash two-digit year", "3-1-25", time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), true},
		{"single-digit day and month", "7/9/2025", time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC), true},
		{"surrounding whitespace", "  12/05/2025  ", time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC), true},
		{"not a date", "mañana", time.Time{}, false},
		{"impossible date", "45/13/2025", time.Time{}, false},
		{"empty", "", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := localeparse.Date(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		convention localeparse.Convention
		want       string
		ok         bool
	}{
		{"comma decimal with dot thousands", "18.500,00", localeparse.CommaDecimal, "18500.00", true},
		{"comma decimal plain", "150,00", localeparse.CommaDecimal, "150.00", true},
		{"comma decimal with currency sign", "$ 296.000,00", localeparse.CommaDecimal, "296000.00", true},
		{"dot decimal", "7500.00", localeparse.DotDecimal, "7500.00", true},
		{"dot decimal with comma thousands", "8,550.00", localeparse.DotDecimal, "8550.00", true},
		{"no numeric content", "a confirmar", localeparse.CommaDecimal, "", false},
		{"empty", "", localeparse.DotDecimal, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := localeparse.Price(tt.input, tt.convention)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
					"got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestQuantity(t *testing.T) {
	t.Run("whole locale amount", func(t *testing.T) {
		n, ok := localeparse.Quantity("16,00", localeparse.CommaDecimal)
		require.True(t, ok)
		assert.Equal(t, 16, n)
	})

	t.Run("thousands separator", func(t *testing.T) {
		n, ok := localeparse.Quantity("1.200,00", localeparse.CommaDecimal)
		require.True(t, ok)
		assert.Equal(t, 1200, n)
	})

	t.Run("fractional amount is rejected", func(t *testing.T) {
		_, ok := localeparse.Quantity("16,50", localeparse.CommaDecimal)
		assert.False(t, ok)
	})

	t.Run("no digits", func(t *testing.T) {
		_, ok := localeparse.Quantity("sin cantidad", localeparse.CommaDecimal)
		assert.False(t, ok)
	})
}

func TestDigits(t *testing.T) {
	t.Run("strips non-digits", func(t *testing.T) {
		n, ok := localeparse.Digits("10 unidades")
		require.True(t, ok)
		assert.Equal(t, 10, n)
	})

	t.Run("nothing left", func(t *testing.T) {
		_, ok := localeparse.Digits("sin datos")
		assert.False(t, ok)
	})
}
