package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCents int64
		wantErr   bool
	}{
		{"dot separator", "12.34", 1234, false},
		{"comma separator", "12,34", 1234, false},
		{"integer", "100", 10000, false},
		{"rounds half up", "12.345", 1235, false},
		{"rounds down", "12.344", 1234, false},
		{"whitespace", " 50.00 ", 5000, false},
		{"empty", "", 0, true},
		{"zero", "0", 0, true},
		{"zero with decimals", "0.00", 0, true},
		{"negative", "-5", 0, true},
		{"explicit plus", "+5", 0, true},
		{"garbage", "abc", 0, true},
		{"two separators", "1.2.3", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCents, got.Cents())
		})
	}
}

func TestCentsRoundTrip(t *testing.T) {
	a := FromCents(1234)
	assert.Equal(t, int64(1234), a.Cents())
	assert.Equal(t, "12.34", a.String())
}

func TestArithmetic(t *testing.T) {
	a := FromCents(10000)
	b := FromCents(3000)

	assert.Equal(t, int64(7000), a.Sub(b).Cents())
	assert.Equal(t, int64(13000), a.Add(b).Cents())
	assert.Equal(t, int64(-3000), b.Neg().Cents())
	assert.True(t, a.GreaterThan(b))
	assert.False(t, b.GreaterThan(a))
	assert.True(t, a.Sub(a).Equal(Zero))
}

func TestSumConservedAcrossDebitCreditPair(t *testing.T) {
	src := FromCents(10000)
	dst := FromCents(250)
	amount, err := Parse("30.00")
	require.NoError(t, err)

	total := src.Add(dst)
	src = src.Sub(amount)
	dst = dst.Add(amount)

	assert.True(t, total.Equal(src.Add(dst)))
	assert.Equal(t, "70.00", src.String())
}
