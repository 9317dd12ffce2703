package htmlx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePrice_ContinentalNotation(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"87.342,50", 87342.50},
		{"1.234,56", 1234.56},
		{"87,5", 87.5},
		{"4.250", 4250},
		{"34,2543", 34.2543},
		{" 2.850,00 ", 2850},
		{"05", 5},
	}
	for _, c := range cases {
		got, err := ParsePrice(c.in)
		require.NoError(t, err, c.in)
		require.InDelta(t, c.want, got, 1e-9, c.in)
	}
}

func TestParsePrice_Malformed(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"abc",
		"1,2,3",
		"12a,5",
		"%1,25",
		"4.250,10 TL",
	}
	for _, c := range cases {
		_, err := ParsePrice(c)
		require.ErrorIs(t, err, ErrUnparseable, "%q", c)
	}
}
