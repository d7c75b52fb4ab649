package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kirill20202/matrix-multiplication/parse"
)

// TestScalar_Accepts covers the single-token shapes the grammar admits.
func TestScalar_Accepts(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want float64
	}{
		{"2", 2},
		{"-3.5", -3.5},
		{"1e-3", 0.001},
		{"+4", 4},
		{".5", 0.5},
		{"2.", 2},
		{"6.02E23", 6.02e23},
		{"  7  ", 7}, // surrounding whitespace ignored
	} {
		v, ok := parse.Scalar(tc.in)
		assert.True(t, ok, "Scalar(%q) must match", tc.in)
		assert.Equal(t, tc.want, v, "Scalar(%q) value", tc.in)
	}
}

// TestScalar_Rejects: anything that is not exactly one numeric token is
// "not a scalar" — an ordinary false, never an error.
func TestScalar_Rejects(t *testing.T) {
	for _, in := range []string{
		"1 2",
		"[1,2]",
		"",
		"   ",
		"2x",
		"e3",
		"1e",
		"--2",
		"1,5",
		"0x10",
		"1e999", // overflows to +Inf; the finite policy rejects it
	} {
		_, ok := parse.Scalar(in)
		assert.False(t, ok, "Scalar(%q) must not match", in)
	}
}
