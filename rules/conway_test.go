package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol-unbounded/rules"
)

// TestConway_MatchesApplyConwayRules checks the table-driven rule against the
// closed form for every neighbour count and state.
func TestConway_MatchesApplyConwayRules(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{false, true} {
			assert.Equal(t, rules.ApplyConwayRules(n, alive), rules.Conway.Next(n, alive), "n=%d alive=%v", n, alive)
		}
	}
	assert.False(t, rules.Conway.Next(-1, true))
	assert.False(t, rules.Conway.Next(9, false))
	assert.Equal(t, "B3/S23", rules.Conway.String())
	assert.Equal(t, rules.MustParseRule("B3/S23"), rules.Conway)
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"B3/S23", "B3/S23"},
		{"b36/s23", "B36/S23"},
		{" B2/S ", "B2/S"},
		{"B/S012345678", "B/S012345678"},
		{"B63/S32", "B36/S23"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			rule, err := rules.ParseRule(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, rule.String())
		})
	}
}

func TestParseRule_Errors(t *testing.T) {
	for _, in := range []string{"", "23/3", "B3S23", "S23/B3", "B9/S23", "B3/S2x"} {
		t.Run(in, func(t *testing.T) {
			_, err := rules.ParseRule(in)
			require.ErrorIs(t, err, rules.ErrInvalidRule)
		})
	}
	require.Panics(t, func() { rules.MustParseRule("nope") })
}
