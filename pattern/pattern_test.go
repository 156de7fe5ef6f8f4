package pattern_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol-unbounded/pattern"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		aliveRunes string
		want       []string
	}{
		{
			name: "plain rows",
			text: "010\n001\n111\n",
			want: []string{"010", "001", "111"},
		},
		{
			name: "no trailing newline",
			text: "11\n01",
			want: []string{"11", "01"},
		},
		{
			name: "comments dropped, blank rows kept",
			text: "! glider\n# more\n010\n\n111\n",
			want: []string{"010", "", "111"},
		},
		{
			name: "spaced cells and CRLF",
			text: "0 1 0\r\n1 0 1\r\n",
			want: []string{"010", "101"},
		},
		{
			name:       "cells format",
			text:       "!Name: Blinker\n.O.\n.O.\n.O.\n",
			aliveRunes: "O",
			want:       []string{"010", "010", "010"},
		},
		{
			name:       "several alive runes",
			text:       "*O.x\n",
			aliveRunes: "*O",
			want:       []string{"1100"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := pattern.Parse(tc.name, tc.text, tc.aliveRunes)
			require.NoError(t, err)
			require.Equal(t, tc.want, rows)
		})
	}
}

func TestParse_BlankRows(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"between rows", "1\n\n1\n", []string{"1", "", "1"}},
		{"only newline", "\n", []string{""}},
		{"leading blanks", "\n\n11", []string{"", "", "11"}},
		{"whitespace only", "  \t\n1\n", []string{"", "1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var (
				rows []string
				err  error
			)
			require.NotPanics(t, func() {
				rows, err = pattern.Parse(tc.name, tc.text, "")
			})
			require.NoError(t, err)
			require.Equal(t, tc.want, rows)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := pattern.Parse("bad", "01#trailing comment\n", "")
	require.ErrorIs(t, err, pattern.ErrMalformedPattern)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.txt")
	require.NoError(t, os.WriteFile(path, []byte("! blinker\n111\n"), 0o600))

	rows, err := pattern.ParseFile(path, "")
	require.NoError(t, err)
	require.Equal(t, []string{"111"}, rows)

	_, err = pattern.ParseFile(filepath.Join(t.TempDir(), "missing.txt"), "")
	require.Error(t, err)
}

func TestBuiltin(t *testing.T) {
	require.Equal(t, []string{"blinker", "glider", "pulsar"}, pattern.BuiltinNames())

	rows, err := pattern.Builtin("glider")
	require.NoError(t, err)
	require.Equal(t, []string{"010", "001", "111"}, rows)

	rows, err = pattern.Builtin(pattern.DefaultBuiltin)
	require.NoError(t, err)
	require.Len(t, rows, 17)
	for _, row := range rows {
		require.Len(t, row, 17)
	}

	_, err = pattern.Builtin("gosper")
	require.ErrorIs(t, err, pattern.ErrUnknownBuiltin)
}
