package csvrow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoinSplitRoundTrip(t *testing.T) {
	cases := [][]string{
		{"a", "b", "c"},
		{"with,comma", `with "quotes"`, ""},
		{"line\nbreak", "carriage\rreturn", `back\slash`},
		{" leading space", "trailing ", "\\n literal"},
		{""},
	}
	for _, fields := range cases {
		line := Join(fields...)
		require.NotContains(t, line, "\n")
		got, err := Split(line, len(fields))
		require.NoError(t, err, "line %q", line)
		require.Equal(t, fields, got)
	}
}

func TestSplitFieldCount(t *testing.T) {
	_, err := Split("a,b", 3)
	require.ErrorIs(t, err, ErrFieldCount)

	got, err := Split("a,b", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, got)
}

func TestSplitRejectsMalformed(t *testing.T) {
	_, err := Split("a\nb", 0)
	require.ErrorIs(t, err, ErrMultiline)

	_, err = Split("", 0)
	require.ErrorIs(t, err, ErrFieldCount)

	_, err = Split(`"unterminated,b`, 0)
	require.Error(t, err)

	_, err = Split(`bad\qescape`, 0)
	require.ErrorIs(t, err, ErrEscape)

	_, err = Split(`dangling\`, 0)
	require.ErrorIs(t, err, ErrEscape)
}
