package docket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
	}{
		{"October 10, 2000", "2000-10-10"},
		{"Sept. 30, 1971", "1971-09-30"},
		{"Sep. 1, 1981", "1981-09-01"},
		{"Jan 1, 2000", "2000-01-01"},
		{"Feb. 16, 2019", "2019-02-16"},
		{"11 January 2017", "2017-01-11"},
		{"6 July 1993", "1993-07-06"},
		{"12/4/2000", "2000-12-04"},
		{"  May   5,  2001 ", "2001-05-05"},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			d, err := ParseDate(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d.String())
		})
	}
}

func TestParseDateErrors(t *testing.T) {
	_, err := ParseDate("   ")
	assert.ErrorIs(t, err, ErrNoDate)

	for _, raw := range []string{"February 30, 2000", "Foo 1, 2000", "13/1/2000", "sometime in 2000"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseDate(raw)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}
