package docket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseCategory(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
	}{
		{"G.  R. No. 123", "gr"},
		{"a.c124", "ac"},
		{"A.M. No. 5", "am"},
		{"Bm 12", "bm"},
		{"OCA IPI 10-25", "oca"},
		{"p.e.t. 3", "pet"},
		{"udk 15574", "udk"},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			cat, err := LooseCategory(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cat)
		})
	}

	_, err := LooseCategory("CA 123")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestMatchLoose(t *testing.T) {
	cases := []struct {
		raw      string
		expected LooseMatch
	}{
		{"gr 1241-sc Sep. 1, 1981", LooseMatch{Category: "gr", ID: "1241-SC", Date: "1981-09-01"}},
		{"am 124, Sep. 1, 1981", LooseMatch{Category: "am", ID: "124", Date: "1981-09-01"}},
		{"ac ac-2142-12, 12/4/2000", LooseMatch{Category: "ac", ID: "AC-2142-12", Date: "2000-12-04"}},
		{"G.R. No. 192813, 12/4/2000", LooseMatch{Category: "gr", ID: "192813", Date: "2000-12-04"}},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			m, err := MatchLoose(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m)
		})
	}
}

func TestMatchLooseErrors(t *testing.T) {
	_, err := MatchLoose("nothing to see")
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = MatchLoose("xy 123, Sep. 1, 1981")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = MatchLoose("gr 123, Sep. 31, 1981")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
