package citation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolbeans/phcite/pkg/docket"
	"github.com/coolbeans/phcite/pkg/types"
)

func date(t *testing.T, y, m, d int) *types.Date {
	t.Helper()
	dt, err := types.NewDate(y, m, d)
	require.NoError(t, err)
	return &dt
}

func TestCitationString(t *testing.T) {
	cases := []struct {
		name     string
		cite     Citation
		expected string
	}{
		{name: "empty", cite: Citation{}, expected: InvalidMarker},
		{name: "report_only", cite: Citation{SCRA: "35 SCRA 190"}, expected: "35 SCRA 190"},
		{
			name:     "docket_and_report",
			cite:     Citation{Docket: "GR No. 31711, Sep. 30, 1971", SCRA: "41 SCRA 190"},
			expected: "GR No. 31711, Sep. 30, 1971, 41 SCRA 190",
		},
		{
			name:     "series_order",
			cite:     Citation{OffG: "45 O.G. 3456", Phil: "374 Phil. 1", SCRA: "31 SCRA 562"},
			expected: "374 Phil. 1, 31 SCRA 562, 45 O.G. 3456",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cite.String())
		})
	}

	assert.True(t, Citation{}.IsZero())
	assert.False(t, Citation{Phil: "1 Phil. 1"}.IsZero())
}

func TestCitationEqual(t *testing.T) {
	gr := Citation{
		DocketCategory: docket.GR,
		DocketSerial:   "147033",
		DocketDate:     date(t, 2003, 4, 30),
		Docket:         "GR No. 147033, Apr. 30, 2003",
	}

	cases := []struct {
		name  string
		a, b  Citation
		equal bool
	}{
		{name: "same_docket", a: gr, b: Citation{Docket: gr.Docket}, equal: true},
		{name: "shared_phil", a: Citation{Phil: "374 Phil. 1", SCRA: "1 SCRA 1"}, b: Citation{Phil: "374 Phil. 1"}, equal: true},
		{name: "shared_scra", a: Citation{SCRA: "1 SCRA 1"}, b: Citation{SCRA: "1 SCRA 1", OffG: "2 O.G. 2"}, equal: true},
		{name: "shared_offg", a: Citation{OffG: "2 O.G. 2"}, b: Citation{OffG: "2 O.G. 2"}, equal: true},
		{
			name:  "triple",
			a:     gr,
			b:     Citation{DocketCategory: docket.GR, DocketSerial: "147033", DocketDate: date(t, 2003, 4, 30), SCRA: "9 SCRA 9"},
			equal: true,
		},
		{
			name:  "triple_other_date",
			a:     gr,
			b:     Citation{DocketCategory: docket.GR, DocketSerial: "147033", DocketDate: date(t, 2003, 5, 1)},
			equal: false,
		},
		{
			name:  "partial_triple",
			a:     Citation{DocketCategory: docket.GR, DocketSerial: "1"},
			b:     Citation{DocketCategory: docket.GR, DocketSerial: "1"},
			equal: false,
		},
		{name: "absent_fields", a: Citation{}, b: Citation{}, equal: false},
		{name: "different_series", a: Citation{Phil: "1 Phil. 1"}, b: Citation{SCRA: "1 SCRA 1"}, equal: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.equal, tc.a.Equal(tc.b))
			assert.Equal(t, tc.equal, tc.b.Equal(tc.a))
		})
	}
}

func TestCitationFields(t *testing.T) {
	c, ok := ExtractCitation("Villegas v. Subido, G.R. No. 31711, Sept. 30, 1971, 41 SCRA 190")
	require.True(t, ok)

	assert.Equal(t, map[string]string{
		"docket_category": "GR",
		"docket_serial":   "31711",
		"docket_date":     "1971-09-30",
		"docket":          "GR No. 31711, Sep. 30, 1971",
		"scra":            "41 SCRA 190",
	}, c.Fields())

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"docket_category": "GR",
		"docket_serial": "31711",
		"docket_date": "1971-09-30",
		"docket": "GR No. 31711, Sep. 30, 1971",
		"scra": "41 SCRA 190"
	}`, string(raw))

	assert.Empty(t, Citation{}.Fields())
}

func TestBackfillKeepsPresentFields(t *testing.T) {
	c := Citation{SCRA: "1 SCRA 1"}
	c.backfill(Citation{SCRA: "2 SCRA 2", Phil: "3 Phil. 3", DocketDate: date(t, 2000, 1, 1)})

	assert.Equal(t, "1 SCRA 1", c.SCRA)
	assert.Equal(t, "3 Phil. 3", c.Phil)
	require.NotNil(t, c.DocketDate)
	assert.Equal(t, "2000-01-01", c.DocketDate.String())
}
