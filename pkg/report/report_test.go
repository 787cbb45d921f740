package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePublisher(t *testing.T) {
	cases := []struct {
		raw      string
		expected Publisher
	}{
		{"Phil.", PublisherPhil},
		{"Phil", PublisherPhil},
		{"PHIL.", PublisherPhil},
		{"Phil. Rep.", PublisherPhil},
		{"SCRA", PublisherSCRA},
		{"S.C.R.A.", PublisherSCRA},
		{"O.G.", PublisherOG},
		{"OG", PublisherOG},
		{"Off. Gaz.", PublisherOG},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			pub, ok := ParsePublisher(tc.raw)
			require.True(t, ok)
			assert.Equal(t, tc.expected, pub)
		})
	}

	_, ok := ParsePublisher("U.S.")
	assert.False(t, ok)
}

func TestReportSeries(t *testing.T) {
	r, err := New("342", "SCRA", "449")
	require.NoError(t, err)
	assert.Equal(t, "342 SCRA 449", r.VolPubPage())
	assert.Equal(t, "342 SCRA 449", r.SCRA())
	assert.Empty(t, r.Phil())
	assert.Empty(t, r.OffG())

	r, err = New("045", "O. G.", "0123")
	require.NoError(t, err)
	assert.Equal(t, "45 O.G. 123", r.OffG())

	_, err = New("1", "F.2d", "2")
	assert.Error(t, err)
}

func TestExtract(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "single_phil",
			text:     "12 Phil. 24",
			expected: []string{"12 Phil. 24"},
		},
		{
			name:     "pincite_and_year",
			text:     "374 Phil. 1, 10-11 (1999) 1111 SCRA 1111",
			expected: []string{"374 Phil. 1", "1111 SCRA 1111"},
		},
		{
			name:     "markup_around_names",
			text:     "<em>In re Almacen</em>, 31 SCRA 562, 600 (1970).",
			expected: []string{"31 SCRA 562"},
		},
		{
			name:     "official_gazette",
			text:     "People v. X, 45 O.G. 3456 (1949)",
			expected: []string{"45 O.G. 3456"},
		},
		{
			name:     "duplicates_kept",
			text:     "41 SCRA 190; Y v. Z, 41 SCRA 190",
			expected: []string{"41 SCRA 190", "41 SCRA 190"},
		},
		{
			name: "lowercase_acronym_ignored",
			text: "page 12 scra 13",
		},
		{
			name: "no_reports",
			text: "Hello World",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for _, r := range Extract(tc.text) {
				got = append(got, r.VolPubPage())
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestUnique(t *testing.T) {
	text := "35 SCRA 190; 1111 SCRA 1111; Y v. Z, 35 SCRA 190; 374 Phil. 1"
	assert.Equal(t, []string{"35 SCRA 190", "1111 SCRA 1111", "374 Phil. 1"}, Unique(text))
}

func TestFirst(t *testing.T) {
	r, ok := First("see 41 SCRA 190 and 12 Phil. 24")
	require.True(t, ok)
	assert.Equal(t, "41 SCRA 190", r.String())

	_, ok = First("nothing here")
	assert.False(t, ok)
}
