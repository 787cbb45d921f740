package docket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	assert.Equal(t, []Category{GR, AM, AC, BM, OCA, PET, JIB, UDK}, Categories())

	for i, g := range Grammars() {
		assert.Equal(t, Categories()[i], g.Category())
	}
	for _, c := range Categories() {
		assert.True(t, c.Valid())
		assert.NotEmpty(t, c.Label())
	}
	assert.Equal(t, "General Register", GR.Label())
	assert.Equal(t, "OCA", OCA.Short())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" gr ")
	require.NoError(t, err)
	assert.Equal(t, GR, c)

	c, err = ParseCategory("Oca")
	require.NoError(t, err)
	assert.Equal(t, OCA, c)

	_, err = ParseCategory("CA")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
