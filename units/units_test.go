package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringParse(t *testing.T) {
	for _, u := range []Unit{Share, USD, BTC, Gold} {
		t.Run(u.String(), func(t *testing.T) {
			assert.True(t, u.Known())
			got, err := Parse(u.String())
			require.NoError(t, err)
			assert.Equal(t, u, got)
		})
	}
}

func TestUnnamedUnit(t *testing.T) {
	u := Unit(200)
	assert.False(t, u.Known())
	assert.Equal(t, "unit(200)", u.String())

	_, err := Parse("doge")
	assert.Error(t, err)
}
