package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocationCityCommaState(t *testing.T) {
	loc := ParseLocation("Sydney, NSW", "Australia")

	require.NotNil(t, loc)
	assert.Equal(t, "Sydney", loc.City)
	assert.Equal(t, "New South Wales", loc.State)
	assert.Equal(t, "Sydney, New South Wales", loc.Name)
	assert.Equal(t, "Australia", loc.Country)
}

func TestParseLocationTrailingStateToken(t *testing.T) {
	loc := ParseLocation("Melbourne VIC", "Australia")

	require.NotNil(t, loc)
	assert.Equal(t, "Melbourne", loc.City)
	assert.Equal(t, "Victoria", loc.State)
	assert.Equal(t, "Melbourne, Victoria", loc.Name)
}

func TestParseLocationFullStateName(t *testing.T) {
	loc := ParseLocation("Brisbane, Queensland", "Australia")

	require.NotNil(t, loc)
	assert.Equal(t, "Brisbane", loc.City)
	assert.Equal(t, "Queensland", loc.State)
}

func TestParseLocationPlainCity(t *testing.T) {
	loc := ParseLocation("Byron Bay", "Australia")

	require.NotNil(t, loc)
	assert.Equal(t, "Byron Bay", loc.City)
	assert.Empty(t, loc.State)
	assert.Equal(t, "Byron Bay", loc.Name)
}

func TestParseLocationEmptyIsNil(t *testing.T) {
	assert.Nil(t, ParseLocation("", "Australia"))
	assert.Nil(t, ParseLocation("   ", "Australia"))
}

func TestParseLocationDefaultCountry(t *testing.T) {
	loc := ParseLocation("Perth, WA", "")

	require.NotNil(t, loc)
	assert.Equal(t, "Australia", loc.Country)
}
