package iso3166

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCountryAccessors(t *testing.T) {
	c := NewCountry("United States of America", []string{"United States"}, "US", "USA", 840)

	assert.Equal(t, "United States of America", c.Name())
	assert.Equal(t, []string{"United States"}, c.AlternateNames())
	assert.True(t, c.HasAlternateNames())
	assert.Equal(t, "US", c.Alpha2())
	assert.Equal(t, "USA", c.Alpha3())
	assert.Equal(t, 840, c.NumericCode())
	assert.Equal(t, "US United States of America", c.String())
}

func TestCountryWithoutAlternateNames(t *testing.T) {
	c := NewCountry("Afghanistan", nil, "AF", "AFG", 4)

	assert.False(t, c.HasAlternateNames())
	assert.Nil(t, c.AlternateNames())
}

func TestCountryIsImmutable(t *testing.T) {
	alts := []string{"United Kingdom"}
	c := NewCountry("United Kingdom of Great Britain and Northern Ireland", alts, "GB", "GBR", 826)

	alts[0] = "changed"
	require.Equal(t, []string{"United Kingdom"}, c.AlternateNames())

	got := c.AlternateNames()
	got[0] = "changed again"
	assert.Equal(t, []string{"United Kingdom"}, c.AlternateNames())
}

func TestFormattedNumericCode(t *testing.T) {
	tests := []struct {
		numeric  int
		expected string
	}{
		{4, "004"},
		{36, "036"},
		{100, "100"},
		{840, "840"},
		{999, "999"},
	}

	for _, tc := range tests {
		c := NewCountry("x", nil, "XX", "XXX", tc.numeric)
		if got := c.FormattedNumericCode(); got != tc.expected {
			t.Errorf("FormattedNumericCode(%d) = %q, expected %q", tc.numeric, got, tc.expected)
		}
	}
}

func TestISO31662(t *testing.T) {
	c := NewCountry("Afghanistan", nil, "AF", "AFG", 4)
	assert.Equal(t, "ISO 3166-2:AF", c.ISO31662())
}

func TestFormattedNumericCodeProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(minNumeric, maxNumeric).Draw(t, "numeric")
		s := NewCountry("x", nil, "XX", "XXX", n).FormattedNumericCode()

		if len(s) != 3 {
			t.Fatalf("FormattedNumericCode(%d) = %q, expected 3 characters", n, s)
		}
		back, err := strconv.Atoi(s)
		if err != nil || back != n {
			t.Fatalf("FormattedNumericCode(%d) = %q does not parse back", n, s)
		}
	})
}
