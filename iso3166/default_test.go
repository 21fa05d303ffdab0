package iso3166

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAfghanistan(t *testing.T) {
	c := MustDefault()

	country := c.ByName("Afghanistan")
	require.NotNil(t, country, "Afghanistan must exist")
	assert.Equal(t, 4, country.NumericCode())
	assert.Equal(t, "004", country.FormattedNumericCode())
	assert.Equal(t, "ISO 3166-2:AF", country.ISO31662())
	assert.Same(t, country, c.ByNumeric(4))
	assert.Same(t, country, c.ByNumericString("004"))
	assert.Nil(t, c.ByNumericString("04"))
}

func TestDefaultUnitedStates(t *testing.T) {
	c := MustDefault()

	us := c.ByName("United States of America")
	require.NotNil(t, us)
	assert.Same(t, us, c.ByName("United States"))
	assert.Same(t, us, c.ByAlpha2("US"))
	assert.Same(t, us, c.ByAlpha3("USA"))
	assert.Same(t, us, c.ByNumeric(840))
}

func TestDefaultRoundTrip(t *testing.T) {
	c := MustDefault()

	countries := c.Countries()
	require.GreaterOrEqual(t, len(countries), 249)

	seen := make(map[*Country]bool, len(countries))
	for _, country := range countries {
		require.False(t, seen[country], "duplicate %v", country)
		seen[country] = true

		assert.Same(t, country, c.ByName(country.Name()))
		assert.Same(t, country, c.ByAlpha2(country.Alpha2()))
		assert.Same(t, country, c.ByAlpha3(country.Alpha3()))
		assert.Same(t, country, c.ByNumeric(country.NumericCode()))
		assert.Same(t, country, c.ByNumericString(country.FormattedNumericCode()))
		assert.Len(t, country.FormattedNumericCode(), 3)
		for _, alt := range country.AlternateNames() {
			assert.Same(t, country, c.ByName(alt), "alternate name %q", alt)
		}
	}
}

func TestDefaultIsSharedAcrossGoroutines(t *testing.T) {
	const workers = 16

	results := make([]*Catalog, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			c, err := Default()
			if err != nil {
				t.Errorf("Default() failed: %v", err)
				return
			}
			results[idx] = c
		}(i)
	}
	wg.Wait()

	for _, c := range results {
		assert.Same(t, results[0], c)
	}
}

func TestDefaultDataIsCopy(t *testing.T) {
	data := DefaultData()
	require.NotEmpty(t, data)
	data[0] = 'X'
	assert.NotEqual(t, byte('X'), DefaultData()[0])
}
