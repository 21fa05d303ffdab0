// Package iso3166 provides ISO 3166-1 country records and lookups by name,
// alternate name, alpha-2, alpha-3 and numeric code.
package iso3166

import "fmt"

// Country is one ISO 3166-1 country. Values are immutable once built.
type Country struct {
	name     string
	altNames []string
	alpha2   string
	alpha3   string
	numeric  int
}

// NewCountry creates a country record. altNames may be nil.
func NewCountry(name string, altNames []string, alpha2, alpha3 string, numeric int) *Country {
	c := &Country{
		name:    name,
		alpha2:  alpha2,
		alpha3:  alpha3,
		numeric: numeric,
	}
	if len(altNames) > 0 {
		c.altNames = make([]string, len(altNames))
		copy(c.altNames, altNames)
	}
	return c
}

// Name returns the canonical country name.
func (c *Country) Name() string {
	return c.name
}

// AlternateNames returns the alternate names in declaration order.
// Alternate names are not part of ISO 3166-1; they exist so that names like
// "United States" resolve to "United States of America".
func (c *Country) AlternateNames() []string {
	if len(c.altNames) == 0 {
		return nil
	}
	result := make([]string, len(c.altNames))
	copy(result, c.altNames)
	return result
}

// HasAlternateNames reports whether the country declares alternate names.
func (c *Country) HasAlternateNames() bool {
	return len(c.altNames) > 0
}

// Alpha2 returns the two-letter code.
func (c *Country) Alpha2() string {
	return c.alpha2
}

// Alpha3 returns the three-letter code.
func (c *Country) Alpha3() string {
	return c.alpha3
}

// NumericCode returns the numeric code.
func (c *Country) NumericCode() int {
	return c.numeric
}

// FormattedNumericCode returns the numeric code zero-padded to three digits,
// e.g. 4 becomes "004".
func (c *Country) FormattedNumericCode() string {
	return fmt.Sprintf("%03d", c.numeric)
}

// ISO31662 returns the ISO 3166-2 subdivision prefix, e.g. "ISO 3166-2:AF".
func (c *Country) ISO31662() string {
	return "ISO 3166-2:" + c.alpha2
}

func (c *Country) String() string {
	return c.alpha2 + " " + c.name
}
