package iso3166

import "strconv"

// Catalog indexes countries by every identifier. It is built once and never
// mutated afterwards, so it is safe for concurrent use without locking.
type Catalog struct {
	countries []*Country
	byName    map[string]*Country
	byAlpha2  map[string]*Country
	byAlpha3  map[string]*Country
	byNumeric map[int]*Country
}

// NewCatalog builds the lookup index from countries in the given order.
// Colliding keys are not an error: the later country wins for that key only.
func NewCatalog(countries []*Country) *Catalog {
	c := &Catalog{
		countries: make([]*Country, 0, len(countries)),
		byName:    make(map[string]*Country, len(countries)*2),
		byAlpha2:  make(map[string]*Country, len(countries)),
		byAlpha3:  make(map[string]*Country, len(countries)),
		byNumeric: make(map[int]*Country, len(countries)),
	}
	for _, country := range countries {
		if country == nil {
			continue
		}
		c.add(country)
	}
	return c
}

func (c *Catalog) add(country *Country) {
	c.countries = append(c.countries, country)
	c.byName[country.name] = country
	for _, alt := range country.altNames {
		c.byName[alt] = country
	}
	c.byAlpha2[country.alpha2] = country
	c.byAlpha3[country.alpha3] = country
	c.byNumeric[country.numeric] = country
}

// ByName returns the country whose canonical or alternate name equals name.
// Returns nil if not found.
func (c *Catalog) ByName(name string) *Country {
	return c.byName[name]
}

// ByAlpha2 returns the country with the given alpha-2 code, or nil.
func (c *Catalog) ByAlpha2(code string) *Country {
	return c.byAlpha2[code]
}

// ByAlpha3 returns the country with the given alpha-3 code, or nil.
func (c *Catalog) ByAlpha3(code string) *Country {
	return c.byAlpha3[code]
}

// ByNumeric returns the country with the given numeric code, or nil.
func (c *Catalog) ByNumeric(code int) *Country {
	return c.byNumeric[code]
}

// ByNumericString looks up a numeric code written as exactly three
// characters, e.g. "004". Any other length returns nil even when the value
// itself would be valid.
func (c *Catalog) ByNumericString(code string) *Country {
	if len(code) != 3 {
		return nil
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return nil
	}
	return c.ByNumeric(n)
}

// Countries returns every loaded country in load order. The slice is a new
// copy on each call.
func (c *Catalog) Countries() []*Country {
	result := make([]*Country, len(c.countries))
	copy(result, c.countries)
	return result
}

// Len returns the number of loaded countries.
func (c *Catalog) Len() int {
	return len(c.countries)
}
