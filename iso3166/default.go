package iso3166

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

//go:embed countries.xml
var countriesXML []byte

var (
	defaultCatalog *Catalog
	defaultErr     error
	once           sync.Once
)

// Default returns the catalog built from the embedded ISO 3166-1 data. The
// data is parsed once per process, on first use; later calls return the
// same catalog (or the same initialisation error).
func Default() (*Catalog, error) {
	once.Do(func() {
		defaultCatalog, defaultErr = Load(bytes.NewReader(countriesXML), FormatXML)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("init default catalog: %w", defaultErr)
		}
	})
	return defaultCatalog, defaultErr
}

// MustDefault is like Default but panics if the embedded data is unusable.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultData returns a copy of the embedded XML data source.
func DefaultData() []byte {
	data := make([]byte, len(countriesXML))
	copy(data, countriesXML)
	return data
}
