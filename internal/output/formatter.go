// Package output handles output formatting.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hightemp/countryiso3166/iso3166"
)

// CountryResult contains the result of a country lookup.
type CountryResult struct {
	Query          string   `json:"query,omitempty"`
	Name           string   `json:"name,omitempty"`
	AlternateNames []string `json:"alternate_names,omitempty"`
	Alpha2         string   `json:"alpha2,omitempty"`
	Alpha3         string   `json:"alpha3,omitempty"`
	Numeric        string   `json:"numeric,omitempty"`
	ISO31662       string   `json:"iso3166_2,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// FromCountry builds a result for a resolved country.
func FromCountry(query string, c *iso3166.Country) *CountryResult {
	return &CountryResult{
		Query:          query,
		Name:           c.Name(),
		AlternateNames: c.AlternateNames(),
		Alpha2:         c.Alpha2(),
		Alpha3:         c.Alpha3(),
		Numeric:        c.FormattedNumericCode(),
		ISO31662:       c.ISO31662(),
	}
}

// FormatText formats result as tab-separated text.
func (r *CountryResult) FormatText() string {
	if r.Error != "" {
		return fmt.Sprintf("%s\t-\t-\t-\tERROR: %s", r.Query, r.Error)
	}

	return fmt.Sprintf("%s\t%s\t%s\t%s",
		r.Alpha2,
		r.Alpha3,
		r.Numeric,
		r.Name,
	)
}

// FormatJSON formats result as JSON.
func (r *CountryResult) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// BatchResult contains results for batch processing.
type BatchResult struct {
	Results []*CountryResult
}

// FormatText formats batch results as text (one line per result).
func (b *BatchResult) FormatText() string {
	var lines []string
	for _, r := range b.Results {
		lines = append(lines, r.FormatText())
	}
	return strings.Join(lines, "\n")
}

// FormatJSON formats batch results as JSON array.
func (b *BatchResult) FormatJSON() (string, error) {
	results := b.Results
	if results == nil {
		results = []*CountryResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatError formats an error line for batch output.
func FormatError(query string, err error) string {
	return fmt.Sprintf("%s\t-\t-\t-\tERROR: %s", query, err.Error())
}
