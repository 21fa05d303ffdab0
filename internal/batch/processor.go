// Package batch resolves country identifiers read from an input stream.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/hightemp/countryiso3166/iso3166"
	"github.com/hightemp/countryiso3166/internal/output"
)

// ErrNotFound is reported for identifiers that match no country.
var ErrNotFound = errors.New("country not found")

// Processor handles batch country lookups.
type Processor struct {
	catalog     *iso3166.Catalog
	concurrency int
}

// NewProcessor creates a new batch processor.
func NewProcessor(catalog *iso3166.Catalog, concurrency int) *Processor {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Processor{
		catalog:     catalog,
		concurrency: concurrency,
	}
}

// Find resolves a free-form identifier. Three digits are a numeric code, two
// or three letters an alpha code (case insensitive); anything else, or a
// code that matches nothing, is tried as an exact name.
func (p *Processor) Find(query string) *iso3166.Country {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}

	switch {
	case len(q) == 3 && isDigits(q):
		return p.catalog.ByNumericString(q)
	case len(q) == 2 && isLetters(q):
		if c := p.catalog.ByAlpha2(strings.ToUpper(q)); c != nil {
			return c
		}
	case len(q) == 3 && isLetters(q):
		if c := p.catalog.ByAlpha3(strings.ToUpper(q)); c != nil {
			return c
		}
	}
	return p.catalog.ByName(q)
}

// Resolve looks up one identifier and wraps the outcome.
func (p *Processor) Resolve(query string) *output.CountryResult {
	c := p.Find(query)
	if c == nil {
		return &output.CountryResult{Query: query, Error: ErrNotFound.Error()}
	}
	return output.FromCountry(query, c)
}

// ProcessInput reads identifiers from input and writes results to output.
func (p *Processor) ProcessInput(ctx context.Context, r io.Reader, w io.Writer, jsonOutput bool) error {
	scanner := bufio.NewScanner(r)
	var results []*output.CountryResult

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result := p.Resolve(line)
		if jsonOutput {
			// Collect all results for JSON array output
			results = append(results, result)
			continue
		}
		fmt.Fprintln(w, result.FormatText())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(w, results)
	}
	return nil
}

// ProcessInputConcurrent resolves identifiers with a bounded worker pool.
// Output order matches input order.
func (p *Processor) ProcessInputConcurrent(ctx context.Context, r io.Reader, w io.Writer, jsonOutput bool) error {
	scanner := bufio.NewScanner(r)
	var lines []string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	results := make([]*output.CountryResult, len(lines))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.concurrency)

	for i, line := range lines {
		wg.Add(1)
		go func(idx int, query string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				results[idx] = &output.CountryResult{Query: query, Error: ctx.Err().Error()}
				return
			}
			defer func() { <-sem }()
			results[idx] = p.Resolve(query)
		}(i, line)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(w, results)
	}
	for _, result := range results {
		fmt.Fprintln(w, result.FormatText())
	}
	return nil
}

func writeJSON(w io.Writer, results []*output.CountryResult) error {
	batch := &output.BatchResult{Results: results}
	jsonStr, err := batch.FormatJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, jsonStr)
	return err
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
