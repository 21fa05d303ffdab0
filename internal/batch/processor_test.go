package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hightemp/countryiso3166/iso3166"
)

func testCatalog() *iso3166.Catalog {
	return iso3166.NewCatalog([]*iso3166.Country{
		iso3166.NewCountry("Afghanistan", nil, "AF", "AFG", 4),
		iso3166.NewCountry("United States of America", []string{"United States"}, "US", "USA", 840),
		iso3166.NewCountry("Chad", nil, "TD", "TCD", 148),
	})
}

func TestFind(t *testing.T) {
	p := NewProcessor(testCatalog(), 1)

	tests := []struct {
		query    string
		expected string
	}{
		{"AF", "AF"},
		{"af", "AF"},
		{"AFG", "AF"},
		{"afg", "AF"},
		{"004", "AF"},
		{"  840 ", "US"},
		{"United States", "US"},
		{"United States of America", "US"},
		{"Chad", "TD"},
		{"4", ""},
		{"04", ""},
		{"ZZ", ""},
		{"united states", ""},
		{"", ""},
	}

	for _, tc := range tests {
		got := p.Find(tc.query)
		if tc.expected == "" {
			if got != nil {
				t.Errorf("Find(%q) = %v, expected nil", tc.query, got)
			}
			continue
		}
		if got == nil || got.Alpha2() != tc.expected {
			t.Errorf("Find(%q) = %v, expected %s", tc.query, got, tc.expected)
		}
	}
}

func TestResolveNotFound(t *testing.T) {
	p := NewProcessor(testCatalog(), 1)

	result := p.Resolve("Atlantis")
	assert.Equal(t, "Atlantis", result.Query)
	assert.Equal(t, ErrNotFound.Error(), result.Error)
}

func TestProcessInputText(t *testing.T) {
	p := NewProcessor(testCatalog(), 1)
	in := strings.NewReader("AF\n\nUSA\nAtlantis\n148\n")
	var out bytes.Buffer

	require.NoError(t, p.ProcessInput(context.Background(), in, &out, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "AF\tAFG\t004\tAfghanistan", lines[0])
	assert.Equal(t, "US\tUSA\t840\tUnited States of America", lines[1])
	assert.Contains(t, lines[2], "ERROR: country not found")
	assert.Equal(t, "TD\tTCD\t148\tChad", lines[3])
}

func TestProcessInputJSON(t *testing.T) {
	p := NewProcessor(testCatalog(), 1)
	var out bytes.Buffer

	require.NoError(t, p.ProcessInput(context.Background(), strings.NewReader("AF\nXX\n"), &out, true))

	var parsed []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &parsed))
	require.Len(t, parsed, 2)
	assert.Equal(t, "Afghanistan", parsed[0]["name"])
	assert.Equal(t, "country not found", parsed[1]["error"])
}

func TestProcessInputCanceled(t *testing.T) {
	p := NewProcessor(testCatalog(), 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.ProcessInput(ctx, strings.NewReader("AF\n"), &bytes.Buffer{}, false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessInputConcurrentKeepsOrder(t *testing.T) {
	p := NewProcessor(iso3166.MustDefault(), 8)

	var in strings.Builder
	var expected []string
	for _, c := range iso3166.MustDefault().Countries() {
		in.WriteString(c.Alpha3() + "\n")
		expected = append(expected, c.Alpha2())
	}

	var out bytes.Buffer
	require.NoError(t, p.ProcessInputConcurrent(context.Background(), strings.NewReader(in.String()), &out, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(expected))
	for i, line := range lines {
		assert.True(t, strings.HasPrefix(line, expected[i]+"\t"), "line %d = %q", i, line)
	}
}

func TestProcessInputConcurrentJSON(t *testing.T) {
	p := NewProcessor(testCatalog(), 2)
	var out bytes.Buffer

	require.NoError(t, p.ProcessInputConcurrent(context.Background(), strings.NewReader("004\nUS\n"), &out, true))

	var parsed []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &parsed))
	require.Len(t, parsed, 2)
	assert.Equal(t, "AF", parsed[0]["alpha2"])
	assert.Equal(t, "US", parsed[1]["alpha2"])
}
