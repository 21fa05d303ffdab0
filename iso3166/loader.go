package iso3166

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a catalog data source.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const (
	minNumeric = 1
	maxNumeric = 999
)

var (
	// ErrDecode is returned when a data source cannot be read or decoded.
	ErrDecode = errors.New("decode catalog")

	// ErrEmptyCatalog is returned when a data source holds no usable records.
	ErrEmptyCatalog = errors.New("catalog has no valid countries")

	// ErrUnknownFormat is returned for an unsupported data source format.
	ErrUnknownFormat = errors.New("unknown catalog format")
)

// ParseFormat parses a format name (case insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xml":
		return FormatXML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Option configures loading.
type Option func(*loadOptions)

type loadOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives skipped-record warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newLoadOptions(opts []Option) *loadOptions {
	o := &loadOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// document is the on-disk shape shared by every format.
type document struct {
	XMLName   xml.Name `xml:"countries" json:"-" yaml:"-"`
	Countries []record `xml:"country" json:"countries" yaml:"countries"`
}

type record struct {
	Name     string       `xml:"name,attr" json:"name" yaml:"name"`
	Alpha2   string       `xml:"alpha2,attr" json:"alpha2" yaml:"alpha2"`
	Alpha3   string       `xml:"alpha3,attr" json:"alpha3" yaml:"alpha3"`
	Numeric  numericField `xml:"numeric,attr" json:"numeric" yaml:"numeric"`
	AltNames []altName    `xml:"altName" json:"altNames" yaml:"altNames"`
}

type altName struct {
	Name string `xml:"name,attr" json:"name" yaml:"name"`
}

// numericField keeps the raw numeric text so that JSON and YAML sources may
// write the code either as a number or as a string.
type numericField string

func (n *numericField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = numericField(s)
		return nil
	}
	if string(data) == "null" {
		*n = ""
		return nil
	}
	*n = numericField(data)
	return nil
}

func (n *numericField) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("numeric: expected scalar at line %d", value.Line)
	}
	*n = numericField(value.Value)
	return nil
}

// value returns the parsed code, or 0 if it is missing or not a valid code.
func (n numericField) value() int {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < minNumeric || v > maxNumeric {
		return 0
	}
	return v
}

// problem returns why the record cannot be loaded, or "" if it is complete.
func (r *record) problem() string {
	var missing []string
	if r.Name == "" {
		missing = append(missing, "name")
	}
	if r.Alpha2 == "" {
		missing = append(missing, "alpha2")
	}
	if r.Alpha3 == "" {
		missing = append(missing, "alpha3")
	}
	if r.Numeric == "" {
		missing = append(missing, "numeric")
	}
	if len(missing) > 0 {
		return "missing " + strings.Join(missing, ", ")
	}
	if r.Numeric.value() == 0 {
		return fmt.Sprintf("invalid numeric code %q", string(r.Numeric))
	}
	return ""
}

func (r *record) altNameList() []string {
	var names []string
	for _, alt := range r.AltNames {
		if alt.Name != "" {
			names = append(names, alt.Name)
		}
	}
	return names
}

func (r *record) country() *Country {
	return NewCountry(r.Name, r.altNameList(), r.Alpha2, r.Alpha3, r.Numeric.value())
}

func decode(r io.Reader, format Format) (*document, error) {
	var doc document
	var err error
	switch format {
	case FormatXML:
		err = xml.NewDecoder(r).Decode(&doc)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}
	return &doc, nil
}

// Parse decodes a data source and returns its valid countries in document
// order. Incomplete records are skipped and logged; only a read or decode
// failure is returned as an error.
func Parse(r io.Reader, format Format, opts ...Option) ([]*Country, error) {
	o := newLoadOptions(opts)

	doc, err := decode(r, format)
	if err != nil {
		return nil, err
	}

	countries := make([]*Country, 0, len(doc.Countries))
	for i := range doc.Countries {
		rec := &doc.Countries[i]
		if problem := rec.problem(); problem != "" {
			o.logger.Warn("skipping country record",
				"index", i,
				"name", rec.Name,
				"reason", problem,
			)
			continue
		}
		countries = append(countries, rec.country())
	}

	o.logger.Debug("parsed catalog",
		"format", string(format),
		"records", len(doc.Countries),
		"countries", len(countries),
	)
	return countries, nil
}

// Load parses a data source and builds its catalog. A source without any
// valid record fails with ErrEmptyCatalog.
func Load(r io.Reader, format Format, opts ...Option) (*Catalog, error) {
	countries, err := Parse(r, format, opts...)
	if err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return nil, ErrEmptyCatalog
	}
	return NewCatalog(countries), nil
}

// LoadFile loads a catalog from a file whose format is taken from its
// extension.
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	catalog, err := Load(f, format, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return catalog, nil
}
