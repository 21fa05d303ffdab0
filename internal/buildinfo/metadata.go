// Package buildinfo reads the version metadata bundled with the binary.
package buildinfo

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed build.yaml
var buildData []byte

// Metadata describes the release.
type Metadata struct {
	Version string `yaml:"version"`
	Date    string `yaml:"date"`
	License string `yaml:"license"`
	Commit  string `yaml:"commit,omitempty"`
}

// Load returns the embedded metadata.
func Load() (*Metadata, error) {
	return Parse(buildData)
}

// Parse decodes metadata from YAML.
func Parse(data []byte) (*Metadata, error) {
	var m Metadata
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse build metadata: %w", err)
	}
	if m.Version == "" {
		return nil, fmt.Errorf("parse build metadata: missing version")
	}
	return &m, nil
}

// Override replaces fields with linker-provided values. Empty values and the
// "dev"/"unknown" placeholders are ignored.
func (m *Metadata) Override(version, commit, date string) {
	if isSet(version) {
		m.Version = version
	}
	if isSet(commit) {
		m.Commit = commit
	}
	if isSet(date) {
		m.Date = date
	}
}

func isSet(s string) bool {
	return s != "" && s != "dev" && s != "unknown"
}

// Banner is the one-line version string printed by the CLI.
func (m *Metadata) Banner() string {
	return fmt.Sprintf("CountryISO3166 version %s built on %s", m.Version, m.Date)
}

// LicenseLine names the distribution license.
func (m *Metadata) LicenseLine() string {
	license := m.License
	if license == "" {
		license = "MIT"
	}
	return fmt.Sprintf("Distributed under the %s license", license)
}
