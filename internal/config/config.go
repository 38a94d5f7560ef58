package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"containermap/internal/domain"
)

// FileName is the config file looked up in a workspace.
const FileName = "containermap.yml"

// Config models containermap.yml.
type Config struct {
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
	Store struct {
		ContainerProfiles []ContainerProfile `yaml:"container_profiles"`
		TopContainers     []TopContainer     `yaml:"top_containers"`
	} `yaml:"store"`
	Samples []Sample `yaml:"samples"`
}

// ContainerProfile is a profile fixture loaded into the lookup store.
type ContainerProfile struct {
	ID              string `yaml:"id,omitempty"`
	Name            string `yaml:"name"`
	URL             string `yaml:"url,omitempty"`
	DimensionUnits  string `yaml:"dimension_units"`
	ExtentDimension string `yaml:"extent_dimension"`
	Height          string `yaml:"height"`
	Width           string `yaml:"width"`
	Depth           string `yaml:"depth"`
}

// TopContainer is a top container fixture. ContainerProfile names a profile
// fixture.
type TopContainer struct {
	ID               string `yaml:"id,omitempty"`
	Indicator        string `yaml:"indicator"`
	Barcode          string `yaml:"barcode,omitempty"`
	ILSHoldingID     string `yaml:"ils_holding_id,omitempty"`
	ILSItemID        string `yaml:"ils_item_id,omitempty"`
	ExportedToILS    string `yaml:"exported_to_ils,omitempty"`
	ContainerProfile string `yaml:"container_profile,omitempty"`
	Series           string `yaml:"series,omitempty"`
}

// Sample is a named source container input.
type Sample struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Fields      map[string]string `yaml:"fields"`
}

// Validate ensures the config meets required structure.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config.logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
	ids := map[string]bool{}
	profiles := map[string]bool{}
	for i, p := range c.Store.ContainerProfiles {
		required := map[string]string{
			domain.FieldName:            p.Name,
			domain.FieldDimensionUnits:  p.DimensionUnits,
			domain.FieldExtentDimension: p.ExtentDimension,
			domain.FieldHeight:          p.Height,
			domain.FieldWidth:           p.Width,
			domain.FieldDepth:           p.Depth,
		}
		for _, field := range domain.ContainerProfileSchema.Names() {
			if v, ok := required[field]; ok && v == "" {
				return fmt.Errorf("store.container_profiles[%d].%s is required", i, field)
			}
		}
		if profiles[p.Name] {
			return fmt.Errorf("container profile %s defined twice", p.Name)
		}
		profiles[p.Name] = true
		if p.ID != "" {
			if ids["profile|"+p.ID] {
				return fmt.Errorf("container profile id %s used twice", p.ID)
			}
			ids["profile|"+p.ID] = true
		}
	}
	for i, tc := range c.Store.TopContainers {
		if tc.Indicator == "" {
			return fmt.Errorf("store.top_containers[%d].indicator is required", i)
		}
		if tc.ContainerProfile != "" && !profiles[tc.ContainerProfile] {
			return fmt.Errorf("store.top_containers[%d] references unknown container profile %s", i, tc.ContainerProfile)
		}
		if tc.ID != "" {
			if ids["top|"+tc.ID] {
				return fmt.Errorf("top container id %s used twice", tc.ID)
			}
			ids["top|"+tc.ID] = true
		}
	}
	samples := map[string]bool{}
	for i, s := range c.Samples {
		if s.Name == "" {
			return fmt.Errorf("samples[%d].name is required", i)
		}
		if samples[s.Name] {
			return fmt.Errorf("sample %s defined twice", s.Name)
		}
		samples[s.Name] = true
		for field := range s.Fields {
			if field == "id" || !domain.SourceContainerSchema.Has(field) {
				return fmt.Errorf("sample %s has unknown source field %s", s.Name, field)
			}
		}
	}
	return nil
}

// Sample returns the named sample input.
func (c *Config) Sample(name string) (Sample, bool) {
	for _, s := range c.Samples {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

// Path returns the config file path for a workspace.
func Path(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, FileName)
}

// Load reads and validates config from workspace.
func Load(workspace string) (*Config, error) {
	cfg, err := read(Path(workspace), nil)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config %s not found; create one with containermap config init", Path(workspace))
	}
	return cfg, err
}

// LoadOptional returns the default config if the workspace has no config file.
func LoadOptional(workspace string) (*Config, error) {
	return read(Path(workspace), Default)
}

// FromFile reads YAML config from the given path.
func FromFile(path string) (*Config, error) {
	return read(path, nil)
}

// read loads path, falling back to fallback when the file is missing and a
// fallback is given.
func read(path string, fallback func() *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && fallback != nil:
		return fallback(), nil
	case err != nil:
		return nil, err
	}
	return FromYAML(data)
}

// GenerateDefault returns default config YAML.
func GenerateDefault() string {
	return defaultTemplate
}

// Default returns the built-in Config. The template is validated like any
// other config, so a broken template fails loudly.
func Default() *Config {
	cfg, err := FromYAML([]byte(defaultTemplate))
	if err != nil {
		panic(fmt.Sprintf("config: built-in template: %v", err))
	}
	return cfg
}

// FromYAML parses and validates config. Keys that no section defines are
// rejected so that typos in fixture fields do not silently drop values.
// An empty document yields an empty config.
func FromYAML(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

const defaultTemplate = `logging:
  level: warn

store:
  container_profiles:
    - {id: folio, name: folio, width: "24215", height: "1549", depth: "29286", dimension_units: feet, extent_dimension: width}
    - {id: flat_grey12x15x3, name: flat_grey12x15x3, width: "4275", height: "7611", depth: "14798", dimension_units: feet, extent_dimension: width}
    - {id: half_archive_legal, name: half_archive_legal, width: "7615", height: "32473", depth: "20984", dimension_units: feet, extent_dimension: width}
    - {id: archive_legal, name: archive_legal, width: "31883", height: "5913", depth: "17370", dimension_units: feet, extent_dimension: width}
    - {id: archive_letter, name: archive_letter, width: "6264", height: "3868", depth: "7038", dimension_units: feet, extent_dimension: width}
    - {id: half_archive_letter, name: half_archive_letter, width: "27016", height: "26217", depth: "27931", dimension_units: feet, extent_dimension: width}
    - {id: envelope, name: envelope, width: "19872", height: "13527", depth: "20802", dimension_units: feet, extent_dimension: width}
    - {id: flat_grey16x20x1, name: flat_grey16x20x1, width: "30588", height: "32496", depth: "14056", dimension_units: feet, extent_dimension: width}
    - {id: small_archive, name: small_archive, width: "28982", height: "2707", depth: "20294", dimension_units: feet, extent_dimension: width}
    - {id: microfilm, name: microfilm, width: "27960", height: "5187", depth: "12765", dimension_units: feet, extent_dimension: width}

  top_containers:
    - id: EXISTING TOP CONTAINER 1
      barcode: "12345"
      indicator: "123"
      container_profile: archive_legal
      series: construction records
    - id: EXISTING TOP CONTAINER 2
      barcode: "987"
      indicator: "5"
      container_profile: folio
      series: vinyl records

samples:
  - name: existing-barcode
    description: Container with existing barcode
    fields:
      barcode_1: "12345"
  - name: new-barcode
    description: Container with a new barcode
    fields:
      barcode_1: "1928374"
      type_2: Folder
      indicator_2: "40"
      type_3: Reel
      indicator_3: "2"
  - name: new-barcode-profile
    description: Container with a new barcode and a type_1 matching a container profile
    fields:
      type_1: folio
      barcode_1: "1928374"
      type_2: Folder
      indicator_2: "40"
      type_3: Reel
      indicator_3: "2"
  - name: new-indicator-profile
    description: Container with a new type_1/indicator_1 matching a container profile
    fields:
      type_1: archive_legal
      indicator_1: "40"
      type_2: Folder
      indicator_2: "94"
      type_3: Reel
      indicator_3: "23"
  - name: series-indicator
    description: Container whose indicator_1 matches a top container within the same series
    fields:
      series: construction records
      type_1: Box
      indicator_1: "123"
      type_2: Folder
      indicator_2: "94"
      type_3: Reel
      indicator_3: "23"
`
