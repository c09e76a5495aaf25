package schemafetch

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds fetch-field lists keyed by schema name, typically loaded
// from a YAML file:
//
//	schemas:
//	  OrderGet:
//	    fetch_fields: [customer, items, items__product]
type Config struct {
	Schemas map[string]SchemaConfig `yaml:"schemas"`
}

// SchemaConfig is the per-schema section of a Config.
type SchemaConfig struct {
	FetchFields []string `yaml:"fetch_fields"`
}

// Fields returns a copy of the fetch fields configured for schema.
// It returns an empty slice when the schema has no configuration.
func (c Config) Fields(schema string) []string {
	sc := c.Schemas[schema]
	out := make([]string, len(sc.FetchFields))
	copy(out, sc.FetchFields)
	return out
}

// Options returns construction options for the named schema's adapter.
func (c Config) Options(schema string) []Option {
	return []Option{WithFetchFields(c.Fields(schema)...)}
}

// LoadConfig reads a YAML fetch-field configuration.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode fetch-field config")
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML fetch-field configuration from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load %s", path)
	}
	return cfg, nil
}
