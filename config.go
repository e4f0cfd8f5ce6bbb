package smartdiff

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is a declarative description of comparison options, suitable for
// storing alongside the records being compared. eg:
//
//	transformations: [uppercase, trim]
//	paths:
//	  killCount: [toString]
//	  emails.primary: [nullOrUndefinedAsEmptyString, uppercase]
//	exclude: [updatedAt]
//	deepCompare: true
type Config struct {
	// Transformations lists built-in transformation names applied to every path
	Transformations []string `mapstructure:"transformations"`
	// Paths maps a dot-separated path to the transformation names that replace
	// Transformations for that path
	Paths map[string][]string `mapstructure:"paths"`
	// Include whitelists path segments
	Include []string `mapstructure:"include"`
	// Exclude blacklists path segments
	Exclude []string `mapstructure:"exclude"`
	// Filter is a path filter expression, see FilterExpr
	Filter string `mapstructure:"filter"`
	// DeepCompare enables expanding nested records present on one side only
	DeepCompare bool `mapstructure:"deepCompare"`
	// Differ selects the structural differ: "changelog" (default) or "walk"
	Differ string `mapstructure:"differ"`
}

// LoadConfig parses a YAML (or JSON) document into a Config
func LoadConfig(data []byte) (*Config, error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return DecodeConfig(raw)
}

// DecodeConfig builds a Config from a generic map, rejecting unknown keys
func DecodeConfig(raw map[string]interface{}) (*Config, error) {
	cfg := &Config{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Options converts a Config into CompareOptions, resolving transformation
// names & compiling the filter expression
func (c *Config) Options() ([]CompareOption, error) {
	var opts []CompareOption

	global, err := transformationsByName(c.Transformations)
	if err != nil {
		return nil, fmt.Errorf("transformations: %w", err)
	}
	if len(global) > 0 {
		opts = append(opts, OptionTransformations(global...))
	}

	if len(c.Paths) > 0 {
		byPath := make(map[string][]Transformation, len(c.Paths))
		for p, names := range c.Paths {
			ts, err := transformationsByName(names)
			if err != nil {
				return nil, fmt.Errorf("paths.%s: %w", p, err)
			}
			byPath[p] = ts
		}
		opts = append(opts, OptionPathTransformationsMap(byPath))
	}

	var filters []PathFilter
	if len(c.Include) > 0 {
		filters = append(filters, Whitelist(c.Include...))
	}
	if len(c.Exclude) > 0 {
		filters = append(filters, Blacklist(c.Exclude...))
	}
	if c.Filter != "" {
		f, err := FilterExpr(c.Filter)
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		filters = append(filters, f)
	}
	switch len(filters) {
	case 0:
	case 1:
		opts = append(opts, OptionPathFilter(filters[0]))
	default:
		opts = append(opts, OptionPathFilter(AllFilters(filters...)))
	}

	if c.DeepCompare {
		opts = append(opts, OptionDeepCompare(true))
	}

	switch c.Differ {
	case "", "changelog":
	case "walk":
		opts = append(opts, OptionDiffer(WalkDiffer{}))
	default:
		return nil, fmt.Errorf("differ: unknown differ %q", c.Differ)
	}

	return opts, nil
}

func transformationsByName(names []string) ([]Transformation, error) {
	ts := make([]Transformation, 0, len(names))
	for _, name := range names {
		t, ok := TransformationByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown transformation %q", name)
		}
		ts = append(ts, t)
	}
	return ts, nil
}
