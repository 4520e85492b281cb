package feeds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source is one configured feed. The list is fixed for the duration of a
// run: built-in defaults, optionally replaced by a YAML file.
type Source struct {
	Name            string `yaml:"name"`
	URL             string `yaml:"url"`
	DefaultCategory string `yaml:"default_category"`
}

// sourcesConfig is the YAML config structure
// feeds:
//   - name: ...
//     url: ...
//     default_category: ...
type sourcesConfig struct {
	Feeds []Source `yaml:"feeds"`
}

// DefaultSources returns the built-in feed list used when no config file
// is present. Official, stable RSS endpoints only.
func DefaultSources() []Source {
	return []Source{
		{
			Name:            "PIB Press Releases (English)",
			URL:             "https://pib.gov.in/RssMain.aspx?ModId=6&Lang=1&Regid=3",
			DefaultCategory: "Governance",
		},
	}
}

// LoadSources reads the feed list from a YAML file.
func LoadSources(path string) ([]Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg sourcesConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(cfg.Feeds) == 0 {
		return nil, fmt.Errorf("no feeds defined in %s", path)
	}
	return cfg.Feeds, nil
}
