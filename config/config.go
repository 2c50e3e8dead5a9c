// Package config loads the service configuration from a JSON or YAML file
// with optional environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/skystride/droneops/core/metrics"
	"github.com/skystride/droneops/core/scoring"
)

type Config struct {
	Data     DataConfig     `json:"data"`
	Audit    AuditConfig    `json:"audit"`
	Metrics  metrics.Config `json:"metrics"`
	Matching MatchingConfig `json:"matching"`
	API      APIConfig      `json:"api"`
}

// DataConfig locates the roster CSV files.
type DataConfig struct {
	// Dir holds pilots.csv, drones.csv and missions.csv.
	Dir string `json:"dir"`
}

// SetDefaults applies sane defaults.
func (c *DataConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "data"
	}
}

// AuditConfig defines settings for decision log storage.
type AuditConfig struct {
	// Backend selects the store type: "jsonl" or "sqlite".
	Backend string `json:"backend"`
	// Path is the file location of the decision log.
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *AuditConfig) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "jsonl"
	}
	if c.Path == "" {
		c.Path = "decisions.jsonl"
	}
}

// Validate checks mandatory fields.
func (c AuditConfig) Validate() error {
	if c.Backend != "jsonl" && c.Backend != "sqlite" {
		return fmt.Errorf("unknown audit backend %s", c.Backend)
	}
	if c.Path == "" {
		return fmt.Errorf("audit path is required")
	}
	return nil
}

// MatchingConfig tunes the pilot scoring weights. All four unset falls back
// to the defaults; drone weights are fixed and not configurable.
type MatchingConfig struct {
	SkillWeight        float64 `json:"skill_weight"`
	CertWeight         float64 `json:"cert_weight"`
	LocationWeight     float64 `json:"location_weight"`
	AvailabilityWeight float64 `json:"availability_weight"`
}

// Weights returns the configured pilot weights.
func (c MatchingConfig) Weights() scoring.Weights {
	if c.SkillWeight == 0 && c.CertWeight == 0 && c.LocationWeight == 0 && c.AvailabilityWeight == 0 {
		return scoring.DefaultWeights()
	}
	return scoring.Weights{
		Skill:        c.SkillWeight,
		Cert:         c.CertWeight,
		Location:     c.LocationWeight,
		Availability: c.AvailabilityWeight,
	}
}

// Validate rejects negative weights.
func (c MatchingConfig) Validate() error {
	for _, w := range []float64{c.SkillWeight, c.CertWeight, c.LocationWeight, c.AvailabilityWeight} {
		if w < 0 {
			return fmt.Errorf("matching weights must be non-negative")
		}
	}
	return nil
}

// APIConfig defines the HTTP surface.
type APIConfig struct {
	// Addr is the listen address of the read API, e.g. ":8080". Empty
	// disables the server.
	Addr string `json:"addr"`
	// Token guards the decision log endpoint when non-empty.
	Token string `json:"token"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("DOPS_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "dops_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Data.SetDefaults()
	cfg.Audit.SetDefaults()
	if err := cfg.Audit.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Matching.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
