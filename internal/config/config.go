// Package config holds the immutable configuration the engine is constructed
// with: required block lists per mode, block schemas, KPI tables, compliance
// rule tables, synonym lists and numeric thresholds. Configuration is loaded
// once and never mutated during the engine's lifetime.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	apperrors "github.com/edassess/evalengine/internal/errors"
	"github.com/edassess/evalengine/internal/types"
)

// FieldKind tags a declared block field so the normalizer knows how to
// canonicalize it.
type FieldKind string

const (
	FieldNumeric FieldKind = "numeric"
	FieldYear    FieldKind = "year"
	FieldText    FieldKind = "text"
	FieldBool    FieldKind = "bool"
	FieldList    FieldKind = "list"
)

// FieldSpec declares one expected field of a block schema.
type FieldSpec struct {
	Name string    `yaml:"name" mapstructure:"name"`
	Kind FieldKind `yaml:"kind" mapstructure:"kind"`
}

// CompositeKind selects how a derived field is computed from its operands.
type CompositeKind string

const (
	// CompositeSum sets the target to operand A + operand B when both are
	// present. A single part is never extrapolated into a total.
	CompositeSum CompositeKind = "sum"
	// CompositePercentRatio sets the target to (A / B) * 100 when both are
	// present and B is nonzero.
	CompositePercentRatio CompositeKind = "percent_ratio"
)

// Composite declares a derived field for a block schema. Composites only fill
// a target that the raw data did not already supply.
type Composite struct {
	Target   string        `yaml:"target" mapstructure:"target"`
	Kind     CompositeKind `yaml:"kind" mapstructure:"kind"`
	Operands [2]string     `yaml:"operands" mapstructure:"operands"`
}

// BlockSchema is the declared shape of one (mode, block type) pair. Fields
// outside the schema are preserved in the block's extension map rather than
// silently dropped.
type BlockSchema struct {
	Fields []FieldSpec `yaml:"fields" mapstructure:"fields"`
	// RequiredNumeric lists the fields whose failed numeric parse counts
	// toward the low-quality check.
	RequiredNumeric []string    `yaml:"required_numeric" mapstructure:"required_numeric"`
	Composites      []Composite `yaml:"composites,omitempty" mapstructure:"composites"`
}

// KPISpec declares one KPI: its required normalized parameters, the formula
// that computes it, its weight in the overall score, and the norm constants
// the formula compares against.
type KPISpec struct {
	ID       string             `yaml:"id" mapstructure:"id"`
	Name     string             `yaml:"name" mapstructure:"name"`
	Formula  string             `yaml:"formula" mapstructure:"formula"`
	Weight   float64            `yaml:"weight" mapstructure:"weight"`
	Required []string           `yaml:"required" mapstructure:"required"`
	Norms    map[string]float64 `yaml:"norms,omitempty" mapstructure:"norms"`
}

// CheckKind is the capability a compliance rule exercises.
type CheckKind string

const (
	// CheckPresence passes when the named field carries a non-null,
	// non-false value.
	CheckPresence CheckKind = "presence"
	// CheckFuzzyPresence passes when any field name, true-valued boolean
	// field or evidence snippet fuzzy-matches the rule's synonym list.
	CheckFuzzyPresence CheckKind = "fuzzy_presence"
	// CheckValidUntil passes when the named field parses to a year that has
	// not elapsed.
	CheckValidUntil CheckKind = "valid_until"
)

// ComplianceRule is one row of the declarative rule table. Rules are
// independent and each yields at most one flag; rules sharing a Key describe
// the same underlying requirement, and the engine collapses their flags so
// synonym variants of one certificate never produce duplicates.
type ComplianceRule struct {
	ID             string          `yaml:"id" mapstructure:"id"`
	Key            string          `yaml:"key" mapstructure:"key"`
	BlockType      types.BlockType `yaml:"block_type" mapstructure:"block_type"`
	Check          CheckKind       `yaml:"check" mapstructure:"check"`
	Field          string          `yaml:"field,omitempty" mapstructure:"field"`
	Synonyms       []string        `yaml:"synonyms,omitempty" mapstructure:"synonyms"`
	Severity       types.Severity  `yaml:"severity" mapstructure:"severity"`
	Title          string          `yaml:"title" mapstructure:"title"`
	Reason         string          `yaml:"reason" mapstructure:"reason"`
	Recommendation string          `yaml:"recommendation" mapstructure:"recommendation"`
}

// Thresholds collects every tunable constant of the scoring pipeline.
type Thresholds struct {
	// ExtractionWeight is W1 in the confidence blend; the non-null ratio
	// receives the complement.
	ExtractionWeight float64 `yaml:"extraction_weight" mapstructure:"extraction_weight"`
	// FallbackHigh/FallbackLow are the two-tier default confidences used
	// when the extraction service reported none, split at FallbackRatio.
	FallbackHigh  float64 `yaml:"fallback_high" mapstructure:"fallback_high"`
	FallbackLow   float64 `yaml:"fallback_low" mapstructure:"fallback_low"`
	FallbackRatio float64 `yaml:"fallback_ratio" mapstructure:"fallback_ratio"`
	// ConfidenceFloor is the minimum reported confidence for a present,
	// non-invalid block.
	ConfidenceFloor float64 `yaml:"confidence_floor" mapstructure:"confidence_floor"`
	// LowQualityBelow marks a block low quality when the blended confidence
	// falls under it.
	LowQualityBelow float64 `yaml:"low_quality_below" mapstructure:"low_quality_below"`
	// MaxParseFailures is how many required numeric fields may fail parsing
	// before the block is low quality.
	MaxParseFailures int `yaml:"max_parse_failures" mapstructure:"max_parse_failures"`
	// OutdatedAfterYears marks a block outdated when its resolved year is
	// more than this many years behind the evaluation year.
	OutdatedAfterYears int `yaml:"outdated_after_years" mapstructure:"outdated_after_years"`

	PenaltyOutdated   int `yaml:"penalty_outdated" mapstructure:"penalty_outdated"`
	PenaltyLowQuality int `yaml:"penalty_low_quality" mapstructure:"penalty_low_quality"`
	PenaltyInvalid    int `yaml:"penalty_invalid" mapstructure:"penalty_invalid"`
	PenaltyCap        int `yaml:"penalty_cap" mapstructure:"penalty_cap"`

	FuzzyThreshold float64 `yaml:"fuzzy_threshold" mapstructure:"fuzzy_threshold"`
}

// ModeConfig is everything that varies per evaluation regime.
type ModeConfig struct {
	RequiredBlocks []types.BlockType               `yaml:"required_blocks" mapstructure:"required_blocks"`
	Schemas        map[types.BlockType]BlockSchema `yaml:"schemas" mapstructure:"schemas"`
	KPIs           []KPISpec                       `yaml:"kpis" mapstructure:"kpis"`
	OverallName    string                          `yaml:"overall_name" mapstructure:"overall_name"`
	Rules          []ComplianceRule                `yaml:"rules" mapstructure:"rules"`
}

// Config is the engine's full immutable configuration.
type Config struct {
	Thresholds Thresholds                 `yaml:"thresholds" mapstructure:"thresholds"`
	Modes      map[types.Mode]*ModeConfig `yaml:"modes" mapstructure:"modes"`
	// Aliases maps canonical KPI parameter names to the alternate field
	// names the extraction service is known to emit.
	Aliases map[string][]string `yaml:"aliases" mapstructure:"aliases"`
}

// Mode returns the configuration for a mode, or nil if unsupported.
func (c *Config) Mode(mode types.Mode) *ModeConfig {
	return c.Modes[mode]
}

// Default returns the built-in configuration covering both evaluation modes.
func Default() *Config {
	return &Config{
		Thresholds: Thresholds{
			ExtractionWeight:   0.4,
			FallbackHigh:       0.65,
			FallbackLow:        0.40,
			FallbackRatio:      0.60,
			ConfidenceFloor:    0.65,
			LowQualityBelow:    0.50,
			MaxParseFailures:   1,
			OutdatedAfterYears: 2,
			PenaltyOutdated:    4,
			PenaltyLowQuality:  5,
			PenaltyInvalid:     7,
			PenaltyCap:         50,
			FuzzyThreshold:     0.80,
		},
		Modes: map[types.Mode]*ModeConfig{
			types.ModeAICTE: {
				RequiredBlocks: aicteRequiredBlocks(),
				Schemas:        aicteSchemas(),
				KPIs:           aicteKPIs(),
				OverallName:    "AICTE Overall Score",
				Rules:          aicteRules(),
			},
			types.ModeUGC: {
				RequiredBlocks: ugcRequiredBlocks(),
				Schemas:        ugcSchemas(),
				KPIs:           ugcKPIs(),
				OverallName:    "UGC Overall Score",
				Rules:          ugcRules(),
			},
		},
		Aliases: parameterAliases(),
	}
}

// Load builds the configuration from defaults, optionally overridden by a
// config file and EVALENGINE_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("EVALENGINE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, apperrors.NewConfigurationError(
				fmt.Sprintf("cannot read config file %s", path), err)
		}
		if err := v.Unmarshal(cfg); err != nil {
			return nil, apperrors.NewConfigurationError(
				fmt.Sprintf("cannot parse config file %s", path), err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if len(c.Modes) == 0 {
		return apperrors.NewConfigurationError("no evaluation modes configured", nil)
	}
	t := c.Thresholds
	if t.ExtractionWeight < 0 || t.ExtractionWeight > 1 {
		return apperrors.NewConfigurationError("extraction_weight must be in [0,1]", nil)
	}
	if t.FuzzyThreshold <= 0 || t.FuzzyThreshold > 1 {
		return apperrors.NewConfigurationError("fuzzy_threshold must be in (0,1]", nil)
	}
	if t.PenaltyCap < 0 {
		return apperrors.NewConfigurationError("penalty_cap must be non-negative", nil)
	}
	for mode, mc := range c.Modes {
		if len(mc.RequiredBlocks) == 0 {
			return apperrors.NewConfigurationError(
				fmt.Sprintf("mode %s declares no required blocks", mode), nil)
		}
		for _, bt := range mc.RequiredBlocks {
			if _, ok := mc.Schemas[bt]; !ok {
				return apperrors.NewConfigurationError(
					fmt.Sprintf("mode %s requires block %s but declares no schema for it", mode, bt), nil)
			}
		}
		totalWeight := 0.0
		for _, kpi := range mc.KPIs {
			if kpi.Weight <= 0 {
				return apperrors.NewConfigurationError(
					fmt.Sprintf("KPI %s has non-positive weight", kpi.ID), nil)
			}
			totalWeight += kpi.Weight
		}
		if len(mc.KPIs) > 0 && totalWeight == 0 {
			return apperrors.NewConfigurationError(
				fmt.Sprintf("mode %s KPI weights sum to zero", mode), nil)
		}
	}
	return nil
}

// WriteYAML writes the configuration as YAML, for `config init` style tooling.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return apperrors.NewConfigurationError("cannot marshal configuration", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.NewConfigurationError(
			fmt.Sprintf("cannot write configuration to %s", path), err)
	}
	return nil
}
