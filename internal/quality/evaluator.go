// Package quality assigns each block its computed confidence and status. The
// evaluator reads blocks the normalizer produced and never mutates raw data.
package quality

import (
	"fmt"
	"strings"

	"github.com/edassess/evalengine/internal/config"
	"github.com/edassess/evalengine/internal/types"
)

// Evaluator grades blocks for one mode. CurrentYear is injected so outdated
// checks are reproducible in tests.
type Evaluator struct {
	cfg         *config.Config
	currentYear int
}

func NewEvaluator(cfg *config.Config, currentYear int) *Evaluator {
	return &Evaluator{cfg: cfg, currentYear: currentYear}
}

// Evaluate sets Status, ComputedConfidence and StatusReasons on the block.
// Status precedence is invalid over low_quality over outdated; valid excludes
// every other flag; absent applies when no raw field carries a value.
func (e *Evaluator) Evaluate(mode types.Mode, block *types.Block) {
	if !block.Present() {
		block.Status = types.StatusAbsent
		block.ComputedConfidence = 0
		block.StatusReasons = []string{"no non-null field extracted"}
		return
	}

	var schema config.BlockSchema
	if mc := e.cfg.Mode(mode); mc != nil {
		schema = mc.Schemas[block.BlockType]
	}
	t := e.cfg.Thresholds

	ratio, parseFailures := e.fieldStats(schema, block)
	confidence := e.blend(block.ExtractionConfidence, ratio)

	if reasons := e.invalidReasons(schema, block); len(reasons) > 0 {
		block.Status = types.StatusInvalid
		block.ComputedConfidence = confidence
		block.StatusReasons = reasons
		return
	}

	lowQuality := confidence < t.LowQualityBelow || parseFailures > t.MaxParseFailures
	outdated := block.Year != nil && e.currentYear-*block.Year > t.OutdatedAfterYears

	// The floor applies to the reported confidence of present, non-invalid
	// blocks only; the low-quality decision reads the raw blend.
	if confidence < t.ConfidenceFloor {
		confidence = t.ConfidenceFloor
	}
	block.ComputedConfidence = confidence

	switch {
	case lowQuality:
		block.Status = types.StatusLowQuality
		if parseFailures > t.MaxParseFailures {
			block.StatusReasons = append(block.StatusReasons,
				fmt.Sprintf("%d required numeric fields failed to parse", parseFailures))
		} else {
			block.StatusReasons = append(block.StatusReasons,
				fmt.Sprintf("computed confidence below %.2f", t.LowQualityBelow))
		}
	case outdated:
		block.Status = types.StatusOutdated
		block.StatusReasons = append(block.StatusReasons,
			fmt.Sprintf("data year %d is more than %d years old", *block.Year, t.OutdatedAfterYears))
	default:
		block.Status = types.StatusValid
	}
}

// fieldStats returns the non-null ratio over the declared fields and the
// count of required numeric fields that were supplied but failed to parse.
// Declared numeric fields only count as filled when they parsed.
func (e *Evaluator) fieldStats(schema config.BlockSchema, block *types.Block) (float64, int) {
	if len(schema.Fields) == 0 {
		// No declared schema: grade on the raw fields themselves.
		filled := 0
		for _, v := range block.RawFields {
			if !types.IsNull(v) {
				filled++
			}
		}
		if len(block.RawFields) == 0 {
			return 0, 0
		}
		return float64(filled) / float64(len(block.RawFields)), 0
	}

	filled := 0
	for _, f := range schema.Fields {
		if f.Kind == config.FieldNumeric {
			// Normalized presence covers alias-spelled raw keys and derived
			// composites; a supplied value that failed to parse stays unfilled.
			if _, parsed := block.NormalizedFields[f.Name]; parsed {
				filled++
			}
			continue
		}
		raw, ok := block.RawFields[f.Name]
		if !ok || types.IsNull(raw) {
			continue
		}
		filled++
	}
	ratio := float64(filled) / float64(len(schema.Fields))

	parseFailures := 0
	for _, name := range schema.RequiredNumeric {
		raw, ok := block.RawFields[name]
		if !ok || types.IsNull(raw) {
			continue
		}
		if _, parsed := block.NormalizedFields[name]; !parsed {
			parseFailures++
		}
	}
	return ratio, parseFailures
}

// blend combines extraction confidence with the non-null ratio. When the
// extraction service reported no confidence a two-tier fallback applies.
func (e *Evaluator) blend(extraction *float64, ratio float64) float64 {
	t := e.cfg.Thresholds
	if extraction == nil {
		if ratio >= t.FallbackRatio {
			return t.FallbackHigh
		}
		return t.FallbackLow
	}
	return t.ExtractionWeight**extraction + (1-t.ExtractionWeight)*ratio
}

// invalidReasons applies the explicit logical-impossibility rules: negative
// counts, percentages outside [0,100], and a declared total contradicted by
// its sub-parts. Suspicious-but-possible data never lands here.
func (e *Evaluator) invalidReasons(schema config.BlockSchema, block *types.Block) []string {
	var reasons []string
	for _, f := range schema.Fields {
		if f.Kind != config.FieldNumeric {
			continue
		}
		v, ok := block.NormalizedFields[f.Name]
		if !ok {
			continue
		}
		if v < 0 {
			reasons = append(reasons, fmt.Sprintf("%s is negative", f.Name))
			continue
		}
		if isPercentField(f.Name) && v > 100 {
			reasons = append(reasons, fmt.Sprintf("%s exceeds 100 percent", f.Name))
		}
	}

	// A declared total must not fall short of its UG+PG parts. The total
	// legitimately exceeds the parts (other program levels), so only the
	// impossible direction flags.
	for _, totalField := range []string{"total_students", "student_count"} {
		total, ok := block.NormalizedFields[totalField]
		if !ok {
			continue
		}
		ug, okUG := block.NormalizedFields["ug_enrollment"]
		pg, okPG := block.NormalizedFields["pg_enrollment"]
		if okUG && okPG && total+0.5 < ug+pg {
			reasons = append(reasons, fmt.Sprintf(
				"%s (%.0f) is less than ug_enrollment + pg_enrollment (%.0f)", totalField, total, ug+pg))
		}
	}
	return reasons
}

func isPercentField(name string) bool {
	return strings.Contains(name, "rate") || strings.Contains(name, "percentage") || strings.Contains(name, "percent")
}
