package normalize

import (
	"sort"
	"strings"

	"github.com/edassess/evalengine/internal/config"
	"github.com/edassess/evalengine/internal/types"
)

// MergeExtractions collapses extracted blocks into at most one block per
// type. When two documents supply the same block type the instance with the
// higher extraction confidence wins; a missing confidence loses to any
// reported one; ties go to the most recently supplied document.
func MergeExtractions(extracted []types.ExtractedBlock) map[types.BlockType]types.ExtractedBlock {
	merged := make(map[types.BlockType]types.ExtractedBlock, len(extracted))
	for _, eb := range extracted {
		current, ok := merged[eb.BlockType]
		if !ok || prefer(eb, current) {
			merged[eb.BlockType] = eb
		}
	}
	return merged
}

func prefer(candidate, current types.ExtractedBlock) bool {
	cc := confidenceOrNeg(candidate.ExtractionConfidence)
	cr := confidenceOrNeg(current.ExtractionConfidence)
	if cc != cr {
		return cc > cr
	}
	return candidate.DocumentIndex > current.DocumentIndex
}

func confidenceOrNeg(c *float64) float64 {
	if c == nil {
		return -1
	}
	return *c
}

// Normalizer turns merged extraction output into canonical blocks: numeric
// fields parsed to floats, years resolved, schema composites derived and
// out-of-schema fields preserved as extensions. It never mutates its input.
type Normalizer struct {
	cfg *config.Config
}

func NewNormalizer(cfg *config.Config) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// NormalizeBlock canonicalizes one extracted block for a mode. Parse failures
// leave the normalized key absent; they never zero the value or error.
func (n *Normalizer) NormalizeBlock(mode types.Mode, eb types.ExtractedBlock) *types.Block {
	block := &types.Block{
		BlockType:            eb.BlockType,
		RawFields:            copyRaw(eb.FieldValues),
		NormalizedFields:     make(map[string]float64),
		ExtractionConfidence: eb.ExtractionConfidence,
		Evidence:             eb.Evidence,
	}

	var schema config.BlockSchema
	if mc := n.cfg.Mode(mode); mc != nil {
		schema = mc.Schemas[eb.BlockType]
	}
	declared := make(map[string]config.FieldKind, len(schema.Fields))
	for _, f := range schema.Fields {
		declared[f.Name] = f.Kind
	}

	for _, name := range sortedKeys(block.RawFields) {
		raw := block.RawFields[name]
		kind, ok := declared[canonicalField(name)]
		if !ok {
			if block.Extensions == nil {
				block.Extensions = make(map[string]any)
			}
			block.Extensions[name] = raw
			// Undeclared fields still feed KPI alias resolution when they
			// carry a parseable number.
			if v := ParseNumeric(raw); v != nil {
				block.NormalizedFields[canonicalField(name)] = *v
			}
			continue
		}
		if types.IsNull(raw) {
			continue
		}
		switch kind {
		case config.FieldNumeric:
			if v := ParseNumeric(raw); v != nil {
				block.NormalizedFields[canonicalField(name)] = *v
			}
		case config.FieldBool:
			if truthy(raw) {
				block.NormalizedFields[canonicalField(name)] = 1
			}
		case config.FieldYear, config.FieldText, config.FieldList:
			// Years are resolved separately; text and lists stay raw.
		}
	}

	n.deriveComposites(schema, block)
	block.Year = resolveYear(schema, block)
	return block
}

// deriveComposites fills schema-declared derived fields. A composite never
// overrides a value the raw data already supplied, never extrapolates from a
// single operand, and resolves its target and operands through the alias
// table so alias-spelled parts still derive their total.
func (n *Normalizer) deriveComposites(schema config.BlockSchema, block *types.Block) {
	for _, comp := range schema.Composites {
		if _, exists := n.lookupField(block, comp.Target); exists {
			continue
		}
		a, okA := n.lookupField(block, comp.Operands[0])
		b, okB := n.lookupField(block, comp.Operands[1])
		if !okA || !okB {
			continue
		}
		switch comp.Kind {
		case config.CompositeSum:
			block.NormalizedFields[comp.Target] = a + b
		case config.CompositePercentRatio:
			if b > 0 {
				block.NormalizedFields[comp.Target] = a / b * 100
			}
		}
	}
}

// lookupField resolves a normalized field by canonical name, falling back to
// the configured alias spellings in order.
func (n *Normalizer) lookupField(block *types.Block, name string) (float64, bool) {
	if v, ok := block.NormalizedFields[name]; ok {
		return v, true
	}
	for _, alias := range n.cfg.Aliases[name] {
		if v, ok := block.NormalizedFields[alias]; ok {
			return v, true
		}
	}
	return 0, false
}

// resolveYear picks the block's reference year: declared year fields in
// schema order first, then a backfill scan of raw string fields for an
// academic-year range. Nil when nothing resolves; such blocks are never
// considered outdated.
func resolveYear(schema config.BlockSchema, block *types.Block) *int {
	for _, f := range schema.Fields {
		if f.Kind != config.FieldYear {
			continue
		}
		if raw, ok := block.RawFields[f.Name]; ok {
			if y := ParseYear(raw); y != nil {
				return y
			}
		}
	}
	for _, name := range sortedKeys(block.RawFields) {
		if s, ok := block.RawFields[name].(string); ok {
			if y := ParseYearRange(s); y != nil {
				return y
			}
		}
	}
	return nil
}

// canonicalField lowercases a field name and collapses spaces and hyphens so
// "UG Enrollment" and "ug_enrollment" land on the same normalized key.
func canonicalField(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes", "true", "y", "1", "present", "available", "established", "constituted", "compliant", "functional":
			return true
		}
		return false
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return false
	}
}

func copyRaw(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
