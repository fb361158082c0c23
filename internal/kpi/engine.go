package kpi

import (
	"fmt"
	"sort"

	"github.com/edassess/evalengine/internal/config"
	apperrors "github.com/edassess/evalengine/internal/errors"
	"github.com/edassess/evalengine/internal/types"
)

// formulaFunc computes one KPI value from the parameter space. The engine has
// already verified every required parameter resolves; a formula may still
// decline (ok=false) on a degenerate input such as a zero divisor, and may
// consult optional parameters, reporting the missing ones in excluded.
type formulaFunc func(spec config.KPISpec, p *Params) (value float64, ok bool, included, excluded []string, trace []types.TraceStep)

var formulas = map[string]formulaFunc{
	config.FormulaFSR:            fsrScore,
	config.FormulaInfrastructure: infrastructureScore,
	config.FormulaPlacement:      placementIndex,
	config.FormulaLabCompliance:  labComplianceIndex,
	config.FormulaResearch:       researchIndex,
	config.FormulaGovernance:     governanceScore,
	config.FormulaStudentOutcome: studentOutcomeIndex,
}

// Engine evaluates the mode's KPI table against a quality-evaluated block set.
type Engine struct {
	cfg *config.Config
}

func NewEngine(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Compute returns the mode's KPIs in table order plus the overall score. A
// KPI whose required parameter is missing gets a nil value and the missing
// names in ExcludedParameters; it never defaults to zero. An unsupported mode
// or unknown formula id is a configuration fault and errors out the whole pass.
func (e *Engine) Compute(mode types.Mode, blocks map[types.BlockType]*types.Block) ([]types.KPIResult, types.OverallScore, error) {
	mc := e.cfg.Mode(mode)
	if mc == nil {
		return nil, types.OverallScore{}, apperrors.NewUnsupportedModeError(string(mode))
	}
	params := CollectParams(blocks, e.cfg.Aliases)

	results := make([]types.KPIResult, 0, len(mc.KPIs))
	for _, spec := range mc.KPIs {
		fn, ok := formulas[spec.Formula]
		if !ok {
			return nil, types.OverallScore{}, apperrors.NewComputationError(
				spec.ID, fmt.Sprintf("unknown formula %q", spec.Formula))
		}

		result := types.KPIResult{ID: spec.ID, Name: spec.Name, Weight: spec.Weight}

		var missing []string
		for _, name := range spec.Required {
			if _, found := params.Get(name); !found {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			result.ExcludedParameters = missing
			result.Trace = []types.TraceStep{{
				StepNumber:  1,
				Description: fmt.Sprintf("required parameters missing: %v", missing),
				Formula:     "value = null",
			}}
			results = append(results, result)
			continue
		}

		value, computed, included, excluded, trace := fn(spec, params)
		sort.Strings(included)
		sort.Strings(excluded)
		result.IncludedParameters = included
		result.ExcludedParameters = excluded
		result.Trace = trace
		if computed {
			result.Value = types.Float64Ptr(clamp(value, 0, 100))
		}
		results = append(results, result)
	}

	return results, e.overall(mc, results), nil
}

// overall combines the non-nil KPIs with their table weights renormalized, so
// a missing KPI redistributes its weight instead of dragging the score down.
func (e *Engine) overall(mc *config.ModeConfig, results []types.KPIResult) types.OverallScore {
	overall := types.OverallScore{Name: mc.OverallName}

	weightSum := 0.0
	for _, r := range results {
		if r.Value != nil {
			weightSum += r.Weight
		}
	}
	if weightSum == 0 {
		overall.Trace = []types.TraceStep{{
			StepNumber:  1,
			Description: "no KPI produced a value",
			Formula:     "overall = null",
		}}
		return overall
	}

	step := 1
	weighted := 0.0
	for _, r := range results {
		if r.Value == nil {
			continue
		}
		normWeight := r.Weight / weightSum
		weighted += *r.Value * normWeight
		overall.IncludedKPIs = append(overall.IncludedKPIs, r.ID)
		overall.Trace = append(overall.Trace, types.TraceStep{
			StepNumber:  step,
			Description: fmt.Sprintf("%s contributes with renormalized weight %.4f", r.ID, normWeight),
			Formula:     fmt.Sprintf("%.4f * %.4f", *r.Value, normWeight),
			Result:      *r.Value * normWeight,
		})
		step++
	}
	overall.Value = types.Float64Ptr(clamp(weighted, 0, 100))
	overall.Trace = append(overall.Trace, types.TraceStep{
		StepNumber:  step,
		Description: "weighted sum of included KPIs",
		Formula:     fmt.Sprintf("sum over %v", overall.IncludedKPIs),
		Result:      *overall.Value,
	})
	return overall
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
