package kpi

import (
	"fmt"
	"math"

	"github.com/edassess/evalengine/internal/config"
	"github.com/edassess/evalengine/internal/types"
)

// fsrScore grades the faculty-student ratio against the norm ratio. A ratio
// at or below the norm is fully compliant; above it the score decays in
// proportion.
func fsrScore(spec config.KPISpec, p *Params) (float64, bool, []string, []string, []types.TraceStep) {
	students, _ := p.Get("total_students")
	faculty, _ := p.Get("total_faculty")
	norm := spec.Norms["norm_ratio"]

	if faculty <= 0 {
		return 0, false, nil, []string{"total_faculty"}, []types.TraceStep{{
			StepNumber:  1,
			Description: "faculty count is zero, ratio undefined",
			Formula:     "value = null",
		}}
	}

	ratio := students / faculty
	score := math.Min(100, norm/ratio*100)
	included := []string{"total_students", "total_faculty"}
	trace := []types.TraceStep{
		{
			StepNumber:  1,
			Description: "students per faculty member",
			Formula:     fmt.Sprintf("%.0f / %.0f", students, faculty),
			Result:      ratio,
		},
		{
			StepNumber:  2,
			Description: fmt.Sprintf("score against norm ratio %.0f, capped at 100", norm),
			Formula:     fmt.Sprintf("min(100, %.0f / %.4f * 100)", norm, ratio),
			Result:      score,
		},
	}
	return score, true, included, nil, trace
}

// infrastructureScore blends up to five facility factors against per-student
// norms. Area is mandatory; missing optional factors redistribute their
// weight instead of scoring zero.
func infrastructureScore(spec config.KPISpec, p *Params) (float64, bool, []string, []string, []types.TraceStep) {
	students, _ := p.Get("total_students")
	if students <= 0 {
		return 0, false, nil, []string{"total_students"}, []types.TraceStep{{
			StepNumber:  1,
			Description: "student count is zero, per-student norms undefined",
			Formula:     "value = null",
		}}
	}

	type factor struct {
		param  string
		weight float64
		need   float64
	}
	factors := []factor{
		{"built_up_area_sqm", spec.Norms["weight_area"], students * spec.Norms["area_sqm_per_student"]},
		{"total_classrooms", spec.Norms["weight_classrooms"], math.Ceil(students / spec.Norms["students_per_classroom"])},
		{"library_area_sqm", spec.Norms["weight_library"], students * spec.Norms["library_sqm_per_student"]},
		{"digital_library_resources", spec.Norms["weight_digital"], spec.Norms["digital_resources_norm"]},
		{"hostel_capacity", spec.Norms["weight_hostel"], students * spec.Norms["hostel_capacity_ratio"]},
	}

	included := []string{"total_students"}
	var excluded []string
	var trace []types.TraceStep
	step := 1
	weightSum, weighted := 0.0, 0.0
	for _, f := range factors {
		value, ok := p.Get(f.param)
		if !ok {
			excluded = append(excluded, f.param)
			continue
		}
		sub := math.Min(1, value/f.need)
		weightSum += f.weight
		weighted += f.weight * sub
		included = append(included, f.param)
		trace = append(trace, types.TraceStep{
			StepNumber:  step,
			Description: fmt.Sprintf("%s against requirement %.1f, weight %.2f", f.param, f.need, f.weight),
			Formula:     fmt.Sprintf("min(1, %.1f / %.1f)", value, f.need),
			Result:      sub,
		})
		step++
	}

	score := weighted / weightSum * 100
	trace = append(trace, types.TraceStep{
		StepNumber:  step,
		Description: "weighted factor sum renormalized over present factors",
		Formula:     fmt.Sprintf("%.4f / %.2f * 100", weighted, weightSum),
		Result:      score,
	})
	return score, true, included, excluded, trace
}

// placementIndex is the placement rate passed through as a 0-100 index.
func placementIndex(_ config.KPISpec, p *Params) (float64, bool, []string, []string, []types.TraceStep) {
	rate, _ := p.Get("placement_rate")
	score := math.Min(100, math.Max(0, rate))
	trace := []types.TraceStep{{
		StepNumber:  1,
		Description: "placement rate clamped to [0, 100]",
		Formula:     fmt.Sprintf("min(100, max(0, %.2f))", rate),
		Result:      score,
	}}
	return score, true, []string{"placement_rate"}, nil, trace
}

// labComplianceIndex compares available labs to the required count. The
// requirement derives from student strength when available, with a floor, so
// a small institution is not graded against a large one's lab count.
func labComplianceIndex(spec config.KPISpec, p *Params) (float64, bool, []string, []string, []types.TraceStep) {
	labs, _ := p.Get("total_labs")
	minLabs := spec.Norms["min_required_labs"]
	perLab := spec.Norms["students_per_lab"]

	included := []string{"total_labs"}
	var excluded []string
	required := minLabs
	var trace []types.TraceStep
	if students, ok := p.Get("total_students"); ok && students > 0 {
		required = math.Max(minLabs, math.Ceil(students/perLab))
		included = append(included, "total_students")
		trace = append(trace, types.TraceStep{
			StepNumber:  1,
			Description: fmt.Sprintf("required labs from %.0f students at %.0f per lab, floor %.0f", students, perLab, minLabs),
			Formula:     fmt.Sprintf("max(%.0f, ceil(%.0f / %.0f))", minLabs, students, perLab),
			Result:      required,
		})
	} else {
		excluded = append(excluded, "total_students")
		trace = append(trace, types.TraceStep{
			StepNumber:  1,
			Description: "student count unavailable, default lab requirement applies",
			Formula:     fmt.Sprintf("required = %.0f", minLabs),
			Result:      required,
		})
	}

	score := math.Min(100, labs/required*100)
	trace = append(trace, types.TraceStep{
		StepNumber:  2,
		Description: "available labs against requirement, capped at 100",
		Formula:     fmt.Sprintf("min(100, %.0f / %.0f * 100)", labs, required),
		Result:      score,
	})
	return score, true, included, excluded, trace
}

// researchIndex blends publications, citations and funded projects against
// their norms. Publications are mandatory; missing optional components
// redistribute their weight.
func researchIndex(spec config.KPISpec, p *Params) (float64, bool, []string, []string, []types.TraceStep) {
	type component struct {
		param  string
		weight float64
		norm   float64
	}
	components := []component{
		{"publications", spec.Norms["weight_publications"], spec.Norms["publications_norm"]},
		{"citations", spec.Norms["weight_citations"], spec.Norms["citations_norm"]},
		{"funded_projects", spec.Norms["weight_projects"], spec.Norms["projects_norm"]},
	}

	var included, excluded []string
	var trace []types.TraceStep
	step := 1
	weightSum, weighted := 0.0, 0.0
	for _, c := range components {
		value, ok := p.Get(c.param)
		if !ok {
			excluded = append(excluded, c.param)
			continue
		}
		sub := math.Min(1, value/c.norm)
		weightSum += c.weight
		weighted += c.weight * sub
		included = append(included, c.param)
		trace = append(trace, types.TraceStep{
			StepNumber:  step,
			Description: fmt.Sprintf("%s against norm %.0f, weight %.2f", c.param, c.norm, c.weight),
			Formula:     fmt.Sprintf("min(1, %.1f / %.0f)", value, c.norm),
			Result:      sub,
		})
		step++
	}

	score := weighted / weightSum * 100
	trace = append(trace, types.TraceStep{
		StepNumber:  step,
		Description: "weighted component sum renormalized over present components",
		Formula:     fmt.Sprintf("%.4f / %.2f * 100", weighted, weightSum),
		Result:      score,
	})
	return score, true, included, excluded, trace
}

// governanceScore grades the count of constituted governance bodies against
// the required number.
func governanceScore(spec config.KPISpec, p *Params) (float64, bool, []string, []string, []types.TraceStep) {
	committees, _ := p.Get("committees_present")
	required := spec.Norms["required_committees"]
	score := math.Min(100, committees/required*100)
	trace := []types.TraceStep{{
		StepNumber:  1,
		Description: fmt.Sprintf("constituted bodies against required %.0f, capped at 100", required),
		Formula:     fmt.Sprintf("min(100, %.0f / %.0f * 100)", committees, required),
		Result:      score,
	}}
	return score, true, []string{"committees_present"}, nil, trace
}

// studentOutcomeIndex is the placement rate as the outcome proxy.
func studentOutcomeIndex(_ config.KPISpec, p *Params) (float64, bool, []string, []string, []types.TraceStep) {
	rate, _ := p.Get("placement_rate")
	score := math.Min(100, math.Max(0, rate))
	trace := []types.TraceStep{{
		StepNumber:  1,
		Description: "placement rate clamped to [0, 100]",
		Formula:     fmt.Sprintf("min(100, max(0, %.2f))", rate),
		Result:      score,
	}}
	return score, true, []string{"placement_rate"}, nil, trace
}
