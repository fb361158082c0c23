package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edassess/evalengine/internal/config"
	apperrors "github.com/edassess/evalengine/internal/errors"
	"github.com/edassess/evalengine/internal/types"
)

func validBlock(bt types.BlockType, fields map[string]float64) *types.Block {
	return &types.Block{BlockType: bt, NormalizedFields: fields, Status: types.StatusValid}
}

func findKPI(t *testing.T, results []types.KPIResult, id string) types.KPIResult {
	t.Helper()
	for _, r := range results {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("KPI %s not in results", id)
	return types.KPIResult{}
}

func TestComputeFSRWithinNorm(t *testing.T) {
	// 1290 students over 82 faculty is a ratio of about 15.7, inside the
	// norm of 20, so the score caps at 100.
	blocks := map[types.BlockType]*types.Block{
		types.BlockFaculty:           validBlock(types.BlockFaculty, map[string]float64{"total_faculty": 82}),
		types.BlockStudentEnrollment: validBlock(types.BlockStudentEnrollment, map[string]float64{"total_students": 1290}),
	}

	results, _, err := NewEngine(config.Default()).Compute(types.ModeAICTE, blocks)
	require.NoError(t, err)

	fsr := findKPI(t, results, "fsr_score")
	require.NotNil(t, fsr.Value)
	assert.InDelta(t, 100, *fsr.Value, 1e-9)
	assert.NotEmpty(t, fsr.Trace)
}

func TestComputeFSRAboveNorm(t *testing.T) {
	blocks := map[types.BlockType]*types.Block{
		types.BlockFaculty:           validBlock(types.BlockFaculty, map[string]float64{"total_faculty": 40}),
		types.BlockStudentEnrollment: validBlock(types.BlockStudentEnrollment, map[string]float64{"total_students": 1600}),
	}

	results, _, err := NewEngine(config.Default()).Compute(types.ModeAICTE, blocks)
	require.NoError(t, err)

	// Ratio 40, double the norm, so half marks.
	fsr := findKPI(t, results, "fsr_score")
	require.NotNil(t, fsr.Value)
	assert.InDelta(t, 50, *fsr.Value, 1e-9)
}

func TestComputeNullPropagation(t *testing.T) {
	blocks := map[types.BlockType]*types.Block{
		types.BlockFaculty:           validBlock(types.BlockFaculty, map[string]float64{"total_faculty": 82}),
		types.BlockStudentEnrollment: validBlock(types.BlockStudentEnrollment, map[string]float64{"total_students": 1290}),
	}

	results, overall, err := NewEngine(config.Default()).Compute(types.ModeAICTE, blocks)
	require.NoError(t, err)

	placement := findKPI(t, results, "placement_index")
	assert.Nil(t, placement.Value)
	assert.Equal(t, []string{"placement_rate"}, placement.ExcludedParameters)

	infra := findKPI(t, results, "infrastructure_score")
	assert.Nil(t, infra.Value)
	assert.Contains(t, infra.ExcludedParameters, "built_up_area_sqm")

	// Lab compliance has no labs parameter either, so only FSR scores and
	// the overall equals it after weight renormalization.
	require.NotNil(t, overall.Value)
	assert.Equal(t, []string{"fsr_score"}, overall.IncludedKPIs)
	fsr := findKPI(t, results, "fsr_score")
	assert.InDelta(t, *fsr.Value, *overall.Value, 1e-9)
}

func TestComputeOverallNilWhenAllKPIsNil(t *testing.T) {
	blocks := map[types.BlockType]*types.Block{
		types.BlockFeeStructure: validBlock(types.BlockFeeStructure, map[string]float64{"tuition_fee_ug": 85000}),
	}

	results, overall, err := NewEngine(config.Default()).Compute(types.ModeAICTE, blocks)
	require.NoError(t, err)

	for _, r := range results {
		assert.Nil(t, r.Value, r.ID)
	}
	assert.Nil(t, overall.Value)
	assert.Empty(t, overall.IncludedKPIs)
}

func TestComputeValuesStayInBounds(t *testing.T) {
	blocks := map[types.BlockType]*types.Block{
		types.BlockFaculty:           validBlock(types.BlockFaculty, map[string]float64{"total_faculty": 500}),
		types.BlockStudentEnrollment: validBlock(types.BlockStudentEnrollment, map[string]float64{"total_students": 100}),
		types.BlockInfrastructure: validBlock(types.BlockInfrastructure, map[string]float64{
			"built_up_area_sqm": 1e9,
			"total_classrooms":  1e6,
		}),
		types.BlockLabEquipment: validBlock(types.BlockLabEquipment, map[string]float64{"total_labs": 900}),
		types.BlockPlacement:    validBlock(types.BlockPlacement, map[string]float64{"placement_rate": 99.2}),
	}

	results, overall, err := NewEngine(config.Default()).Compute(types.ModeAICTE, blocks)
	require.NoError(t, err)

	for _, r := range results {
		if r.Value == nil {
			continue
		}
		assert.GreaterOrEqual(t, *r.Value, 0.0, r.ID)
		assert.LessOrEqual(t, *r.Value, 100.0, r.ID)
	}
	require.NotNil(t, overall.Value)
	assert.LessOrEqual(t, *overall.Value, 100.0)
}

func TestComputeIgnoresInvalidBlocks(t *testing.T) {
	blocks := map[types.BlockType]*types.Block{
		types.BlockFaculty: validBlock(types.BlockFaculty, map[string]float64{"total_faculty": 82}),
		types.BlockStudentEnrollment: {
			BlockType:        types.BlockStudentEnrollment,
			NormalizedFields: map[string]float64{"total_students": 1290},
			Status:           types.StatusInvalid,
		},
	}

	results, _, err := NewEngine(config.Default()).Compute(types.ModeAICTE, blocks)
	require.NoError(t, err)

	fsr := findKPI(t, results, "fsr_score")
	assert.Nil(t, fsr.Value)
	assert.Equal(t, []string{"total_students"}, fsr.ExcludedParameters)
}

func TestComputeUnknownFormulaErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Modes[types.ModeAICTE].KPIs[0].Formula = "does_not_exist"

	_, _, err := NewEngine(cfg).Compute(types.ModeAICTE, map[types.BlockType]*types.Block{
		types.BlockFaculty: validBlock(types.BlockFaculty, map[string]float64{"total_faculty": 82}),
	})
	require.Error(t, err)
	_, ok := apperrors.AsEngineError(err)
	assert.True(t, ok)
}

func TestComputeUnsupportedModeErrors(t *testing.T) {
	_, _, err := NewEngine(config.Default()).Compute(types.Mode("nba"), map[types.BlockType]*types.Block{
		types.BlockFaculty: validBlock(types.BlockFaculty, map[string]float64{"total_faculty": 82}),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsContractViolation(err))
}

func TestComputeUGCMode(t *testing.T) {
	blocks := map[types.BlockType]*types.Block{
		types.BlockResearchPublications: validBlock(types.BlockResearchPublications, map[string]float64{
			"publications":    25,
			"citations":       100,
			"funded_projects": 5,
		}),
		types.BlockAcademicGovernance: validBlock(types.BlockAcademicGovernance, map[string]float64{
			"committees_present": 4,
		}),
		types.BlockStudentPrograms: validBlock(types.BlockStudentPrograms, map[string]float64{
			"placement_rate": 76,
		}),
	}

	results, overall, err := NewEngine(config.Default()).Compute(types.ModeUGC, blocks)
	require.NoError(t, err)
	require.Len(t, results, 3)

	research := findKPI(t, results, "research_index")
	require.NotNil(t, research.Value)
	// 0.5*(25/50) + 0.3*(100/200) + 0.2*(5/10) = 0.5
	assert.InDelta(t, 50, *research.Value, 1e-9)

	governance := findKPI(t, results, "governance_score")
	require.NotNil(t, governance.Value)
	assert.InDelta(t, 80, *governance.Value, 1e-9)

	outcome := findKPI(t, results, "student_outcome_index")
	require.NotNil(t, outcome.Value)
	assert.InDelta(t, 76, *outcome.Value, 1e-9)

	require.NotNil(t, overall.Value)
	// 0.3*50 + 0.3*80 + 0.4*76
	assert.InDelta(t, 69.4, *overall.Value, 1e-9)
}

func TestComputeGovernanceFromCommitteeCountAlias(t *testing.T) {
	blocks := map[types.BlockType]*types.Block{
		types.BlockAcademicGovernance: validBlock(types.BlockAcademicGovernance, map[string]float64{
			"committee_count": 3,
		}),
	}

	results, _, err := NewEngine(config.Default()).Compute(types.ModeUGC, blocks)
	require.NoError(t, err)

	governance := findKPI(t, results, "governance_score")
	require.NotNil(t, governance.Value)
	assert.InDelta(t, 60, *governance.Value, 1e-9)
}

func TestParamsAliasResolution(t *testing.T) {
	blocks := map[types.BlockType]*types.Block{
		types.BlockStudentPrograms: validBlock(types.BlockStudentPrograms, map[string]float64{
			"student_count": 500,
		}),
	}
	params := CollectParams(blocks, config.Default().Aliases)

	got, ok := params.Get("total_students")
	require.True(t, ok)
	assert.InDelta(t, 500, got, 1e-9)
}

func TestParamsLargerValueWinsAcrossBlocks(t *testing.T) {
	blocks := map[types.BlockType]*types.Block{
		types.BlockFaculty:            validBlock(types.BlockFaculty, map[string]float64{"publications": 10}),
		types.BlockResearchInnovation: validBlock(types.BlockResearchInnovation, map[string]float64{"publications": 45}),
	}
	params := CollectParams(blocks, nil)

	got, ok := params.Get("publications")
	require.True(t, ok)
	assert.InDelta(t, 45, got, 1e-9)
}
