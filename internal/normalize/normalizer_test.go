package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edassess/evalengine/internal/config"
	"github.com/edassess/evalengine/internal/types"
)

func TestMergeExtractions(t *testing.T) {
	conf := func(v float64) *float64 { return &v }

	tests := []struct {
		name      string
		extracted []types.ExtractedBlock
		wantIndex int
	}{
		{
			name: "higher confidence wins",
			extracted: []types.ExtractedBlock{
				{BlockType: types.BlockFaculty, ExtractionConfidence: conf(0.9), DocumentIndex: 0},
				{BlockType: types.BlockFaculty, ExtractionConfidence: conf(0.5), DocumentIndex: 1},
			},
			wantIndex: 0,
		},
		{
			name: "missing confidence loses to reported",
			extracted: []types.ExtractedBlock{
				{BlockType: types.BlockFaculty, DocumentIndex: 0},
				{BlockType: types.BlockFaculty, ExtractionConfidence: conf(0.3), DocumentIndex: 1},
			},
			wantIndex: 1,
		},
		{
			name: "tie goes to later document",
			extracted: []types.ExtractedBlock{
				{BlockType: types.BlockFaculty, ExtractionConfidence: conf(0.7), DocumentIndex: 0},
				{BlockType: types.BlockFaculty, ExtractionConfidence: conf(0.7), DocumentIndex: 1},
			},
			wantIndex: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeExtractions(tt.extracted)
			require.Len(t, merged, 1)
			assert.Equal(t, tt.wantIndex, merged[types.BlockFaculty].DocumentIndex)
		})
	}
}

func TestNormalizeBlockDerivesTotalFromParts(t *testing.T) {
	n := NewNormalizer(config.Default())

	block := n.NormalizeBlock(types.ModeAICTE, types.ExtractedBlock{
		BlockType: types.BlockStudentEnrollment,
		FieldValues: map[string]any{
			"ug_enrollment": "900 students",
			"pg_enrollment": "390",
		},
	})

	assert.InDelta(t, 900, block.NormalizedFields["ug_enrollment"], 1e-9)
	assert.InDelta(t, 390, block.NormalizedFields["pg_enrollment"], 1e-9)
	assert.InDelta(t, 1290, block.NormalizedFields["total_students"], 1e-9)
}

func TestNormalizeBlockDerivesTotalFromAliasSpelledParts(t *testing.T) {
	n := NewNormalizer(config.Default())

	block := n.NormalizeBlock(types.ModeAICTE, types.ExtractedBlock{
		BlockType: types.BlockStudentEnrollment,
		FieldValues: map[string]any{
			"ug_students": "900",
			"pg_students": "390",
		},
	})

	assert.InDelta(t, 1290, block.NormalizedFields["total_students"], 1e-9)
}

func TestNormalizeBlockAliasSpelledTotalBlocksDerivation(t *testing.T) {
	n := NewNormalizer(config.Default())

	// student_count is a known spelling of the total; the composite must
	// treat it as supplied rather than derive a competing value.
	block := n.NormalizeBlock(types.ModeAICTE, types.ExtractedBlock{
		BlockType: types.BlockStudentEnrollment,
		FieldValues: map[string]any{
			"student_count": "2000",
			"ug_enrollment": "900",
			"pg_enrollment": "390",
		},
	})

	_, derived := block.NormalizedFields["total_students"]
	assert.False(t, derived)
	assert.InDelta(t, 2000, block.NormalizedFields["student_count"], 1e-9)
}

func TestNormalizeBlockNeverOverridesSuppliedTotal(t *testing.T) {
	n := NewNormalizer(config.Default())

	block := n.NormalizeBlock(types.ModeAICTE, types.ExtractedBlock{
		BlockType: types.BlockStudentEnrollment,
		FieldValues: map[string]any{
			"total_students": "2000",
			"ug_enrollment":  "900",
			"pg_enrollment":  "390",
		},
	})

	assert.InDelta(t, 2000, block.NormalizedFields["total_students"], 1e-9)
}

func TestNormalizeBlockSinglePartNeverExtrapolates(t *testing.T) {
	n := NewNormalizer(config.Default())

	block := n.NormalizeBlock(types.ModeAICTE, types.ExtractedBlock{
		BlockType:   types.BlockStudentEnrollment,
		FieldValues: map[string]any{"ug_enrollment": "900"},
	})

	_, ok := block.NormalizedFields["total_students"]
	assert.False(t, ok)
}

func TestNormalizeBlockDerivesPlacementRate(t *testing.T) {
	n := NewNormalizer(config.Default())

	block := n.NormalizeBlock(types.ModeAICTE, types.ExtractedBlock{
		BlockType: types.BlockPlacement,
		FieldValues: map[string]any{
			"eligible_students": "200",
			"students_placed":   "164",
		},
	})

	assert.InDelta(t, 82, block.NormalizedFields["placement_rate"], 1e-9)
}

func TestNormalizeBlockKeepsUnknownFieldsAsExtensions(t *testing.T) {
	n := NewNormalizer(config.Default())

	block := n.NormalizeBlock(types.ModeAICTE, types.ExtractedBlock{
		BlockType: types.BlockInfrastructure,
		FieldValues: map[string]any{
			"built_up_area_sqm": "4500 sq.m",
			"auditorium_note":   "two auditoriums",
		},
	})

	assert.Contains(t, block.Extensions, "auditorium_note")
	assert.InDelta(t, 4500, block.NormalizedFields["built_up_area_sqm"], 1e-9)
}

func TestNormalizeBlockConvertsSquareFeet(t *testing.T) {
	n := NewNormalizer(config.Default())

	block := n.NormalizeBlock(types.ModeAICTE, types.ExtractedBlock{
		BlockType:   types.BlockInfrastructure,
		FieldValues: map[string]any{"built_up_area_sqm": "25,000 sq.ft"},
	})

	assert.InDelta(t, 25000*SqftToSqmFactor, block.NormalizedFields["built_up_area_sqm"], 1e-6)
}

func TestNormalizeBlockResolvesYear(t *testing.T) {
	n := NewNormalizer(config.Default())

	tests := []struct {
		name     string
		fields   map[string]any
		expected *int
	}{
		{
			name:     "explicit year field",
			fields:   map[string]any{"total_faculty": "82", "last_updated_year": "2023-24"},
			expected: intPtr(2024),
		},
		{
			name:     "backfill from academic range in another field",
			fields:   map[string]any{"total_faculty": "82 (AY 2022/23)"},
			expected: intPtr(2023),
		},
		{
			name:     "bare numbers never backfill",
			fields:   map[string]any{"total_faculty": "82"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := n.NormalizeBlock(types.ModeAICTE, types.ExtractedBlock{
				BlockType:   types.BlockFaculty,
				FieldValues: tt.fields,
			})
			assert.Equal(t, tt.expected, block.Year)
		})
	}
}

func TestNormalizeBlockDoesNotMutateInput(t *testing.T) {
	n := NewNormalizer(config.Default())
	input := map[string]any{"total_faculty": "82"}

	block := n.NormalizeBlock(types.ModeAICTE, types.ExtractedBlock{
		BlockType:   types.BlockFaculty,
		FieldValues: input,
	})
	block.RawFields["injected"] = "x"

	assert.Equal(t, map[string]any{"total_faculty": "82"}, input)
}

func intPtr(v int) *int { return &v }
