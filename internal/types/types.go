package types

// Mode selects the evaluation regime. Each mode carries its own required
// block list, KPI formula table and compliance rule table.
type Mode string

const (
	ModeAICTE Mode = "aicte"
	ModeUGC   Mode = "ugc"
)

// BlockType identifies one information category within a submission.
type BlockType string

// AICTE information blocks.
const (
	BlockFaculty             BlockType = "faculty_information"
	BlockStudentEnrollment   BlockType = "student_enrollment_information"
	BlockInfrastructure      BlockType = "infrastructure_information"
	BlockLabEquipment        BlockType = "lab_equipment_information"
	BlockSafetyCompliance    BlockType = "safety_compliance_information"
	BlockAcademicCalendar    BlockType = "academic_calendar_information"
	BlockFeeStructure        BlockType = "fee_structure_information"
	BlockPlacement           BlockType = "placement_information"
	BlockResearchInnovation  BlockType = "research_innovation_information"
	BlockMandatoryCommittees BlockType = "mandatory_committees_information"
)

// UGC information blocks.
const (
	BlockFacultyStaffing      BlockType = "faculty_and_staffing"
	BlockStudentPrograms      BlockType = "student_enrollment_and_programs"
	BlockLandBuilding         BlockType = "infrastructure_and_land_building"
	BlockAcademicGovernance   BlockType = "academic_governance_and_bodies"
	BlockFinancial            BlockType = "financial_information"
	BlockResearchPublications BlockType = "research_and_publications"
	BlockIQAC                 BlockType = "iqac_quality_assurance"
	BlockLearningResources    BlockType = "learning_resources_library_ict"
	BlockRegulatoryCompliance BlockType = "regulatory_compliance"
	BlockFutureAcademicPlan   BlockType = "future_academic_plan"
)

// BlockStatus is the quality status assigned to a block by the quality
// evaluator. A block holds exactly one status at a time.
type BlockStatus string

const (
	StatusValid      BlockStatus = "valid"
	StatusLowQuality BlockStatus = "low_quality"
	StatusOutdated   BlockStatus = "outdated"
	StatusInvalid    BlockStatus = "invalid"
	StatusAbsent     BlockStatus = "absent"
)

// Severity grades a compliance flag.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Evidence is a provenance reference attached to extracted data. It is used
// for audit display only and never participates in scoring.
type Evidence struct {
	Snippet        string `json:"snippet"`
	Page           int    `json:"page"`
	SourceDocument string `json:"source_document"`
}

// ExtractedBlock is the input contract from the extraction collaborator:
// one information block as pulled from one source document. DocumentIndex
// preserves supply order so the merge policy can break confidence ties in
// favour of the most recently supplied document.
type ExtractedBlock struct {
	BlockType            BlockType      `json:"block_type"`
	FieldValues          map[string]any `json:"field_values"`
	ExtractionConfidence *float64       `json:"extraction_confidence"`
	Evidence             []Evidence     `json:"evidence,omitempty"`
	DocumentIndex        int            `json:"document_index"`
}

// Block is one quality-evaluated information category for a submission.
// RawFields holds values exactly as received; NormalizedFields holds the
// canonical numeric values derived by the normalizer (a missing key means
// the value is null, never zero). Fields outside the declared schema for the
// (mode, block type) pair land in Extensions.
type Block struct {
	BlockType            BlockType          `json:"block_type"`
	RawFields            map[string]any     `json:"raw_fields"`
	NormalizedFields     map[string]float64 `json:"normalized_fields"`
	Extensions           map[string]any     `json:"extensions,omitempty"`
	ExtractionConfidence *float64           `json:"extraction_confidence"`
	Evidence             []Evidence         `json:"evidence,omitempty"`

	// Year is the explicit or backfilled reference year for outdated checks.
	// Nil when no year could be resolved; such blocks are never outdated.
	Year *int `json:"year"`

	Status             BlockStatus `json:"status"`
	ComputedConfidence float64     `json:"computed_confidence"`
	StatusReasons      []string    `json:"status_reasons,omitempty"`
}

// Present reports whether at least one raw field carries a non-null value.
func (b *Block) Present() bool {
	for _, v := range b.RawFields {
		if !IsNull(v) {
			return true
		}
	}
	return false
}

// IsNull reports whether an extracted raw value should be treated as missing.
// The extraction collaborator emits nulls in several spellings.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		switch s {
		case "", "null", "None", "none", "NULL", "n/a", "N/A", "na", "NA":
			return true
		}
	}
	return false
}

// Submission is the unit of evaluation: a mode plus the merged, normalized,
// quality-evaluated block set. Blocks are immutable after construction.
type Submission struct {
	ID     string               `json:"id"`
	Mode   Mode                 `json:"mode"`
	Blocks map[BlockType]*Block `json:"blocks"`
}

// PenaltyBreakdown itemizes the sufficiency deduction. Outdated, LowQuality
// and Invalid are raw counts of degraded required blocks; TotalPenalty is the
// weighted, capped deduction in percentage points derived from those counts.
type PenaltyBreakdown struct {
	Outdated     int `json:"outdated"`
	LowQuality   int `json:"low_quality"`
	Invalid      int `json:"invalid"`
	TotalPenalty int `json:"total_penalty"`
}

// SufficiencyResult is the completeness score for one submission.
type SufficiencyResult struct {
	Percentage        float64          `json:"percentage"`
	BasePercentage    float64          `json:"base_percentage"`
	PresentCount      int              `json:"present_count"`
	RequiredCount     int              `json:"required_count"`
	MissingBlockTypes []BlockType      `json:"missing_block_types"`
	Penalty           PenaltyBreakdown `json:"penalty_breakdown"`

	// Band is the traffic-light rendering of Percentage, informational only.
	Band string `json:"band"`
}

// TraceStep is one step of a KPI computation trace. Traces make every score
// auditable without re-deriving it.
type TraceStep struct {
	StepNumber  int     `json:"step_number"`
	Description string  `json:"description"`
	Formula     string  `json:"formula"`
	Result      float64 `json:"result"`
}

// KPIResult is one named 0-100 indicator. Value is nil, never zero, when a
// required input parameter is missing after normalization.
type KPIResult struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Value              *float64    `json:"value"`
	Weight             float64     `json:"weight"`
	IncludedParameters []string    `json:"included_parameters"`
	ExcludedParameters []string    `json:"excluded_parameters"`
	Trace              []TraceStep `json:"computation_trace"`
}

// OverallScore is the weighted combination of the non-nil KPIs, with weights
// renormalized so missing KPIs do not drag the average toward zero.
type OverallScore struct {
	Name         string      `json:"name"`
	Value        *float64    `json:"value"`
	IncludedKPIs []string    `json:"included_kpis"`
	Trace        []TraceStep `json:"computation_trace"`
}

// ComplianceFlag is one severity-tagged issue raised by a declarative rule.
type ComplianceFlag struct {
	Severity         Severity  `json:"severity"`
	Title            string    `json:"title"`
	Reason           string    `json:"reason"`
	Recommendation   string    `json:"recommendation"`
	RelatedBlockType BlockType `json:"related_block_type"`
}

// BlockReport is the per-block slice of the output contract.
type BlockReport struct {
	BlockType          BlockType   `json:"block_type"`
	Status             BlockStatus `json:"status"`
	ComputedConfidence float64     `json:"computed_confidence"`
	Year               *int        `json:"year"`
	StatusReasons      []string    `json:"status_reasons,omitempty"`
}

// EvaluationResult is the full output contract for one evaluation pass. It is
// a pure function of the submission's block set and mode; no collaborator may
// read a zero value as "unknown" anywhere nil is possible.
type EvaluationResult struct {
	SubmissionID string            `json:"submission_id"`
	Mode         Mode              `json:"mode"`
	Blocks       []BlockReport     `json:"blocks"`
	Sufficiency  SufficiencyResult `json:"sufficiency"`
	KPIs         []KPIResult       `json:"kpis"`
	Overall      OverallScore      `json:"overall_score"`
	Flags        []ComplianceFlag  `json:"compliance_flags"`
}

// Float64Ptr returns a pointer to v. Convenience for optional scores.
func Float64Ptr(v float64) *float64 { return &v }
