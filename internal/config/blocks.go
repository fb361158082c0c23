package config

import "github.com/edassess/evalengine/internal/types"

func aicteRequiredBlocks() []types.BlockType {
	return []types.BlockType{
		types.BlockFaculty,
		types.BlockStudentEnrollment,
		types.BlockInfrastructure,
		types.BlockLabEquipment,
		types.BlockSafetyCompliance,
		types.BlockAcademicCalendar,
		types.BlockFeeStructure,
		types.BlockPlacement,
		types.BlockResearchInnovation,
		types.BlockMandatoryCommittees,
	}
}

func ugcRequiredBlocks() []types.BlockType {
	// future_academic_plan applies to new institutions only and is not part
	// of the renewal sufficiency denominator.
	return []types.BlockType{
		types.BlockFacultyStaffing,
		types.BlockStudentPrograms,
		types.BlockLandBuilding,
		types.BlockAcademicGovernance,
		types.BlockFinancial,
		types.BlockResearchPublications,
		types.BlockIQAC,
		types.BlockLearningResources,
		types.BlockRegulatoryCompliance,
	}
}

func aicteSchemas() map[types.BlockType]BlockSchema {
	return map[types.BlockType]BlockSchema{
		types.BlockFaculty: {
			Fields: []FieldSpec{
				{Name: "total_faculty", Kind: FieldNumeric},
				{Name: "permanent_faculty", Kind: FieldNumeric},
				{Name: "visiting_faculty", Kind: FieldNumeric},
				{Name: "phd_faculty", Kind: FieldNumeric},
				{Name: "supporting_staff", Kind: FieldNumeric},
				{Name: "last_updated_year", Kind: FieldYear},
			},
			RequiredNumeric: []string{"total_faculty"},
		},
		types.BlockStudentEnrollment: {
			Fields: []FieldSpec{
				{Name: "total_students", Kind: FieldNumeric},
				{Name: "ug_enrollment", Kind: FieldNumeric},
				{Name: "pg_enrollment", Kind: FieldNumeric},
				{Name: "intake_capacity_ug", Kind: FieldNumeric},
				{Name: "intake_capacity_pg", Kind: FieldNumeric},
				{Name: "foreign_students", Kind: FieldNumeric},
				{Name: "last_updated_year", Kind: FieldYear},
			},
			RequiredNumeric: []string{"total_students"},
			Composites: []Composite{
				{Target: "total_students", Kind: CompositeSum, Operands: [2]string{"ug_enrollment", "pg_enrollment"}},
			},
		},
		types.BlockInfrastructure: {
			Fields: []FieldSpec{
				{Name: "built_up_area_sqm", Kind: FieldNumeric},
				{Name: "total_classrooms", Kind: FieldNumeric},
				{Name: "smart_classrooms", Kind: FieldNumeric},
				{Name: "library_area_sqm", Kind: FieldNumeric},
				{Name: "library_books", Kind: FieldNumeric},
				{Name: "digital_library_resources", Kind: FieldNumeric},
				{Name: "computers_available", Kind: FieldNumeric},
				{Name: "hostel_capacity", Kind: FieldNumeric},
				{Name: "last_updated_year", Kind: FieldYear},
			},
			RequiredNumeric: []string{"built_up_area_sqm"},
		},
		types.BlockLabEquipment: {
			Fields: []FieldSpec{
				{Name: "total_labs", Kind: FieldNumeric},
				{Name: "advanced_labs", Kind: FieldNumeric},
				{Name: "major_equipment_count", Kind: FieldNumeric},
				{Name: "computers_in_labs", Kind: FieldNumeric},
				{Name: "annual_lab_budget", Kind: FieldNumeric},
				{Name: "last_updated_year", Kind: FieldYear},
			},
			RequiredNumeric: []string{"total_labs"},
		},
		types.BlockSafetyCompliance: {
			Fields: []FieldSpec{
				{Name: "fire_safety_certificate", Kind: FieldText},
				{Name: "fire_safety_certificate_valid_till", Kind: FieldYear},
				{Name: "building_stability_certificate", Kind: FieldText},
				{Name: "sanitary_certificate", Kind: FieldText},
				{Name: "sanitary_certificate_valid_till", Kind: FieldYear},
				{Name: "safety_officer_appointed", Kind: FieldBool},
				{Name: "disaster_management_plan", Kind: FieldBool},
				{Name: "last_updated_year", Kind: FieldYear},
			},
		},
		types.BlockAcademicCalendar: {
			Fields: []FieldSpec{
				{Name: "academic_year_start", Kind: FieldText},
				{Name: "academic_year_end", Kind: FieldText},
				{Name: "total_working_days", Kind: FieldNumeric},
				{Name: "exam_schedule_published", Kind: FieldBool},
				{Name: "holiday_list_published", Kind: FieldBool},
				{Name: "last_updated_year", Kind: FieldYear},
			},
		},
		types.BlockFeeStructure: {
			Fields: []FieldSpec{
				{Name: "tuition_fee_ug", Kind: FieldNumeric},
				{Name: "tuition_fee_pg", Kind: FieldNumeric},
				{Name: "hostel_fee", Kind: FieldNumeric},
				{Name: "transport_fee", Kind: FieldNumeric},
				{Name: "other_charges", Kind: FieldNumeric},
				{Name: "scholarships_available", Kind: FieldBool},
				{Name: "last_updated_year", Kind: FieldYear},
			},
			RequiredNumeric: []string{"tuition_fee_ug"},
		},
		types.BlockPlacement: {
			Fields: []FieldSpec{
				{Name: "eligible_students", Kind: FieldNumeric},
				{Name: "students_placed", Kind: FieldNumeric},
				{Name: "placement_rate", Kind: FieldNumeric},
				{Name: "median_salary_lpa", Kind: FieldNumeric},
				{Name: "highest_salary_lpa", Kind: FieldNumeric},
				{Name: "top_recruiters", Kind: FieldList},
				{Name: "last_updated_year", Kind: FieldYear},
			},
			RequiredNumeric: []string{"eligible_students"},
			Composites: []Composite{
				{Target: "placement_rate", Kind: CompositePercentRatio, Operands: [2]string{"students_placed", "eligible_students"}},
			},
		},
		types.BlockResearchInnovation: {
			Fields: []FieldSpec{
				{Name: "publications", Kind: FieldNumeric},
				{Name: "citations", Kind: FieldNumeric},
				{Name: "patents_filed", Kind: FieldNumeric},
				{Name: "patents_granted", Kind: FieldNumeric},
				{Name: "funded_projects", Kind: FieldNumeric},
				{Name: "research_funding", Kind: FieldNumeric},
				{Name: "last_updated_year", Kind: FieldYear},
			},
			RequiredNumeric: []string{"publications"},
		},
		types.BlockMandatoryCommittees: {
			Fields: []FieldSpec{
				{Name: "anti_ragging", Kind: FieldBool},
				{Name: "icc", Kind: FieldBool},
				{Name: "grievance_redressal", Kind: FieldBool},
				{Name: "sc_st_committee", Kind: FieldBool},
				{Name: "iqac", Kind: FieldBool},
				{Name: "committees_present", Kind: FieldNumeric},
				{Name: "last_updated_year", Kind: FieldYear},
			},
		},
	}
}

func ugcSchemas() map[types.BlockType]BlockSchema {
	return map[types.BlockType]BlockSchema{
		types.BlockFacultyStaffing: {
			Fields: []FieldSpec{
				{Name: "faculty_count", Kind: FieldNumeric},
				{Name: "phd_faculty", Kind: FieldNumeric},
				{Name: "non_teaching_staff", Kind: FieldNumeric},
				{Name: "last_updated_year", Kind: FieldYear},
			},
			RequiredNumeric: []string{"faculty_count"},
		},
		types.BlockStudentPrograms: {
			Fields: []FieldSpec{
				{Name: "student_count", Kind: FieldNumeric},
				{Name: "ug_enrollment", Kind: FieldNumeric},
				{Name: "pg_enrollment", Kind: FieldNumeric},
				{Name: "programs_offered", Kind: FieldNumeric},
				{Name: "last_updated_year", Kind: FieldYear},
			},
			RequiredNumeric: []string{"student_count"},
			Composites: []Composite{
				{Target: "student_count", Kind: CompositeSum, Operands: [2]string{"ug_enrollment", "pg_enrollment"}},
			},
		},
		types.BlockLandBuilding: {
			Fields: []FieldSpec{
				{Name: "built_up_area_sqm", Kind: FieldNumeric},
				{Name: "land_area_sqm", Kind: FieldNumeric},
				{Name: "land_ownership", Kind: FieldText},
				{Name: "last_updated_year", Kind: FieldYear},
			},
			RequiredNumeric: []string{"built_up_area_sqm"},
		},
		types.BlockAcademicGovernance: {
			Fields: []FieldSpec{
				{Name: "board_of_governors", Kind: FieldBool},
				{Name: "academic_council", Kind: FieldBool},
				{Name: "finance_committee", Kind: FieldBool},
				{Name: "committees_present", Kind: FieldNumeric},
				{Name: "last_updated_year", Kind: FieldYear},
			},
		},
		types.BlockFinancial: {
			Fields: []FieldSpec{
				{Name: "annual_budget", Kind: FieldNumeric},
				{Name: "revenue", Kind: FieldNumeric},
				{Name: "expenditure", Kind: FieldNumeric},
				{Name: "last_updated_year", Kind: FieldYear},
			},
			RequiredNumeric: []string{"annual_budget"},
		},
		types.BlockResearchPublications: {
			Fields: []FieldSpec{
				{Name: "publications", Kind: FieldNumeric},
				{Name: "citations", Kind: FieldNumeric},
				{Name: "funded_projects", Kind: FieldNumeric},
				{Name: "last_updated_year", Kind: FieldYear},
			},
			RequiredNumeric: []string{"publications"},
		},
		types.BlockIQAC: {
			Fields: []FieldSpec{
				{Name: "iqac_established", Kind: FieldBool},
				{Name: "accreditation_status", Kind: FieldText},
				{Name: "accreditation_valid_till", Kind: FieldYear},
				{Name: "last_updated_year", Kind: FieldYear},
			},
		},
		types.BlockLearningResources: {
			Fields: []FieldSpec{
				{Name: "library_area_sqm", Kind: FieldNumeric},
				{Name: "library_books", Kind: FieldNumeric},
				{Name: "ict_facilities", Kind: FieldText},
				{Name: "last_updated_year", Kind: FieldYear},
			},
			RequiredNumeric: []string{"library_area_sqm"},
		},
		types.BlockRegulatoryCompliance: {
			Fields: []FieldSpec{
				{Name: "ugc_regulations_2018_compliance", Kind: FieldBool},
				{Name: "statutory_committees", Kind: FieldText},
				{Name: "last_updated_year", Kind: FieldYear},
			},
		},
		types.BlockFutureAcademicPlan: {
			Fields: []FieldSpec{
				{Name: "expansion_plan", Kind: FieldText},
				{Name: "new_programs", Kind: FieldList},
				{Name: "strategic_vision", Kind: FieldText},
				{Name: "last_updated_year", Kind: FieldYear},
			},
		},
	}
}

// parameterAliases maps the canonical KPI parameter names to alternate field
// names the extraction service is known to emit. Resolution tries the
// canonical name first, then aliases in order.
func parameterAliases() map[string][]string {
	return map[string][]string{
		"total_students":     {"student_count", "total_enrollment", "headcount", "total_student_count"},
		"total_faculty":      {"faculty_count", "faculty_strength", "teaching_staff"},
		"ug_enrollment":      {"ug_students", "ug_intake", "intake_capacity_ug"},
		"pg_enrollment":      {"pg_students", "pg_intake", "intake_capacity_pg"},
		"built_up_area_sqm":  {"built_up_area", "built_up_area_raw", "campus_area_sqm", "building_area_sqm"},
		"library_area_sqm":   {"library_area"},
		"total_classrooms":   {"number_of_classrooms", "classrooms"},
		"total_labs":         {"lab_count", "number_of_labs"},
		"eligible_students":  {"placement_eligible"},
		"students_placed":    {"placed_students", "total_placed"},
		"placement_rate":     {"placement_percentage"},
		"publications":       {"research_publications", "papers_published"},
		"citations":          {"citation_count"},
		"funded_projects":    {"research_projects", "sponsored_projects"},
		"committees_present": {"statutory_committee_count", "committee_count", "present_committees"},
		"annual_budget":      {"budget", "total_budget"},
	}
}
