package config

// Formula identifiers dispatched by the KPI engine. Each formula documents
// its required parameters in the KPI table; the engine refuses unknown ids.
const (
	FormulaFSR            = "fsr_score"
	FormulaInfrastructure = "infrastructure_score"
	FormulaPlacement      = "placement_index"
	FormulaLabCompliance  = "lab_compliance_index"
	FormulaResearch       = "research_index"
	FormulaGovernance     = "governance_score"
	FormulaStudentOutcome = "student_outcome_index"
)

func aicteKPIs() []KPISpec {
	return []KPISpec{
		{
			ID:       "fsr_score",
			Name:     "FSR Score",
			Formula:  FormulaFSR,
			Weight:   0.25,
			Required: []string{"total_students", "total_faculty"},
			Norms: map[string]float64{
				// Students per faculty member considered fully compliant.
				"norm_ratio": 20,
			},
		},
		{
			ID:       "infrastructure_score",
			Name:     "Infrastructure Score",
			Formula:  FormulaInfrastructure,
			Weight:   0.25,
			Required: []string{"total_students", "built_up_area_sqm"},
			Norms: map[string]float64{
				"area_sqm_per_student":    4,
				"students_per_classroom":  40,
				"library_sqm_per_student": 0.5,
				"digital_resources_norm":  500,
				"hostel_capacity_ratio":   0.4,
				"weight_area":             0.40,
				"weight_classrooms":       0.25,
				"weight_library":          0.15,
				"weight_digital":          0.10,
				"weight_hostel":           0.10,
			},
		},
		{
			ID:       "placement_index",
			Name:     "Placement Index",
			Formula:  FormulaPlacement,
			Weight:   0.25,
			Required: []string{"placement_rate"},
		},
		{
			ID:       "lab_compliance_index",
			Name:     "Lab Compliance Index",
			Formula:  FormulaLabCompliance,
			Weight:   0.25,
			Required: []string{"total_labs"},
			Norms: map[string]float64{
				"students_per_lab":  50,
				"min_required_labs": 5,
			},
		},
	}
}

func ugcKPIs() []KPISpec {
	return []KPISpec{
		{
			ID:       "research_index",
			Name:     "Research Index",
			Formula:  FormulaResearch,
			Weight:   0.3,
			Required: []string{"publications"},
			Norms: map[string]float64{
				"publications_norm":   50,
				"citations_norm":      200,
				"projects_norm":       10,
				"weight_publications": 0.5,
				"weight_citations":    0.3,
				"weight_projects":     0.2,
			},
		},
		{
			ID:       "governance_score",
			Name:     "Governance Score",
			Formula:  FormulaGovernance,
			Weight:   0.3,
			Required: []string{"committees_present"},
			Norms: map[string]float64{
				"required_committees": 5,
			},
		},
		{
			ID:       "student_outcome_index",
			Name:     "Student Outcome Index",
			Formula:  FormulaStudentOutcome,
			Weight:   0.4,
			Required: []string{"placement_rate"},
		},
	}
}
