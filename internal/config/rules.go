package config

import "github.com/edassess/evalengine/internal/types"

// aicteRules is ordered; flag output follows table order. Rules sharing a Key
// are synonym variants of one requirement and collapse to a single flag.
func aicteRules() []ComplianceRule {
	return []ComplianceRule{
		{
			ID:             "fire_noc_present",
			Key:            "fire_noc",
			BlockType:      types.BlockSafetyCompliance,
			Check:          CheckFuzzyPresence,
			Synonyms:       []string{"fire safety certificate", "fire noc", "fire no objection certificate", "safety fire noc"},
			Severity:       types.SeverityHigh,
			Title:          "Fire NOC missing",
			Reason:         "No fire safety certificate or fire NOC was found in the safety compliance information.",
			Recommendation: "Obtain a current fire NOC from the fire department and include it in the submission.",
		},
		{
			ID:             "fire_noc_field_present",
			Key:            "fire_noc",
			BlockType:      types.BlockSafetyCompliance,
			Check:          CheckPresence,
			Field:          "fire_safety_certificate",
			Severity:       types.SeverityHigh,
			Title:          "Fire NOC missing",
			Reason:         "The fire_safety_certificate field is empty.",
			Recommendation: "Obtain a current fire NOC from the fire department and include it in the submission.",
		},
		{
			ID:             "fire_noc_valid",
			Key:            "fire_noc_expiry",
			BlockType:      types.BlockSafetyCompliance,
			Check:          CheckValidUntil,
			Field:          "fire_safety_certificate_valid_till",
			Severity:       types.SeverityHigh,
			Title:          "Fire NOC expired",
			Reason:         "The fire safety certificate validity year has elapsed.",
			Recommendation: "Renew the fire NOC before the next inspection cycle.",
		},
		{
			ID:             "building_stability_present",
			Key:            "building_stability",
			BlockType:      types.BlockSafetyCompliance,
			Check:          CheckFuzzyPresence,
			Synonyms:       []string{"building stability certificate", "structural stability certificate", "building safety certificate"},
			Severity:       types.SeverityHigh,
			Title:          "Building stability certificate missing",
			Reason:         "No building stability certificate was found in the safety compliance information.",
			Recommendation: "Obtain a structural stability certificate from a licensed engineer.",
		},
		{
			ID:             "sanitary_certificate_valid",
			Key:            "sanitary_expiry",
			BlockType:      types.BlockSafetyCompliance,
			Check:          CheckValidUntil,
			Field:          "sanitary_certificate_valid_till",
			Severity:       types.SeverityMedium,
			Title:          "Sanitary certificate expired",
			Reason:         "The sanitary certificate validity year has elapsed.",
			Recommendation: "Renew the sanitary certificate with the municipal authority.",
		},
		{
			ID:             "anti_ragging_committee",
			Key:            "anti_ragging",
			BlockType:      types.BlockMandatoryCommittees,
			Check:          CheckFuzzyPresence,
			Synonyms:       []string{"anti ragging", "anti-ragging committee", "anti ragging squad"},
			Severity:       types.SeverityHigh,
			Title:          "Anti-ragging committee missing",
			Reason:         "No anti-ragging committee was found in the mandatory committees information.",
			Recommendation: "Constitute an anti-ragging committee as mandated and record its composition.",
		},
		{
			ID:             "icc_committee",
			Key:            "icc",
			BlockType:      types.BlockMandatoryCommittees,
			Check:          CheckFuzzyPresence,
			Synonyms:       []string{"icc", "internal complaints committee", "internal complaint committee"},
			Severity:       types.SeverityHigh,
			Title:          "Internal Complaints Committee missing",
			Reason:         "No Internal Complaints Committee was found in the mandatory committees information.",
			Recommendation: "Constitute an ICC under the POSH Act and record its composition.",
		},
		{
			ID:             "grievance_committee",
			Key:            "grievance",
			BlockType:      types.BlockMandatoryCommittees,
			Check:          CheckFuzzyPresence,
			Synonyms:       []string{"grievance redressal", "grievance committee", "student grievance cell"},
			Severity:       types.SeverityMedium,
			Title:          "Grievance redressal committee missing",
			Reason:         "No grievance redressal committee was found in the mandatory committees information.",
			Recommendation: "Constitute a grievance redressal committee and publish its contact points.",
		},
	}
}

func ugcRules() []ComplianceRule {
	return []ComplianceRule{
		{
			ID:             "board_of_governors",
			Key:            "board_of_governors",
			BlockType:      types.BlockAcademicGovernance,
			Check:          CheckPresence,
			Field:          "board_of_governors",
			Severity:       types.SeverityHigh,
			Title:          "Board of Governors missing",
			Reason:         "No Board of Governors was found in the academic governance information.",
			Recommendation: "Constitute a Board of Governors per the applicable regulations.",
		},
		{
			ID:             "academic_council",
			Key:            "academic_council",
			BlockType:      types.BlockAcademicGovernance,
			Check:          CheckPresence,
			Field:          "academic_council",
			Severity:       types.SeverityHigh,
			Title:          "Academic Council missing",
			Reason:         "No Academic Council was found in the academic governance information.",
			Recommendation: "Constitute an Academic Council per the applicable regulations.",
		},
		{
			ID:             "iqac_established",
			Key:            "iqac",
			BlockType:      types.BlockIQAC,
			Check:          CheckPresence,
			Field:          "iqac_established",
			Severity:       types.SeverityHigh,
			Title:          "IQAC not established",
			Reason:         "The Internal Quality Assurance Cell is not recorded as established.",
			Recommendation: "Establish an IQAC and document its constitution and meeting minutes.",
		},
		{
			ID:             "accreditation_valid",
			Key:            "accreditation_expiry",
			BlockType:      types.BlockIQAC,
			Check:          CheckValidUntil,
			Field:          "accreditation_valid_till",
			Severity:       types.SeverityHigh,
			Title:          "Accreditation expired",
			Reason:         "The accreditation validity year has elapsed.",
			Recommendation: "Apply for re-accreditation before the next review cycle.",
		},
		{
			ID:             "ugc_regulations_compliance",
			Key:            "ugc_regulations",
			BlockType:      types.BlockRegulatoryCompliance,
			Check:          CheckPresence,
			Field:          "ugc_regulations_2018_compliance",
			Severity:       types.SeverityHigh,
			Title:          "UGC regulations compliance not declared",
			Reason:         "Compliance with the UGC regulations is not recorded in the regulatory compliance information.",
			Recommendation: "Record and evidence compliance with the applicable UGC regulations.",
		},
		{
			ID:             "annual_budget_present",
			Key:            "annual_budget",
			BlockType:      types.BlockFinancial,
			Check:          CheckPresence,
			Field:          "annual_budget",
			Severity:       types.SeverityMedium,
			Title:          "Annual budget missing",
			Reason:         "No annual budget figure was found in the financial information.",
			Recommendation: "Provide the approved annual budget for the current academic year.",
		},
		{
			ID:             "statutory_committees",
			Key:            "statutory_committees",
			BlockType:      types.BlockRegulatoryCompliance,
			Check:          CheckFuzzyPresence,
			Synonyms:       []string{"statutory committees", "mandatory committees", "statutory bodies"},
			Severity:       types.SeverityMedium,
			Title:          "Statutory committees not recorded",
			Reason:         "No statutory committee information was found in the regulatory compliance information.",
			Recommendation: "List the constituted statutory committees with their membership.",
		},
	}
}
