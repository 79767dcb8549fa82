package templates

import "auditcore/pkg/domain"

// mrrTemplate is the medical record review checklist: 36 items across
// four sections.
var mrrTemplate = Template{
	AuditType: domain.AuditTypeMRR,
	Sections: []Section{
		{
			Key:  "section_i_format",
			Name: "Format",
			Items: []ItemDef{
				{ID: "mrr_i_1", Description: "Each page includes member identification", Category: "Organization & Identification"},
				{ID: "mrr_i_2", Description: "Records are logically organized", Category: "Organization & Identification"},
				{ID: "mrr_i_3", Description: "Personal biographical information is complete and current", Category: "Organization & Identification"},
				{ID: "mrr_i_4", Description: "All allergies prominently noted on summary list", Category: "Key Information"},
				{ID: "mrr_i_5", Description: "Chronic problems prominently noted on summary list", Category: "Key Information"},
				{ID: "mrr_i_6", Description: "List of current continuous medications actively maintained", Category: "Key Information"},
				{ID: "mrr_i_7", Description: "All entries are signed and dated", Category: "Legibility & Entries"},
				{ID: "mrr_i_8", Description: "All entries are legible", Category: "Legibility & Entries"},
				{ID: "mrr_i_9", Description: "Errors corrected with single line through, initialed and dated", Category: "Legibility & Entries"},
				{ID: "mrr_i_10", Description: "No unexplained cross-outs, erasures, or correction fluid", Category: "Legibility & Entries"},
				{ID: "mrr_i_11", Description: "Signed Release of Medical Records consent present", Category: "Consents"},
				{ID: "mrr_i_12", Description: "Signed Informed Consent for invasive procedures (when applicable)", Category: "Consents"},
				{ID: "mrr_i_13", Description: "Signed Notice of Privacy present", Category: "Consents"},
			},
		},
		{
			Key:  "section_ii_documentation",
			Name: "Documentation",
			Items: []ItemDef{
				{ID: "mrr_ii_1", Description: "History of present illness or reason for visit documented for each visit", Category: "Encounter Documentation"},
				{ID: "mrr_ii_2", Description: "Working diagnoses consistent with clinical findings", Category: "Encounter Documentation"},
				{ID: "mrr_ii_3", Description: "Treatment plans consistent with diagnoses", Category: "Encounter Documentation"},
				{ID: "mrr_ii_4", Description: "Evidence of practitioner review of specialty/consult/referral reports (initials/signature)", Category: "Review of Reports"},
				{ID: "mrr_ii_5", Description: "Evidence of practitioner review of diagnostic test results", Category: "Review of Reports"},
			},
		},
		{
			Key:  "section_iii_coordination",
			Name: "Coordination of Care",
			Items: []ItemDef{
				{ID: "mrr_iii_1", Description: "Follow-up care instructions documented with definite timeframe", Category: "Follow-Up"},
				{ID: "mrr_iii_2", Description: "Unresolved continuing problems addressed in subsequent visits", Category: "Follow-Up"},
				{ID: "mrr_iii_3", Description: "Evidence of patient follow-up for specialty/consult reports", Category: "Follow-Up"},
				{ID: "mrr_iii_4", Description: "Evidence of patient follow-up for diagnostic test results", Category: "Follow-Up"},
				{ID: "mrr_iii_5", Description: "Missed/broken appointments documented with follow-up attempts", Category: "Follow-Up"},
			},
		},
		{
			Key:  "section_iv_preventive",
			Name: "Pediatric Preventive Care",
			Items: []ItemDef{
				{ID: "mrr_iv_1", Description: "Initial Health Appointment (IHA) documented", Category: "Health Assessments"},
				{ID: "mrr_iv_2", Description: "Periodic health exams at age-appropriate frequencies", Category: "Health Assessments"},
				{ID: "mrr_iv_3", Description: "Developmental Disorder screening documented", Category: "Required Screenings"},
				{ID: "mrr_iv_4", Description: "Autism Spectrum Disorder screening documented", Category: "Required Screenings"},
				{ID: "mrr_iv_5", Description: "Blood Lead screening documented (age-appropriate)", Category: "Required Screenings"},
				{ID: "mrr_iv_6", Description: "Anemia screening documented", Category: "Required Screenings"},
				{ID: "mrr_iv_7", Description: "Vision screening documented", Category: "Required Screenings"},
				{ID: "mrr_iv_8", Description: "Dental/Oral health counseling documented", Category: "Required Counseling"},
				{ID: "mrr_iv_9", Description: "Fluoride varnish application documented", Category: "Required Counseling"},
				{ID: "mrr_iv_10", Description: "DTaP series completion documented (5 doses)", Category: "Immunizations"},
				{ID: "mrr_iv_11", Description: "MMR 2-dose series documented", Category: "Immunizations"},
				{ID: "mrr_iv_12", Description: "Varicella 2-dose series documented", Category: "Immunizations"},
				{ID: "mrr_iv_13", Description: "HPV series initiated and documented (ages 9+)", Category: "Immunizations"},
			},
		},
	},
}
