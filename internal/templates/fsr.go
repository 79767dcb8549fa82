package templates

import "auditcore/pkg/domain"

// fsrTemplate is the facility site review checklist: 94 items across
// seven sections.
var fsrTemplate = Template{
	AuditType: domain.AuditTypeFSR,
	Sections: []Section{
		{
			Key:  "section_0_documentation",
			Name: "Pre-Audit Documentation",
			Items: []ItemDef{
				{ID: "fsr_0_1", Description: "PCP Site Identification Form completely filled out", Category: "Required Forms"},
				{ID: "fsr_0_2", Description: "Staff Roster current and available", Category: "Required Forms"},
				{ID: "fsr_0_3", Description: "Medical Records Reference List prepared", Category: "Required Forms"},
				{ID: "fsr_0_4", Description: "Fire Safety and Prevention policy with training documentation", Category: "Policies & Training"},
				{ID: "fsr_0_5", Description: "Emergency Non-Medical Procedures policy with training documentation", Category: "Policies & Training"},
				{ID: "fsr_0_6", Description: "Infection Control/Universal Precautions policy with annual training", Category: "Policies & Training"},
				{ID: "fsr_0_7", Description: "Current California licenses for all providers", Category: "Licenses & Certifications"},
				{ID: "fsr_0_8", Description: "Current DEA registration for prescribing practitioners", Category: "Licenses & Certifications"},
				{ID: "fsr_0_9", Description: "Medical Assistant certificates/diplomas", Category: "Licenses & Certifications"},
				{ID: "fsr_0_10", Description: "NPMP Agreements (Standardized Procedures for NPs/CNMs, Practice Agreements for PAs)", Category: "Licenses & Certifications"},
				{ID: "fsr_0_11", Description: "Current, site-specific CLIA certificate/waiver", Category: "Licenses & Certifications"},
			},
		},
		{
			Key:  "section_i_access_safety",
			Name: "Access & Safety",
			Items: []ItemDef{
				{ID: "fsr_i_1", Description: "Designated disabled parking present", Category: "Physical Accessibility"},
				{ID: "fsr_i_2", Description: "Accessible ramps with level landings", Category: "Physical Accessibility"},
				{ID: "fsr_i_3", Description: "Clear doorway openings (at least 32 inches)", Category: "Physical Accessibility"},
				{ID: "fsr_i_4", Description: "Clear floor space for wheelchair (30x48 inches minimum)", Category: "Physical Accessibility"},
				{ID: "fsr_i_5", Description: "Wheelchair-accessible restroom facilities available", Category: "Physical Accessibility"},
				{ID: "fsr_i_6", Description: "All patient areas clean and well-maintained (floors, furniture, walls)", Category: "Site Cleanliness"},
				{ID: "fsr_i_7", Description: "Restrooms stocked with appropriate sanitary supplies", Category: "Site Cleanliness"},
				{ID: "fsr_i_8", Description: "Aisles and exit doors free of obstructions (CE)", Category: "Environmental Safety"},
				{ID: "fsr_i_9", Description: "Exit doors clearly marked with 'Exit' signs", Category: "Environmental Safety"},
				{ID: "fsr_i_10", Description: "Evacuation routes posted in visible locations", Category: "Environmental Safety"},
				{ID: "fsr_i_11", Description: "Electrical cords/outlets in good condition, no frayed wires", Category: "Environmental Safety"},
				{ID: "fsr_i_12", Description: "Fire extinguisher accessible with current inspection tag", Category: "Environmental Safety"},
				{ID: "fsr_i_13", Description: "Emergency equipment/supplies stored together and accessible", Category: "Emergency Preparedness"},
				{ID: "fsr_i_14", Description: "Emergency equipment checked monthly with documented log", Category: "Emergency Preparedness"},
				{ID: "fsr_i_15", Description: "Oxygen delivery system available (CE)", Category: "Emergency Preparedness"},
				{ID: "fsr_i_16", Description: "Nasal cannula or mask available", Category: "Emergency Preparedness"},
				{ID: "fsr_i_17", Description: "Ambu bag appropriately sized for patient population (CE)", Category: "Emergency Preparedness"},
				{ID: "fsr_i_18", Description: "Emergency medications for anaphylaxis available (CE)", Category: "Emergency Preparedness"},
				{ID: "fsr_i_19", Description: "Emergency medications for opioid overdose available", Category: "Emergency Preparedness"},
			},
		},
		{
			Key:  "section_ii_personnel",
			Name: "Personnel",
			Items: []ItemDef{
				{ID: "fsr_ii_1", Description: "Current California licenses for all providers (MD, NP, PA, RN, LVN)", Category: "Licensing & Identification"},
				{ID: "fsr_ii_2", Description: "All personnel wear identification badges (name and title)", Category: "Licensing & Identification"},
				{ID: "fsr_ii_3", Description: "Medical Assistants have documented training/diplomas/certifications", Category: "Qualifications & Training"},
				{ID: "fsr_ii_4", Description: "Medical Assistants have documented injection training", Category: "Qualifications & Training"},
				{ID: "fsr_ii_5", Description: "Only qualified personnel retrieve/prepare/administer medications (CE)", Category: "Qualifications & Training"},
				{ID: "fsr_ii_6", Description: "Licensed person verifies medications/vaccines before administration", Category: "Qualifications & Training"},
				{ID: "fsr_ii_7", Description: "Procedure exists to verify patient, medication, dosage, route before administration", Category: "Qualifications & Training"},
				{ID: "fsr_ii_8", Description: "Written Standardized Procedures (NPs) on-site, updated, signed", Category: "NPMP Scope & Supervision"},
				{ID: "fsr_ii_9", Description: "Written Practice Agreements (PAs) on-site, updated, signed", Category: "NPMP Scope & Supervision"},
				{ID: "fsr_ii_10", Description: "Supervising physician available (in person or electronic) when NPMP caring for patients", Category: "NPMP Scope & Supervision"},
				{ID: "fsr_ii_11", Description: "Annual training: Infection Control", Category: "Staff Safety Training"},
				{ID: "fsr_ii_12", Description: "Annual training: Bloodborne Pathogens", Category: "Staff Safety Training"},
				{ID: "fsr_ii_13", Description: "Annual training: Biohazardous Waste Handling", Category: "Staff Safety Training"},
			},
		},
		{
			Key:  "section_iii_office_mgmt",
			Name: "Office Management",
			Items: []ItemDef{
				{ID: "fsr_iii_1", Description: "Physician coverage available 24/7", Category: "Coverage & Access"},
				{ID: "fsr_iii_2", Description: "Clear after-hours care instructions available to patients", Category: "Coverage & Access"},
				{ID: "fsr_iii_3", Description: "Urgent appointments scheduled within 48 hours", Category: "Coverage & Access"},
				{ID: "fsr_iii_4", Description: "Non-urgent appointments scheduled within 10 business days", Category: "Coverage & Access"},
				{ID: "fsr_iii_5", Description: "Process for following up on missed/canceled appointments", Category: "Coverage & Access"},
				{ID: "fsr_iii_6", Description: "24-hour interpreter services available for non-English proficient members", Category: "Interpreter Services"},
				{ID: "fsr_iii_7", Description: "Use of interpreter services (or refusal) documented", Category: "Interpreter Services"},
				{ID: "fsr_iii_8", Description: "Systematic process for processing/tracking referrals", Category: "Referrals & Test Results"},
				{ID: "fsr_iii_9", Description: "Systematic process for processing/tracking diagnostic tests", Category: "Referrals & Test Results"},
				{ID: "fsr_iii_10", Description: "Documented process for practitioner review of referral reports (CE)", Category: "Referrals & Test Results"},
				{ID: "fsr_iii_11", Description: "Documented process for patient follow-up on referral reports", Category: "Referrals & Test Results"},
				{ID: "fsr_iii_12", Description: "Documented process for practitioner review of diagnostic test results", Category: "Referrals & Test Results"},
				{ID: "fsr_iii_13", Description: "Documented process for patient follow-up on test results", Category: "Referrals & Test Results"},
			},
		},
		{
			Key:  "section_iv_clinical",
			Name: "Clinical Services",
			Items: []ItemDef{
				{ID: "fsr_iv_1", Description: "All drugs, samples, prescription pads stored in locked space", Category: "Medication Security"},
				{ID: "fsr_iv_2", Description: "Hazardous substances stored in locked space", Category: "Medication Security"},
				{ID: "fsr_iv_3", Description: "Controlled substances stored separately with dose-by-dose log", Category: "Medication Security"},
				{ID: "fsr_iv_4", Description: "Refrigerator temps 36-46째F (2-8째C) with daily logs", Category: "Drug Storage & Handling"},
				{ID: "fsr_iv_5", Description: "Freezer temps 5째F (-15째C) or lower with daily logs", Category: "Drug Storage & Handling"},
				{ID: "fsr_iv_6", Description: "Written plan for vaccine protection during power outage/malfunction", Category: "Drug Storage & Handling"},
				{ID: "fsr_iv_7", Description: "No expired drugs on site", Category: "Drug Dispensing & Administration"},
				{ID: "fsr_iv_8", Description: "Procedure for checking expiration dates monthly (documented)", Category: "Drug Dispensing & Administration"},
				{ID: "fsr_iv_9", Description: "Only authorized persons dispense drugs (physician, pharmacist, NP, PA) (CE)", Category: "Drug Dispensing & Administration"},
				{ID: "fsr_iv_10", Description: "Drugs/vaccines prepared only immediately before administration (not pre-drawn) (CE)", Category: "Drug Dispensing & Administration"},
				{ID: "fsr_iv_11", Description: "Current Vaccine Information Sheets (VIS) provided before every immunization", Category: "Drug Dispensing & Administration"},
				{ID: "fsr_iv_12", Description: "Site utilizes California Immunization Registry (CAIR)", Category: "Drug Dispensing & Administration"},
			},
		},
		{
			Key:  "section_v_preventive",
			Name: "Preventive Services",
			Items: []ItemDef{
				{ID: "fsr_v_1", Description: "Exam tables available and in good repair", Category: "Examination Equipment"},
				{ID: "fsr_v_2", Description: "Exam lights available and functional", Category: "Examination Equipment"},
				{ID: "fsr_v_3", Description: "Stethoscopes available", Category: "Examination Equipment"},
				{ID: "fsr_v_4", Description: "Sphygmomanometers with various cuff sizes (child, adult, obese)", Category: "Examination Equipment"},
				{ID: "fsr_v_5", Description: "Thermometers available", Category: "Examination Equipment"},
				{ID: "fsr_v_6", Description: "Infant scale available", Category: "Examination Equipment"},
				{ID: "fsr_v_7", Description: "Standing scale available", Category: "Examination Equipment"},
				{ID: "fsr_v_8", Description: "Device for measuring stature (height/length) available", Category: "Examination Equipment"},
				{ID: "fsr_v_9", Description: "Device for measuring head circumference available", Category: "Examination Equipment"},
				{ID: "fsr_v_10", Description: "Literate eye chart (e.g., Snellen) available", Category: "Vision Testing"},
				{ID: "fsr_v_11", Description: "Illiterate eye chart (e.g., LEA or HOTV) available", Category: "Vision Testing"},
				{ID: "fsr_v_12", Description: "Eye occluder available", Category: "Vision Testing"},
				{ID: "fsr_v_13", Description: "Pure tone, air conduction audiometer available", Category: "Hearing Testing"},
			},
		},
		{
			Key:  "section_vi_infection",
			Name: "Infection Control",
			Items: []ItemDef{
				{ID: "fsr_vi_1", Description: "Hand washing facilities with soap and running water in/adjacent to exam areas", Category: "Standard Precautions"},
				{ID: "fsr_vi_2", Description: "PPE (gloves, gowns, face/eye protection, masks) readily available (CE)", Category: "OSHA Compliance"},
				{ID: "fsr_vi_3", Description: "Blood/OPIM/regulated wastes in leak-proof, labeled containers (red biohazard bags) (CE)", Category: "OSHA Compliance"},
				{ID: "fsr_vi_4", Description: "Needlestick safety precautions practiced (CE)", Category: "OSHA Compliance"},
				{ID: "fsr_vi_5", Description: "Exclusive use of ESIP devices (CE)", Category: "OSHA Compliance"},
				{ID: "fsr_vi_6", Description: "Sharps containers not overfilled, located near use (CE)", Category: "OSHA Compliance"},
				{ID: "fsr_vi_7", Description: "Regulated medical waste transported by registered hazardous waste hauler", Category: "OSHA Compliance"},
				{ID: "fsr_vi_8", Description: "Written schedule for surface decontamination in place", Category: "Surface Decontamination"},
				{ID: "fsr_vi_9", Description: "EPA-approved disinfectant used for surface decontamination", Category: "Surface Decontamination"},
				{ID: "fsr_vi_10", Description: "Cold sterilization: Staff can demonstrate process (if used)", Category: "Instrument Sterilization"},
				{ID: "fsr_vi_11", Description: "Cold sterilization: PPE available (if used) (CE)", Category: "Instrument Sterilization"},
				{ID: "fsr_vi_12", Description: "Cold sterilization: Spill cleanup instructions available (CE)", Category: "Instrument Sterilization"},
				{ID: "fsr_vi_13", Description: "Cold sterilization: Instrument confirmed heat-sensitive by manufacturer", Category: "Instrument Sterilization"},
			},
		},
	},
}
