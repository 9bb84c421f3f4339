package fields

// QPR returns the registry for the quarterly progress report form. The
// inventory and ordering mirror the report sections: part 1 covers the
// office header and sections 1-4, part 2 sections 5-8, part 3 the committee
// and achievement sections.
func QPR() *Registry {
	return NewRegistry([]Descriptor{
		// Office header (core fields).
		{Key: KeyOfficeName, Label: "Office Name", Section: 1},
		{Key: KeyOfficeCode, Label: "Office Code", Sensitive: true, Section: 1},
		{Key: KeyRegion, Label: "Region", Section: 1},
		{Key: KeyQuarter, Label: "Quarter", Section: 1},

		// Contact and period details.
		{Key: "year", Label: "Fiscal Year", Section: 1},
		{Key: "phone", Label: "Phone", Sensitive: true, Section: 1},
		{Key: "email", Label: "Email", Sensitive: true, Section: 1},

		// Section 1: files sent to the minister.
		{Key: "s1_total", Label: "Total Files", Section: 1},
		{Key: "s1_hindi", Label: "Files in Hindi", Section: 1},

		// Section 2: secretary-level meetings and papers.
		{Key: "s2_meetings", Label: "Meetings Held", Section: 1},
		{Key: "s2_minutes", Label: "Minutes in Hindi", Section: 1},
		{Key: "s2_papers_total", Label: "Total Papers", Section: 1},
		{Key: "s2_papers_hindi", Label: "Papers in Hindi", Section: 1},

		// Section 3: documents under the Official Languages Act 3(3).
		{Key: "s3_total", Label: "Total Documents", Section: 1},
		{Key: "s3_bilingual", Label: "Bilingual Documents", Section: 1},
		{Key: "s3_english", Label: "English-only Documents", Section: 1},
		{Key: "s3_hindi_only", Label: "Hindi-only Documents", Section: 1},

		// Section 4: letters received in Hindi.
		{Key: "s4_total", Label: "Letters Received in Hindi", Section: 1},
		{Key: "s4_no_reply", Label: "Letters Without Reply", Section: 1},
		{Key: "s4_replied_hindi", Label: "Replied in Hindi", Section: 1},
		{Key: "s4_replied_eng", Label: "Replied in English", Section: 1},

		// Section 5: English letters replied in Hindi (region A).
		{Key: "s5_total", Label: "English Letters Received", Section: 2},
		{Key: "s5_hindi", Label: "Replied in Hindi", Section: 2},
		{Key: "s5_english", Label: "Replied in English", Section: 2},
		{Key: "s5_noreply", Label: "No Reply", Section: 2},

		// Section 6: letters issued per region.
		{Key: "s6_a_hindi", Label: "Region A Hindi/Bilingual", Section: 2},
		{Key: "s6_a_eng", Label: "Region A English-only", Section: 2},
		{Key: "s6_a_total", Label: "Region A Total", Section: 2},
		{Key: "s6_b_hindi", Label: "Region B Hindi/Bilingual", Section: 2},
		{Key: "s6_b_eng", Label: "Region B English-only", Section: 2},
		{Key: "s6_b_total", Label: "Region B Total", Section: 2},
		{Key: "s6_c_hindi", Label: "Region C Hindi/Bilingual", Section: 2},
		{Key: "s6_c_eng", Label: "Region C English-only", Section: 2},
		{Key: "s6_c_total", Label: "Region C Total", Section: 2},

		// Section 7: notings on files during the quarter.
		{Key: "s7_hindi", Label: "Noting Pages in Hindi", Section: 2},
		{Key: "s7_eng", Label: "Noting Pages in English", Section: 2},
		{Key: "s7_total", Label: "Total Noting Pages", Section: 2},
		{Key: "s7_eoffice", Label: "e-Office Notings", Section: 2},

		// Section 8: Hindi workshops.
		{Key: "s8_workshops", Label: "Full-day Workshops", Section: 2},
		{Key: "s8_officers", Label: "Officers Trained", Section: 2},
		{Key: "s8_employees", Label: "Employees Trained", Section: 2},

		// Section 9: implementation committee meeting.
		{Key: "s9_date", Label: "Committee Meeting Date", Section: 3},
		{Key: "s9_sub_committees", Label: "Sub-committees", Section: 3},
		{Key: "s9_meetings_count", Label: "Meetings Organised", Section: 3},
		{Key: "s9_agenda_hindi", Label: "Agenda in Hindi", Section: 3},

		// Section 10: Hindi advisory committee.
		{Key: "s10_date", Label: "Advisory Committee Meeting Date", Section: 3},

		// Section 11: specific achievements (free text, hint only).
		{Key: "s12_1", Hint: "Innovative work done in Hindi", Section: 3},
		{Key: "s12_2", Hint: "Special events organised", Section: 3},
		{Key: "s12_3", Hint: "Works done through Hindi medium", Section: 3},
	})
}
