package curriculum

// Static curriculum tables. Extending coverage to a new branch or
// semester means appending here; nothing else changes.

var categories = []Category{
	{ID: "cse-ise", Name: "CSE / ISE", MatchLabel: "CSE", Semesters: []int{3, 4, 5, 6, 7, 8}},
	{ID: "ece", Name: "ECE", MatchLabel: "ECE", Semesters: []int{3, 4, 5, 6, 7, 8}},
	{ID: "eee", Name: "EEE", MatchLabel: "EEE", Semesters: []int{3, 4, 5, 6, 7, 8}},
	{ID: "civil", Name: "Civil", MatchLabel: "Civil", Semesters: []int{3, 4, 5, 6, 7, 8}},
	{ID: "mech", Name: "Mechanical", MatchLabel: "Mech", Semesters: []int{3, 4, 5, 6, 7, 8}},
}

var subjectsByCategory = map[string]map[int][]Subject{
	"cse-ise": {
		3: {
			{Code: "BCS301", Name: "Mathematics for CSE", ShortName: "Maths"},
			{Code: "BCS302", Name: "Data Structures and Applications", ShortName: "DSA"},
			{Code: "BCS303", Name: "Digital Design and Computer Organization", ShortName: "DDCO"},
			{Code: "BCS304", Name: "Operating Systems", ShortName: "OS"},
			{Code: "BCS305", Name: "Object Oriented Programming with C++ and Java", ShortName: "OOP"},
			{Code: "BCSL306", Name: "Data Structures Lab", ShortName: "DS Lab"},
			{Code: "BCS307", Name: "Universal Human Values", ShortName: "UHV"},
		},
		4: {
			{Code: "BCS401", Name: "Mathematical Foundation for Computing", ShortName: "MFC"},
			{Code: "BCS402", Name: "Design and Analysis of Algorithms", ShortName: "DAA"},
			{Code: "BCS403", Name: "Database Management Systems", ShortName: "DBMS"},
			{Code: "BCS404", Name: "Computer Organization and Architecture", ShortName: "COA"},
			{Code: "BCS405", Name: "Software Engineering", ShortName: "SE"},
			{Code: "BCSL406", Name: "Database Management Systems Lab", ShortName: "DBMS Lab"},
			{Code: "BCS407", Name: "Constitution of India and Professional Ethics", ShortName: "CIPE"},
		},
		5: {
			{Code: "BCS501", Name: "Computer Networks", ShortName: "CN"},
			{Code: "BCS502", Name: "Theory of Computation", ShortName: "TOC"},
			{Code: "BCS503", Name: "Artificial Intelligence", ShortName: "AI"},
			{Code: "BCS504", Name: "Web Technologies", ShortName: "WT"},
			{Code: "BCSL505", Name: "Computer Networks Lab", ShortName: "CN Lab"},
		},
		6: {
			{Code: "BCS601", Name: "System Software and Compiler Design", ShortName: "SSCD"},
			{Code: "BCS602", Name: "Computer Graphics", ShortName: "CG"},
			{Code: "BCS603", Name: "Machine Learning", ShortName: "ML"},
			{Code: "BCS604", Name: "Cryptography and Network Security", ShortName: "CNS"},
			{Code: "BCSL605", Name: "System Software Lab", ShortName: "SS Lab"},
		},
		7: {
			{Code: "BCS701", Name: "Big Data Analytics", ShortName: "BDA"},
			{Code: "BCS702", Name: "Cloud Computing", ShortName: "CC"},
			{Code: "BCS703", Name: "Internet of Things", ShortName: "IoT"},
			{Code: "BCS704", Name: "Project Phase 1", ShortName: "Project 1"},
		},
		8: {
			{Code: "BCS801", Name: "Deep Learning", ShortName: "DL"},
			{Code: "BCS802", Name: "Blockchain Technology", ShortName: "BT"},
			{Code: "BCS803", Name: "Project Phase 2", ShortName: "Project 2"},
			{Code: "BCS804", Name: "Internship", ShortName: "Internship"},
		},
	},
	"ece": {
		3: {
			{Code: "BEC301", Name: "Mathematics for EC", ShortName: "Maths"},
			{Code: "BEC302", Name: "Network Analysis", ShortName: "NA"},
			{Code: "BEC303", Name: "Electronic Devices", ShortName: "ED"},
			{Code: "BEC304", Name: "Digital Electronics", ShortName: "DE"},
			{Code: "BEC305", Name: "Signals and Systems", ShortName: "S&S"},
		},
		4: {
			{Code: "BEC401", Name: "Analog Electronics", ShortName: "AE"},
			{Code: "BEC402", Name: "Control Systems", ShortName: "CS"},
			{Code: "BEC403", Name: "Microprocessors", ShortName: "MP"},
			{Code: "BEC404", Name: "Communication Systems", ShortName: "Comm"},
		},
	},
	"eee": {
		3: {
			{Code: "BEE301", Name: "Mathematics for EE", ShortName: "Maths"},
			{Code: "BEE302", Name: "Electric Circuit Analysis", ShortName: "ECA"},
			{Code: "BEE303", Name: "Electrical Machines I", ShortName: "EM-I"},
			{Code: "BEE304", Name: "Electronic Devices", ShortName: "ED"},
		},
	},
	"civil": {
		3: {
			{Code: "BCV301", Name: "Engineering Mathematics III", ShortName: "Maths"},
			{Code: "BCV302", Name: "Strength of Materials", ShortName: "SOM"},
			{Code: "BCV303", Name: "Fluid Mechanics", ShortName: "FM"},
			{Code: "BCV304", Name: "Surveying", ShortName: "Survey"},
		},
	},
	"mech": {
		3: {
			{Code: "BME301", Name: "Engineering Mathematics III", ShortName: "Maths"},
			{Code: "BME302", Name: "Materials Science", ShortName: "MS"},
			{Code: "BME303", Name: "Basic Thermodynamics", ShortName: "TD"},
			{Code: "BME304", Name: "Mechanics of Materials", ShortName: "MOM"},
		},
	},
}

var entriesByCode = map[string]Entry{
	"BCS301": {
		Name:     "Mathematics for CSE",
		Code:     "BCS301",
		Semester: 3,
		Groups: []NoteGroup{
			{
				Title:  "Notes 1 — SVIT",
				Source: "SVIT College",
				Type:   TypeNotes,
				URL:    ComingSoonURL,
				Modules: []Module{
					{Name: "Module 1", URL: "/notes/CSE/Sem3/MATHS/Module_1_SVIT.pdf"},
					{Name: "Module 2", URL: "/notes/CSE/Sem3/MATHS/Module_2_SVIT.pdf"},
					{Name: "Module 3", URL: "/notes/CSE/Sem3/MATHS/Module_3_SVIT.pdf"},
					{Name: "Module 4", URL: "/notes/CSE/Sem3/MATHS/Module_4_SVIT.pdf"},
					{Name: "Module 5", URL: "/notes/CSE/Sem3/MATHS/Module_5_SVIT.pdf"},
				},
			},
			{
				Title:  "Notes 2 — RNSIT",
				Source: "RNSIT College",
				Type:   TypeNotes,
				URL:    ComingSoonURL,
				Modules: []Module{
					{Name: "Module 1", URL: "/notes/CSE/Sem3/MATHS/Module_1_RNSIT.pdf"},
					{Name: "Module 2", URL: "/notes/CSE/Sem3/MATHS/Module_2_RNSIT.pdf"},
					{Name: "Module 3", URL: "/notes/CSE/Sem3/MATHS/Module_3_RNSIT.pdf"},
					{Name: "Module 4", URL: "/notes/CSE/Sem3/MATHS/Module_4_RNSIT.pdf"},
					{Name: "Module 5", URL: "/notes/CSE/Sem3/MATHS/Module_5_RNSIT.pdf"},
				},
			},
			{
				Title:  "Notes 3 — SJCIT",
				Source: "SJCIT College",
				Type:   TypeNotes,
				URL:    "/notes/CSE/Sem3/MATHS/Complete_Notes_SJCIT.pdf",
			},
			{
				Title:  "Notes 4 — ATME",
				Source: "ATME College",
				Type:   TypeNotes,
				URL:    "/notes/CSE/Sem3/MATHS/Complete_Notes_ATME.pdf",
			},
			{
				Title:  "Textbooks",
				Source: "Reference Books",
				Type:   TypeTextbook,
				URL:    "/notes/CSE/Sem3/MATHS/Textbook_1.pdf",
			},
			{
				Title:  "Model QP with Solution",
				Source: "VTU Model Papers",
				Type:   TypeQP,
				URL:    ComingSoonURL,
				Modules: []Module{
					{Name: "Model QP 1", URL: "/notes/CSE/Sem3/MATHS/Model_QP_1.pdf"},
					{Name: "Model QP 2", URL: "/notes/CSE/Sem3/MATHS/Model_QP_2.pdf"},
					{Name: "BIET Model QP", URL: "/notes/CSE/Sem3/MATHS/BIET_Model_QP.pdf"},
					{Name: "Question Bank", URL: "/notes/CSE/Sem3/MATHS/Question_Bank.pdf"},
				},
			},
		},
	},
	"BCS302": {
		Name:     "Data Structures and Applications",
		Code:     "BCS302",
		Semester: 3,
		Groups: []NoteGroup{
			{
				Title:  "Notes 1 — SVIT",
				Source: "SVIT College",
				Type:   TypeNotes,
				URL:    ComingSoonURL,
				Modules: []Module{
					{Name: "Module 1", URL: "/notes/CSE/Sem3/DSA/Module_1_SVIT.pdf"},
					{Name: "Module 2", URL: "/notes/CSE/Sem3/DSA/Module_2_SVIT.pdf"},
					{Name: "Module 3", URL: "/notes/CSE/Sem3/DSA/Module_3_SVIT.pdf"},
					{Name: "Module 4", URL: "/notes/CSE/Sem3/DSA/Module_4_SVIT.pdf"},
					{Name: "Module 5", URL: "/notes/CSE/Sem3/DSA/Module_5_SVIT.pdf"},
				},
			},
			{
				Title:  "Notes 2 — RNSIT",
				Source: "RNSIT College",
				Type:   TypeNotes,
				URL:    ComingSoonURL,
				Modules: []Module{
					{Name: "Module 1", URL: "/notes/CSE/Sem3/DSA/Module_1_RNSIT.pdf"},
					{Name: "Module 2", URL: "/notes/CSE/Sem3/DSA/Module_2_RNSIT.pdf"},
					{Name: "Module 3", URL: "/notes/CSE/Sem3/DSA/Module_3_RNSIT.pdf"},
					{Name: "Module 4", URL: "/notes/CSE/Sem3/DSA/Module_4_RNSIT.pdf"},
				},
			},
			{
				Title:  "Notes 3 — DSCE",
				Source: "DSCE College",
				Type:   TypeNotes,
				URL:    ComingSoonURL,
				Modules: []Module{
					{Name: "Module 1", URL: "/notes/CSE/Sem3/DSA/Module_1_DSCE.pdf"},
					{Name: "Module 2", URL: "/notes/CSE/Sem3/DSA/Module_2_DSCE.pdf"},
					{Name: "Module 3", URL: "/notes/CSE/Sem3/DSA/Module_3_DSCE.pdf"},
					{Name: "Module 4", URL: "/notes/CSE/Sem3/DSA/Module_4_DSCE.pdf"},
					{Name: "Module 5", URL: "/notes/CSE/Sem3/DSA/Module_5_DSCE.pdf"},
				},
			},
			{
				Title:  "Model QP with Solution",
				Source: "VTU Model Papers",
				Type:   TypeQP,
				URL:    ComingSoonURL,
				Modules: []Module{
					{Name: "Module 1 question bank", URL: "/notes/CSE/Sem3/DSA/DS_M1_Question_Bank.pdf"},
					{Name: "Module 2 question bank", URL: "/notes/CSE/Sem3/DSA/DS_M2_Question_Bank.pdf"},
					{Name: "Module 3 question bank", URL: "/notes/CSE/Sem3/DSA/DS_M3_Question_Bank.pdf"},
					{Name: "Module 4 question bank", URL: "/notes/CSE/Sem3/DSA/DS_M4_Question_Bank.pdf"},
				},
			},
		},
	},
	"BCS303": {
		Name:     "Digital Design and Computer Organization",
		Code:     "BCS303",
		Semester: 3,
		Groups: []NoteGroup{
			{
				Title:  "Notes 1",
				Source: "SVIT College",
				Type:   TypeNotes,
				URL:    ComingSoonURL,
				Modules: []Module{
					{Name: "Module 1", URL: "/notes/CSE/Sem3/DDCO/Module_1_SVIT.pdf"},
					{Name: "Module 2", URL: "/notes/CSE/Sem3/DDCO/Module_2_SVIT.pdf"},
					{Name: "Module 3", URL: "/notes/CSE/Sem3/DDCO/Module_3_SVIT.pdf"},
					{Name: "Module 4", URL: "/notes/CSE/Sem3/DDCO/Module_4_SVIT.pdf"},
					{Name: "Module 5", URL: "/notes/CSE/Sem3/DDCO/Module_5_SVIT.pdf"},
				},
			},
			{
				Title:  "Notes 2",
				Source: "RNSIT College",
				Type:   TypeNotes,
				URL:    ComingSoonURL,
				Modules: []Module{
					{Name: "Module 1", URL: "/notes/CSE/Sem3/DDCO/Module_1_RNSIT.pdf"},
					{Name: "Module 2", URL: "/notes/CSE/Sem3/DDCO/Module_2_RNSIT.pdf"},
					{Name: "Module 3", URL: "/notes/CSE/Sem3/DDCO/Module_3_RNSIT.pdf"},
					{Name: "Module 4", URL: "/notes/CSE/Sem3/DDCO/Module_4_RNSIT.pdf"},
					{Name: "Module 5", URL: "/notes/CSE/Sem3/DDCO/Module_5_RNSIT.pdf"},
				},
			},
			{
				Title:  "Model QP with Solution",
				Source: "VTU Model Papers",
				Type:   TypeQP,
				URL:    ComingSoonURL,
				Modules: []Module{
					{Name: "Module Wise QB", URL: "/notes/CSE/Sem3/DDCO/Module_Wise_QB.pdf"},
					{Name: "QB With Solutions", URL: "/notes/CSE/Sem3/DDCO/QB_With_Solutions.pdf"},
				},
			},
		},
	},
	"BCS304": {
		Name:     "Operating Systems",
		Code:     "BCS304",
		Semester: 3,
		Groups: []NoteGroup{
			{Title: "Notes 1", Source: "SVIT College", Type: TypeNotes, URL: "/notes/CSE/Sem3/OS/All_Modules_SVIT.pdf"},
			{Title: "Notes 2", Source: "RNSIT College", Type: TypeNotes, URL: ComingSoonURL},
			{Title: "Textbooks", Source: "Reference Books", Type: TypeTextbook, URL: ComingSoonURL},
			{Title: "Model QP with Solution", Source: "VTU Model Papers", Type: TypeQP, URL: ComingSoonURL},
		},
	},
	"BCS305": {
		Name:     "Object Oriented Programming with C++ and Java",
		Code:     "BCS305",
		Semester: 3,
		Groups: []NoteGroup{
			{Title: "Notes 1 — SVIT", Source: "SVIT College", Type: TypeNotes, URL: ComingSoonURL},
			{Title: "Notes 2 — RNSIT", Source: "RNSIT College", Type: TypeNotes, URL: ComingSoonURL},
			{Title: "Textbooks", Source: "Reference Books", Type: TypeTextbook, URL: ComingSoonURL},
			{Title: "Model QP with Solution", Source: "VTU Model Papers", Type: TypeQP, URL: ComingSoonURL},
		},
	},
	"BCSL306": {
		Name:     "Data Structures Lab",
		Code:     "BCSL306",
		Semester: 3,
		Groups: []NoteGroup{
			{Title: "Lab Manual", Source: "Official Lab Manual", Type: TypeNotes, URL: ComingSoonURL},
			{Title: "Lab Programs with Output", Source: "Complete Programs", Type: TypeNotes, URL: ComingSoonURL},
			{Title: "Viva Questions", Source: "Lab Viva Q&A", Type: TypeQP, URL: ComingSoonURL},
		},
	},
	"BCS307": {
		Name:     "Universal Human Values",
		Code:     "BCS307",
		Semester: 3,
		Groups: []NoteGroup{
			{Title: "Notes 1 — Complete", Source: "All Modules", Type: TypeNotes, URL: ComingSoonURL},
			{Title: "Important Questions", Source: "Frequently Asked", Type: TypeQP, URL: ComingSoonURL},
			{Title: "Model QP with Solution", Source: "VTU Model Papers", Type: TypeQP, URL: ComingSoonURL},
		},
	},
}

// First-year subject lists are identical across cycles today; the
// nesting keeps room for the cycles to diverge per scheme.
var firstYearCommon = []Subject{
	{Name: "Mathematics-I for CSE", Code: "BMATS101"},
	{Name: "Mathematics-II for CSE", Code: "BMATS201"},
	{Name: "Principles of Programming using C", Code: "BPOPS103"},
	{Name: "Applied Physics for CSE", Code: "BPHYS102"},
	{Name: "Chemistry for CSE", Code: "BCHES202"},
	{Name: "Communicative English", Code: "BENGK206"},
	{Name: "Intro to Electrical Engineering", Code: "BESCK104B"},
	{Name: "Intro to Electronics & Communication", Code: "BESCK104C"},
	{Name: "Intro to Python Programming", Code: "BPLCK105B"},
	{Name: "Indian Constitution", Code: "BICOK207"},
	{Name: "Innovation & Design Thinking", Code: "BIDTK258"},
	{Name: "Professional Writing Skills in English", Code: "BPWSK106"},
	{Name: "Samskrutika Kannada", Code: "BKSKK107"},
	{Name: "Scientific Foundations for Health", Code: "BSFHK158"},
}

var firstYearSubjects = map[string]map[string][]Subject{
	"2022": {
		"p-cycle": firstYearCommon,
		"c-cycle": firstYearCommon,
	},
	"2025": {
		"p-cycle": firstYearCommon,
		"c-cycle": firstYearCommon,
	},
}
