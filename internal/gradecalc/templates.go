package gradecalc

// TemplateSubject is one subject in a scheme/branch/semester template.
type TemplateSubject struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Credits int    `json:"credits"`
}

// subjectTemplates indexes scheme → branch → semester → subjects. The
// tables mirror the published VTU credit structure for the branches the
// portal covers.
var subjectTemplates = map[string]map[string]map[int][]TemplateSubject{
	"2022": {
		"cse": {
			3: {
				{Name: "Mathematics for Computer Science", Code: "BCS301", Credits: 4},
				{Name: "Digital Design and Computer Organization", Code: "BCS302", Credits: 4},
				{Name: "Operating Systems", Code: "BCS303", Credits: 4},
				{Name: "Data Structures and Applications", Code: "BCS304", Credits: 3},
				{Name: "Data Structures Lab", Code: "BCSL305", Credits: 1},
				{Name: "Object Oriented Programming with Java", Code: "BCS306A", Credits: 3},
				{Name: "Social Connect and Responsibility", Code: "BSCK307", Credits: 1},
			},
			4: {
				{Name: "Analysis and Design of Algorithms", Code: "BCS401", Credits: 3},
				{Name: "Microcontrollers", Code: "BCS402", Credits: 4},
				{Name: "Database Management Systems", Code: "BCS403", Credits: 4},
				{Name: "Analysis and Design of Algorithms Lab", Code: "BCSL404", Credits: 1},
				{Name: "Discrete Mathematical Structures", Code: "BCS405A", Credits: 3},
				{Name: "Biology for Computer Engineers", Code: "BBOC407", Credits: 2},
				{Name: "Universal Human Values", Code: "BUHK408", Credits: 1},
			},
		},
		"ece": {
			3: {
				{Name: "Mathematics for EC Engineering", Code: "BMATEC301", Credits: 4},
				{Name: "Digital System Design", Code: "BEC302", Credits: 4},
				{Name: "Basic Signal Processing", Code: "BEC303", Credits: 4},
				{Name: "Electronic Principles and Circuits", Code: "BEC304", Credits: 3},
				{Name: "Analog and Digital Systems Design Lab", Code: "BECL305", Credits: 1},
			},
		},
	},
}

// SubjectTemplate returns the fixed subject list for a scheme, branch
// and semester. The boolean reports whether the combination has data;
// callers surface a notice and an empty row list when it does not.
func SubjectTemplate(scheme, branch string, semester int) ([]TemplateSubject, bool) {
	branches, ok := subjectTemplates[scheme]
	if !ok {
		return nil, false
	}
	semesters, ok := branches[branch]
	if !ok {
		return nil, false
	}
	subjects, ok := semesters[semester]
	if !ok {
		return nil, false
	}
	return subjects, true
}

// RowsFromTemplate seeds one grade row per template subject with every
// grade defaulted to "O".
func RowsFromTemplate(subjects []TemplateSubject) []GradeRow {
	rows := make([]GradeRow, 0, len(subjects))
	for _, s := range subjects {
		rows = append(rows, GradeRow{Subject: s.Name, Credits: s.Credits, Grade: "O"})
	}
	return rows
}
