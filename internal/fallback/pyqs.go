package fallback

import "github.com/campusconnect/portal-bff/internal/domain"

var Pyqs = []domain.Pyq{
	{
		ID:          "fallback-pyq-1",
		SubjectName: "Data Structures",
		SubjectCode: "CS201",
		Year:        2024,
		Semester:    3,
		Type:        domain.PaperEndSem,
		Branch:      domain.BranchCSE,
		Department:  "Computer Science",
		FileURL:     "/files/pyqs/cs201-2024-endsem.pdf",
		Pages:       8,
		Downloads:   341,
		FileSize:    "1.2 MB",
		Tags:        []string{"data", "structures", "end-sem"},
	},
	{
		ID:          "fallback-pyq-2",
		SubjectName: "Signals and Systems",
		SubjectCode: "EC204",
		Year:        2023,
		Semester:    4,
		Type:        domain.PaperMidSem,
		Branch:      domain.BranchECE,
		Department:  "Electronics and Communication",
		FileURL:     "/files/pyqs/ec204-2023-midsem.pdf",
		Pages:       4,
		Downloads:   189,
		FileSize:    "0.8 MB",
		Tags:        []string{"signals", "systems", "mid-sem"},
	},
	{
		ID:          "fallback-pyq-3",
		SubjectName: "Engineering Thermodynamics",
		SubjectCode: "ME202",
		Year:        2024,
		Semester:    3,
		Type:        domain.PaperBackPaper,
		Branch:      domain.BranchMech,
		Department:  "Mechanical Engineering",
		FileURL:     "/files/pyqs/me202-2024-back.pdf",
		Pages:       6,
		Downloads:   122,
		FileSize:    "1.0 MB",
		Tags:        []string{"thermodynamics", "back-paper", "mechanical"},
	},
}
