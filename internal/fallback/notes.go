package fallback

import "github.com/campusconnect/portal-bff/internal/domain"

var Notes = []domain.Note{
	{
		ID:          "fallback-note-1",
		Title:       "Operating Systems (CS301)",
		Author:      "A. Sharma",
		Branch:      domain.BranchCSE,
		Semester:    5,
		Subject:     "Operating Systems",
		SubjectCode: "CS301",
		FileURL:     "/files/notes/cs301-os.pdf",
		UploadDate:  "2024-09-14",
		Rating:      4.6,
		Views:       812,
		Downloads:   402,
		Likes:       87,
		Pages:       64,
		FileSize:    "3.4 MB",
		Tags:        []string{"operating", "systems", "notes"},
	},
	{
		ID:          "fallback-note-2",
		Title:       "Digital Electronics (EC202)",
		Author:      "R. Iyer",
		Branch:      domain.BranchECE,
		Semester:    3,
		Subject:     "Digital Electronics",
		SubjectCode: "EC202",
		FileURL:     "/files/notes/ec202-digital.pdf",
		UploadDate:  "2024-08-02",
		Rating:      4.2,
		Views:       455,
		Downloads:   230,
		Likes:       41,
		Pages:       48,
		FileSize:    "2.1 MB",
		Tags:        []string{"digital", "electronics", "notes"},
	},
	{
		ID:          "fallback-note-3",
		Title:       "Structural Analysis (CE305)",
		Author:      "P. Nair",
		Branch:      domain.BranchCivil,
		Semester:    5,
		Subject:     "Structural Analysis",
		SubjectCode: "CE305",
		FileURL:     "/files/notes/ce305-structures.pdf",
		UploadDate:  "2024-10-21",
		Rating:      4.8,
		Views:       368,
		Downloads:   198,
		Likes:       56,
		Pages:       72,
		FileSize:    "4.0 MB",
		Tags:        []string{"structural", "analysis", "civil"},
	},
}
