package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusconnect/portal-bff/internal/domain"
	"github.com/campusconnect/portal-bff/internal/upstream"
)

func TestMatchEvent(t *testing.T) {
	ev := domain.Event{
		Title:            "Annual Hackathon",
		ShortDescription: "48 hours of building",
		Category:         domain.EventTechnical,
		Tags:             []string{"coding", "teams"},
	}

	assert.True(t, MatchEvent(ev, "", nil))
	assert.True(t, MatchEvent(ev, "hackathon", nil))
	assert.True(t, MatchEvent(ev, "CODING", nil))
	assert.False(t, MatchEvent(ev, "cricket", nil))
	assert.True(t, MatchEvent(ev, "", upstream.Filters{"category": "technical"}))
	assert.False(t, MatchEvent(ev, "", upstream.Filters{"category": "sports"}))
}

func TestMatchDemandStatusAndCategory(t *testing.T) {
	d := domain.Demand{
		Title:    "Fix hostel wifi",
		Status:   domain.StatusPending,
		Category: domain.DemandTechnology,
	}

	assert.True(t, MatchDemand(d, "", upstream.Filters{"status": "pending", "category": "technology"}))
	assert.False(t, MatchDemand(d, "", upstream.Filters{"status": "approved"}))
	assert.True(t, MatchDemand(d, "wifi", nil))
}

// Multi-select chips arrive as comma-separated sets; membership in any
// element passes.
func TestMatchPyqMultiSelect(t *testing.T) {
	p := domain.Pyq{
		SubjectName: "Data Structures",
		Year:        2023,
		Semester:    4,
		Type:        domain.PaperEndSem,
		Branch:      domain.BranchCSE,
	}

	assert.True(t, MatchPyq(p, "", upstream.Filters{"year": "2022,2023"}))
	assert.False(t, MatchPyq(p, "", upstream.Filters{"year": "2021,2022"}))
	assert.True(t, MatchPyq(p, "", upstream.Filters{"branch": "cse,ece", "type": "end-sem"}))
	assert.True(t, MatchPyq(p, "", upstream.Filters{"semester": "4"}))
	assert.True(t, MatchPyq(p, "structures", nil))
	assert.False(t, MatchPyq(p, "thermo", nil))
}

func TestMatchPyqEmptyFilterNeverNarrows(t *testing.T) {
	p := domain.Pyq{Year: 2020, Branch: domain.BranchCivil}
	assert.True(t, MatchPyq(p, "", upstream.Filters{"year": "", "branch": ""}))
	assert.True(t, MatchPyq(p, "", upstream.Filters{}))
}

func TestMatchNoteSubjectSubstring(t *testing.T) {
	n := domain.Note{
		Title:    "Thermodynamics (ME301)",
		Subject:  "Thermodynamics",
		Branch:   domain.BranchMech,
		Semester: 3,
	}

	assert.True(t, MatchNote(n, "", upstream.Filters{"subject": "thermo"}))
	assert.False(t, MatchNote(n, "", upstream.Filters{"subject": "fluid"}))
	assert.True(t, MatchNote(n, "ME301", nil))
	assert.True(t, MatchNote(n, "", upstream.Filters{"branch": "mech", "semester": "3"}))
}

func TestMatchHostelAndFestSingleSelect(t *testing.T) {
	h := domain.Hostel{Name: "Kaveri Hostel", Type: domain.HostelFemale}
	assert.True(t, MatchHostel(h, "", upstream.Filters{"type": "female"}))
	assert.False(t, MatchHostel(h, "", upstream.Filters{"type": "male"}))
	assert.True(t, MatchHostel(h, "kaveri", nil))

	f := domain.Fest{Name: "TechFest", Type: domain.FestTechnical}
	assert.True(t, MatchFest(f, "", upstream.Filters{"type": "technical"}))
	assert.False(t, MatchFest(f, "", upstream.Filters{"type": "sports"}))
}

func TestMatchGalleryImage(t *testing.T) {
	g := domain.GalleryImage{
		Title:    "Convocation 2024",
		Category: domain.GalleryAcademic,
		Tags:     []string{"graduation"},
	}

	assert.True(t, MatchGalleryImage(g, "convocation", nil))
	assert.True(t, MatchGalleryImage(g, "graduation", nil))
	assert.True(t, MatchGalleryImage(g, "", upstream.Filters{"category": "academic"}))
	assert.False(t, MatchGalleryImage(g, "", upstream.Filters{"category": "sports"}))
}
