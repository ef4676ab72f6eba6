package controller

import (
	"strconv"
	"strings"

	"github.com/campusconnect/portal-bff/internal/domain"
	"github.com/campusconnect/portal-bff/internal/upstream"
)

// Client-side filter predicates, one per resource. These re-apply the
// page's search text and active chips to whatever the backend returned.
//
// Filter values for multi-select chips (pyqs, notes) arrive as
// comma-separated sets; hostels, fests and gallery use single-select
// values. An empty filter value never narrows.

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// inSet reports whether value is one of the comma-separated candidates.
func inSet(value, set string) bool {
	if set == "" {
		return true
	}
	for _, s := range strings.Split(set, ",") {
		if strings.EqualFold(strings.TrimSpace(s), value) {
			return true
		}
	}
	return false
}

func anyTag(tags []string, q string) bool {
	for _, t := range tags {
		if containsFold(t, q) {
			return true
		}
	}
	return false
}

func MatchEvent(e domain.Event, q string, f upstream.Filters) bool {
	if q != "" && !containsFold(e.Title, q) && !containsFold(e.ShortDescription, q) && !anyTag(e.Tags, q) {
		return false
	}
	return inSet(string(e.Category), f["category"])
}

func MatchDemand(d domain.Demand, q string, f upstream.Filters) bool {
	if q != "" && !containsFold(d.Title, q) && !containsFold(d.ShortDescription, q) && !anyTag(d.Tags, q) {
		return false
	}
	return inSet(d.Status, f["status"]) && inSet(string(d.Category), f["category"])
}

func MatchPyq(p domain.Pyq, q string, f upstream.Filters) bool {
	if q != "" && !containsFold(p.SubjectName, q) && !containsFold(p.SubjectCode, q) && !anyTag(p.Tags, q) {
		return false
	}
	return inSet(strconv.Itoa(p.Year), f["year"]) &&
		inSet(string(p.Branch), f["branch"]) &&
		inSet(string(p.Type), f["type"]) &&
		inSet(strconv.Itoa(p.Semester), f["semester"])
}

func MatchNote(n domain.Note, q string, f upstream.Filters) bool {
	if q != "" && !containsFold(n.Title, q) && !containsFold(n.Subject, q) && !containsFold(n.SubjectCode, q) && !anyTag(n.Tags, q) {
		return false
	}
	return inSet(string(n.Branch), f["branch"]) &&
		inSet(strconv.Itoa(n.Semester), f["semester"]) &&
		(f["subject"] == "" || containsFold(n.Subject, f["subject"]))
}

func MatchFest(ft domain.Fest, q string, f upstream.Filters) bool {
	if q != "" && !containsFold(ft.Name, q) && !containsFold(ft.ShortDescription, q) && !anyTag(ft.Tags, q) {
		return false
	}
	return inSet(string(ft.Type), f["type"])
}

func MatchHostel(h domain.Hostel, q string, f upstream.Filters) bool {
	if q != "" && !containsFold(h.Name, q) && !containsFold(h.ShortDescription, q) {
		return false
	}
	return inSet(string(h.Type), f["type"])
}

func MatchGalleryImage(g domain.GalleryImage, q string, f upstream.Filters) bool {
	if q != "" && !containsFold(g.Title, q) && !anyTag(g.Tags, q) {
		return false
	}
	return inSet(string(g.Category), f["category"])
}
