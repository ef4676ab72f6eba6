package mapping

import (
	"strings"

	"github.com/campusconnect/portal-bff/internal/domain"
)

// Free-text classification stands in for a real taxonomy the backend never
// had. Each table is an ordered list of keyword rules evaluated top to
// bottom; the first keyword found as a case-insensitive substring wins and
// the default makes every classifier total.

type rule[T ~string] struct {
	keywords []string
	out      T
}

func classify[T ~string](text string, rules []rule[T], def T) T {
	t := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(t, kw) {
				return r.out
			}
		}
	}
	return def
}

var demandRules = []rule[domain.DemandCategory]{
	{[]string{"wifi", "internet", "computer", "software", "portal", "network"}, domain.DemandTechnology},
	{[]string{"mess", "food", "canteen", "cafeteria", "menu"}, domain.DemandFood},
	{[]string{"bus", "shuttle", "transport", "parking"}, domain.DemandTransport},
	{[]string{"gym", "sport", "ground", "court", "stadium"}, domain.DemandSports},
	{[]string{"hostel", "room", "water", "electric", "building", "classroom", "road", "toilet", "washroom"}, domain.DemandInfrastructure},
}

// DemandCategory classifies a demand from its free-text topic.
func DemandCategoryOf(topic string) domain.DemandCategory {
	return classify(topic, demandRules, domain.DemandAcademic)
}

var eventRules = []rule[domain.EventCategory]{
	{[]string{"hackathon", "coding", "tech", "robot", "workshop", "seminar"}, domain.EventTechnical},
	{[]string{"dance", "music", "drama", "cultural", "fest", "art"}, domain.EventCultural},
	{[]string{"sport", "tournament", "match", "marathon", "athletic"}, domain.EventSports},
	{[]string{"blood", "donation", "charity", "social", "club", "community"}, domain.EventSocial},
}

func EventCategoryOf(text string) domain.EventCategory {
	return classify(text, eventRules, domain.EventAcademic)
}

var branchRules = []rule[domain.Branch]{
	{[]string{"computer", "cse", "information tech"}, domain.BranchCSE},
	{[]string{"electronics", "communication", "ece"}, domain.BranchECE},
	{[]string{"mechanical", "mech"}, domain.BranchMech},
	{[]string{"civil"}, domain.BranchCivil},
	{[]string{"electrical", "eee"}, domain.BranchEEE},
}

// BranchOf infers an engineering branch from a free-text department name.
func BranchOf(department string) domain.Branch {
	return classify(department, branchRules, domain.BranchCommon)
}

var galleryRules = []rule[domain.GalleryCategory]{
	{[]string{"sport", "tournament", "match"}, domain.GallerySports},
	{[]string{"dance", "music", "cultural", "fest"}, domain.GalleryCultural},
	{[]string{"convocation", "lecture", "academic", "graduation"}, domain.GalleryAcademic},
	{[]string{"event", "celebration", "inaugur"}, domain.GalleryEvents},
}

func GalleryCategoryOf(text string) domain.GalleryCategory {
	return classify(text, galleryRules, domain.GalleryCampus)
}

var hostelRules = []rule[domain.HostelType]{
	{[]string{"girls", "women", "ladies", "female"}, domain.HostelFemale},
	{[]string{"boys", "men", "male"}, domain.HostelMale},
}

// HostelTypeOf infers male/female from the hostel name when the backend
// does not say. "women"/"ladies" must be checked before "men".
func HostelTypeOf(name string) domain.HostelType {
	return classify(name, hostelRules, domain.HostelMixed)
}

var festRules = []rule[domain.FestType]{
	{[]string{"tech", "hack", "robo", "science"}, domain.FestTechnical},
	{[]string{"sport", "athlet", "tournament"}, domain.FestSports},
}

func FestTypeOf(text string) domain.FestType {
	return classify(text, festRules, domain.FestCultural)
}

// paperTypes translates the backend's exam-type spellings into the
// frontend enum. Unknown spellings fall back to end-sem.
var paperTypes = map[string]domain.PaperType{
	"endsem":     domain.PaperEndSem,
	"end-sem":    domain.PaperEndSem,
	"midsem":     domain.PaperMidSem,
	"mid-sem":    domain.PaperMidSem,
	"assignment": domain.PaperAssignment,
	"backlog":    domain.PaperBackPaper,
	"back-paper": domain.PaperBackPaper,
}

func PaperTypeOf(examType string) domain.PaperType {
	if t, ok := paperTypes[strings.ToLower(strings.TrimSpace(examType))]; ok {
		return t
	}
	return domain.PaperEndSem
}
