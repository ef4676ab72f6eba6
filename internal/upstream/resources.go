package upstream

import (
	"github.com/campusconnect/portal-bff/internal/domain"
	"github.com/campusconnect/portal-bff/internal/mapping"
)

// Per-resource bindings. Endpoint paths, filter vocabularies, page sizes
// and mappers are the only things that differ between the portal's list
// pages; everything else is the generic Resource client.

func NewEvents(c *Client, baseURL string) *Resource[mapping.RawEvent, domain.Event] {
	return NewResource(c, baseURL, Spec[mapping.RawEvent, domain.Event]{
		Name:         "events",
		Plural:       "events",
		Map:          mapping.MapEvent,
		FilterKeys:   map[string]string{},
		DefaultLimit: 3,
	})
}

func NewDemands(c *Client, baseURL string) *Resource[mapping.RawDemand, domain.Demand] {
	return NewResource(c, baseURL, Spec[mapping.RawDemand, domain.Demand]{
		Name:         "demands",
		Plural:       "demands",
		Map:          mapping.MapDemand,
		FilterKeys:   map[string]string{},
		DefaultLimit: 6,
	})
}

func NewPyqs(c *Client, baseURL string) *Resource[mapping.RawPyq, domain.Pyq] {
	return NewResource(c, baseURL, Spec[mapping.RawPyq, domain.Pyq]{
		Name:   "pyqs",
		Plural: "pyqs",
		Map:    mapping.MapPyq,
		FilterKeys: map[string]string{
			"year":     "year",
			"branch":   "department",
			"type":     "examType",
			"semester": "semester",
		},
		DefaultLimit: 6,
		FileURL:      func(p domain.Pyq) string { return p.FileURL },
	})
}

func NewNotes(c *Client, baseURL string) *Resource[mapping.RawNote, domain.Note] {
	return NewResource(c, baseURL, Spec[mapping.RawNote, domain.Note]{
		Name:   "notes",
		Plural: "notes",
		Map:    mapping.MapNote,
		FilterKeys: map[string]string{
			"branch":   "department",
			"semester": "semester",
			"subject":  "subject",
		},
		DefaultLimit: 6,
		FileURL:      func(n domain.Note) string { return n.FileURL },
	})
}

func NewFests(c *Client, baseURL string) *Resource[mapping.RawFest, domain.Fest] {
	return NewResource(c, baseURL, Spec[mapping.RawFest, domain.Fest]{
		Name:         "fests",
		Plural:       "fests",
		Map:          mapping.MapFest,
		FilterKeys:   map[string]string{"type": "type"},
		DefaultLimit: 3,
	})
}

func NewHostels(c *Client, baseURL string) *Resource[mapping.RawHostel, domain.Hostel] {
	return NewResource(c, baseURL, Spec[mapping.RawHostel, domain.Hostel]{
		Name:         "hostels",
		Plural:       "hostels",
		Map:          mapping.MapHostel,
		FilterKeys:   map[string]string{"type": "type"},
		DefaultLimit: 6,
	})
}

func NewGallery(c *Client, baseURL string) *Resource[mapping.RawGalleryImage, domain.GalleryImage] {
	return NewResource(c, baseURL, Spec[mapping.RawGalleryImage, domain.GalleryImage]{
		Name:         "photogallery",
		Plural:       "images",
		Map:          mapping.MapGalleryImage,
		FilterKeys:   map[string]string{"category": "category"},
		DefaultLimit: 6,
	})
}
