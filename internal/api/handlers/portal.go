package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/campusconnect/portal-bff/internal/cache"
	"github.com/campusconnect/portal-bff/internal/controller"
	"github.com/campusconnect/portal-bff/internal/domain"
	"github.com/campusconnect/portal-bff/internal/fallback"
	"github.com/campusconnect/portal-bff/internal/logger"
	"github.com/campusconnect/portal-bff/internal/mapping"
	"github.com/campusconnect/portal-bff/internal/upstream"
)

// Portal bundles one Page per portal resource. Filter vocabularies
// mirror the front-end chips: multi-select for pyqs and notes,
// single-select for hostels, fests and gallery.
type Portal struct {
	Events  *Page[mapping.RawEvent, domain.Event]
	Demands *Page[mapping.RawDemand, domain.Demand]
	Pyqs    *Page[mapping.RawPyq, domain.Pyq]
	Notes   *Page[mapping.RawNote, domain.Note]
	Fests   *Page[mapping.RawFest, domain.Fest]
	Hostels *Page[mapping.RawHostel, domain.Hostel]
	Gallery *Page[mapping.RawGalleryImage, domain.GalleryImage]
}

func NewPortal(client *upstream.Client, backendURL string, cch *cache.Client, cacheTTL time.Duration) *Portal {
	return &Portal{
		Events: &Page[mapping.RawEvent, domain.Event]{
			res:        upstream.NewEvents(client, backendURL),
			fallback:   fallback.Events,
			match:      controller.MatchEvent,
			id:         func(e domain.Event) string { return e.ID },
			group:      func(a, b domain.Event) bool { return a.Category == b.Category },
			filterKeys: []string{"category"},
			cache:      cch,
			cacheTTL:   cacheTTL,
		},
		Demands: &Page[mapping.RawDemand, domain.Demand]{
			res:        upstream.NewDemands(client, backendURL),
			fallback:   fallback.Demands,
			match:      controller.MatchDemand,
			id:         func(d domain.Demand) string { return d.ID },
			group:      func(a, b domain.Demand) bool { return a.Category == b.Category },
			filterKeys: []string{"status", "category"},
			cache:      cch,
			cacheTTL:   cacheTTL,
		},
		Pyqs: &Page[mapping.RawPyq, domain.Pyq]{
			res:        upstream.NewPyqs(client, backendURL),
			fallback:   fallback.Pyqs,
			match:      controller.MatchPyq,
			id:         func(p domain.Pyq) string { return p.ID },
			filterKeys: []string{"year", "branch", "type", "semester"},
			cache:      cch,
			cacheTTL:   cacheTTL,
		},
		Notes: &Page[mapping.RawNote, domain.Note]{
			res:        upstream.NewNotes(client, backendURL),
			fallback:   fallback.Notes,
			match:      controller.MatchNote,
			id:         func(n domain.Note) string { return n.ID },
			filterKeys: []string{"branch", "semester", "subject"},
			cache:      cch,
			cacheTTL:   cacheTTL,
		},
		Fests: &Page[mapping.RawFest, domain.Fest]{
			res:        upstream.NewFests(client, backendURL),
			fallback:   fallback.Fests,
			match:      controller.MatchFest,
			id:         func(f domain.Fest) string { return f.ID },
			filterKeys: []string{"type"},
			cache:      cch,
			cacheTTL:   cacheTTL,
		},
		Hostels: &Page[mapping.RawHostel, domain.Hostel]{
			res:        upstream.NewHostels(client, backendURL),
			fallback:   fallback.Hostels,
			match:      controller.MatchHostel,
			id:         func(h domain.Hostel) string { return h.ID },
			filterKeys: []string{"type"},
			cache:      cch,
			cacheTTL:   cacheTTL,
		},
		Gallery: &Page[mapping.RawGalleryImage, domain.GalleryImage]{
			res:      upstream.NewGallery(client, backendURL),
			fallback: fallback.Gallery,
			match:    controller.MatchGalleryImage,
			id:       func(g domain.GalleryImage) string { return g.ID },
			like: func(g domain.GalleryImage) domain.GalleryImage {
				g.Likes++
				return g
			},
			filterKeys: []string{"category"},
			cache:      cch,
			cacheTTL:   cacheTTL,
		},
	}
}

// EventDetail returns one event plus up to three related events: same
// category, excluding the event itself, computed ad hoc from the first
// pages of the list.
func (pt *Portal) EventDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ev, err := pt.Events.res.Get(r.Context(), id)
	if err != nil {
		handleFetchError(w, r, err)
		return
	}

	related := []domain.Event{}
	ctrl := pt.Events.newController(12)
	defer ctrl.Close()
	ctrl.Load(r.Context())
	if snap := ctrl.Snapshot(); !snap.Degraded {
		related = ctrl.Related(ev, 3)
	}

	sendJSON(w, http.StatusOK, map[string]any{
		"event":   ev,
		"related": related,
	})
}

// DemandCreate passes a submitted demand through to the backend and
// returns the stored document, normalized.
func (pt *Portal) DemandCreate(w http.ResponseWriter, r *http.Request) {
	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		sendError(w, r, "validation_failed", "invalid request body", http.StatusBadRequest)
		return
	}

	d, err := pt.Demands.res.Create(r.Context(), doc)
	if err != nil {
		handleFetchError(w, r, err)
		return
	}

	sendJSON(w, http.StatusCreated, map[string]any{"data": d})
}

// GalleryLike bumps the like counter optimistically: the incremented
// count goes back to the caller immediately and the backend write is
// best-effort in the background.
func (pt *Portal) GalleryLike(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	img, err := pt.Gallery.res.Get(r.Context(), id)
	if err != nil {
		handleFetchError(w, r, err)
		return
	}

	likes := img.Likes + 1

	bg := context.WithoutCancel(r.Context())
	go func() {
		ctx, cancel := context.WithTimeout(bg, 3*time.Second)
		defer cancel()
		if _, err := pt.Gallery.res.Update(ctx, id, map[string]any{"likes": likes}); err != nil {
			logger.Log.Warn().Err(err).Str("id", id).Msg("gallery_like_write_failed")
		}
	}()

	sendJSON(w, http.StatusOK, map[string]any{"id": id, "likes": likes})
}
