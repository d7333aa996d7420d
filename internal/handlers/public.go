package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"skillforge/internal/cache"
	"skillforge/internal/catalog"
	"skillforge/internal/content"
	"skillforge/internal/mail"
	"skillforge/internal/markdown"
	"skillforge/internal/models"
	"skillforge/internal/store"
)

// Public groups the unauthenticated API: the site content, the course
// catalog, and lead intake. Content reads go through the Valkey cache;
// only a miss touches Postgres.
type Public struct {
	states     content.Store
	stateCache *cache.StateCache
	leads      *store.LeadStore
	notifier   *mail.Notifier
}

// NewPublic creates the public handler group.
func NewPublic(states content.Store, stateCache *cache.StateCache, leads *store.LeadStore, notifier *mail.Notifier) *Public {
	return &Public{
		states:     states,
		stateCache: stateCache,
		leads:      leads,
		notifier:   notifier,
	}
}

// Content serves the full site state with Markdown fields rendered to
// HTML. The rendered payload is cached; an admin save invalidates it.
func (p *Public) Content(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := p.stateCache.Get(ctx); ok {
		respond(w, http.StatusOK, "content", json.RawMessage(cached))
		return
	}

	state, err := p.loadState()
	if err != nil {
		slog.Error("load site state failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not load site content")
		return
	}

	rendered := renderMarkdown(state)
	payload, err := json.Marshal(rendered)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not encode site content")
		return
	}

	p.stateCache.Set(ctx, payload)
	respond(w, http.StatusOK, "content", json.RawMessage(payload))
}

// Courses serves the course catalog, newest first, optionally filtered
// by academic level and industry.
func (p *Public) Courses(w http.ResponseWriter, r *http.Request) {
	state, err := p.loadState()
	if err != nil {
		slog.Error("load site state failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not load courses")
		return
	}

	level := r.URL.Query().Get("level")
	industry := r.URL.Query().Get("industry")

	courses := make([]catalog.Course, 0, len(state.Courses.List))
	for _, c := range state.Courses.List {
		if level != "" && string(c.AcademicLevel) != level {
			continue
		}
		if industry != "" && c.Industry != industry {
			continue
		}
		courses = append(courses, c)
	}

	// Higher sequence numbers were created later.
	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].Seq > courses[j].Seq
	})

	respond(w, http.StatusOK, "courses", map[string]any{
		"courses": courses,
		"total":   len(courses),
	})
}

// leadRequest is the lead intake payload.
type leadRequest struct {
	FullName string          `json:"fullName"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	Course   *string         `json:"course"`
	Message  *string         `json:"message"`
	Source   string          `json:"source"`
	Details  json.RawMessage `json:"details"`
}

// CreateLead accepts an enrollment or contact form submission. The lead
// is stored first; the notification email runs in the background and
// never delays or fails the response.
func (p *Public) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req leadRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	source := models.LeadSource(strings.TrimSpace(req.Source))
	switch source {
	case models.LeadSourceEnrollment, models.LeadSourceContact, models.LeadSourceGeneral:
	case "":
		source = models.LeadSourceGeneral
	default:
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown lead source %q", req.Source))
		return
	}

	lead := &models.Lead{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Course:   req.Course,
		Message:  req.Message,
		Source:   source,
		Details:  req.Details,
	}

	if field := lead.MissingField(); field != "" {
		respondError(w, http.StatusBadRequest, field+" is required")
		return
	}

	created, err := p.leads.Create(lead)
	if err != nil {
		slog.Error("create lead failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not save your submission")
		return
	}

	if created.Source == models.LeadSourceEnrollment && p.notifier != nil {
		go func(lead *models.Lead) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := p.notifier.NotifyLead(ctx, lead); err != nil {
				slog.Error("lead notification failed", "error", err, "lead", lead.ID)
			}
		}(created)
	}

	respond(w, http.StatusCreated, "submission received", map[string]any{
		"id":     created.ID,
		"status": created.Status,
	})
}

// loadState reads and reconciles the stored site state.
func (p *Public) loadState() (content.State, error) {
	raw, err := p.states.Load()
	if err != nil {
		return content.State{}, fmt.Errorf("load site state: %w", err)
	}
	return content.Reconcile(raw), nil
}

// renderMarkdown converts the state's Markdown fields (notice bodies,
// about chapters, legal pages) to HTML on a copy of the state.
func renderMarkdown(state content.State) content.State {
	out := state.Clone()

	toHTML := func(src string) string {
		if src == "" {
			return ""
		}
		html, err := markdown.ToHTML(src)
		if err != nil {
			slog.Warn("markdown render failed", "error", err)
			return src
		}
		return html
	}

	for i := range out.Notices {
		out.Notices[i].Body = toHTML(out.Notices[i].Body)
	}
	for i := range out.About.Chapters {
		out.About.Chapters[i].Body = toHTML(out.About.Chapters[i].Body)
	}
	out.Legal.Privacy = toHTML(out.Legal.Privacy)
	out.Legal.Terms = toHTML(out.Legal.Terms)
	out.Legal.Refund = toHTML(out.Legal.Refund)

	return out
}
