package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"skillforge/internal/cache"
	"skillforge/internal/content"
	"skillforge/internal/middleware"
	"skillforge/internal/models"
	"skillforge/internal/slug"
	"skillforge/internal/storage"
	"skillforge/internal/store"
)

// maxUploadSize caps image uploads at 10 MB.
const maxUploadSize = 10 << 20

// allowedUploads maps accepted file extensions to their content type.
var allowedUploads = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
}

// Admin groups the authenticated dashboard API: the draft/commit cycle
// over the site state, lead management, user management, and image
// uploads. Each admin works on their own draft, stored in Valkey keyed
// by user id.
type Admin struct {
	drafts     *cache.DraftStore
	states     content.Store
	stateCache *cache.StateCache
	leads      *store.LeadStore
	users      *store.UserStore
	uploader   storage.Uploader
}

// NewAdmin creates the admin handler group. uploader may be nil when no
// storage backend is configured; upload endpoints then answer 503.
func NewAdmin(drafts *cache.DraftStore, states content.Store, stateCache *cache.StateCache, leads *store.LeadStore, users *store.UserStore, uploader storage.Uploader) *Admin {
	return &Admin{
		drafts:     drafts,
		states:     states,
		stateCache: stateCache,
		leads:      leads,
		users:      users,
		uploader:   uploader,
	}
}

// --- Draft lifecycle ---

// Draft returns the caller's draft, creating a clean one over the live
// state if none exists.
func (a *Admin) Draft(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.callerID(w, r)
	if !ok {
		return
	}

	draft, err := a.loadOrCreateDraft(r, userID)
	if err != nil {
		slog.Error("load draft failed", "error", err, "user", userID)
		respondError(w, http.StatusInternalServerError, "could not load draft")
		return
	}

	respond(w, http.StatusOK, "draft", draft)
}

// UpdateDraft applies one mutation to the caller's working copy.
func (a *Admin) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.callerID(w, r)
	if !ok {
		return
	}

	var update content.Update
	if err := decodeJSON(r, &update); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	draft, err := a.loadOrCreateDraft(r, userID)
	if err != nil {
		slog.Error("load draft failed", "error", err, "user", userID)
		respondError(w, http.StatusInternalServerError, "could not load draft")
		return
	}

	if draft.Status == content.StatusSaving {
		respondError(w, http.StatusConflict, "a save is in progress, try again shortly")
		return
	}
	if err := draft.Apply(update); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.drafts.Put(r.Context(), userID, draft); err != nil {
		slog.Error("store draft failed", "error", err, "user", userID)
		respondError(w, http.StatusInternalServerError, "could not store draft")
		return
	}

	respond(w, http.StatusOK, "draft updated", map[string]any{
		"status": draft.Status,
		"work":   draft.Work,
	})
}

// DiscardDraft throws away the caller's unsaved changes.
func (a *Admin) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.callerID(w, r)
	if !ok {
		return
	}

	draft, err := a.drafts.Get(r.Context(), userID)
	if err != nil {
		slog.Error("load draft failed", "error", err, "user", userID)
		respondError(w, http.StatusInternalServerError, "could not load draft")
		return
	}
	if draft == nil {
		respondError(w, http.StatusConflict, "nothing to discard")
		return
	}

	if err := draft.Discard(); err != nil {
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	if err := a.drafts.Put(r.Context(), userID, draft); err != nil {
		slog.Error("store draft failed", "error", err, "user", userID)
		respondError(w, http.StatusInternalServerError, "could not store draft")
		return
	}

	respond(w, http.StatusOK, "draft discarded", map[string]any{
		"status": draft.Status,
		"work":   draft.Work,
	})
}

// SaveDraft commits the caller's working copy as the new live state and
// invalidates the public content cache. A failed write returns the draft
// to dirty so the admin can retry.
func (a *Admin) SaveDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.callerID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	draft, err := a.drafts.Get(ctx, userID)
	if err != nil {
		slog.Error("load draft failed", "error", err, "user", userID)
		respondError(w, http.StatusInternalServerError, "could not load draft")
		return
	}
	if draft == nil {
		respondError(w, http.StatusConflict, "nothing to save")
		return
	}

	if err := draft.BeginSave(); err != nil {
		respondError(w, http.StatusConflict, err.Error())
		return
	}

	raw, err := json.Marshal(draft.Work)
	if err == nil {
		err = a.states.Save(raw)
	}
	if err != nil {
		slog.Error("save site state failed", "error", err, "user", userID)
		draft.FailSave()
		if putErr := a.drafts.Put(ctx, userID, draft); putErr != nil {
			slog.Error("store draft failed", "error", putErr, "user", userID)
		}
		respondError(w, http.StatusInternalServerError, "could not save changes, draft kept")
		return
	}

	draft.CompleteSave()
	if err := a.drafts.Put(ctx, userID, draft); err != nil {
		slog.Error("store draft failed", "error", err, "user", userID)
	}
	a.stateCache.Invalidate(ctx)

	respond(w, http.StatusOK, "changes published", map[string]any{
		"status": draft.Status,
	})
}

// --- Leads ---

// ListLeads returns all leads, newest first.
func (a *Admin) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := a.leads.List()
	if err != nil {
		slog.Error("list leads failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not load leads")
		return
	}

	respond(w, http.StatusOK, "leads", map[string]any{
		"leads": leads,
		"total": len(leads),
	})
}

// UpdateLeadStatus moves a lead through the admissions funnel.
func (a *Admin) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	var req struct {
		Status models.LeadStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !models.ValidLeadStatus(req.Status) {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown lead status %q", req.Status))
		return
	}

	found, err := a.leads.UpdateStatus(id, req.Status)
	if err != nil {
		slog.Error("update lead status failed", "error", err, "lead", id)
		respondError(w, http.StatusInternalServerError, "could not update lead")
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "lead not found")
		return
	}

	respond(w, http.StatusOK, "lead updated", map[string]any{
		"id":     id,
		"status": req.Status,
	})
}

// DeleteLead removes a lead.
func (a *Admin) DeleteLead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	found, err := a.leads.Delete(id)
	if err != nil {
		slog.Error("delete lead failed", "error", err, "lead", id)
		respondError(w, http.StatusInternalServerError, "could not delete lead")
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "lead not found")
		return
	}

	respond(w, http.StatusOK, "lead deleted", nil)
}

// --- Users (admin role only) ---

// ListUsers returns all dashboard accounts.
func (a *Admin) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.users.List()
	if err != nil {
		slog.Error("list users failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not load users")
		return
	}

	respond(w, http.StatusOK, "users", map[string]any{"users": users})
}

// CreateUser adds a dashboard account.
func (a *Admin) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string      `json:"email"`
		Username    string      `json:"username"`
		Password    string      `json:"password"`
		DisplayName string      `json:"displayName"`
		Role        models.Role `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch {
	case req.Email == "":
		respondError(w, http.StatusBadRequest, "email is required")
		return
	case req.Username == "":
		respondError(w, http.StatusBadRequest, "username is required")
		return
	case len(req.Password) < 8:
		respondError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleEditor {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown role %q", req.Role))
		return
	}

	user, err := a.users.Create(req.Email, req.Username, req.Password, req.DisplayName, req.Role)
	if err != nil {
		slog.Error("create user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not create user")
		return
	}

	respond(w, http.StatusCreated, "user created", map[string]any{"user": user})
}

// DeleteUser removes a dashboard account. Admins cannot delete
// themselves.
func (a *Admin) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	callerID, ok := a.callerID(w, r)
	if !ok {
		return
	}
	if callerID == id {
		respondError(w, http.StatusBadRequest, "cannot delete your own account")
		return
	}

	if err := a.users.Delete(id); err != nil {
		slog.Error("delete user failed", "error", err, "user", id)
		respondError(w, http.StatusInternalServerError, "could not delete user")
		return
	}
	if err := a.drafts.Delete(r.Context(), id); err != nil {
		slog.Warn("delete draft failed", "error", err, "user", id)
	}

	respond(w, http.StatusOK, "user deleted", nil)
}

// --- Uploads ---

// Upload stores an image and returns its public URL. The URL is then
// attached to the draft through an image update.
func (a *Admin) Upload(w http.ResponseWriter, r *http.Request) {
	if a.uploader == nil {
		respondError(w, http.StatusServiceUnavailable, "uploads are not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	key, contentType, err := uploadKey(header)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	url, err := a.uploader.Upload(r.Context(), key, contentType, file, header.Size)
	if err != nil {
		slog.Error("upload failed", "error", err, "key", key)
		respondError(w, http.StatusInternalServerError, "could not store file")
		return
	}

	respond(w, http.StatusCreated, "file uploaded", map[string]any{"url": url})
}

// DeleteUpload removes a previously uploaded file by its URL.
func (a *Admin) DeleteUpload(w http.ResponseWriter, r *http.Request) {
	if a.uploader == nil {
		respondError(w, http.StatusServiceUnavailable, "uploads are not configured")
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.URL == "" {
		respondError(w, http.StatusBadRequest, "url is required")
		return
	}

	if err := a.uploader.Delete(r.Context(), req.URL); err != nil {
		slog.Error("delete upload failed", "error", err, "url", req.URL)
		respondError(w, http.StatusInternalServerError, "could not delete file")
		return
	}

	respond(w, http.StatusOK, "file deleted", nil)
}

// --- helpers ---

// callerID resolves the authenticated user's id, answering 401 itself
// on failure.
func (a *Admin) callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return uuid.Nil, false
	}
	id, err := claims.UserID()
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid token")
		return uuid.Nil, false
	}
	return id, true
}

// loadOrCreateDraft fetches the user's draft, starting a clean one over
// the live state when none is stored.
func (a *Admin) loadOrCreateDraft(r *http.Request, userID uuid.UUID) (*content.Draft, error) {
	draft, err := a.drafts.Get(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	if draft != nil {
		return draft, nil
	}

	raw, err := a.states.Load()
	if err != nil {
		return nil, fmt.Errorf("load site state: %w", err)
	}
	draft = content.NewDraft(content.Reconcile(raw))
	if err := a.drafts.Put(r.Context(), userID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// uploadKey builds the storage key for an uploaded file and validates
// its extension.
func uploadKey(header *multipart.FileHeader) (key, contentType string, err error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := allowedUploads[ext]
	if !ok {
		return "", "", fmt.Errorf("unsupported file type %q", ext)
	}

	base := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
	name := slug.Generate(base)
	if name == "" {
		name = "file"
	}

	key = fmt.Sprintf("%s/%s-%s%s",
		time.Now().UTC().Format("2006/01"),
		name,
		uuid.New().String()[:8],
		ext,
	)
	return key, contentType, nil
}
