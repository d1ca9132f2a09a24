package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flosch/pongo2/v6"
	"github.com/gorilla/mux"

	"github.com/aknur/careadmin/internal/forms"
	"github.com/aknur/careadmin/pkg/models"
	"github.com/aknur/careadmin/pkg/repository"
)

// Handler serves the admin pages for all seven entities through the
// binding table.
type Handler struct {
	store       repository.Store
	bindings    map[models.Entity]*binding
	render      *renderer
	authEnabled bool
}

func NewHandler(store repository.Store, authEnabled bool) *Handler {
	return &Handler{
		store:       store,
		bindings:    bindings(store),
		render:      newRenderer(),
		authEnabled: authEnabled,
	}
}

// baseContext carries the pieces every page needs: navigation and the
// pending flash notice.
func (h *Handler) baseContext(w http.ResponseWriter, r *http.Request) pongo2.Context {
	nav := make([]map[string]string, 0, len(models.Entities()))
	for _, e := range models.Entities() {
		nav = append(nav, map[string]string{"name": string(e), "label": e.Label()})
	}
	return pongo2.Context{
		"nav":          nav,
		"flash":        takeFlash(w, r),
		"auth_enabled": h.authEnabled,
	}
}

// entityFromRequest resolves the {entity} path variable against the
// closed set; unknown names are plain 404s.
func (h *Handler) entityFromRequest(w http.ResponseWriter, r *http.Request) (*binding, bool) {
	name := mux.Vars(r)["entity"]
	entity, err := models.ParseEntity(name)
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}
	return h.bindings[entity], true
}

func recordID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

// fieldContexts converts prepared field views into the plain maps the
// templates consume, attaching per-field errors.
func fieldContexts(views []forms.FieldView, errs map[string]string) []pongo2.Context {
	out := make([]pongo2.Context, 0, len(views))
	for _, v := range views {
		options := make([]map[string]string, 0, len(v.Options))
		for _, opt := range v.Options {
			options = append(options, map[string]string{"value": opt.Value, "label": opt.Label})
		}
		out = append(out, pongo2.Context{
			"name":     v.Name,
			"label":    v.Label,
			"kind":     string(v.Kind),
			"required": v.Required,
			"step":     v.Step,
			"value":    v.Value,
			"options":  options,
			"error":    errs[v.Name],
		})
	}
	return out
}

// Dashboard shows per-entity row counts.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats := make([]map[string]any, 0, len(models.Entities()))
	for _, e := range models.Entities() {
		count, err := h.store.Count(r.Context(), e)
		if err != nil {
			h.serverError(w, r, fmt.Errorf("count %s: %w", e, err))
			return
		}
		stats = append(stats, map[string]any{"name": string(e), "label": e.Label(), "count": count})
	}
	ctx := h.baseContext(w, r)
	ctx["stats"] = stats
	h.render.render(w, http.StatusOK, "index.html", ctx)
}

// List shows all rows of one entity ordered by primary key.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	b, ok := h.entityFromRequest(w, r)
	if !ok {
		return
	}
	rows, err := b.list(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	columns := make([]map[string]string, 0, len(b.columns))
	for _, c := range b.columns {
		columns = append(columns, map[string]string{"name": c.Name, "label": c.Label})
	}
	rowCtx := make([]pongo2.Context, 0, len(rows))
	for _, rw := range rows {
		rowCtx = append(rowCtx, pongo2.Context{"id": rw.ID, "cells": rw.Cells})
	}
	ctx := h.baseContext(w, r)
	ctx["entity"] = string(b.entity)
	ctx["label"] = b.entity.Label()
	ctx["columns"] = columns
	ctx["rows"] = rowCtx
	h.render.render(w, http.StatusOK, "list.html", ctx)
}

// renderForm re-renders the create/edit form with current values and
// errors. Submitted raw values take precedence so nothing the operator
// typed is lost on a failed validation.
func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, b *binding, instance map[string]string, raw url.Values, mode forms.Mode, recordID int64, errs map[string]string) {
	views, err := forms.Prepare(r.Context(), b.entity, instance, raw, mode, h.store)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	status := http.StatusOK
	if len(errs) > 0 {
		status = http.StatusUnprocessableEntity
	}
	ctx := h.baseContext(w, r)
	ctx["entity"] = string(b.entity)
	ctx["label"] = b.entity.Label()
	ctx["mode"] = string(mode)
	ctx["record_id"] = recordID
	ctx["fields"] = fieldContexts(views, errs)
	ctx["general_error"] = errs["_general"]
	h.render.render(w, status, "form.html", ctx)
}

// CreateForm renders the empty creation form.
func (h *Handler) CreateForm(w http.ResponseWriter, r *http.Request) {
	b, ok := h.entityFromRequest(w, r)
	if !ok {
		return
	}
	h.renderForm(w, r, b, nil, nil, forms.ModeCreate, 0, nil)
}

// Create validates and persists a new row.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	b, ok := h.entityFromRequest(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	data, errs := forms.Validate(b.entity, r.PostForm, forms.ModeCreate)
	if len(errs) == 0 {
		err := b.create(r.Context(), data)
		if err == nil {
			setFlash(w, "success", fmt.Sprintf("%s record created successfully!", b.entity.Label()))
			http.Redirect(w, r, "/"+string(b.entity), http.StatusSeeOther)
			return
		}
		// the store error is echoed verbatim: single trusted operator
		setFlash(w, "error", fmt.Sprintf("Error creating record: %s", err))
		errs["_general"] = err.Error()
	} else {
		setFlash(w, "error", "Please fix the errors below.")
	}

	h.renderForm(w, r, b, nil, r.PostForm, forms.ModeCreate, 0, errs)
}

// EditForm renders the pre-filled edit form; unknown ids are not found.
func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	b, ok := h.entityFromRequest(w, r)
	if !ok {
		return
	}
	id := recordID(r)
	instance, err := b.get(r.Context(), id)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if instance == nil {
		http.NotFound(w, r)
		return
	}
	h.renderForm(w, r, b, instance, nil, forms.ModeEdit, id, nil)
}

// Edit validates and overwrites an existing row.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	b, ok := h.entityFromRequest(w, r)
	if !ok {
		return
	}
	id := recordID(r)
	instance, err := b.get(r.Context(), id)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if instance == nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	data, errs := forms.Validate(b.entity, r.PostForm, forms.ModeEdit)
	if len(errs) == 0 {
		err := b.update(r.Context(), id, data)
		if err == nil {
			setFlash(w, "success", fmt.Sprintf("%s record updated successfully!", b.entity.Label()))
			http.Redirect(w, r, "/"+string(b.entity), http.StatusSeeOther)
			return
		}
		setFlash(w, "error", fmt.Sprintf("Error updating record: %s", err))
		errs["_general"] = err.Error()
	} else {
		setFlash(w, "error", "Please fix the errors below.")
	}

	h.renderForm(w, r, b, instance, r.PostForm, forms.ModeEdit, id, errs)
}

// Delete removes a row. A persistence failure is reported as a notice but
// never blocks the redirect back to the list.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	b, ok := h.entityFromRequest(w, r)
	if !ok {
		return
	}
	id := recordID(r)
	instance, err := b.get(r.Context(), id)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if instance == nil {
		http.NotFound(w, r)
		return
	}

	if err := b.remove(r.Context(), id); err != nil {
		setFlash(w, "error", fmt.Sprintf("Error deleting record: %s", err))
	} else {
		setFlash(w, "success", fmt.Sprintf("%s record deleted successfully!", b.entity.Label()))
	}
	http.Redirect(w, r, "/"+string(b.entity), http.StatusSeeOther)
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Error("request failed", "path", r.URL.Path, "err", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// HealthHandler reports liveness.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, `{"status":"ok","service":"careadmin"}`)
}

// VersionHandler reports the build stamp.
func VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"version":%q,"buildTime":%q}`, version, buildTime)
	}
}
