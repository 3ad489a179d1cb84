package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"flatfinder/internal/checklist"
	"flatfinder/internal/domain"
	"flatfinder/internal/service"
)

// propertySummary is the list view of a property: the record's header fields
// plus derived progress numbers.
type propertySummary struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	BuilderName    string    `json:"builderName"`
	VisitDate      string    `json:"visitDate"`
	Tags           []string  `json:"tags"`
	Rating         int       `json:"rating"`
	Progress       int       `json:"progress"`
	CompletedItems int       `json:"completedItems"`
	TotalItems     int       `json:"totalItems"`
	RedFlags       int       `json:"redFlags"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type propertyDetail struct {
	*domain.Property
	Progress       int `json:"progress"`
	CompletedItems int `json:"completedItems"`
	TotalItems     int `json:"totalItems"`
}

func newSummary(p *domain.Property) propertySummary {
	completed, total, percent := checklist.Progress(p.Checklist)
	return propertySummary{
		ID:             p.ID,
		Name:           p.Name,
		Address:        p.Address,
		BuilderName:    p.BuilderName,
		VisitDate:      p.VisitDate,
		Tags:           p.Tags,
		Rating:         p.Rating,
		Progress:       percent,
		CompletedItems: completed,
		TotalItems:     total,
		RedFlags:       len(checklist.RedFlags(p.Checklist)),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func newDetail(p *domain.Property) propertyDetail {
	completed, total, percent := checklist.Progress(p.Checklist)
	return propertyDetail{
		Property:       p,
		Progress:       percent,
		CompletedItems: completed,
		TotalItems:     total,
	}
}

func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	props, err := s.service.List(r.Context())
	if err != nil {
		s.serviceError(w, err, "failed to list properties")
		return
	}

	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	tag := r.URL.Query().Get("tag")

	summaries := make([]propertySummary, 0, len(props))
	for _, p := range props {
		if !matchesSearch(p, query) || !matchesTag(p, tag) {
			continue
		}
		summaries = append(summaries, newSummary(p))
	}
	s.respondJSON(w, http.StatusOK, summaries)
}

func matchesSearch(p *domain.Property, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Address), query) ||
		strings.Contains(strings.ToLower(p.BuilderName), query)
}

func matchesTag(p *domain.Property, tag string) bool {
	if tag == "" {
		return true
	}
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type createRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	BuilderName string `json:"builderName"`
}

func (s *Server) handleCreateProperty(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		s.respondError(w, http.StatusBadRequest, "property name is required")
		return
	}

	id, err := s.service.Create(r.Context(), req.Name, req.Address, req.BuilderName)
	if err != nil {
		s.serviceError(w, err, "failed to create property")
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	p, err := s.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, err, "failed to get property")
		return
	}
	if p == nil {
		s.respondError(w, http.StatusNotFound, "property not found")
		return
	}
	s.respondJSON(w, http.StatusOK, newDetail(p))
}

type updateRequest struct {
	Name        *string                     `json:"name"`
	Address     *string                     `json:"address"`
	BuilderName *string                     `json:"builderName"`
	VisitDate   *string                     `json:"visitDate"`
	Tags        *[]string                   `json:"tags"`
	Notes       *string                     `json:"notes"`
	Rating      *int                        `json:"rating"`
	Checklist   *[]domain.ChecklistCategory `json:"checklist"`
}

func (s *Server) handleUpdateProperty(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.service.Update(r.Context(), chi.URLParam(r, "id"), service.PropertyUpdate{
		Name:        req.Name,
		Address:     req.Address,
		BuilderName: req.BuilderName,
		VisitDate:   req.VisitDate,
		Tags:        req.Tags,
		Notes:       req.Notes,
		Rating:      req.Rating,
		Checklist:   req.Checklist,
	})
	if err != nil {
		s.serviceError(w, err, "failed to update property")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type itemUpdateRequest struct {
	Value domain.Value `json:"value"`
	Note  *string      `json:"note"`
}

func (s *Server) handleUpdateChecklistItem(w http.ResponseWriter, r *http.Request) {
	var req itemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.service.UpdateChecklistItem(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "categoryID"), chi.URLParam(r, "itemID"),
		req.Value, req.Note)
	if err != nil {
		s.serviceError(w, err, "failed to update checklist item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteProperty(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.serviceError(w, err, "failed to delete property")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDuplicateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := s.service.Duplicate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, err, "failed to duplicate property")
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// serviceError maps service-layer failures onto HTTP statuses. Persistence
// failures surface as 500 without leaking details.
func (s *Server) serviceError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrNoUser):
		s.respondError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, service.ErrNotFound):
		s.respondError(w, http.StatusNotFound, "property not found")
	case errors.Is(err, service.ErrInvalidInput):
		s.respondError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error(msg, "error", err)
		s.respondError(w, http.StatusInternalServerError, msg)
	}
}
