package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"flatfinder/internal/auth"
	"flatfinder/internal/checklist"
	"flatfinder/internal/domain"
)

var (
	// ErrNoUser is returned when an operation runs without an authenticated
	// user on the context.
	ErrNoUser = errors.New("no authenticated user")
	// ErrNotFound is returned by mutations targeting an unknown property.
	ErrNotFound = errors.New("property not found")
	// ErrInvalidInput is wrapped by all validation failures.
	ErrInvalidInput = errors.New("invalid input")
)

// propertyRepository is the persistence collaborator the service requires.
// Both the sqlite row store and the local blob store satisfy it.
type propertyRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Property, error)
	Insert(ctx context.Context, userID string, p *domain.Property) error
	Update(ctx context.Context, userID string, p *domain.Property) error
	Delete(ctx context.Context, userID, id string) error
}

// PropertyService owns the authoritative property list per user. Every
// mutation writes to the repository first and touches the in-memory view only
// after the write is acknowledged; reads trust the cache once a user's rows
// are loaded. One mutex serializes all cache access, so overlapping requests
// cannot corrupt the list.
type PropertyService struct {
	repo   propertyRepository
	logger *slog.Logger

	mu    sync.Mutex
	cache map[string][]*domain.Property
}

func NewPropertyService(repo propertyRepository, logger *slog.Logger) *PropertyService {
	return &PropertyService{
		repo:   repo,
		logger: logger,
		cache:  make(map[string][]*domain.Property),
	}
}

// PropertyUpdate is a partial update. Nil fields are left unchanged.
type PropertyUpdate struct {
	Name        *string
	Address     *string
	BuilderName *string
	VisitDate   *string
	Tags        *[]string
	Notes       *string
	Rating      *int
	Checklist   *[]domain.ChecklistCategory
}

// List returns the user's properties, most recently created first.
func (s *PropertyService) List(ctx context.Context) ([]*domain.Property, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	props, err := s.loadLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Property, len(props))
	for i, p := range props {
		out[i] = p.Clone()
	}
	return out, nil
}

// Get returns the property with the given ID, or (nil, nil) when the user has
// no such property.
func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	props, err := s.loadLocked(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, p := findByID(props, id); p != nil {
		return p.Clone(), nil
	}
	return nil, nil
}

// Create adds a property initialized from the default checklist template and
// returns its ID once the record is persisted.
func (s *PropertyService) Create(ctx context.Context, name, address, builderName string) (string, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: property name is required", ErrInvalidInput)
	}

	now := time.Now().UTC()
	p := &domain.Property{
		ID:          uuid.NewString(),
		Name:        name,
		Address:     strings.TrimSpace(address),
		BuilderName: strings.TrimSpace(builderName),
		VisitDate:   now.Format(domain.VisitDateFormat),
		Tags:        []string{},
		Rating:      0,
		Checklist:   checklist.DefaultTemplate(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.loadLocked(ctx, userID); err != nil {
		return "", err
	}
	if err := s.repo.Insert(ctx, userID, p); err != nil {
		s.logger.Error("failed to persist new property", "user_id", userID, "error", err)
		return "", fmt.Errorf("failed to create property: %w", err)
	}
	s.cache[userID] = append([]*domain.Property{p}, s.cache[userID]...)

	s.logger.Info("property created", "property_id", p.ID, "name", p.Name)
	return p.ID, nil
}

// Update merges the provided fields into an existing property. Omitted fields
// keep their value; UpdatedAt is always refreshed.
func (s *PropertyService) Update(ctx context.Context, id string, upd PropertyUpdate) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	props, err := s.loadLocked(ctx, userID)
	if err != nil {
		return err
	}
	idx, existing := findByID(props, id)
	if existing == nil {
		return ErrNotFound
	}

	merged := existing.Clone()
	if err := applyUpdate(merged, upd); err != nil {
		return err
	}
	merged.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, userID, merged); err != nil {
		s.logger.Error("failed to persist property update", "property_id", id, "error", err)
		return fmt.Errorf("failed to update property: %w", err)
	}
	s.cache[userID][idx] = merged
	return nil
}

// UpdateChecklistItem sets one checklist item's value and, when note is
// non-nil, its note. The value must match the item's type; select answers
// must come from the item's option set.
func (s *PropertyService) UpdateChecklistItem(ctx context.Context, propertyID, categoryID, itemID string, value domain.Value, note *string) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	props, err := s.loadLocked(ctx, userID)
	if err != nil {
		return err
	}
	idx, existing := findByID(props, propertyID)
	if existing == nil {
		return ErrNotFound
	}

	merged := existing.Clone()
	item := findItem(merged.Checklist, categoryID, itemID)
	if item == nil {
		return fmt.Errorf("%w: unknown checklist item %s/%s", ErrInvalidInput, categoryID, itemID)
	}
	if !value.Matches(item.Type) {
		return fmt.Errorf("%w: value does not match item type %s", ErrInvalidInput, item.Type)
	}
	if item.Type == domain.ItemSelect && value.Text != nil && !contains(item.Options, *value.Text) {
		return fmt.Errorf("%w: %q is not a valid option", ErrInvalidInput, *value.Text)
	}

	item.Value = value
	if note != nil {
		item.Note = *note
	}
	merged.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, userID, merged); err != nil {
		s.logger.Error("failed to persist checklist update", "property_id", propertyID, "error", err)
		return fmt.Errorf("failed to update checklist item: %w", err)
	}
	s.cache[userID][idx] = merged
	return nil
}

// Delete removes a property. Deleting an unknown ID is a no-op.
func (s *PropertyService) Delete(ctx context.Context, id string) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	props, err := s.loadLocked(ctx, userID)
	if err != nil {
		return err
	}
	idx, existing := findByID(props, id)
	if existing == nil {
		return nil
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		s.logger.Error("failed to delete property", "property_id", id, "error", err)
		return fmt.Errorf("failed to delete property: %w", err)
	}
	s.cache[userID] = append(props[:idx], props[idx+1:]...)

	s.logger.Info("property deleted", "property_id", id)
	return nil
}

// Duplicate deep-copies a property under a fresh identity with the name
// suffixed " (Copy)" and returns the new ID.
func (s *PropertyService) Duplicate(ctx context.Context, id string) (string, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	props, err := s.loadLocked(ctx, userID)
	if err != nil {
		return "", err
	}
	_, src := findByID(props, id)
	if src == nil {
		return "", ErrNotFound
	}

	now := time.Now().UTC()
	dup := src.Clone()
	dup.ID = uuid.NewString()
	dup.Name = src.Name + " (Copy)"
	dup.CreatedAt = now
	dup.UpdatedAt = now

	if err := s.repo.Insert(ctx, userID, dup); err != nil {
		s.logger.Error("failed to persist duplicated property", "source_id", id, "error", err)
		return "", fmt.Errorf("failed to duplicate property: %w", err)
	}
	s.cache[userID] = append([]*domain.Property{dup}, s.cache[userID]...)

	s.logger.Info("property duplicated", "source_id", id, "property_id", dup.ID)
	return dup.ID, nil
}

// loadLocked returns the user's cached list, fetching it from the repository
// on first access. Callers must hold s.mu.
func (s *PropertyService) loadLocked(ctx context.Context, userID string) ([]*domain.Property, error) {
	if props, ok := s.cache[userID]; ok {
		return props, nil
	}
	props, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load properties", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}
	s.cache[userID] = props
	return props, nil
}

func applyUpdate(p *domain.Property, upd PropertyUpdate) error {
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return fmt.Errorf("%w: property name is required", ErrInvalidInput)
		}
		p.Name = name
	}
	if upd.Address != nil {
		p.Address = *upd.Address
	}
	if upd.BuilderName != nil {
		p.BuilderName = *upd.BuilderName
	}
	if upd.VisitDate != nil {
		if _, err := time.Parse(domain.VisitDateFormat, *upd.VisitDate); err != nil {
			return fmt.Errorf("%w: visit date must be YYYY-MM-DD", ErrInvalidInput)
		}
		p.VisitDate = *upd.VisitDate
	}
	if upd.Tags != nil {
		tags := make([]string, 0, len(*upd.Tags))
		for _, tag := range *upd.Tags {
			if !domain.ValidTag(tag) {
				return fmt.Errorf("%w: unknown tag %q", ErrInvalidInput, tag)
			}
			if !contains(tags, tag) {
				tags = append(tags, tag)
			}
		}
		p.Tags = tags
	}
	if upd.Notes != nil {
		p.Notes = *upd.Notes
	}
	if upd.Rating != nil {
		if *upd.Rating < 0 || *upd.Rating > 5 {
			return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
		}
		p.Rating = *upd.Rating
	}
	if upd.Checklist != nil {
		if !sameChecklistShape(p.Checklist, *upd.Checklist) {
			return fmt.Errorf("%w: checklist categories and items are fixed at creation", ErrInvalidInput)
		}
		for _, cat := range *upd.Checklist {
			for _, item := range cat.Items {
				tmplItem := findItem(p.Checklist, cat.ID, item.ID)
				if !item.Value.Matches(tmplItem.Type) {
					return fmt.Errorf("%w: value does not match item type %s", ErrInvalidInput, tmplItem.Type)
				}
			}
		}
		p.Checklist = domain.CloneChecklist(*upd.Checklist)
	}
	return nil
}

// sameChecklistShape verifies the incoming checklist has exactly the existing
// categories and items, in order. Only value and note may change.
func sameChecklistShape(existing, incoming []domain.ChecklistCategory) bool {
	if len(existing) != len(incoming) {
		return false
	}
	for i, cat := range existing {
		in := incoming[i]
		if in.ID != cat.ID || len(in.Items) != len(cat.Items) {
			return false
		}
		for j, item := range cat.Items {
			if in.Items[j].ID != item.ID || in.Items[j].Type != item.Type {
				return false
			}
		}
	}
	return true
}

func findByID(props []*domain.Property, id string) (int, *domain.Property) {
	for i, p := range props {
		if p.ID == id {
			return i, p
		}
	}
	return -1, nil
}

func findItem(checklist []domain.ChecklistCategory, categoryID, itemID string) *domain.ChecklistItem {
	for ci := range checklist {
		if checklist[ci].ID != categoryID {
			continue
		}
		for ii := range checklist[ci].Items {
			if checklist[ci].Items[ii].ID == itemID {
				return &checklist[ci].Items[ii]
			}
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func currentUser(ctx context.Context) (string, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return "", ErrNoUser
	}
	return userID, nil
}
