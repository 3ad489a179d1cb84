package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"flatfinder/internal/domain"
)

// PropertyStore persists one row per property, scoped to the owning user.
type PropertyStore struct {
	db *sql.DB
}

func NewPropertyStore(db *sql.DB) *PropertyStore {
	return &PropertyStore{db: db}
}

const propertyColumns = `id, name, address, builder_name, visit_date, tags, notes, rating, checklist, created_at, updated_at`

func (s *PropertyStore) ListByUser(ctx context.Context, userID string) ([]*domain.Property, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+propertyColumns+` FROM properties
		WHERE user_id = ? ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var props []*domain.Property
	for rows.Next() {
		p, err := scanProperty(rows.Scan)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating properties: %w", err)
	}

	return props, nil
}

func (s *PropertyStore) GetByID(ctx context.Context, userID, id string) (*domain.Property, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+propertyColumns+` FROM properties WHERE user_id = ? AND id = ?
	`, userID, id)

	p, err := scanProperty(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PropertyStore) Insert(ctx context.Context, userID string, p *domain.Property) error {
	tags, checklistJSON, err := marshalFields(p)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO properties (id, user_id, name, address, builder_name, visit_date, tags, notes, rating, checklist, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, userID, p.Name, p.Address, p.BuilderName, p.VisitDate, tags, p.Notes, p.Rating, checklistJSON,
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}
	return nil
}

func (s *PropertyStore) Update(ctx context.Context, userID string, p *domain.Property) error {
	tags, checklistJSON, err := marshalFields(p)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE properties
		SET name = ?, address = ?, builder_name = ?, visit_date = ?, tags = ?, notes = ?, rating = ?, checklist = ?, updated_at = ?
		WHERE user_id = ? AND id = ?
	`, p.Name, p.Address, p.BuilderName, p.VisitDate, tags, p.Notes, p.Rating, checklistJSON,
		formatTime(p.UpdatedAt), userID, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("property not found")
	}
	return nil
}

// Delete removes a property row. Deleting a missing row is a no-op.
func (s *PropertyStore) Delete(ctx context.Context, userID, id string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM properties WHERE user_id = ? AND id = ?
	`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	return nil
}

func marshalFields(p *domain.Property) (tags, checklistJSON string, err error) {
	tagList := p.Tags
	if tagList == nil {
		tagList = []string{}
	}
	tagData, err := json.Marshal(tagList)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal tags: %w", err)
	}
	checklistData, err := json.Marshal(p.Checklist)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal checklist: %w", err)
	}
	return string(tagData), string(checklistData), nil
}

func scanProperty(scan func(dest ...any) error) (*domain.Property, error) {
	p := &domain.Property{}
	var tags, checklistJSON, createdAt, updatedAt string

	err := scan(&p.ID, &p.Name, &p.Address, &p.BuilderName, &p.VisitDate,
		&tags, &p.Notes, &p.Rating, &checklistJSON, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan property: %w", err)
	}

	if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
	}
	if err := json.Unmarshal([]byte(checklistJSON), &p.Checklist); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checklist: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return p, nil
}

// timeLayout keeps a fixed-width fractional part so lexicographic ordering of
// created_at matches chronological ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
