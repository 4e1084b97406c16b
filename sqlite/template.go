package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jobtailor"
)

// Compile-time interface verification.
var (
	_ jobtailor.TemplateService     = (*TemplateService)(nil)
	_ jobtailor.RegistrationService = (*RegistrationService)(nil)
)

// TemplateService implements jobtailor.TemplateService backed by SQLite.
// A single template row (id = 1) holds the master résumé.
type TemplateService struct {
	db *DB
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(db *DB) *TemplateService {
	return &TemplateService{db: db}
}

// GetCurrent returns the stored template.
// Returns ENOTFOUND if no template has been saved.
func (s *TemplateService) GetCurrent(ctx context.Context) (*jobtailor.Template, error) {
	template := &jobtailor.Template{}
	var updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT content, hash, updated_at FROM templates WHERE id = 1
	`).Scan(&template.Content, &template.Hash, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, jobtailor.Errorf(jobtailor.ENOTFOUND, "template not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query template: %w", err)
	}

	template.UpdatedAt, err = parseRFC3339(updatedAt)
	if err != nil {
		return nil, err
	}

	return template, nil
}

// Save validates and stores the template, replacing any previous one.
// Hash and UpdatedAt are assigned from the content and current time.
func (s *TemplateService) Save(ctx context.Context, template *jobtailor.Template) error {
	if err := template.Validate(); err != nil {
		return err
	}

	template.Hash = HashContent(template.Content)
	template.UpdatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO templates (id, content, hash, updated_at) VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			content = excluded.content,
			hash = excluded.hash,
			updated_at = excluded.updated_at
	`, template.Content, template.Hash, template.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}

	return nil
}

// HashContent returns the content hash used for registration change
// detection.
func HashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// RegistrationService implements jobtailor.RegistrationService backed by
// SQLite. A single registration row (id = 1) tracks the registered
// template hash.
type RegistrationService struct {
	db *DB
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(db *DB) *RegistrationService {
	return &RegistrationService{db: db}
}

// Status compares the current registration against templateHash.
func (s *RegistrationService) Status(ctx context.Context, templateHash string) (*jobtailor.RegistrationStatus, error) {
	var storedHash, registeredAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT template_hash, registered_at FROM registrations WHERE id = 1
	`).Scan(&storedHash, &registeredAt)
	if err == sql.ErrNoRows {
		return &jobtailor.RegistrationStatus{
			NeedsRegistration: true,
			Reason:            jobtailor.RegistrationReasonMissing,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query registration: %w", err)
	}

	if storedHash != templateHash {
		return &jobtailor.RegistrationStatus{
			NeedsRegistration: true,
			Reason:            jobtailor.RegistrationReasonChanged,
		}, nil
	}

	at, err := parseRFC3339(registeredAt)
	if err != nil {
		return nil, err
	}
	if time.Since(at) > jobtailor.RegistrationTTL {
		return &jobtailor.RegistrationStatus{
			NeedsRegistration: true,
			Reason:            jobtailor.RegistrationReasonExpired,
		}, nil
	}

	return &jobtailor.RegistrationStatus{}, nil
}

// Register records templateHash as registered now.
func (s *RegistrationService) Register(ctx context.Context, templateHash string) error {
	if templateHash == "" {
		return jobtailor.Errorf(jobtailor.EINVALID, "template hash required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO registrations (id, template_hash, registered_at, version)
		VALUES (1, ?, ?, '1.0')
		ON CONFLICT (id) DO UPDATE SET
			template_hash = excluded.template_hash,
			registered_at = excluded.registered_at,
			version = excluded.version
	`, templateHash, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save registration: %w", err)
	}

	return nil
}

// Clear removes the registration.
func (s *RegistrationService) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM registrations WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("failed to clear registration: %w", err)
	}
	return nil
}
