package mock

import (
	"context"

	"github.com/fwojciec/jobtailor"
)

var _ jobtailor.TemplateService = (*TemplateService)(nil)

// TemplateService is a mock implementation of jobtailor.TemplateService.
type TemplateService struct {
	GetCurrentFn func(ctx context.Context) (*jobtailor.Template, error)
	SaveFn       func(ctx context.Context, template *jobtailor.Template) error
}

func (s *TemplateService) GetCurrent(ctx context.Context) (*jobtailor.Template, error) {
	return s.GetCurrentFn(ctx)
}

func (s *TemplateService) Save(ctx context.Context, template *jobtailor.Template) error {
	return s.SaveFn(ctx, template)
}

var _ jobtailor.RegistrationService = (*RegistrationService)(nil)

// RegistrationService is a mock implementation of jobtailor.RegistrationService.
type RegistrationService struct {
	StatusFn   func(ctx context.Context, templateHash string) (*jobtailor.RegistrationStatus, error)
	RegisterFn func(ctx context.Context, templateHash string) error
	ClearFn    func(ctx context.Context) error
}

func (s *RegistrationService) Status(ctx context.Context, templateHash string) (*jobtailor.RegistrationStatus, error) {
	return s.StatusFn(ctx, templateHash)
}

func (s *RegistrationService) Register(ctx context.Context, templateHash string) error {
	return s.RegisterFn(ctx, templateHash)
}

func (s *RegistrationService) Clear(ctx context.Context) error {
	return s.ClearFn(ctx)
}
