package mock

import (
	"context"

	"github.com/fwojciec/jobtailor"
)

var _ jobtailor.SettingsService = (*SettingsService)(nil)

// SettingsService is a mock implementation of jobtailor.SettingsService.
type SettingsService struct {
	GetFn      func(ctx context.Context) (*jobtailor.Settings, error)
	SaveFn     func(ctx context.Context, settings *jobtailor.Settings) error
	GetValueFn func(ctx context.Context, scope jobtailor.SettingsScope, key string) (string, error)
	SetValueFn func(ctx context.Context, scope jobtailor.SettingsScope, key, value string) error
}

func (s *SettingsService) Get(ctx context.Context) (*jobtailor.Settings, error) {
	return s.GetFn(ctx)
}

func (s *SettingsService) Save(ctx context.Context, settings *jobtailor.Settings) error {
	return s.SaveFn(ctx, settings)
}

func (s *SettingsService) GetValue(ctx context.Context, scope jobtailor.SettingsScope, key string) (string, error) {
	return s.GetValueFn(ctx, scope, key)
}

func (s *SettingsService) SetValue(ctx context.Context, scope jobtailor.SettingsScope, key, value string) error {
	return s.SetValueFn(ctx, scope, key, value)
}
