package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/jobtailor"
	main "github.com/fwojciec/jobtailor/cmd/jobtailor"
	"github.com/fwojciec/jobtailor/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints settings with the API key masked", func(t *testing.T) {
		t.Parallel()

		settings := &mock.SettingsService{
			GetFn: func(_ context.Context) (*jobtailor.Settings, error) {
				s := jobtailor.DefaultSettings()
				s.APIKey = "sk-ant-secret"
				s.Provider = jobtailor.ProviderAnthropic
				return s, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Settings: settings,
		}

		cmd := &main.SettingsShowCmd{}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "anthropic")
		assert.Contains(t, output, "(set)")
		assert.NotContains(t, output, "sk-ant-secret")
	})

	t.Run("marks a missing API key", func(t *testing.T) {
		t.Parallel()

		settings := &mock.SettingsService{
			GetFn: func(_ context.Context) (*jobtailor.Settings, error) {
				return jobtailor.DefaultSettings(), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Settings: settings,
		}

		cmd := &main.SettingsShowCmd{}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "(not set)")
	})
}

func TestSettingsSetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("sets a value in the given scope", func(t *testing.T) {
		t.Parallel()

		var gotScope jobtailor.SettingsScope
		var gotKey, gotValue string
		settings := &mock.SettingsService{
			SetValueFn: func(_ context.Context, scope jobtailor.SettingsScope, key, value string) error {
				gotScope, gotKey, gotValue = scope, key, value
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Settings: settings,
		}

		cmd := &main.SettingsSetCmd{Scope: "local", Key: "keywordFloor", Value: "4"}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Equal(t, jobtailor.ScopeLocal, gotScope)
		assert.Equal(t, "keywordFloor", gotKey)
		assert.Equal(t, "4", gotValue)
		assert.Contains(t, stdout.String(), "Set local/keywordFloor")
	})

	t.Run("surfaces rejected keys", func(t *testing.T) {
		t.Parallel()

		setErr := jobtailor.Errorf(jobtailor.EINVALID, "unknown setting key: bogus")
		settings := &mock.SettingsService{
			SetValueFn: func(_ context.Context, scope jobtailor.SettingsScope, key, value string) error {
				return setErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Settings: settings,
		}

		cmd := &main.SettingsSetCmd{Scope: "sync", Key: "bogus", Value: "1"}

		err := cmd.Run(deps)
		assert.Equal(t, setErr, err)
		assert.Contains(t, stderr.String(), "unknown setting key")
	})
}
