package main

import (
	"fmt"

	"github.com/fwojciec/jobtailor"
)

// Run executes the "settings show" command.
func (c *SettingsShowCmd) Run(deps *Dependencies) error {
	settings, err := deps.Settings.Get(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	apiKey := "(not set)"
	if settings.APIKey != "" {
		apiKey = "(set)"
	}

	fmt.Fprintf(deps.Stdout, "provider        %s\n", settings.Provider)
	fmt.Fprintf(deps.Stdout, "apiKey          %s\n", apiKey)
	fmt.Fprintf(deps.Stdout, "autoDetect      %t\n", settings.AutoDetect)
	fmt.Fprintf(deps.Stdout, "floatingButton  %t\n", settings.FloatingButton)
	fmt.Fprintf(deps.Stdout, "keywordFloor    %d\n", settings.KeywordFloor)
	fmt.Fprintf(deps.Stdout, "structureFloor  %d\n", settings.StructureFloor)
	fmt.Fprintf(deps.Stdout, "elementFloor    %d\n", settings.ElementFloor)
	return nil
}

// Run executes the "settings set" command.
func (c *SettingsSetCmd) Run(deps *Dependencies) error {
	scope := jobtailor.SettingsScope(c.Scope)
	if err := deps.Settings.SetValue(deps.Ctx, scope, c.Key, c.Value); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Set %s/%s\n", c.Scope, c.Key)
	return nil
}
