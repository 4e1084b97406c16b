package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/jobtailor"
)

// Run executes the "template show" command.
func (c *TemplateShowCmd) Run(deps *Dependencies) error {
	template, err := deps.Templates.GetCurrent(deps.Ctx)
	if err != nil {
		if jobtailor.ErrorCode(err) == jobtailor.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "No template saved. Use 'jobtailor template set <file>' first.")
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, template.Content)
	fmt.Fprintf(deps.Stderr, "hash=%s updated=%s\n", template.Hash, template.UpdatedAt.Format("2006-01-02"))
	return nil
}

// Run executes the "template set" command.
func (c *TemplateSetCmd) Run(deps *Dependencies) error {
	content, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.Path, err)
	}

	previous, _ := deps.Templates.GetCurrent(deps.Ctx)

	template := &jobtailor.Template{Content: string(content)}
	if err := deps.Templates.Save(deps.Ctx, template); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	// A new template invalidates the efficient-path registration.
	if previous != nil && previous.Hash != template.Hash {
		_ = deps.Registrations.Clear(deps.Ctx)
	}

	fmt.Fprintf(deps.Stdout, "Saved template (%d bytes, hash %s)\n", len(content), template.Hash)
	return nil
}
