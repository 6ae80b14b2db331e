// Package prompt provides interactive queue and track selection forms.
package prompt

import (
	"context"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
)

// Prompt implements interactive completion with terminal select forms.
type Prompt struct{}

// New creates an interactive prompt.
func New() *Prompt {
	return &Prompt{}
}

// ChooseOne presents the candidates as a select form and blocks until one
// is chosen. The default choice, when present among the candidates, is
// pre-selected.
func (p *Prompt) ChooseOne(ctx context.Context, prompt string, candidates []string, defaultChoice string) (string, error) {
	if len(candidates) == 0 {
		return "", errors.New("no candidates to choose from")
	}

	options := make([]huh.Option[string], len(candidates))
	for i, c := range candidates {
		options[i] = huh.NewOption(c, c)
	}

	selected := defaultChoice
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(prompt).
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return "", errors.Wrap(err, "selection cancelled")
	}
	return selected, nil
}

// PromptName asks for the name of a queue to create.
func (p *Prompt) PromptName(ctx context.Context) (string, error) {
	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New queue name").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name must not be empty")
					}
					return nil
				}).
				Value(&name),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return "", errors.Wrap(err, "input cancelled")
	}
	return strings.TrimSpace(name), nil
}
