package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveCardID accepts a full card id or a unique id prefix.
func resolveCardID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("card ID is required")
	}

	cards, err := app.Cards.List(ctx)
	if err != nil {
		return "", err
	}

	for _, c := range cards {
		if c.ID == input {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range cards {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("card not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("card ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// cardIDArg resolves the card named by args[0], or asks for one when the
// session is interactive and no argument was given.
func cardIDArg(ctx context.Context, app *App, args []string) (string, error) {
	if len(args) > 0 {
		return resolveCardID(ctx, app, args[0])
	}
	if !app.Interactive {
		return "", fmt.Errorf("card ID is required")
	}

	var id string
	form := wizardSelectCard(ctx, app, &id)
	if form == nil {
		return "", fmt.Errorf("no cards to choose from")
	}
	if err := form.Run(); err != nil {
		return "", err
	}
	return id, nil
}
