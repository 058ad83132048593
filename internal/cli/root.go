package cli

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/alexanderramin/cardboard/internal/app"
	"github.com/alexanderramin/cardboard/internal/service"
	"github.com/spf13/cobra"
)

// EnvCardsFile names the card file used when --cards is not given.
const EnvCardsFile = "CARDBOARD_CARDS"

// annotationMutates marks commands whose changes are written back to the
// card file.
const annotationMutates = "cardboard/mutates"

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Cards     service.CardService
	Tickets   service.TicketService
	Dashboard service.DashboardService
	Import    service.ImportService

	// Optional use-case overrides. When nil the service of the same concern
	// is used.
	GenerateTicket app.GenerateTicketUseCase
	ViewDashboard  app.DashboardUseCase

	// CardsFile is loaded before each command and, for mutating commands,
	// rewritten afterwards. Empty keeps cards in memory only.
	CardsFile string
	// Interactive enables huh prompts and the spinner.
	Interactive bool
	// Now anchors relative timestamps in output.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "cardboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.CardsFile == "" {
		app.CardsFile = os.Getenv(EnvCardsFile)
	}

	root := &cobra.Command{
		Use:           "cardboard",
		Short:         "Opinion cards, votes, suggestions and generated PRD tickets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadCardsFile(cmd.Context(), app)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationMutates] != "true" {
				return nil
			}
			return saveCardsFile(cmd.Context(), app)
		},
	}
	root.PersistentFlags().StringVar(&app.CardsFile, "cards", app.CardsFile,
		"Card file (YAML or JSON) to load and save (env "+EnvCardsFile+")")

	root.AddCommand(
		newCardCmd(app),
		newTicketCmd(app),
		newDashboardCmd(app),
	)

	return root
}

func loadCardsFile(ctx context.Context, app *App) error {
	if app.CardsFile == "" || app.Import == nil {
		return nil
	}
	if _, err := os.Stat(app.CardsFile); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	_, err := app.Import.ImportCards(ctxOrBackground(ctx), app.CardsFile)
	return err
}

func saveCardsFile(ctx context.Context, app *App) error {
	if app.CardsFile == "" || app.Import == nil {
		return nil
	}
	_, err := app.Import.ExportCards(ctxOrBackground(ctx), app.CardsFile)
	return err
}

func ctxOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func mutating(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationMutates] = "true"
	return cmd
}
