package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/cardboard/internal/cli/formatter"
	"github.com/alexanderramin/cardboard/internal/contract"
	"github.com/spf13/cobra"
)

func newTicketCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Build PRD tickets from cards",
	}

	cmd.AddCommand(
		newTicketPreviewCmd(app),
		newTicketGenerateCmd(app),
	)

	return cmd
}

func newTicketPreviewCmd(app *App) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "preview [card-id]",
		Short: "Show the prompt and document without generating a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cardIDArg(cmd.Context(), app, args)
			if err != nil {
				return err
			}
			preview, err := app.Tickets.Preview(cmd.Context(), id, notes)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTicketPreview(preview))
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Free-text description to include")

	return cmd
}

func newTicketGenerateCmd(app *App) *cobra.Command {
	var notes, out string

	cmd := &cobra.Command{
		Use:   "generate [card-id]",
		Short: "Summarize a card's suggestions and render the PRD ticket",
		Long: "Summarize a card's suggestions with the configured LLM, append the summary\n" +
			"to the card as a ChatGPT suggestion and print the ticket document.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cardIDArg(cmd.Context(), app, args)
			if err != nil {
				return err
			}

			if app.Interactive {
				proceed, err := confirmRegenerate(cmd, app, id)
				if err != nil || !proceed {
					return err
				}
			}

			stop := func() {}
			if app.Interactive {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Generating PRD...")
			}
			res, err := app.generateTicketUseCase().Generate(cmd.Context(), contract.GenerateRequest{CardID: id, Notes: notes})
			stop()
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Failure(formatter.GenerateFailedMsg))
				return err
			}

			if out != "" {
				if err := os.WriteFile(out, []byte(res.Document), 0o644); err != nil {
					return fmt.Errorf("writing ticket: %w", err)
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGenerateResult(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Free-text description; replaces the suggestion highlights")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Also write the document to this file")

	return mutating(cmd)
}

// confirmRegenerate asks before generating again for a card that already
// carries a generated summary.
func confirmRegenerate(cmd *cobra.Command, app *App, id string) (bool, error) {
	card, err := app.Cards.GetByID(cmd.Context(), id)
	if err != nil {
		return false, err
	}
	for _, s := range card.Suggestions {
		if !s.IsAutomated() {
			continue
		}
		proceed := false
		if err := wizardConfirm("This card already has a generated summary. Generate another?", &proceed).Run(); err != nil {
			return false, err
		}
		if !proceed {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
		}
		return proceed, nil
	}
	return true, nil
}
