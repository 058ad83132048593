package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cardboard/internal/cli/formatter"
	"github.com/alexanderramin/cardboard/internal/domain"
	"github.com/spf13/cobra"
)

func newCardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Create, list and vote on cards",
	}

	cmd.AddCommand(
		newCardAddCmd(app),
		newCardListCmd(app),
		newCardShowCmd(app),
		newCardVoteCmd(app),
		newCardSuggestCmd(app),
		newCardImportCmd(app),
		newCardExportCmd(app),
	)

	return cmd
}

func newCardAddCmd(app *App) *cobra.Command {
	var values cardFormValues

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new card",
		Long: "Create a new card. Categories: " + joinCategories() +
			". Durations: " + joinDurations() + ".\n" +
			"Missing fields are prompted for in an interactive terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !values.complete() && app.Interactive {
				if err := cardForm(&values).Run(); err != nil {
					return err
				}
			}

			card, err := app.Cards.Create(cmd.Context(), values.input())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Created card %s %s", card.ID, formatter.CategoryBadge(card.Category))))
			return nil
		},
	}

	cmd.Flags().StringVar(&values.Content, "content", "", "Card statement")
	cmd.Flags().StringVar(&values.Category, "category", "", "Category ("+joinCategories()+")")
	cmd.Flags().StringVar(&values.Duration, "duration", "", "Lifetime label ("+joinDurations()+")")
	cmd.Flags().StringVar(&values.ImageURL, "image", "", "Optional image URL")

	return mutating(cmd)
}

func newCardListCmd(app *App) *cobra.Command {
	var category categoryFlag

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := app.Cards.List(cmd.Context())
			if err != nil {
				return err
			}
			filtered := cards[:0]
			for _, c := range cards {
				if category.matches(c.Category) {
					filtered = append(filtered, c)
				}
			}
			cards = filtered
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCardList(cards))
			return nil
		},
	}

	addCategoryFilter(cmd.Flags(), &category)

	return cmd
}

func newCardShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [card-id]",
		Short: "Show a card and its suggestion history",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cardIDArg(cmd.Context(), app, args)
			if err != nil {
				return err
			}
			card, err := app.Cards.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCardDetail(card, app.now()))
			return nil
		},
	}
}

func newCardVoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "vote <card-id> <approve|reject>",
		Short:     "Approve or reject a card",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(domain.VoteApprove), string(domain.VoteReject)},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCardID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			card, err := app.Cards.Vote(cmd.Context(), id, domain.Vote(strings.ToLower(args[1])))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Vote recorded  "+formatter.VoteTally(card.ApprovedCount, card.RejectedCount)))
			return nil
		},
	}

	return mutating(cmd)
}

func newCardSuggestCmd(app *App) *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "suggest <card-id> [text...]",
		Short: "Add a suggestion to a card",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveCardID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}

			text := strings.Join(args[1:], " ")
			if strings.TrimSpace(text) == "" && app.Interactive {
				if err := suggestionForm(&text, &author).Run(); err != nil {
					return err
				}
			}

			card, err := app.Cards.Suggest(cmd.Context(), id, text, author)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Suggestion added (%d total)", len(card.Suggestions))))
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Suggestion author (default Anonymous)")

	return mutating(cmd)
}

func newCardImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import cards from a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportCards(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Imported %d cards with %d suggestions", len(res.Cards), res.SuggestionCount)))
			return nil
		},
	}

	return mutating(cmd)
}

func newCardExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write all cards to a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Import.ExportCards(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Exported %d cards to %s", n, args[0])))
			return nil
		},
	}
}

func joinCategories() string {
	names := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func joinDurations() string {
	names := make([]string, 0, len(domain.Durations))
	for _, d := range domain.Durations {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}
