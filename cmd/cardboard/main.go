package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/alexanderramin/cardboard/internal/cli"
	"github.com/alexanderramin/cardboard/internal/intelligence"
	"github.com/alexanderramin/cardboard/internal/llm"
	"github.com/alexanderramin/cardboard/internal/repository"
	"github.com/alexanderramin/cardboard/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	stdinTTY := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if !stdoutTTY || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Use-case logging: CARDBOARD_LOG=true writes one line per use case to stderr.
	var opts []service.Option
	if on, _ := strconv.ParseBool(os.Getenv("CARDBOARD_LOG")); on {
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(os.Stderr)))
	}

	summarizer, err := newSummarizer()
	if err != nil {
		return err
	}

	// Wire the in-memory store and services
	cards := repository.NewMemoryCardRepo()

	app := &cli.App{
		Cards:       service.NewCardService(cards, opts...),
		Tickets:     service.NewTicketService(cards, summarizer, opts...),
		Dashboard:   service.NewDashboardService(cards, opts...),
		Import:      service.NewImportService(cards, opts...),
		Interactive: stdinTTY && stdoutTTY,
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// newSummarizer builds the PRD summarizer from CARDBOARD_LLM_* settings.
// With the LLM disabled every generation fails with a pointer to the setting.
func newSummarizer() (intelligence.Summarizer, error) {
	cfg := llm.LoadConfig()
	if !cfg.Enabled {
		return intelligence.DisabledSummarizer{}, nil
	}

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client, err := llm.NewClient(cfg, observer)
	if err != nil {
		return nil, fmt.Errorf("configuring llm: %w", err)
	}
	return intelligence.NewPRDSummarizer(client, observer), nil
}
