package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/quicksplit/internal/cliparse"
	"github.com/mmynk/quicksplit/internal/config"
	"github.com/mmynk/quicksplit/internal/export"
	"github.com/mmynk/quicksplit/internal/form"
	"github.com/mmynk/quicksplit/internal/format"
	"github.com/mmynk/quicksplit/internal/metrics"
	"github.com/mmynk/quicksplit/internal/models"
	"github.com/mmynk/quicksplit/internal/service"
	"github.com/mmynk/quicksplit/internal/tui"
	"github.com/mmynk/quicksplit/pkg/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "quicksplit:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags, err := cliparse.ParseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}

	// Setup structured logging
	level := logging.ParseLevel(cfg.Log.Level)
	switch {
	case cfg.Log.File != "":
		closer, err := logging.SetupFile(cfg.Log.File, level)
		if err != nil {
			return err
		}
		defer closer.Close()
	case flags.Batch():
		logging.Setup(stderr, level)
	default:
		logging.Discard()
	}

	mode, err := cfg.Mode()
	if err != nil {
		return err
	}
	if flags.Mode != "" {
		if mode, err = models.ParseSplitMode(flags.Mode); err != nil {
			return err
		}
	}

	formatter, err := format.New(cfg.UI.Currency, cfg.UI.CurrencySymbol, cfg.UI.Locale)
	if err != nil {
		return err
	}

	m, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		return err
	}
	defer func() {
		if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			slog.Warn("Failed to write metrics", "path", cfg.Metrics.Textfile, "error", err)
		}
	}()

	f := form.New(service.NewSplitService(m), mode, cfg.Form.MaxParticipants)
	exporter := export.NewExporter(cfg.Export.Dir, formatter, m)
	slog.Info("quicksplit starting", "mode", mode.String(), "currency", cfg.UI.Currency, "batch", flags.Batch())

	if flags.Batch() {
		return runBatch(context.Background(), flags, f, exporter, formatter, stdout)
	}

	if _, err := tea.NewProgram(tui.New(f, exporter, formatter), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// runBatch fills the form from flags the same way the TUI fills it from
// keystrokes, then prints the result.
func runBatch(ctx context.Context, flags cliparse.Config, f *form.Form, exporter *export.Exporter, formatter *format.Formatter, stdout io.Writer) error {
	f.SetTotal(flags.Total)
	f.SetCount(fmt.Sprint(len(flags.People)))
	for i, p := range flags.People {
		f.SetName(i, p.Name)
		switch f.Mode() {
		case models.ModeShares:
			f.SetWeight(i, p.Value)
		case models.ModeAmounts:
			f.SetAmount(i, p.Value)
		}
	}

	alloc, err := f.Split(ctx)
	if err != nil {
		if errors.Is(err, form.ErrIncomplete) {
			return fmt.Errorf("%w (use -total and one -p per person)", err)
		}
		return err
	}
	if err := export.WriteText(stdout, alloc, formatter); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	if flags.Export {
		path, err := exporter.Export(ctx, alloc)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Saved", path)
	}
	return nil
}
