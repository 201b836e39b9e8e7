package cli

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/bmcar/internal/picker"
	"github.com/nikbrunner/bmcar/internal/search"
	"github.com/nikbrunner/bmcar/internal/tui"
)

var (
	runProgram = func(m tea.Model) (tea.Model, error) {
		return tea.NewProgram(m, tea.WithAltScreen()).Run()
	}
	runPicker = func(p picker.Picker) (picker.Picker, error) {
		final, err := tea.NewProgram(p).Run()
		if err != nil {
			return p, err
		}
		return final.(picker.Picker), nil
	}
)

func newOpenCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "open <query>",
		Short: "Browse straight into the collection matching query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(cmd, root, joinArgs(args))
		},
	}
}

func runOpen(cmd *cobra.Command, root *rootOptions, query string) error {
	e, err := loadEnv(root)
	if err != nil {
		return err
	}
	defer e.Close()

	collections := e.browsable()
	match, results := search.Resolve(collections, query)
	if match == nil {
		if len(results) == 0 {
			return fmt.Errorf("no collection matches %q", query)
		}

		chosen, err := runPicker(picker.New(results, query))
		if err != nil {
			return fmt.Errorf("run picker: %w", err)
		}
		match = chosen.SelectedCollection()
		if match == nil {
			return nil
		}
	}

	return browse(cmd, e, match.ID)
}

func runBrowse(cmd *cobra.Command, root *rootOptions, collectionID string) error {
	e, err := loadEnv(root)
	if err != nil {
		return err
	}
	defer e.Close()

	return browse(cmd, e, collectionID)
}

func browse(_ *cobra.Command, e *env, collectionID string) error {
	locator, updates, err := e.locator()
	if err != nil {
		return err
	}

	app := tui.NewApp(tui.AppParams{
		Store:          e.store,
		Storage:        e.storage,
		Locator:        locator,
		Updates:        updates,
		Locale:         e.locale,
		Units:          e.units,
		ListLimit:      e.cfg.ListLimit,
		OpenCollection: collectionID,
		Logger:         e.logger,
	})

	final, err := runProgram(app)
	if finalApp, ok := final.(tui.App); ok {
		finalApp.Shutdown()
	}
	if err != nil {
		e.logger.Error("tui exited", slog.Any("err", err))
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
