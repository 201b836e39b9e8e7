package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/bmcar/internal/exporter"
)

func newExportCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <collection> [path]",
		Short: "Export a collection as KML",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 2 {
				path = args[1]
			}
			return runExport(cmd, root, args[0], path)
		},
	}
}

func runExport(cmd *cobra.Command, root *rootOptions, query, path string) error {
	e, err := loadEnv(root)
	if err != nil {
		return err
	}
	defer e.Close()

	// Hidden and empty collections can be exported too
	c, err := resolveCollection(e.store.ListCollections(), query)
	if err != nil {
		return err
	}

	if path == "" {
		path, err = exporter.DefaultExportPath(c.Name)
		if err != nil {
			return fmt.Errorf("resolve export path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	bookmarks := e.store.GetBookmarksInCollection(c.ID)
	if err := exporter.ExportKML(f, c, bookmarks); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	e.logger.Info("exported collection", slog.String("collection", c.Name), slog.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bookmarks from %q to %s\n", len(bookmarks), c.Name, path)
	return nil
}
