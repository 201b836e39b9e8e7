package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/bmcar/internal/importer"
	"github.com/nikbrunner/bmcar/internal/model"
	"github.com/nikbrunner/bmcar/internal/storage"
)

func newImportCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.kml>",
		Short: "Import a KML bookmark export as a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, root, args[0])
		},
	}
}

func runImport(cmd *cobra.Command, root *rootOptions, path string) error {
	e, err := loadEnv(root)
	if err != nil {
		return err
	}
	defer e.Close()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	collection, bookmarks, err := importer.ParseKML(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	var added int
	var replaced bool
	updated, err := storage.Update(e.storage, func(store *model.Store) error {
		added, replaced = store.ImportCollection(collection, bookmarks)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save bookmarks: %w", err)
	}
	e.store = updated

	e.logger.Info("imported collection",
		slog.String("file", path),
		slog.String("collection", collection.Name),
		slog.Int("bookmarks", added),
		slog.Bool("replaced", replaced))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %d bookmarks into %q", added, collection.Name)
	if replaced {
		fmt.Fprint(out, " (replaced existing collection)")
	}
	fmt.Fprintln(out)
	return nil
}
