package cli

import (
	"github.com/spf13/cobra"

	"github.com/nikbrunner/bmcar/internal/icon"
	"github.com/nikbrunner/bmcar/internal/locale"
	"github.com/nikbrunner/bmcar/internal/screen"
	"github.com/nikbrunner/bmcar/internal/surface"
)

// printMap stands in for the map when rendering without a UI.
type printMap struct{}

func (printMap) FocusBookmark(string, string) {}

func newShowCmd(root *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "show [query]",
		Short: "Print the collection list, or one collection's bookmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, root, joinArgs(args), limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "List limit (default: config listLimit, else 6)")
	return cmd
}

func runShow(cmd *cobra.Command, root *rootOptions, query string, limit int) error {
	e, err := loadEnv(root)
	if err != nil {
		return err
	}
	defer e.Close()

	locator, _, err := e.locator()
	if err != nil {
		return err
	}

	stack := screen.NewStack()
	defer stack.Unwind()

	deps := screen.Deps{
		Store:   e.store,
		Map:     printMap{},
		Nav:     stack,
		Locator: locator,
		Limiter: e.limiter(),
		Icons:   icon.NewRenderer(),
		Locale:  e.locale,
		Units:   e.units,
		Logger:  e.logger,
	}
	if limit > 0 {
		deps.Limiter = screen.FixedLimit(limit)
	}
	stack.Push(screen.New(deps))

	if query != "" {
		c, err := resolveCollection(e.browsable(), query)
		if err != nil {
			return err
		}
		stack.Top().Open(c.ID)
	}

	renderer := surface.PlainRenderer{Empty: e.locale.Label(locale.LabelEmpty)}
	return renderer.Write(cmd.OutOrStdout(), stack.Top().Render())
}
