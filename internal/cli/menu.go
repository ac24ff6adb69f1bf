package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/stormcmd/internal/menu"
)

// NewMenuCommand creates the menu command.
func NewMenuCommand(opts *RootOptions) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "menu [files...]",
		Short: "Compose menu fragments and print the result as JSON",
		Long: `Compose the configured menu fragments, plus any files given as
arguments, and print the composed menu as JSON.

With --watch the fragments are reloaded and the menu printed again whenever
one of the files changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg.MenuPaths = append(cfg.MenuPaths, args...)
			if watch {
				cfg.Watch = true
			}

			a, err := opts.open(cmd, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if err := printMenu(out, a.MenuTemplate()); err != nil {
				return err
			}
			if !cfg.Watch {
				return nil
			}
			return a.Run(cmd.Context(), func(items []menu.Item) {
				if err := printMenu(out, items); err != nil {
					a.Logger.Error("print menu", "err", err)
				}
			})
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reprint the menu when a fragment changes")
	return cmd
}

func printMenu(w io.Writer, items []menu.Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
