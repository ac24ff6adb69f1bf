package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewDispatchCommand creates the dispatch command.
func NewDispatchCommand(opts *RootOptions) *cobra.Command {
	var (
		target  string
		rawArgs string
	)

	cmd := &cobra.Command{
		Use:   "dispatch <command>",
		Short: "Dispatch a command and wait for its handlers",
		Long: `Dispatch a command from the target element up to the root and wait
until every handler has finished.

Exits with status 1 when a handler fails and with status 2 when no handler
matched the command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload any
			if rawArgs != "" {
				if err := json.Unmarshal([]byte(rawArgs), &payload); err != nil {
					return fmt.Errorf("invalid --args: %w", err)
				}
			}

			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			a, err := opts.open(cmd, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			handled, err := a.Dispatch(cmd.Context(), target, args[0], payload)
			if err != nil {
				return err
			}
			if !handled {
				return fmt.Errorf("%w: %s", ErrNotHandled, args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), commandStyle.Render(args[0]), mutedStyle.Render("handled"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "tag of the element to dispatch from (default: deepest element)")
	cmd.Flags().StringVar(&rawArgs, "args", "", "JSON value passed to every handler")
	return cmd
}
