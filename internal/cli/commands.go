package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dshills/stormcmd/internal/app"
)

// NewCommandsCommand creates the commands command.
func NewCommandsCommand(opts *RootOptions) *cobra.Command {
	var (
		target string
		filter string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List the commands reachable from an element",
		Long: `List every command that dispatching from the target element could
reach, nearest element first, with its description and keystroke.

With --filter the list is narrowed by a fuzzy match over descriptions and
names and sorted best match first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			a, err := opts.open(cmd, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			var entries []app.CommandEntry
			if filter != "" || limit > 0 {
				entries, err = a.SearchCommands(target, filter, limit)
			} else {
				entries, err = a.FindCommands(target)
			}
			if err != nil {
				return err
			}

			from := target
			if from == "" {
				from = cfg.Tree[len(cfg.Tree)-1]
			}
			renderCommands(cmd.OutOrStdout(), from, entries)
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "tag of the element to start from (default: deepest element)")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "fuzzy filter over descriptions and names")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n commands (0 for all)")
	return cmd
}

func renderCommands(w io.Writer, target string, entries []app.CommandEntry) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Commands from %s", target)))
	if len(entries) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  (none)"))
		return
	}

	nameWidth, descWidth := len("COMMAND"), len("DESCRIPTION")
	for _, e := range entries {
		nameWidth = max(nameWidth, lipgloss.Width(e.Name))
		descWidth = max(descWidth, lipgloss.Width(e.Description))
	}

	cell := func(style lipgloss.Style, width int, s string) string {
		return style.Width(width + 2).Render(s)
	}

	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(cell(headerStyle, nameWidth, "COMMAND"))
	sb.WriteString(cell(headerStyle, descWidth, "DESCRIPTION"))
	sb.WriteString(headerStyle.Render("KEYSTROKE"))
	sb.WriteString("\n")

	for _, e := range entries {
		sb.WriteString("  ")
		sb.WriteString(cell(commandStyle, nameWidth, e.Name))
		sb.WriteString(cell(lipgloss.NewStyle(), descWidth, e.Description))
		sb.WriteString(keystrokeStyle.Render(e.Keystroke))
		sb.WriteString("\n")
	}
	fmt.Fprint(w, sb.String())
}
