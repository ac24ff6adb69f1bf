// Package cli implements the stormcmd command line.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dshills/stormcmd/internal/app"
	"github.com/dshills/stormcmd/internal/config"
)

// ErrNotHandled is returned by dispatch when no handler matched. main maps
// it to exit status 2.
var ErrNotHandled = errors.New("command not handled")

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Platform   string
	Plugins    []string
	Menus      []string
}

// NewRootCommand creates the root command for the stormcmd CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "stormcmd",
		Short: "Command dispatch and menu composition for stormcmd",
		Long: `stormcmd composes menu fragments and dispatches commands through a
tree of tagged elements, with commands and menus contributed by Lua plugins.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (.toml, .yaml or .json)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.Platform, "platform", "", "platform for labels and keystrokes (default: current OS)")
	cmd.PersistentFlags().StringSliceVar(&opts.Plugins, "plugin", nil, "Lua plugin file (repeatable)")
	cmd.PersistentFlags().StringSliceVar(&opts.Menus, "menu", nil, "menu fragment file (repeatable)")

	cmd.AddCommand(NewMenuCommand(opts))
	cmd.AddCommand(NewCommandsCommand(opts))
	cmd.AddCommand(NewDispatchCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// loadConfig resolves the configuration and applies the flags that were
// set explicitly.
func (o *RootOptions) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if flags.Changed("platform") {
		cfg.Platform = o.Platform
	}
	if flags.Changed("plugin") {
		cfg.PluginPaths = o.Plugins
	}
	if flags.Changed("menu") {
		cfg.MenuPaths = o.Menus
	}
	return cfg, cfg.Validate()
}

// open builds the application, runs the plugins and loads the menus.
func (o *RootOptions) open(cmd *cobra.Command, cfg config.Config) (*app.App, error) {
	a, err := app.New(cfg, app.WithLogger(app.NewLogger(cfg, cmd.ErrOrStderr())))
	if err != nil {
		return nil, err
	}
	if err := a.LoadPlugins(); err != nil {
		_ = a.Close()
		return nil, err
	}
	if err := a.LoadMenus(); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}
