// Package config provides the configuration for stormcmd.
//
// Configuration is resolved in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by the CLI)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← STORMCMD_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← stormcmd.toml / .yaml / .json
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Basic Usage
//
//	cfg, err := config.Load("stormcmd.toml")
//	if err != nil {
//	    return err
//	}
//
// # Environment Variables
//
//	STORMCMD_PLATFORM      platform used for menu labels and keystrokes
//	STORMCMD_LOG_LEVEL     debug, info, warn or error
//	STORMCMD_MENUS         comma separated menu fragment files
//	STORMCMD_PLUGINS       comma separated Lua plugin files
//	STORMCMD_TREE          comma separated tag chain, root first
//	STORMCMD_WATCH         reload menu fragments on change
//	STORMCMD_DEBOUNCE      coalescing delay for reloads, e.g. 200ms
package config
