// Package keystroke renders keystroke specifications for display and for
// native menu accelerators.
//
// A keystroke is a space separated sequence of strokes; each stroke joins
// modifiers and a key with dashes:
//
//	ctrl-shift-p
//	cmd-k cmd-s
//	cmd--          (the "-" key)
//
// Humanize produces "Ctrl+Shift+P" (or "⌃⇧P" on darwin). Accelerator produces
// the "Command+Shift+P" form expected by native menu renderers.
package keystroke
