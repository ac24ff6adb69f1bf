package keystroke

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dshills/stormcmd/internal/command/humanize"
)

var functionKeyRe = regexp.MustCompile(`f[0-9]{1,2}`)

// HumanizeKey renders one key of a stroke. A key that implies shift renders
// as two parts: the shift symbol and the unshifted key.
func HumanizeKey(key, platform string) []string {
	if key == "" {
		return nil
	}

	names := namedKeys(platform)
	if name, ok := names[key]; ok {
		return []string{name}
	}

	if utf8.RuneCountInString(key) == 1 {
		if base, ok := shifted[key]; ok {
			return []string{names["shift"], base}
		}
		up, low := strings.ToUpper(key), strings.ToLower(key)
		if key == up && up != low {
			return []string{names["shift"], up}
		}
		return []string{up}
	}

	if functionKeyRe.MatchString(key) {
		return []string{strings.ToUpper(key)}
	}

	if platform == PlatformDarwin {
		return []string{key}
	}
	return []string{humanize.Capitalize(key)}
}

// Humanize renders a keystroke for display: "alt-shift-a option-ctrl-b" is
// "Alt+Shift+A Alt+Ctrl+B", or "⌥⇧A ⌥⌃B" on darwin.
func Humanize(keystroke, platform string) string {
	if keystroke == "" {
		return ""
	}

	sep := "+"
	if platform == PlatformDarwin {
		sep = ""
	}

	strokes := strings.Split(keystroke, " ")
	out := make([]string, 0, len(strokes))
	for _, stroke := range strokes {
		var keys []string
		for _, key := range splitStroke(stroke) {
			for _, part := range HumanizeKey(key, platform) {
				if !slices.Contains(keys, part) {
					keys = append(keys, part)
				}
			}
		}
		out = append(out, strings.Join(keys, sep))
	}
	return strings.Join(out, " ")
}

// splitStroke splits a stroke on dashes. An empty segment following another
// empty segment is the "-" key itself, as in "cmd--".
func splitStroke(stroke string) []string {
	parts := strings.Split(stroke, "-")
	keys := make([]string, 0, len(parts))
	for i, p := range parts {
		if p == "" && i > 0 && parts[i-1] == "" {
			p = "-"
		}
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
