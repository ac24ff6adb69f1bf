package keystroke

import (
	"regexp"
	"strings"
)

var acceleratorModifiers = []struct {
	re   *regexp.Regexp
	name string
}{
	{regexp.MustCompile(`(?i)shift`), "Shift"},
	{regexp.MustCompile(`(?i)cmd`), "Command"},
	{regexp.MustCompile(`(?i)ctrl`), "Ctrl"},
	{regexp.MustCompile(`(?i)alt`), "Alt"},
}

// Accelerator converts a single stroke into the accelerator string consumed
// by native menus: "cmd-shift-+" is "Command+Shift+Plus". It returns "" for
// an empty stroke.
func Accelerator(stroke string) string {
	if stroke == "" {
		return ""
	}

	parts := splitAccelerator(stroke)
	last := len(parts) - 1

	key := strings.Replace(strings.ToUpper(parts[last]), "+", "Plus", 1)

	keys := make([]string, 0, len(parts))
	for _, mod := range parts[:last] {
		for _, r := range acceleratorModifiers {
			mod = r.re.ReplaceAllString(mod, r.name)
		}
		keys = append(keys, mod)
	}
	keys = append(keys, key)
	return strings.Join(keys, "+")
}

// splitAccelerator splits on every dash that is followed by another
// character, so a trailing dash stays part of the key.
func splitAccelerator(stroke string) []string {
	var (
		parts []string
		start int
	)
	for i := 0; i < len(stroke)-1; i++ {
		if stroke[i] == '-' {
			parts = append(parts, stroke[start:i])
			start = i + 1
		}
	}
	return append(parts, stroke[start:])
}
