package keystroke

// PlatformDarwin selects symbol rendering.
const PlatformDarwin = "darwin"

var macKeys = map[string]string{
	"cmd":    "⌘",
	"ctrl":   "⌃",
	"alt":    "⌥",
	"option": "⌥",
	"shift":  "⇧",
	"enter":  "⏎",
	"left":   "←",
	"right":  "→",
	"up":     "↑",
	"down":   "↓",
}

var otherKeys = map[string]string{
	"cmd":    "Cmd",
	"ctrl":   "Ctrl",
	"alt":    "Alt",
	"option": "Alt",
	"shift":  "Shift",
	"enter":  "Enter",
	"left":   "Left",
	"right":  "Right",
	"up":     "Up",
	"down":   "Down",
}

// shifted maps a character typed with shift to its unshifted key, so that
// "~" renders as Shift+`.
var shifted = map[string]string{
	"~":  "`",
	"_":  "-",
	"+":  "=",
	"|":  "\\",
	"{":  "[",
	"}":  "]",
	":":  ";",
	"\"": "'",
	"<":  ",",
	">":  ".",
	"?":  "/",
}

func namedKeys(platform string) map[string]string {
	if platform == PlatformDarwin {
		return macKeys
	}
	return otherKeys
}
