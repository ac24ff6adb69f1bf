package menu

import "strings"

// PlatformDarwin keeps mnemonic markers in labels.
const PlatformDarwin = "darwin"

// NormalizeLabel returns the label used for matching. On every platform but
// darwin the "&" mnemonic markers are removed.
func NormalizeLabel(label, platform string) string {
	if platform == PlatformDarwin {
		return label
	}
	return strings.ReplaceAll(label, "&", "")
}

// Matches reports whether a and b are the same menu entry: both are not
// separators, their normalized labels are equal and either both or neither
// have a submenu.
func Matches(a, b Item, platform string) bool {
	if a.IsSeparator() || b.IsSeparator() {
		return false
	}
	if a.HasSubmenu() != b.HasSubmenu() {
		return false
	}
	return NormalizeLabel(a.Label, platform) == NormalizeLabel(b.Label, platform)
}
