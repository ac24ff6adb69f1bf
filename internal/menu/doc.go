// Package menu composes a declarative menu tree out of fragments contributed
// by independent features.
//
// Items are matched by label and shape: two non-separator items are the same
// entry when their labels are equal after mnemonic markers ("&") are stripped
// (except on darwin) and either both or neither carry a submenu.
//
// Merging an item that matches an existing entry folds its submenu into the
// entry's submenu. A leaf replaces the existing entry in place when its
// specificity is at least the entry's. Separators never match; one is dropped
// when it would directly follow another.
//
//	m := menu.New()
//	m.Merge(menu.Item{Label: "&File", Submenu: []menu.Item{{Label: "Open", Command: "files:open"}}}, menu.Unbounded)
//	m.Merge(menu.Item{Label: "File", Submenu: []menu.Item{{Label: "Close", Command: "files:close"}}}, menu.Unbounded)
//	// m.Items() -> File{Open, Close}
//
// Unmerge reverses a merge. A Manager owns one menu and hands out a
// Contribution per fragment whose Dispose unmerges it again.
package menu
