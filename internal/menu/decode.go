package menu

import (
	"fmt"
	"slices"
)

// whitelist holds the item keys Decode reads. Any other key of a contributed
// item is dropped.
var whitelist = []string{
	"type",
	"label",
	"enabled",
	"visible",
	"command",
	"submenu",
	"commandDetail",
	"role",
	"accelerator",
	"before",
	"after",
	"beforeGroupContaining",
	"afterGroupContaining",
}

// Fields returns the item keys Decode reads.
func Fields() []string {
	return slices.Clone(whitelist)
}

// Decode builds an Item from a generic map such as one produced by a YAML,
// TOML or JSON decoder. Only the keys listed by Fields are read.
func Decode(fields map[string]any) (Item, error) {
	return decodeAt("", fields)
}

func decodeAt(path string, fields map[string]any) (Item, error) {
	var (
		item Item
		err  error
	)

	for _, key := range whitelist {
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}
		at := join(path, key)

		switch key {
		case "type":
			item.Type, err = asString(at, v)
		case "label":
			item.Label, err = asString(at, v)
		case "command":
			item.Command, err = asString(at, v)
		case "role":
			item.Role, err = asString(at, v)
		case "accelerator":
			item.Accelerator, err = asString(at, v)
		case "enabled":
			item.Enabled, err = asBool(at, v)
		case "visible":
			item.Visible, err = asBool(at, v)
		case "commandDetail":
			item.CommandDetail, err = asMap(at, v)
		case "before":
			item.Before, err = asStrings(at, v)
		case "after":
			item.After, err = asStrings(at, v)
		case "beforeGroupContaining":
			item.BeforeGroupContaining, err = asStrings(at, v)
		case "afterGroupContaining":
			item.AfterGroupContaining, err = asStrings(at, v)
		case "submenu":
			item.Submenu, err = decodeList(at, v)
		}
		if err != nil {
			return Item{}, err
		}
	}

	return item, nil
}

// DecodeList decodes a list of generic maps into items.
func DecodeList(v any) ([]Item, error) {
	return decodeList("", v)
}

func decodeList(path string, v any) ([]Item, error) {
	var raw []map[string]any
	switch list := v.(type) {
	case []map[string]any:
		raw = list
	case []any:
		raw = make([]map[string]any, 0, len(list))
		for i, elem := range list {
			m, ok := elem.(map[string]any)
			if !ok {
				return nil, &DecodeError{Path: fmt.Sprintf("%s[%d]", path, i), Want: "table", Got: elem}
			}
			raw = append(raw, m)
		}
	default:
		return nil, &DecodeError{Path: path, Want: "list", Got: v}
	}

	items := make([]Item, 0, len(raw))
	for i, m := range raw {
		item, err := decodeAt(fmt.Sprintf("%s[%d]", path, i), m)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func asString(path string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &DecodeError{Path: path, Want: "string", Got: v}
	}
	return s, nil
}

func asBool(path string, v any) (*bool, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, &DecodeError{Path: path, Want: "bool", Got: v}
	}
	return &b, nil
}

func asMap(path string, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &DecodeError{Path: path, Want: "table", Got: v}
	}
	return m, nil
}

// asStrings accepts a single string or a list of strings.
func asStrings(path string, v any) ([]string, error) {
	switch s := v.(type) {
	case string:
		return []string{s}, nil
	case []string:
		return s, nil
	case []any:
		out := make([]string, 0, len(s))
		for i, elem := range s {
			str, ok := elem.(string)
			if !ok {
				return nil, &DecodeError{Path: fmt.Sprintf("%s[%d]", path, i), Want: "string", Got: elem}
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, &DecodeError{Path: path, Want: "string list", Got: v}
	}
}
