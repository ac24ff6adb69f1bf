package menu

import (
	"fmt"
	"math"
)

// Template is a menu fragment as loaded from a file.
type Template struct {
	// Items are merged in order.
	Items []Item
	// Specificity applies to every item; Unbounded when the fragment omits it.
	Specificity Specificity
}

// ParseTemplate reads a fragment of the form
//
//	specificity = 10     # optional
//	[[menu]]
//	label = "&File"
//	...
//
// from an already decoded document.
func ParseTemplate(doc map[string]any) (Template, error) {
	raw, ok := doc["menu"]
	if !ok {
		return Template{}, fmt.Errorf("%w: missing \"menu\" list", ErrInvalidTemplate)
	}

	items, err := decodeList("menu", raw)
	if err != nil {
		return Template{}, err
	}

	t := Template{Items: items, Specificity: Unbounded}
	if v, ok := doc["specificity"]; ok {
		s, err := asSpecificity(v)
		if err != nil {
			return Template{}, err
		}
		t.Specificity = s
	}
	return t, nil
}

func asSpecificity(v any) (Specificity, error) {
	switch n := v.(type) {
	case int:
		return Specificity(n), nil
	case int64:
		return Specificity(n), nil
	case uint64:
		if n > math.MaxInt {
			return Unbounded, nil
		}
		return Specificity(n), nil
	case float64:
		if math.IsInf(n, 1) || n >= math.MaxInt {
			return Unbounded, nil
		}
		if n != math.Trunc(n) {
			return 0, &DecodeError{Path: "specificity", Want: "integer", Got: v}
		}
		return Specificity(n), nil
	case string:
		if n == "unbounded" || n == "infinity" {
			return Unbounded, nil
		}
	}
	return 0, &DecodeError{Path: "specificity", Want: "integer", Got: v}
}
