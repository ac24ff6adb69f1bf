// Package humanize converts command and identifier names into display text.
package humanize

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)

	camelizeRe    = regexp.MustCompile(`[_-]+(\w)`)
	uncamelcaseRe = regexp.MustCompile(`([A-Z])|_+`)
	underscoreRe  = regexp.MustCompile(`([A-Z])|-+`)
	dasherizeRe   = regexp.MustCompile(`([A-Z])|_`)
)

// Capitalize upper-cases the first character: "hello" -> "Hello".
func Capitalize(word string) string {
	if word == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(word)
	return upper.String(word[:size]) + word[size:]
}

// decapitalize lower-cases the first character.
func decapitalize(word string) string {
	if word == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(word)
	return lower.String(word[:size]) + word[size:]
}

// Camelize joins dashed or underscored words: "hello-world" -> "helloWorld".
func Camelize(s string) string {
	return camelizeRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := camelizeRe.FindStringSubmatch(m)
		return upper.String(sub[1])
	})
}

// Uncamelcase splits camel case into words: "helloWorld" -> "Hello World".
func Uncamelcase(s string) string {
	if s == "" {
		return ""
	}
	out := uncamelcaseRe.ReplaceAllStringFunc(s, func(m string) string {
		if strings.HasPrefix(m, "_") {
			return " "
		}
		return " " + m
	})
	return Capitalize(strings.TrimSpace(out))
}

// Undasherize turns dashed words into title case: "hello-world" -> "Hello World".
func Undasherize(s string) string {
	if s == "" {
		return ""
	}
	parts := strings.Split(s, "-")
	for i, p := range parts {
		parts[i] = Capitalize(p)
	}
	return strings.Join(parts, " ")
}

// Underscore converts camel or dashed names to snake case:
// "HelloWorld" -> "hello_world".
func Underscore(s string) string {
	if s == "" {
		return ""
	}
	return underscoreRe.ReplaceAllStringFunc(decapitalize(s), func(m string) string {
		if strings.HasPrefix(m, "-") {
			return "_"
		}
		return "_" + lower.String(m)
	})
}

// Dasherize converts camel or snake names to kebab case:
// "HelloWorld" -> "hello-world".
func Dasherize(s string) string {
	if s == "" {
		return ""
	}
	return dasherizeRe.ReplaceAllStringFunc(decapitalize(s), func(m string) string {
		if m == "_" {
			return "-"
		}
		return "-" + lower.String(m)
	})
}

// EventName renders a namespaced command name for display:
// "core:file-save" -> "Core: File Save". A non-empty doc replaces the
// humanized event part.
func EventName(name, doc string) string {
	namespace, event, _ := strings.Cut(name, ":")
	event, _, _ = strings.Cut(event, ":")
	if event == "" {
		return Undasherize(namespace)
	}
	if doc == "" {
		doc = Undasherize(event)
	}
	return Undasherize(namespace) + ": " + doc
}
