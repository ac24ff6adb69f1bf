package humanize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/stormcmd/internal/command/humanize"
)

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Hello", humanize.Capitalize("hello"))
	assert.Equal(t, "Hello world", humanize.Capitalize("hello world"))
	assert.Equal(t, "Élan", humanize.Capitalize("élan"))
	assert.Equal(t, "", humanize.Capitalize(""))
}

func TestCamelize(t *testing.T) {
	assert.Equal(t, "helloWorld", humanize.Camelize("hello-world"))
	assert.Equal(t, "helloWorld", humanize.Camelize("hello_world"))
	assert.Equal(t, "helloBigWorld", humanize.Camelize("hello__big--world"))
	assert.Equal(t, "", humanize.Camelize(""))
}

func TestUncamelcase(t *testing.T) {
	assert.Equal(t, "Hello World", humanize.Uncamelcase("helloWorld"))
	assert.Equal(t, "Hello world", humanize.Uncamelcase("hello_world"))
	assert.Equal(t, "", humanize.Uncamelcase(""))
}

func TestUndasherize(t *testing.T) {
	assert.Equal(t, "Hello World", humanize.Undasherize("hello-world"))
	assert.Equal(t, "Files", humanize.Undasherize("files"))
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "hello_world", humanize.Underscore("HelloWorld"))
	assert.Equal(t, "hello_world", humanize.Underscore("hello-world"))
	assert.Equal(t, "", humanize.Underscore(""))
}

func TestDasherize(t *testing.T) {
	assert.Equal(t, "hello-world", humanize.Dasherize("HelloWorld"))
	assert.Equal(t, "hello-world", humanize.Dasherize("hello_world"))
}

func TestEventName(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"core:file-save", "", "Core: File Save"},
		{"files:close-all", "", "Files: Close All"},
		{"text-editor:fold-all", "Fold every region", "Text Editor: Fold every region"},
		{"workspace", "", "Workspace"},
		{"workspace:", "", "Workspace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanize.EventName(tt.name, tt.doc))
		})
	}
}
