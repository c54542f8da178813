package html5up

import (
	"context"
	"testing"
)

func TestStripXMLSpace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preserve value removed",
			input:    `<pre xml:space="preserve">code</pre>`,
			expected: "<pre>code</pre>",
		},
		{
			name:     "single quoted value removed",
			input:    `<div xml:space='default'>`,
			expected: "<div>",
		},
		{
			name:     "no attribute is a no-op",
			input:    "<pre>code</pre>",
			expected: "<pre>code</pre>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := stripXMLSpace(tt.input)
			if got != tt.expected {
				t.Errorf("stripXMLSpace() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStripStyleType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "type attribute dropped",
			input:    `<style type="text/css">body{}</style>`,
			expected: "<style>body{}</style>",
		},
		{
			name:     "other attributes survive",
			input:    `<style type="text/css" media="screen">`,
			expected: `<style media="screen">`,
		},
		{
			name:     "bare style tag unchanged",
			input:    "<style>body{}</style>",
			expected: "<style>body{}</style>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := stripStyleType(tt.input)
			if got != tt.expected {
				t.Errorf("stripStyleType() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestUnwrapCDATA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare CDATA section",
			input:    "<style>\n<![CDATA[\nbody { margin: 0; }\n]]>\n</style>",
			expected: "<style>\nbody { margin: 0; }\n</style>",
		},
		{
			name:     "comment-guarded CDATA section",
			input:    "<style>/*<![CDATA[*/ body { margin: 0; } /*]]>*/</style>",
			expected: "<style>body { margin: 0; }</style>",
		},
		{
			name:     "no CDATA is a no-op",
			input:    "<style>body { margin: 0; }</style>",
			expected: "<style>body { margin: 0; }</style>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := unwrapCDATA(tt.input)
			if got != tt.expected {
				t.Errorf("unwrapCDATA() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCleanCSSComments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "line comment closer removed",
			input:    "body{}\n// -->",
			expected: "body{}",
		},
		{
			name:     "XML end closer removed",
			input:    "body{} /* XML end]]> */",
			expected: "body{}",
		},
		{
			name:     "stray CDATA end marker removed",
			input:    "a{} ]]> b{}",
			expected: "a{}b{}",
		},
		{
			name:     "clean CSS unchanged",
			input:    "body { margin: 0; }",
			expected: "body { margin: 0; }",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := cleanCSSComments(tt.input)
			if got != tt.expected {
				t.Errorf("cleanCSSComments() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRewriteStyleElements(t *testing.T) {
	t.Parallel()

	r := &cdataRewriter{}
	input := "<style type=\"text/css\">\n<![CDATA[\nbody { margin: 0; }\n]]>\n</style>"
	expected := "<style>\nbody { margin: 0; }\n</style>"

	got := r.RewriteStyleElements(context.Background(), input)
	if got != expected {
		t.Errorf("RewriteStyleElements() = %q, want %q", got, expected)
	}
}

func TestCleanStyleContentsScopedToStyleElements(t *testing.T) {
	t.Parallel()

	// The stray marker outside the style element must survive.
	input := "<style>a{} ]]> </style><p>]]></p>"
	expected := "<style>a{}</style><p>]]></p>"

	got := cleanStyleContents(input)
	if got != expected {
		t.Errorf("cleanStyleContents() = %q, want %q", got, expected)
	}
}
