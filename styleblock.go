package html5up

import (
	"context"
	"regexp"
)

// Precompiled regex patterns for performance.
var (
	xmlSpaceAttr  = regexp.MustCompile(`(?i)\s+xml:space=["'][^"']*["']`)
	styleTypeAttr = regexp.MustCompile(`(?i)<style\s+type=["']text/css["']`)

	// CDATA wrappers inside style elements, bare and comment-guarded
	cdataWrap      = regexp.MustCompile(`(?is)(<style[^>]*>)\s*<!\[CDATA\[(.*?)\]\]>\s*(</style>)`)
	cdataGuardWrap = regexp.MustCompile(`(?is)(<style[^>]*>)\s*/\*<!\[CDATA\[\*/\s*(.*?)\s*/\*\]\]>\*/\s*(</style>)`)

	styleElement = regexp.MustCompile(`(?is)(<style[^>]*>)(.*?)(</style>)`)

	// Legacy comment-hiding artifacts left inside CSS
	cssLineCloser = regexp.MustCompile(`\s*//\s*-->\s*`)
	cssXMLEnd     = regexp.MustCompile(`\s*/\*\s*XML\s+end\s*\]\]>\s*\*/\s*`)
	cssCDATAEnd   = regexp.MustCompile(`\s*\]\]>\s*`)
)

// styleRewriter defines the contract for style element cleanup.
type styleRewriter interface {
	RewriteStyleElements(ctx context.Context, content string) string
}

// cdataRewriter strips XML leftovers from style elements: xml:space
// attributes, the type attribute, CDATA wrappers, and comment-hiding
// artifacts inside the CSS itself.
type cdataRewriter struct{}

// RewriteStyleElements applies all style element transformations.
func (r *cdataRewriter) RewriteStyleElements(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = stripXMLSpace(content)
	content = stripStyleType(content)
	content = unwrapCDATA(content)
	content = cleanStyleContents(content)
	return content
}

// stripXMLSpace removes xml:space attributes anywhere in the document.
func stripXMLSpace(content string) string {
	return xmlSpaceAttr.ReplaceAllString(content, "")
}

// stripStyleType drops type="text/css" from opening style tags.
func stripStyleType(content string) string {
	return styleTypeAttr.ReplaceAllString(content, "<style")
}

// unwrapCDATA removes CDATA wrappers from style element contents,
// keeping only the inner CSS text.
func unwrapCDATA(content string) string {
	content = cdataWrap.ReplaceAllString(content, "${1}${2}${3}")
	content = cdataGuardWrap.ReplaceAllString(content, "${1}${2}${3}")
	return content
}

// cleanStyleContents removes comment-hiding artifacts from the CSS
// inside every style element.
func cleanStyleContents(content string) string {
	return styleElement.ReplaceAllStringFunc(content, func(elem string) string {
		m := styleElement.FindStringSubmatch(elem)
		return m[1] + cleanCSSComments(m[2]) + m[3]
	})
}

// cleanCSSComments strips legacy HTML-comment closers and stray CDATA
// end markers from CSS text.
func cleanCSSComments(css string) string {
	css = cssLineCloser.ReplaceAllString(css, "")
	css = cssXMLEnd.ReplaceAllString(css, "")
	css = cssCDATAEnd.ReplaceAllString(css, "")
	return css
}
