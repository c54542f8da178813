package html5up

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	ttOpen      = regexp.MustCompile(`(?i)<tt([^>]*)>`)
	ttClose     = regexp.MustCompile(`(?i)</tt>`)
	bigOpen     = regexp.MustCompile(`(?i)<big([^>]*)>`)
	bigClose    = regexp.MustCompile(`(?i)</big>`)
	centerOpen  = regexp.MustCompile(`(?i)<center([^>]*)>`)
	centerClose = regexp.MustCompile(`(?i)</center>`)

	// Anchor tags carrying at least one attribute
	anchorTag = regexp.MustCompile(`(?i)<a\s[^>]*>`)

	anchorNameAttr = regexp.MustCompile(`(?i)\s+name=("[^"]*"|'[^']*')`)
	anchorIDAttr   = regexp.MustCompile(`(?i)\s+id=("[^"]*"|'[^']*')`)
)

// inlineTagRewriter defines the contract for deprecated inline tag
// replacement.
type inlineTagRewriter interface {
	RewriteInlineTags(ctx context.Context, content string) string
}

// spanRewriter replaces tt, big, and center with styled span/div
// equivalents and reconciles anchor name/id attributes.
type spanRewriter struct{}

// RewriteInlineTags applies all inline tag transformations.
func (r *spanRewriter) RewriteInlineTags(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = convertTeletype(content)
	content = convertBig(content)
	content = convertCenter(content)
	content = reconcileAnchorNames(content)
	return content
}

// convertTeletype replaces <tt> with a monospace span.
func convertTeletype(content string) string {
	content = ttOpen.ReplaceAllString(content, `<span${1} style="font-family: monospace;">`)
	content = ttClose.ReplaceAllString(content, "</span>")
	return content
}

// convertBig replaces <big> with a larger-font span.
func convertBig(content string) string {
	content = bigOpen.ReplaceAllString(content, `<span style="font-size: larger"${1}>`)
	content = bigClose.ReplaceAllString(content, "</span>")
	return content
}

// convertCenter replaces <center> with a centered div.
func convertCenter(content string) string {
	content = centerOpen.ReplaceAllString(content, `<div style="text-align: center"${1}>`)
	content = centerClose.ReplaceAllString(content, "</div>")
	return content
}

// reconcileAnchorNames normalizes the obsolete name attribute on anchor
// tags. A name duplicating an id with the identical quoted value is
// dropped; a name without any id on the tag becomes the id.
func reconcileAnchorNames(content string) string {
	return anchorTag.ReplaceAllStringFunc(content, func(tag string) string {
		nameMatch := anchorNameAttr.FindStringSubmatch(tag)
		if nameMatch == nil {
			return tag
		}

		idMatch := anchorIDAttr.FindStringSubmatch(tag)
		switch {
		case idMatch == nil:
			// Only a name: promote it to id, keeping its quoted value.
			return anchorNameAttr.ReplaceAllString(tag, ` id=${1}`)
		case nameMatch[1] == idMatch[1]:
			// Duplicate of the id: drop the name attribute entirely.
			return strings.Replace(tag, nameMatch[0], "", 1)
		default:
			// Distinct id and name values: leave the tag untouched.
			return tag
		}
	})
}
