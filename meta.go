package html5up

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Meta tag declaring the legacy Content-Style-Type header, with
	// surrounding whitespace and the line break it occupies
	styleTypeMeta = regexp.MustCompile(`(?i)\s*<meta[^>]*Content-Style-Type[^>]*/?>[ \t]*\n?`)

	// Any meta declaring a charset, either directly or via the legacy
	// http-equiv Content-Type form
	charsetMeta = regexp.MustCompile(`(?i)<meta[^>]+charset=[^>]*>|<meta\s+http-equiv=["']Content-Type["'][^>]*>`)

	headOpenTag = regexp.MustCompile(`(?i)<head[^>]*>`)
)

// utf8CharsetMeta replaces every legacy charset declaration.
const utf8CharsetMeta = `<meta charset="utf-8">`

// metaRewriter defines the contract for meta tag normalization.
type metaRewriter interface {
	RewriteMetaTags(ctx context.Context, content string) string
}

// charsetRewriter drops obsolete meta tags and pins the document to a
// single utf-8 charset declaration.
type charsetRewriter struct{}

// RewriteMetaTags removes Content-Style-Type metas and normalizes the
// charset declaration.
func (r *charsetRewriter) RewriteMetaTags(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = removeStyleTypeMeta(content)
	content = normalizeCharsetMeta(content)
	return content
}

// removeStyleTypeMeta deletes Content-Style-Type meta tags along with
// the line they occupy.
func removeStyleTypeMeta(content string) string {
	return styleTypeMeta.ReplaceAllString(content, "")
}

// normalizeCharsetMeta replaces the first charset-declaring meta with
// the utf-8 form, or inserts one right after <head> when none exists.
func normalizeCharsetMeta(content string) string {
	if old := charsetMeta.FindString(content); old != "" {
		return strings.Replace(content, old, utf8CharsetMeta, 1)
	}
	return headOpenTag.ReplaceAllString(content, "${0}\n    "+utf8CharsetMeta)
}
