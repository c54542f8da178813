package html5up

import (
	"context"
	"regexp"
)

// Precompiled regex patterns for performance.
var (
	htmlOpenTag = regexp.MustCompile(`(?i)<html[^>]*>`)
	xmlnsAttr   = regexp.MustCompile(`\s+xmlns="[^"]*"`)
	xmlLangAttr = regexp.MustCompile(`\s+xml:lang="[^"]*"`)
	langAttr    = regexp.MustCompile(`\s+lang="([^"]*)"`)
)

// rootTagRewriter defines the contract for cleaning the opening <html> tag.
type rootTagRewriter interface {
	RewriteRootTag(ctx context.Context, content, defaultLang string) string
}

// langRewriter strips XHTML namespace attributes from the root tag and
// guarantees exactly one lang attribute.
type langRewriter struct{}

// RewriteRootTag removes xmlns and xml:lang attributes and reinserts a
// single lang attribute right after the tag name. The first lang value
// found on the tag wins; defaultLang applies when none is present.
func (r *langRewriter) RewriteRootTag(ctx context.Context, content, defaultLang string) string {
	if ctx.Err() != nil {
		return content
	}

	return htmlOpenTag.ReplaceAllStringFunc(content, func(tag string) string {
		tag = xmlnsAttr.ReplaceAllString(tag, "")
		tag = xmlLangAttr.ReplaceAllString(tag, "")

		lang := defaultLang
		if m := langAttr.FindStringSubmatch(tag); m != nil {
			lang = m[1]
		}
		tag = langAttr.ReplaceAllString(tag, "")

		// The match always starts with "<html" in some letter case, so
		// the insertion point is right after those five characters.
		return tag[:len("<html")] + ` lang="` + lang + `"` + tag[len("<html"):]
	})
}
