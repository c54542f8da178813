package html5up

import (
	"context"
	"regexp"
)

// Precompiled regex patterns for performance.
var (
	// Control characters forbidden in HTML5 text content
	controlChars = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F-\x9F]`)

	// XML declaration plus any blank lines following it
	xmlProlog = regexp.MustCompile(`<\?xml[^>]*\?>[\r\n]*`)

	// Any doctype, whatever its content
	doctypePattern = regexp.MustCompile(`(?i)<!DOCTYPE[^>]*>`)
)

// html5Doctype is the minimal HTML5 doctype every output document carries.
const html5Doctype = "<!DOCTYPE html>"

// documentSanitizer defines the contract for the first cleanup pass.
type documentSanitizer interface {
	SanitizeDocument(ctx context.Context, content string) string
}

// regexSanitizer strips control characters, the XML prolog, and
// normalizes the doctype.
type regexSanitizer struct{}

// SanitizeDocument applies all sanitizing transformations.
func (s *regexSanitizer) SanitizeDocument(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = stripControlChars(content)
	content = stripXMLProlog(content)
	content = normalizeDoctype(content)
	return content
}

// stripControlChars removes characters that are invalid in HTML5.
func stripControlChars(content string) string {
	return controlChars.ReplaceAllString(content, "")
}

// stripXMLProlog deletes the XML declaration and trailing blank lines.
func stripXMLProlog(content string) string {
	return xmlProlog.ReplaceAllString(content, "")
}

// normalizeDoctype replaces any doctype with the HTML5 one.
func normalizeDoctype(content string) string {
	return doctypePattern.ReplaceAllString(content, html5Doctype)
}
