package html5up

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// One name="value" or name='value' attribute pair
	attrPair = regexp.MustCompile(`\b(\w+)=("[^"]*"|'[^']*')`)

	// Numeric size values with an optional CSS unit
	sizeValue  = regexp.MustCompile(`^\d+(?:\.\d+)?(?:%|em|px|rem|vw|vh)?$`)
	digitsOnly = regexp.MustCompile(`^\d+$`)
)

// mergeStyles merges new declarations into an existing style attribute
// value. Existing declarations come first, new ones are appended, and
// nothing is de-duplicated: a property set twice resolves by normal CSS
// cascade order (last occurrence wins).
func mergeStyles(oldStyle, newStyles string) string {
	if newStyles == "" {
		return oldStyle
	}
	if oldStyle == "" {
		return strings.Join(splitDeclarations(newStyles), "; ") + ";"
	}

	oldStyle = strings.Trim(oldStyle, `"'`)
	parts := append(splitDeclarations(oldStyle), splitDeclarations(newStyles)...)
	return strings.Join(parts, "; ") + ";"
}

// splitDeclarations splits style text on semicolons, trimming
// whitespace and dropping empty fragments.
func splitDeclarations(s string) []string {
	var decls []string
	for _, part := range strings.Split(s, ";") {
		if p := strings.TrimSpace(part); p != "" {
			decls = append(decls, p)
		}
	}
	return decls
}

// findAttr returns the unquoted value of the first attribute with the
// given name. Attribute names match case-insensitively.
func findAttr(s, name string) (string, bool) {
	for _, m := range attrPair.FindAllStringSubmatch(s, -1) {
		if strings.EqualFold(m[1], name) {
			return unquote(m[2]), true
		}
	}
	return "", false
}

// cutAttr removes every attribute with the given name, leaving the
// surrounding whitespace in place.
func cutAttr(s, name string) string {
	return attrPair.ReplaceAllStringFunc(s, func(pair string) string {
		if m := attrPair.FindStringSubmatch(pair); strings.EqualFold(m[1], name) {
			return ""
		}
		return pair
	})
}

// replaceAttr rewrites every attribute with the given name to carry the
// new double-quoted value.
func replaceAttr(s, name, value string) string {
	return attrPair.ReplaceAllStringFunc(s, func(pair string) string {
		m := attrPair.FindStringSubmatch(pair)
		if strings.EqualFold(m[1], name) {
			return m[1] + `="` + value + `"`
		}
		return pair
	})
}

// applyStyles merges pre-joined declaration text into the attribute
// string: an existing style attribute absorbs the declarations via
// mergeStyles, otherwise a new style attribute carrying the text
// verbatim is appended.
func applyStyles(attrs, joined string) string {
	if existing, ok := findAttr(attrs, "style"); ok {
		return replaceAttr(attrs, "style", mergeStyles(existing, joined))
	}
	return strings.TrimRight(attrs, " \t") + ` style="` + joined + `"`
}

// withPxUnit appends px to bare integers; values already carrying a
// unit (or a decimal point) pass through unchanged.
func withPxUnit(v string) string {
	if digitsOnly.MatchString(v) {
		return v + "px"
	}
	return v
}

// unquote strips the single surrounding quote pair from an attribute
// value as matched by attrPair.
func unquote(q string) string {
	return q[1 : len(q)-1]
}
