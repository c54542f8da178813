package html5up

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Block-level elements whose align/width attributes move to CSS
	blockTag = regexp.MustCompile(`(?i)(<(?:hr|table|td|th|div|p|h[1-6]))((?:\s+[^>]*)?)(\s*>)`)

	tableTag = regexp.MustCompile(`(?i)(<table)((?:\s+[^>]*)?)(\s*>)`)
	cellTag  = regexp.MustCompile(`(?i)(<(?:td|th))((?:\s+[^>]*)?)(\s*>)`)
	imgTag   = regexp.MustCompile(`(?i)<img[^>]+>`)

	selfCloseSlash = regexp.MustCompile(`\s*/\s*>`)
	multiSpace     = regexp.MustCompile(`\s+`)
)

// presentationRewriter defines the contract for translating
// presentational attributes into inline CSS.
type presentationRewriter interface {
	RewritePresentation(ctx context.Context, content string) string
}

// cssAttrRewriter converts obsolete align/width/table/cell/img
// attributes into style declarations.
type cssAttrRewriter struct{}

// RewritePresentation applies the attribute-to-CSS passes in order:
// block align/width, table attributes, cell alignment, image sizing.
func (r *cssAttrRewriter) RewritePresentation(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = convertAlignWidth(content)
	content = convertTableAttrs(content)
	content = convertCellAttrs(content)
	content = convertImgSizes(content)
	return content
}

// convertAlignWidth moves align and width attributes on block-level
// elements into the style attribute. Bare integer widths get a px
// suffix; non-numeric widths are left alone.
func convertAlignWidth(content string) string {
	return blockTag.ReplaceAllStringFunc(content, func(tag string) string {
		m := blockTag.FindStringSubmatch(tag)
		name, attrs, end := m[1], m[2], m[3]

		var decls []string
		if v, ok := findAttr(attrs, "align"); ok {
			decls = append(decls, "text-align: "+v+";")
			attrs = cutAttr(attrs, "align")
		}
		if v, ok := findAttr(attrs, "width"); ok && sizeValue.MatchString(v) {
			decls = append(decls, "width: "+withPxUnit(v)+";")
			attrs = cutAttr(attrs, "width")
		}
		if len(decls) > 0 {
			attrs = applyStyles(attrs, strings.Join(decls, " "))
		}

		if trimmed := strings.TrimSpace(attrs); trimmed != "" {
			return name + " " + trimmed + end
		}
		return name + end
	})
}

// convertTableAttrs translates obsolete table attributes to CSS:
// cellpadding, cellspacing, and border become declarations, summary is
// dropped entirely, and every other attribute is kept verbatim with the
// merged style attribute last.
func convertTableAttrs(content string) string {
	return tableTag.ReplaceAllStringFunc(content, func(tag string) string {
		m := tableTag.FindStringSubmatch(tag)
		name, attrs, end := m[1], m[2], m[3]

		existing, _ := findAttr(attrs, "style")

		var kept []string
		var padding, spacing, border string
		var hasPadding, hasSpacing, hasBorder bool
		for _, pair := range attrPair.FindAllStringSubmatch(attrs, -1) {
			switch strings.ToLower(pair[1]) {
			case "cellpadding":
				padding, hasPadding = unquote(pair[2]), true
			case "cellspacing":
				spacing, hasSpacing = unquote(pair[2]), true
			case "border":
				border, hasBorder = unquote(pair[2]), true
			case "summary":
				// obsolete, no replacement
			case "style":
				// merged below, emitted last
			default:
				kept = append(kept, pair[1]+`="`+unquote(pair[2])+`"`)
			}
		}

		var decls []string
		if hasPadding {
			decls = append(decls, "padding: "+padding+"px;")
		}
		if hasSpacing {
			decls = append(decls, "border-spacing: "+spacing+"px;")
		}
		if hasBorder {
			if border == "0" {
				decls = append(decls, "border: none;")
			} else {
				decls = append(decls, "border: "+border+"px solid;")
			}
		}

		if merged := mergeStyles(existing, strings.Join(decls, " ")); merged != "" {
			kept = append(kept, `style="`+merged+`"`)
		}

		if len(kept) > 0 {
			return name + " " + strings.Join(kept, " ") + end
		}
		return name + end
	})
}

// convertCellAttrs translates align and valign on table cells into
// text-align and vertical-align declarations.
func convertCellAttrs(content string) string {
	return cellTag.ReplaceAllStringFunc(content, func(tag string) string {
		m := cellTag.FindStringSubmatch(tag)
		name, attrs, end := m[1], m[2], m[3]

		var decls []string
		if v, ok := findAttr(attrs, "align"); ok {
			decls = append(decls, "text-align: "+v+";")
			attrs = cutAttr(attrs, "align")
		}
		if v, ok := findAttr(attrs, "valign"); ok {
			decls = append(decls, "vertical-align: "+v+";")
			attrs = cutAttr(attrs, "valign")
		}
		if len(decls) > 0 {
			attrs = applyStyles(attrs, strings.Join(decls, " "))
		}

		if trimmed := strings.TrimSpace(attrs); trimmed != "" {
			return name + " " + trimmed + end
		}
		return name + end
	})
}

// convertImgSizes moves width, height, and border attributes on images
// into style declarations and drops the XHTML self-closing slash. The
// declarations are joined with "; " and carry no forced trailing
// semicolon, unlike the block-level rules above.
func convertImgSizes(content string) string {
	return imgTag.ReplaceAllStringFunc(content, func(tag string) string {
		width, wok := findAttr(tag, "width")
		if wok && !sizeValue.MatchString(width) {
			wok = false
		}
		height, hok := findAttr(tag, "height")
		if hok && !sizeValue.MatchString(height) {
			hok = false
		}
		border, bok := findAttr(tag, "border")
		if bok && !digitsOnly.MatchString(border) {
			bok = false
		}

		if !wok && !hok && !bok {
			return selfCloseSlash.ReplaceAllString(tag, ">")
		}

		var decls []string
		if wok {
			tag = cutAttr(tag, "width")
			decls = append(decls, "width: "+withPxUnit(width))
		}
		if hok {
			tag = cutAttr(tag, "height")
			decls = append(decls, "height: "+withPxUnit(height))
		}
		if bok {
			tag = cutAttr(tag, "border")
			if border == "0" {
				decls = append(decls, "border: none")
			} else {
				decls = append(decls, "border: "+border+"px solid")
			}
		}

		tag = selfCloseSlash.ReplaceAllString(tag, ">")
		tag = multiSpace.ReplaceAllString(tag, " ")
		tag = strings.TrimRight(tag, ">")

		joined := strings.Join(decls, "; ")
		if existing, ok := findAttr(tag, "style"); ok {
			tag = replaceAttr(tag, "style", mergeStyles(existing, joined))
		} else {
			tag = strings.TrimSpace(tag) + ` style="` + joined + `"`
		}
		return tag + ">"
	})
}
