package html5up

import (
	"context"
	"strings"
)

// voidTagRewriter defines the contract for void element syntax
// normalization.
type voidTagRewriter interface {
	RewriteVoidTags(ctx context.Context, content string) string
}

// slashRewriter removes the XHTML self-closing slash from every
// remaining tag. HTML5 void elements close with a bare >.
type slashRewriter struct{}

func (r *slashRewriter) RewriteVoidTags(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return strings.ReplaceAll(content, "/>", ">")
}
