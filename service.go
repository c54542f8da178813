package html5up

import (
	"context"
	"fmt"
	"regexp"
)

// Language codes are inserted into a double-quoted attribute, so only
// plain subtag characters are accepted.
var langCodePattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// Service orchestrates the HTML-to-HTML5 rewrite pipeline.
type Service struct {
	cfg          serviceConfig
	sanitizer    documentSanitizer
	rootTags     rootTagRewriter
	metaTags     metaRewriter
	styleBlocks  styleRewriter
	inlineTags   inlineTagRewriter
	presentation presentationRewriter
	voidTags     voidTagRewriter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithDefaultLang).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:          serviceConfig{defaultLang: DefaultLang},
		sanitizer:    &regexSanitizer{},
		rootTags:     &langRewriter{},
		metaTags:     &charsetRewriter{},
		styleBlocks:  &cdataRewriter{},
		inlineTags:   &spanRewriter{},
		presentation: &cssAttrRewriter{},
		voidTags:     &slashRewriter{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert runs the full pipeline and returns the converted document.
// The rewrite passes are total functions over the buffer: a pattern
// that does not occur is a no-op, so the only failures are language
// validation and context cancellation.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	lang := input.Lang
	if lang == "" {
		lang = s.cfg.defaultLang
	}
	if !langCodePattern.MatchString(lang) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLang, lang)
	}

	content := input.HTML

	content = s.sanitizer.SanitizeDocument(ctx, content)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	content = s.rootTags.RewriteRootTag(ctx, content, lang)
	content = s.metaTags.RewriteMetaTags(ctx, content)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	content = s.styleBlocks.RewriteStyleElements(ctx, content)
	content = s.inlineTags.RewriteInlineTags(ctx, content)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	content = s.presentation.RewritePresentation(ctx, content)
	content = s.voidTags.RewriteVoidTags(ctx, content)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	return content, nil
}
