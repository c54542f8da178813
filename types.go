package html5up

// DefaultLang is the language code applied when neither the input nor
// the service configuration provides one.
const DefaultLang = "en"

// Input holds one document conversion request.
type Input struct {
	// HTML is the full document text to convert.
	HTML string

	// Lang is the language code inserted into the <html> tag when the
	// source carries none. Empty means the service default.
	Lang string
}

// serviceConfig holds Service-level settings.
type serviceConfig struct {
	defaultLang string
}

// Option customizes a Service.
type Option func(*Service)

// WithDefaultLang overrides the default language code inserted when a
// document has no lang attribute and Input.Lang is empty.
func WithDefaultLang(lang string) Option {
	return func(s *Service) {
		s.cfg.defaultLang = lang
	}
}
