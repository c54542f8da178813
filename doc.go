// Package html5up rewrites legacy XHTML-era markup into HTML5.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := html5up.New()
//	out, err := svc.Convert(ctx, html5up.Input{
//	    HTML: content,
//	    Lang: "en",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.htm", []byte(out), 0644)
//
// # Conversion Pipeline
//
// Convert applies a fixed sequence of rewrite passes over the whole
// document, each a pure string transform:
//
//  1. Sanitizing (control characters, XML prolog, doctype)
//  2. Root tag cleanup (xmlns, xml:lang, single lang attribute)
//  3. Meta normalization (Content-Style-Type removal, utf-8 charset)
//  4. Style element cleanup (xml:space, type attribute, CDATA, CSS comments)
//  5. Inline tag replacement (tt, big, center, anchor name/id)
//  6. Presentational attributes to CSS (align, width, table, cell, img)
//  7. Void element syntax normalization (self-closing slashes)
//
// A pass whose pattern does not occur in the document is a no-op; the
// pipeline never fails on malformed input.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := html5up.New(html5up.WithDefaultLang("fr"))
//
// The per-document language passed via Input.Lang wins over the default.
package html5up
