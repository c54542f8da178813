package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf)

	got := buf.String()
	if !strings.HasPrefix(got, "html5up version ") {
		t.Errorf("printVersion() = %q, want prefix %q", got, "html5up version ")
	}
	if !strings.HasSuffix(got, "\n\n") {
		t.Errorf("printVersion() = %q, want trailing blank line", got)
	}
	if !strings.Contains(got, Version) {
		t.Errorf("printVersion() = %q, missing version %q", got, Version)
	}
}
