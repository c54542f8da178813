package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html5up [flags] <input.html>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite legacy HTML markup into HTML5.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    HTML file to convert (optional if config has input.default)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --lang <code>      Language for the html tag when none present (default \"en\")")
	fmt.Fprintln(w, "  -o, --output <path>    Output file (default \"output.htm\")")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show detailed timing")
	fmt.Fprintln(w, "      --version          Print version and exit")
}
