package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// convertFlags holds all flags for the converter.
type convertFlags struct {
	lang    string
	output  string
	config  string
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses CLI flags and returns the remaining positional args.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("html5up", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVar(&f.lang, "lang", "", `language code for the html tag (default "en")`)
	fs.StringVarP(&f.output, "output", "o", "", `output file (default "output.htm")`)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
