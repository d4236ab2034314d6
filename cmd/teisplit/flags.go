package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// pageUnset detects if --start or --stop was explicitly set.
// Since 0 is a valid page, we use an out-of-range sentinel.
const pageUnset = -1

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// volumeFlags holds the teiHeader values.
type volumeFlags struct {
	year        string
	publisher   string
	pubPlace    string
	seriesTitle string
	externalID  string
	note        string
}

// pageFlags holds the facsimile range.
type pageFlags struct {
	start int
	stop  int
}

// engineFlags holds XSLT engine flags.
type engineFlags struct {
	stylesheet string // Name or path
	assetPath  string // Override stylesheet directory
	xsltproc   string // External processor; empty = built-in libxslt
	timeout    string // Run timeout (e.g., 30s, 2m)
}

// splitFlags holds all flags for the split and config commands.
type splitFlags struct {
	common           commonFlags
	output           string
	keepIntermediate bool
	volume           volumeFlags
	pages            pageFlags
	engine           engineFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show stage details")
}

// addVolumeFlags adds teiHeader flags to a FlagSet.
func addVolumeFlags(fs *flag.FlagSet, f *volumeFlags) {
	fs.StringVar(&f.year, "year", "", "volume year")
	fs.StringVar(&f.publisher, "publisher", "", "holding institution")
	fs.StringVar(&f.pubPlace, "pub-place", "", "place of publication")
	fs.StringVar(&f.seriesTitle, "series", "", "series title")
	fs.StringVar(&f.externalID, "idno", "", "external identifier (IIIF manifest URL)")
	fs.StringVar(&f.note, "note", "", "manuscript description")
}

// addPageFlags adds page range flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.IntVar(&f.start, "start", pageUnset, "first page")
	fs.IntVar(&f.stop, "stop", pageUnset, "page after the last one (exclusive)")
}

// addEngineFlags adds stylesheet and engine flags to a FlagSet.
func addEngineFlags(fs *flag.FlagSet, f *engineFlags) {
	fs.StringVarP(&f.stylesheet, "stylesheet", "s", "", "stylesheet name or .xsl path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom stylesheet directory")
	fs.StringVar(&f.xsltproc, "xsltproc", "", "run an external xsltproc binary")
	fs.Lookup("xsltproc").NoOptDefVal = "xsltproc"
	fs.StringVarP(&f.timeout, "timeout", "t", "", "run timeout (e.g., 30s, 2m)")
}

// parseSplitFlags parses split command flags and returns positional args.
func parseSplitFlags(name string, args []string, usage func(io.Writer), stderr io.Writer) (*splitFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &splitFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.BoolVar(&f.keepIntermediate, "keep-intermediate", false, "keep the untransformed _before file")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addVolumeFlags(fs, &f.volume)
	addPageFlags(fs, &f.pages)
	addEngineFlags(fs, &f.engine)

	fs.Usage = func() { usage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
