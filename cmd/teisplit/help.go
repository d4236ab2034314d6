package main

import (
	"fmt"
	"io"
	"strings"

	teisplit "github.com/alnah/go-teisplit"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: teisplit <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  split      Extract a page range into a standalone TEI file")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'teisplit help <command>' for details on a specific command.")
}

// printSplitUsage prints usage for the split command.
func printSplitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: teisplit split [input.xml] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extract pages [start, stop) of a TEI export, wrap them in a new teiHeader,")
	fmt.Fprintln(w, "apply an XSLT stylesheet and write {year}_{NNN}-{NNN}.xml.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    TEI document (optional if config has input.path)")
	fmt.Fprintln(w)
	printSharedFlags(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: teisplit config [input.xml] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration split would use, as YAML. Accepts the")
	fmt.Fprintln(w, "same flags as split.")
	fmt.Fprintln(w)
	printSharedFlags(w)
}

func printSharedFlags(w io.Writer) {
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --keep-intermediate   Keep the untransformed _before file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pages:")
	fmt.Fprintln(w, "      --start <n>           First page")
	fmt.Fprintln(w, "      --stop <n>            Page after the last one (exclusive)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Volume:")
	fmt.Fprintln(w, "      --year <s>            Volume year (also used in file names)")
	fmt.Fprintln(w, "      --publisher <s>       Holding institution")
	fmt.Fprintln(w, "      --pub-place <s>       Place of publication")
	fmt.Fprintln(w, "      --series <s>          Series title")
	fmt.Fprintln(w, "      --idno <s>            External identifier (IIIF manifest URL)")
	fmt.Fprintln(w, "      --note <s>            Manuscript description")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Stylesheet:")
	fmt.Fprintf(w, "  -s, --stylesheet <s>      Name (%s) or .xsl path\n", strings.Join(teisplit.StylesheetNames(), ", "))
	fmt.Fprintln(w, "      --asset-path <dir>    Custom directory with stylesheets/{name}.xsl")
	fmt.Fprintln(w, "      --xsltproc[=<bin>]    Use an external xsltproc instead of libxslt")
	fmt.Fprintln(w, "  -t, --timeout <d>         Run timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show stage details")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TEISPLIT_CONFIG, TEISPLIT_INPUT, TEISPLIT_OUTPUT_DIR, TEISPLIT_STYLESHEET,")
	fmt.Fprintln(w, "  TEISPLIT_ASSET_PATH, TEISPLIT_YEAR, TEISPLIT_XSLTPROC, TEISPLIT_TIMEOUT")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "split":
		printSplitUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: teisplit version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: teisplit help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
