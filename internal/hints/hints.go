// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-teisplit/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForXSLTProcessor returns hints for a missing external XSLT processor.
func ForXSLTProcessor() string {
	hints := []string{"install xsltproc (libxslt) or drop --xsltproc to use the built-in engine"}
	if IsInContainer() {
		hints = append(hints, "in Debian-based images: apt-get install xsltproc")
	}
	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForInputNotFound returns hints for an unreadable input document.
func ForInputNotFound() string {
	return format("pass the export file as argument, or set input.path or TEISPLIT_INPUT")
}

// ForPageRange returns hints for an invalid page range.
func ForPageRange() string {
	return format("--stop is exclusive: --start 81 --stop 89 extracts pages 81 to 88")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-teisplit/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-teisplit") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStylesheetNotFound returns hints for stylesheet not found errors.
func ForStylesheetNotFound(available []string) string {
	if len(available) == 0 {
		return format("pass a path to an .xsl file")
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a path to an .xsl file")
}

// ForTransform returns a hint pointing at the intermediate file left on disk.
func ForTransform(intermediate string) string {
	if intermediate == "" {
		return ""
	}
	return format("the untransformed extract was kept at " + intermediate)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
