package teisplit

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-teisplit/internal/tei"
)

// MaxPages bounds the length of a PageRange. Larger ranges are almost
// always a mistyped stop page.
const MaxPages = 10000

// PageRange is the half-open facsimile range [Start, Stop).
type PageRange struct {
	Start int
	Stop  int
}

// Validate checks that the range is non-empty and starts at zero or above.
// Ranges longer than MaxPages are rejected.
func (r PageRange) Validate() error {
	if r.Start < 0 {
		return fmt.Errorf("%w: start %d is negative", ErrInvalidRange, r.Start)
	}
	if r.Stop <= r.Start {
		return fmt.Errorf("%w: stop %d must be greater than start %d", ErrInvalidRange, r.Stop, r.Start)
	}
	if r.Len() > MaxPages {
		return fmt.Errorf("%w: %d pages, max %d", ErrInvalidRange, r.Len(), MaxPages)
	}
	return nil
}

// Len returns the number of pages in the range.
func (r PageRange) Len() int {
	return r.Stop - r.Start
}

// Last returns the last page of the range.
func (r PageRange) Last() int {
	return r.Stop - 1
}

// Pages returns the page numbers in ascending order.
func (r PageRange) Pages() []int {
	if r.Len() <= 0 {
		return nil
	}
	pages := make([]int, 0, r.Len())
	for n := r.Start; n < r.Stop; n++ {
		pages = append(pages, n)
	}
	return pages
}

// String renders the range as "81-88", or "81" for a single page.
func (r PageRange) String() string {
	return r.label("%d")
}

// Metadata holds the bibliographic values of the new teiHeader.
type Metadata struct {
	Year        string // Required; also used in output file names
	Publisher   string
	PubPlace    string
	SeriesTitle string
	ExternalID  string
	Note        string // Empty = built-in manuscript description
}

func (m Metadata) header() tei.Header {
	return tei.Header{
		Year:        m.Year,
		Publisher:   m.Publisher,
		PubPlace:    m.PubPlace,
		SeriesTitle: m.SeriesTitle,
		ExternalID:  m.ExternalID,
		Note:        m.Note,
	}
}

// Job describes one extraction run.
type Job struct {
	InputPath        string    // TEI export to read
	OutputDir        string    // Created when missing; empty = current directory
	Stylesheet       string    // Bundled name or .xsl path; empty = "normalize"
	Metadata         Metadata  // Header values
	Pages            PageRange // Facsimile range [Start, Stop)
	KeepIntermediate bool      // Keep the _before file after success
}

// Validate checks the job before any file is touched.
func (j Job) Validate() error {
	if j.InputPath == "" {
		return ErrEmptyInputPath
	}
	if j.Metadata.Year == "" {
		return ErrEmptyYear
	}
	if strings.ContainsAny(j.Metadata.Year, `/\`) || strings.Contains(j.Metadata.Year, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidYear, j.Metadata.Year)
	}
	return j.Pages.Validate()
}

// PageReport describes what one page contributed to the extract.
type PageReport struct {
	Page     int
	Surfaces int    // Moved surface elements
	Kind     string // "table", "text" or "none"
	Nodes    int    // Moved table or ab elements
}

// Result reports the outcome of a run. On failure, Run still returns the
// partial Result next to the error.
type Result struct {
	IntermediatePath string
	OutputPath       string
	Pages            []PageReport
	Moved            int      // Elements moved out of the source tree
	Warnings         []string // Non-fatal conditions (overwrites, cleanup failures)
	Stage            Stage    // Last completed stage
}

// Option configures a Splitter.
type Option func(*Splitter)

// splitterConfig holds internal configuration for Splitter.
type splitterConfig struct {
	timeout   time.Duration
	assetPath string
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Splitter) {
		if logger == nil {
			logger = zap.NewNop()
		}
		s.logger = logger
	}
}

// WithTimeout bounds each run.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("teisplit: WithTimeout duration must be positive")
	}
	return func(s *Splitter) {
		s.cfg.timeout = d
	}
}

// WithTransformerFactory replaces the XSLT engine.
func WithTransformerFactory(f TransformerFactory) Option {
	return func(s *Splitter) {
		s.factory = f
	}
}

// WithXSLTProc runs transforms through an external xsltproc-compatible
// binary instead of the built-in libxslt engine. An empty binary means
// "xsltproc" on PATH. Unlike the built-in engine, a running external
// transform stops when the context is cancelled.
func WithXSLTProc(binary string) Option {
	return func(s *Splitter) {
		s.factory = execFactory(binary)
	}
}

// WithAssetPath looks up stylesheet names in {path}/stylesheets/ before the
// bundled ones.
func WithAssetPath(path string) Option {
	return func(s *Splitter) {
		s.cfg.assetPath = path
	}
}

// WithAssetLoader looks up stylesheet names through loader before the
// bundled ones. It takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(s *Splitter) {
		s.publicAssetLoader = loader
	}
}
