package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-teisplit/internal/fileutil"
	"github.com/alnah/go-teisplit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidPages    = errors.New("invalid page range")
)

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxNameLength      = 100  // Stylesheet name
	MaxYearLength      = 10   // "1758" or "1761-1763"
	MaxPublisherLength = 200  // Holding institution
	MaxPlaceLength     = 100  // "Cambridge, MA"
	MaxSeriesLength    = 300  // Project and grant DOI
	MaxURLLength       = 2048 // Browser limit
	MaxNoteLength      = 2000 // Free-form description
)

// Default values for the Gumpenhuber repertoire volumes.
const (
	DefaultInputPath   = "export_files/file.xml"
	DefaultOutputDir   = "output"
	DefaultStylesheet  = "normalize"
	DefaultYear        = "1758"
	DefaultPublisher   = "Houghton Library, Harvard University"
	DefaultPubPlace    = "Cambridge, MA"
	DefaultSeriesTitle = `Austrian Science Fund project "GuDiE" (FWF-Grant-DOI: 10.55776/P36729)`
	DefaultExternalID  = "https://gams-staging.uni-graz.at/gamsdev/dittmann/iiif/manifests/MS_Thr_248-0.json"
	DefaultPageStart   = 81
	DefaultPageStop    = 89
)

// Config holds all configuration for one extraction job.
type Config struct {
	Input      InputConfig  `yaml:"input"`
	Output     OutputConfig `yaml:"output"`
	Stylesheet string       `yaml:"stylesheet"` // Bundled name or path to an .xsl file
	Assets     AssetsConfig `yaml:"assets"`
	Volume     VolumeConfig `yaml:"volume"`
	Pages      PagesConfig  `yaml:"pages"`
}

// InputConfig defines the source document.
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir              string `yaml:"dir"`
	KeepIntermediate bool   `yaml:"keepIntermediate"` // Keep the _before file after success
}

// AssetsConfig defines stylesheet lookup options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = bundled stylesheets only
}

// VolumeConfig holds the bibliographic values written into the teiHeader.
type VolumeConfig struct {
	Year        string `yaml:"year"`
	Publisher   string `yaml:"publisher"`
	PubPlace    string `yaml:"pubPlace"`
	SeriesTitle string `yaml:"seriesTitle"`
	ExternalID  string `yaml:"externalId"`
	Note        string `yaml:"note"` // Empty = built-in manuscript description
}

// PagesConfig is the half-open facsimile range [Start, Stop).
type PagesConfig struct {
	Start int `yaml:"start"`
	Stop  int `yaml:"stop"`
}

// IsSet reports whether either bound was given.
func (p PagesConfig) IsSet() bool {
	return p.Start != 0 || p.Stop != 0
}

// Validate checks field lengths and the page range.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.path", c.Input.Path, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"stylesheet", c.Stylesheet, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"volume.year", c.Volume.Year, MaxYearLength},
		{"volume.publisher", c.Volume.Publisher, MaxPublisherLength},
		{"volume.pubPlace", c.Volume.PubPlace, MaxPlaceLength},
		{"volume.seriesTitle", c.Volume.SeriesTitle, MaxSeriesLength},
		{"volume.externalId", c.Volume.ExternalID, MaxURLLength},
		{"volume.note", c.Volume.Note, MaxNoteLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if !fileutil.IsFilePath(c.Stylesheet) {
		if err := validateFieldLength("stylesheet", c.Stylesheet, MaxNameLength); err != nil {
			return err
		}
	}

	if c.Pages.IsSet() {
		if c.Pages.Start < 0 {
			return fmt.Errorf("%w: pages.start must be >= 0, got %d", ErrInvalidPages, c.Pages.Start)
		}
		if c.Pages.Stop <= c.Pages.Start {
			return fmt.Errorf("%w: pages.stop (%d) must be greater than pages.start (%d)",
				ErrInvalidPages, c.Pages.Stop, c.Pages.Start)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration of the first Gumpenhuber volume.
func DefaultConfig() *Config {
	return &Config{
		Input:      InputConfig{Path: DefaultInputPath},
		Output:     OutputConfig{Dir: DefaultOutputDir},
		Stylesheet: DefaultStylesheet,
		Assets:     AssetsConfig{BasePath: ""},
		Volume: VolumeConfig{
			Year:        DefaultYear,
			Publisher:   DefaultPublisher,
			PubPlace:    DefaultPubPlace,
			SeriesTitle: DefaultSeriesTitle,
			ExternalID:  DefaultExternalID,
		},
		Pages: PagesConfig{Start: DefaultPageStart, Stop: DefaultPageStop},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath looks like a path, it is read directly. Otherwise, it's
// treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.Decode(data, cfg, true); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Encode renders the configuration as YAML in the file format LoadConfig reads.
func (c *Config) Encode() ([]byte, error) {
	return yamlutil.Encode(c)
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	if strings.ContainsAny(s, "/\\") {
		return true
	}
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-teisplit/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-teisplit", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
