package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	teisplit "github.com/alnah/go-teisplit"
	"github.com/alnah/go-teisplit/internal/config"
)

// settings is the fully merged configuration of one invocation.
type settings struct {
	cfg      *config.Config
	xsltproc string
	timeout  time.Duration
}

// runSplitCmd extracts one page range.
func runSplitCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseSplitFlags("split", args, printSplitUsage, env.Stderr)
	if err != nil {
		return usageError(err)
	}

	logger := newLogger(env.Stderr, flags.common)
	defer func() { _ = logger.Sync() }()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf))
	defer undo()

	s, err := resolveSettings(flags, positional, env, logger)
	if err != nil {
		return err
	}

	splitter, err := teisplit.NewSplitter(buildOptions(s, env, logger)...)
	if err != nil {
		return err
	}

	res, err := splitter.Run(ctx, buildJob(s.cfg))
	if err != nil {
		return &runError{err: err, result: res}
	}

	printResult(env, flags.common, res)
	return nil
}

// runConfigCmd prints the effective configuration as YAML.
func runConfigCmd(args []string, env *Environment) error {
	flags, positional, err := parseSplitFlags("config", args, printConfigUsage, env.Stderr)
	if err != nil {
		return usageError(err)
	}

	logger := newLogger(env.Stderr, flags.common)
	defer func() { _ = logger.Sync() }()

	s, err := resolveSettings(flags, positional, env, logger)
	if err != nil {
		return err
	}

	data, err := s.cfg.Encode()
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}

// resolveSettings merges defaults, config file, environment and flags.
func resolveSettings(flags *splitFlags, positional []string, env *Environment, logger *zap.Logger) (*settings, error) {
	if len(positional) > 1 {
		return nil, fmt.Errorf("%w: expected at most one input file, got %d", ErrUsage, len(positional))
	}

	warnUnknownEnvVars(env, logger)
	envCfg := loadEnvConfig(env, logger)

	// Load configuration (flag wins over TEISPLIT_CONFIG)
	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, &configError{name: configName, err: err}
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if len(positional) == 1 {
		cfg.Input.Path = positional[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Input.Path == "" {
		return nil, ErrNoInput
	}

	timeout, err := resolveTimeout(flags.engine.timeout, envCfg.Timeout)
	if err != nil {
		return nil, err
	}

	xsltproc := flags.engine.xsltproc
	if xsltproc == "" {
		xsltproc = envCfg.XSLTProc
	}

	return &settings{cfg: cfg, xsltproc: xsltproc, timeout: timeout}, nil
}

// mergeFlags applies explicitly set CLI flags over config values.
func mergeFlags(flags *splitFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.keepIntermediate {
		cfg.Output.KeepIntermediate = true
	}
	if flags.engine.stylesheet != "" {
		cfg.Stylesheet = flags.engine.stylesheet
	}
	if flags.engine.assetPath != "" {
		cfg.Assets.BasePath = flags.engine.assetPath
	}

	v := flags.volume
	if v.year != "" {
		cfg.Volume.Year = v.year
	}
	if v.publisher != "" {
		cfg.Volume.Publisher = v.publisher
	}
	if v.pubPlace != "" {
		cfg.Volume.PubPlace = v.pubPlace
	}
	if v.seriesTitle != "" {
		cfg.Volume.SeriesTitle = v.seriesTitle
	}
	if v.externalID != "" {
		cfg.Volume.ExternalID = v.externalID
	}
	if v.note != "" {
		cfg.Volume.Note = v.note
	}

	if flags.pages.start != pageUnset {
		cfg.Pages.Start = flags.pages.start
	}
	if flags.pages.stop != pageUnset {
		cfg.Pages.Stop = flags.pages.stop
	}
}

// resolveTimeout parses the --timeout flag, falling back to TEISPLIT_TIMEOUT.
// Zero means no timeout.
func resolveTimeout(flagValue string, envValue time.Duration) (time.Duration, error) {
	if flagValue == "" {
		return envValue, nil
	}
	d, err := time.ParseDuration(flagValue)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, flagValue)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidTimeout, flagValue)
	}
	return d, nil
}

// buildOptions derives splitter options from settings. Environment options
// come last so tests can replace the engine.
func buildOptions(s *settings, env *Environment, logger *zap.Logger) []teisplit.Option {
	opts := []teisplit.Option{teisplit.WithLogger(logger)}
	if s.cfg.Assets.BasePath != "" {
		opts = append(opts, teisplit.WithAssetPath(s.cfg.Assets.BasePath))
	}
	if s.xsltproc != "" {
		opts = append(opts, teisplit.WithXSLTProc(s.xsltproc))
	}
	if s.timeout > 0 {
		opts = append(opts, teisplit.WithTimeout(s.timeout))
	}
	return append(opts, env.Options...)
}

// buildJob maps the merged configuration to a library job.
func buildJob(cfg *config.Config) teisplit.Job {
	return teisplit.Job{
		InputPath:  cfg.Input.Path,
		OutputDir:  cfg.Output.Dir,
		Stylesheet: cfg.Stylesheet,
		Metadata: teisplit.Metadata{
			Year:        cfg.Volume.Year,
			Publisher:   cfg.Volume.Publisher,
			PubPlace:    cfg.Volume.PubPlace,
			SeriesTitle: cfg.Volume.SeriesTitle,
			ExternalID:  cfg.Volume.ExternalID,
			Note:        cfg.Volume.Note,
		},
		Pages:            teisplit.PageRange{Start: cfg.Pages.Start, Stop: cfg.Pages.Stop},
		KeepIntermediate: cfg.Output.KeepIntermediate,
	}
}

// printResult reports the outcome on stdout.
func printResult(env *Environment, f commonFlags, res *teisplit.Result) {
	if f.quiet {
		return
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", res.OutputPath)
	if res.IntermediatePath != "" {
		fmt.Fprintf(env.Stdout, "Kept %s\n", res.IntermediatePath)
	}
	if !f.verbose {
		return
	}
	for _, p := range res.Pages {
		fmt.Fprintf(env.Stdout, "  page %d: %d surface(s), %s (%d element(s))\n", p.Page, p.Surfaces, p.Kind, p.Nodes)
	}
	fmt.Fprintf(env.Stdout, "  %d element(s) moved\n", res.Moved)
}
