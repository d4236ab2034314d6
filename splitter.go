package teisplit

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-teisplit/internal/assets"
	"github.com/alnah/go-teisplit/internal/fileutil"
	"github.com/alnah/go-teisplit/internal/pipeline"
	"github.com/alnah/go-teisplit/internal/tei"
)

// Splitter extracts page ranges from TEI documents.
// A Splitter holds no per-run state and may be shared between goroutines
// as long as its TransformerFactory is.
type Splitter struct {
	cfg               splitterConfig
	logger            *zap.Logger
	factory           TransformerFactory
	resolver          *assets.AssetResolver
	publicAssetLoader AssetLoader
	postProcessor     pipeline.PostProcessor
}

// NewSplitter creates a Splitter with the given options.
// Returns ErrInvalidAssetPath if WithAssetPath names an unusable directory.
func NewSplitter(opts ...Option) (*Splitter, error) {
	s := &Splitter{
		logger:        zap.NewNop(),
		postProcessor: pipeline.LineBreakFixup{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Custom loader takes precedence over asset path; both fall back to the
	// bundled stylesheets.
	if s.publicAssetLoader != nil {
		s.resolver = assets.NewResolverWithLoaders(
			&publicToInternalAdapter{pub: s.publicAssetLoader},
			assets.NewEmbeddedLoader(),
		)
	} else {
		resolver, err := assets.NewAssetResolver(s.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		s.resolver = resolver
	}

	if s.factory == nil {
		s.factory = libxsltFactory()
	}

	return s, nil
}

// run carries the state of one Run call.
type run struct {
	s      *Splitter
	job    Job
	logger *zap.Logger
	res    *Result
}

// Run executes the pipeline for job: parse, build header, select, assemble,
// write the intermediate file, transform, write the final file and delete
// the intermediate one.
//
// The returned Result is never nil; on failure it describes how far the run
// got. Errors from the pipeline are *StageError values that unwrap to the
// package sentinels. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (s *Splitter) Run(ctx context.Context, job Job) (result *Result, err error) {
	r := &run{
		s:   s,
		job: job,
		logger: s.logger.With(
			zap.String("input", job.InputPath),
			zap.Stringer("pages", job.Pages),
		),
		res: &Result{},
	}
	result = r.res

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	if err := job.Validate(); err != nil {
		return result, err
	}

	if s.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := r.execute(ctx); err != nil {
		r.logger.Debug("run failed", zap.Stringer("stage", r.res.Stage), zap.Error(err))
		return result, err
	}
	r.logger.Debug("run complete",
		zap.String("output", r.res.OutputPath),
		zap.Int("moved", r.res.Moved),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

func (r *run) execute(ctx context.Context) error {
	job := r.job

	if err := ctx.Err(); err != nil {
		return r.fail(StageParsed, err)
	}
	src, err := tei.ParseFile(job.InputPath)
	if err != nil {
		return r.fail(StageParsed, fmt.Errorf("%w: %v", ErrReadInput, err))
	}
	r.done(StageParsed)

	doc := tei.BuildHeader(job.Metadata.header())
	r.done(StageHeaderBuilt)

	if err := ctx.Err(); err != nil {
		return r.fail(StageSelected, err)
	}
	sel, err := tei.Select(src.Root(), tei.DefaultNamespaces(), job.Pages.Pages())
	if err != nil {
		return r.fail(StageSelected, fmt.Errorf("%w: %v", ErrAssemble, err))
	}
	r.report(sel)
	r.done(StageSelected)

	moved, err := tei.Assemble(doc, src.Root(), sel)
	if err != nil {
		return r.fail(StageAssembled, fmt.Errorf("%w: %v", ErrAssemble, err))
	}
	r.res.Moved = moved
	r.done(StageAssembled, zap.Int("moved", moved))

	if err := ctx.Err(); err != nil {
		return r.fail(StageIntermediateWritten, err)
	}
	data, err := tei.Serialize(doc)
	if err != nil {
		return r.fail(StageIntermediateWritten, fmt.Errorf("%w: %v", ErrWriteIntermediate, err))
	}
	intermediate := IntermediateName(job.OutputDir, job.Metadata.Year, job.Pages)
	if err := fileutil.WriteFile(intermediate, data, r.warnOverwrite); err != nil {
		return r.fail(StageIntermediateWritten, fmt.Errorf("%w: %v", ErrWriteIntermediate, err))
	}
	r.res.IntermediatePath = intermediate
	r.done(StageIntermediateWritten, zap.String("path", intermediate))

	if err := ctx.Err(); err != nil {
		return r.fail(StageTransformed, err)
	}
	final, err := r.transform(ctx, intermediate)
	if err != nil {
		return r.fail(StageTransformed, fmt.Errorf("%w (intermediate file kept at %s)", err, intermediate))
	}
	r.done(StageTransformed)

	if err := ctx.Err(); err != nil {
		return r.fail(StageFinalWritten, err)
	}
	output := FinalName(job.OutputDir, job.Metadata.Year, job.Pages)
	if err := fileutil.WriteFile(output, final, r.warnOverwrite); err != nil {
		return r.fail(StageFinalWritten, fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}
	r.res.OutputPath = output
	r.done(StageFinalWritten, zap.String("path", output))

	if job.KeepIntermediate {
		return nil
	}
	if err := fileutil.RemoveFile(intermediate); err != nil {
		r.warn("could not delete intermediate file", fmt.Sprintf("could not delete %s: %v", intermediate, err),
			zap.String("path", intermediate), zap.Error(err))
		return nil
	}
	r.res.IntermediatePath = ""
	r.done(StageIntermediateDeleted, zap.String("path", intermediate))
	return nil
}

// stylesheetLookup names where ref was looked up.
func stylesheetLookup(ref string, resolver *assets.AssetResolver) string {
	switch {
	case fileutil.IsFilePath(ref):
		return "file"
	case resolver.HasCustomLoader():
		return "custom-then-bundled"
	default:
		return "bundled"
	}
}

// transform reads back the intermediate file, applies the stylesheet and
// returns the re-serialized, line-break-fixed result.
func (r *run) transform(ctx context.Context, intermediate string) ([]byte, error) {
	raw, err := os.ReadFile(intermediate) // #nosec G304 -- path built by IntermediateName
	if err != nil {
		return nil, fmt.Errorf("%w: reading intermediate: %v", ErrTransform, err)
	}
	if _, err := tei.ParseBytes(raw); err != nil {
		return nil, fmt.Errorf("%w: intermediate is not well-formed: %v", ErrTransform, err)
	}

	ref := r.job.Stylesheet
	if ref == "" {
		ref = DefaultStylesheet
	}
	sheet, err := r.s.resolver.Resolve(ref)
	if err != nil {
		return nil, convertAssetError(err)
	}
	r.logger.Debug("stylesheet resolved",
		zap.String("stylesheet", ref),
		zap.String("lookup", stylesheetLookup(ref, r.s.resolver)))

	t, err := r.s.factory(sheet)
	if err != nil {
		if isPublicError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrStylesheetLoad, err)
	}
	defer func() {
		if cerr := t.Close(); cerr != nil {
			r.logger.Debug("closing transformer", zap.Error(cerr))
		}
	}()

	out, err := t.Transform(ctx, raw)
	if err != nil {
		err = convertEngineError(err)
		if isPublicError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrTransform, err)
	}

	doc, err := tei.ParseBytes(out)
	if err != nil {
		return nil, fmt.Errorf("%w: stylesheet output is not well-formed: %v", ErrTransform, err)
	}
	data, err := tei.Serialize(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransform, err)
	}

	data = r.s.postProcessor.PostProcess(ctx, data)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return data, nil
}

// report fills Result.Pages from the selection.
func (r *run) report(sel tei.Selection) {
	r.res.Pages = make([]PageReport, 0, len(sel.Pages))
	for _, p := range sel.Pages {
		rep := PageReport{
			Page:     p.Page,
			Surfaces: len(p.Surfaces),
			Kind:     p.Kind().String(),
			Nodes:    len(p.Content()),
		}
		r.res.Pages = append(r.res.Pages, rep)
		r.logger.Debug("page selected",
			zap.Int("page", rep.Page),
			zap.Int("surfaces", rep.Surfaces),
			zap.String("kind", rep.Kind),
			zap.Int("nodes", rep.Nodes),
		)
	}
}

// warnOverwrite runs before an existing file is replaced.
func (r *run) warnOverwrite(path string) {
	r.warn("overwriting existing file", "overwriting "+path, zap.String("path", path))
}

func (r *run) warn(msg, warning string, fields ...zap.Field) {
	r.res.Warnings = append(r.res.Warnings, warning)
	r.logger.Warn(msg, fields...)
}

func (r *run) done(stage Stage, fields ...zap.Field) {
	r.res.Stage = stage
	r.logger.Debug("stage complete", append([]zap.Field{zap.Stringer("stage", stage)}, fields...)...)
}

func (r *run) fail(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
