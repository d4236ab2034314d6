package teisplit

import (
	"context"
	"errors"

	"github.com/alnah/go-teisplit/internal/xslt"
)

// Transformer applies one compiled stylesheet to XML documents.
type Transformer interface {
	// Transform returns the transformed document.
	Transform(ctx context.Context, input []byte) ([]byte, error)
	// Close releases the compiled stylesheet.
	Close() error
}

// TransformerFactory compiles stylesheet source into a Transformer.
// Run calls it once per job and closes the result when the transform stage
// returns.
type TransformerFactory func(stylesheet []byte) (Transformer, error)

// libxsltFactory is the default engine: in-process libxslt.
func libxsltFactory() TransformerFactory {
	return adaptFactory(xslt.NewFactory())
}

// execFactory runs an external xsltproc-compatible binary.
func execFactory(binary string) TransformerFactory {
	return adaptFactory(xslt.NewExecFactory(binary))
}

// adaptFactory maps internal engine errors to public sentinels.
func adaptFactory(f xslt.Factory) TransformerFactory {
	return func(stylesheet []byte) (Transformer, error) {
		t, err := f(stylesheet)
		if err != nil {
			return nil, convertEngineError(err)
		}
		return t, nil
	}
}

// convertEngineError maps internal xslt errors to public errors.
// Context errors pass through untouched.
func convertEngineError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, xslt.ErrEngineNotFound):
		return wrapError(ErrXSLTProcessor, err)
	case errors.Is(err, xslt.ErrEmptyStylesheet), errors.Is(err, xslt.ErrStylesheetLoad):
		return wrapError(ErrStylesheetLoad, err)
	case errors.Is(err, xslt.ErrTransform), errors.Is(err, xslt.ErrClosed):
		return wrapError(ErrTransform, err)
	default:
		return err
	}
}

// isPublicError reports whether err already matches a public sentinel of the
// transform stage.
func isPublicError(err error) bool {
	for _, target := range []error{ErrStylesheetLoad, ErrTransform, ErrXSLTProcessor, context.Canceled, context.DeadlineExceeded} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Compile-time interface checks.
var (
	_ Transformer = (*xslt.Stylesheet)(nil)
	_ Transformer = (*xslt.Exec)(nil)
)
