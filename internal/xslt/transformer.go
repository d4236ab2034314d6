package xslt

import (
	"context"
	"fmt"
	"sync"

	libxslt "github.com/wamuir/go-xslt"
)

// Transformer applies a compiled stylesheet to an XML document.
type Transformer interface {
	Transform(ctx context.Context, input []byte) ([]byte, error)
	Close() error
}

// Factory compiles stylesheet source into a Transformer.
type Factory func(stylesheet []byte) (Transformer, error)

// Stylesheet is a compiled libxslt stylesheet. It holds C memory until
// Close is called.
type Stylesheet struct {
	mu     sync.Mutex
	sheet  *libxslt.Stylesheet
	closed bool
}

// Compile parses and compiles an XSLT 1.0 stylesheet.
func Compile(stylesheet []byte) (*Stylesheet, error) {
	if len(stylesheet) == 0 {
		return nil, ErrEmptyStylesheet
	}
	sheet, err := libxslt.NewStylesheet(stylesheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStylesheetLoad, err)
	}
	return &Stylesheet{sheet: sheet}, nil
}

// NewFactory returns the libxslt Factory.
func NewFactory() Factory {
	return func(stylesheet []byte) (Transformer, error) {
		return Compile(stylesheet)
	}
}

// Transform applies the stylesheet to input. libxslt cannot be interrupted,
// so ctx is only checked before the call.
func (s *Stylesheet) Transform(ctx context.Context, input []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}
	out, err := s.sheet.Transform(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransform, err)
	}
	return out, nil
}

// Close frees the compiled stylesheet. It is safe to call more than once.
func (s *Stylesheet) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.sheet.Close()
	s.closed = true
	return nil
}

// Compile-time interface check.
var _ Transformer = (*Stylesheet)(nil)
