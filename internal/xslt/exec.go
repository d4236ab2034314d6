package xslt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/alnah/go-teisplit/internal/process"
)

// DefaultProcessor is the external XSLT processor looked up on PATH.
const DefaultProcessor = "xsltproc"

// xsltproc exit statuses that point at the stylesheet rather than the input.
const (
	exitStylesheetParse = 4
	exitStylesheetError = 5
)

// Exec runs an external xsltproc-compatible processor. Unlike the in-process
// Stylesheet, a running transform stops when ctx is cancelled.
type Exec struct {
	binary    string
	sheetPath string
}

// NewExec resolves binary on PATH and stores the stylesheet in a temporary
// file that lives until Close.
func NewExec(binary string, stylesheet []byte) (*Exec, error) {
	if len(stylesheet) == 0 {
		return nil, ErrEmptyStylesheet
	}
	if binary == "" {
		binary = DefaultProcessor
	}
	resolved, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEngineNotFound, binary)
	}

	f, err := os.CreateTemp("", "teisplit-*.xsl")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStylesheetLoad, err)
	}
	if _, err := f.Write(stylesheet); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("%w: %v", ErrStylesheetLoad, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("%w: %v", ErrStylesheetLoad, err)
	}

	return &Exec{binary: resolved, sheetPath: f.Name()}, nil
}

// NewExecFactory returns a Factory backed by an external processor.
func NewExecFactory(binary string) Factory {
	return func(stylesheet []byte) (Transformer, error) {
		return NewExec(binary, stylesheet)
	}
}

// Transform pipes input through the processor and returns its stdout.
func (e *Exec) Transform(ctx context.Context, input []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.sheetPath == "" {
		return nil, ErrClosed
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.binary, "--nonet", e.sheetPath, "-") // #nosec G204 -- binary resolved by NewExec
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	process.Isolate(cmd)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			switch exitErr.ExitCode() {
			case exitStylesheetParse, exitStylesheetError:
				return nil, fmt.Errorf("%w: %s", ErrStylesheetLoad, msg)
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrTransform, msg)
	}
	return stdout.Bytes(), nil
}

// Close removes the temporary stylesheet. It is safe to call more than once.
func (e *Exec) Close() error {
	if e.sheetPath == "" {
		return nil
	}
	err := os.Remove(e.sheetPath)
	e.sheetPath = ""
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Compile-time interface check.
var _ Transformer = (*Exec)(nil)
