package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	teisplit "github.com/alnah/go-teisplit"
)

// fixture is the shared TEI test document of the root package.
const fixture = "../../testdata/volume.xml"

// passthrough stands in for the XSLT engine.
type passthrough struct{}

func (passthrough) Transform(_ context.Context, input []byte) ([]byte, error) { return input, nil }
func (passthrough) Close() error                                              { return nil }

// testEnv is an Environment with captured output and a fixed variable set.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestEnv(vars map[string]string) *testEnv {
	var stdout, stderr bytes.Buffer
	return &testEnv{
		Environment: &Environment{
			Stdout: &stdout,
			Stderr: &stderr,
			Getenv: func(k string) string { return vars[k] },
			Environ: func() []string {
				out := make([]string, 0, len(vars))
				for k, v := range vars {
					out = append(out, k+"="+v)
				}
				return out
			},
			Options: []teisplit.Option{teisplit.WithTransformerFactory(
				func([]byte) (teisplit.Transformer, error) { return passthrough{}, nil },
			)},
		},
		stdout: &stdout,
		stderr: &stderr,
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
