package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()

		loader, err := NewFilesystemLoader(tmpDir)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		if loader == nil {
			t.Fatal("NewFilesystemLoader() returned nil")
		}
	})

	t.Run("empty path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent directory returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory returns error", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		filePath := filepath.Join(tmpDir, "file.txt")
		if err := os.WriteFile(filePath, []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		_, err := NewFilesystemLoader(filePath)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

// writeSheet creates {base}/stylesheets/{name}.xsl.
func writeSheet(t *testing.T, base, name, content string) string {
	t.Helper()

	dir := filepath.Join(base, "stylesheets")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create stylesheets dir: %v", err)
	}
	path := filepath.Join(dir, name+".xsl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write stylesheet: %v", err)
	}
	return path
}

func TestFilesystemLoader_LoadStylesheet(t *testing.T) {
	t.Parallel()

	t.Run("loads existing stylesheet", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		content := `<xsl:stylesheet version="1.0"/>`
		writeSheet(t, tmpDir, "custom", content)

		loader, err := NewFilesystemLoader(tmpDir)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		got, err := loader.LoadStylesheet("custom")
		if err != nil {
			t.Fatalf("LoadStylesheet() error = %v", err)
		}
		if string(got) != content {
			t.Errorf("LoadStylesheet() = %q, want %q", got, content)
		}
	})

	t.Run("returns ErrStylesheetNotFound for nonexistent", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(tmpDir, "stylesheets"), 0755); err != nil {
			t.Fatalf("failed to create stylesheets dir: %v", err)
		}

		loader, err := NewFilesystemLoader(tmpDir)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		_, err = loader.LoadStylesheet("nonexistent")
		if !errors.Is(err, ErrStylesheetNotFound) {
			t.Errorf("LoadStylesheet() error = %v, want ErrStylesheetNotFound", err)
		}
	})

	t.Run("returns ErrInvalidAssetName for invalid name", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		for _, name := range []string{"", "../secret", "..\\secret", "sheet.evil"} {
			_, err := loader.LoadStylesheet(name)
			if !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("LoadStylesheet(%q) error = %v, want ErrInvalidAssetName", name, err)
			}
		}
	})
}

func TestFilesystemLoader_PathContainment(t *testing.T) {
	t.Parallel()

	t.Run("rejects symlink escape attempt", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		sheetsDir := filepath.Join(tmpDir, "stylesheets")
		if err := os.MkdirAll(sheetsDir, 0755); err != nil {
			t.Fatalf("failed to create stylesheets dir: %v", err)
		}

		secretFile := filepath.Join(t.TempDir(), "secret.xsl")
		if err := os.WriteFile(secretFile, []byte("secret content"), 0644); err != nil {
			t.Fatalf("failed to write secret file: %v", err)
		}

		if err := os.Symlink(secretFile, filepath.Join(sheetsDir, "evil.xsl")); err != nil {
			t.Skipf("symlink creation not supported: %v", err)
		}

		loader, err := NewFilesystemLoader(tmpDir)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		_, err = loader.LoadStylesheet("evil")
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("LoadStylesheet() with symlink escape error = %v, want ErrPathTraversal", err)
		}
	})
}
