package docs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestReadmeDocumentsUsage verifies the README shows the run command and
// its positional arguments.
func TestReadmeDocumentsUsage(t *testing.T) {
	content := readReadme(t)
	required := []string{
		"ytshelf run <video-url> [album] [genre]",
		"yt-dlp",
		"ffmpeg",
	}
	for _, s := range required {
		if !strings.Contains(content, s) {
			t.Errorf("README.md missing expected content: %q", s)
		}
	}
}

// TestReadmeDocumentsFlags verifies every run flag appears in the README.
func TestReadmeDocumentsFlags(t *testing.T) {
	content := readReadme(t)
	flags := []string{"--library", "--config", "--loudness", "--quiet"}
	for _, flag := range flags {
		if !strings.Contains(content, flag) {
			t.Errorf("README.md missing flag: %s", flag)
		}
	}
}

// TestReadmeDocumentsEnvironment verifies the configuration environment
// variables are documented.
func TestReadmeDocumentsEnvironment(t *testing.T) {
	content := readReadme(t)
	vars := []string{"YTSHELF_LIBRARY", "YTSHELF_LOUDNESS"}
	for _, v := range vars {
		if !strings.Contains(content, v) {
			t.Errorf("README.md missing environment variable: %s", v)
		}
	}
}

// TestReadmeDocumentsConfigFile verifies the config file location and
// schema keys are documented.
func TestReadmeDocumentsConfigFile(t *testing.T) {
	content := readReadme(t)
	required := []string{
		"ytshelf/config.yaml",
		"library:",
		"loudness:",
		"rules:",
		"pattern:",
		"replacement:",
	}
	for _, s := range required {
		if !strings.Contains(content, s) {
			t.Errorf("README.md missing config documentation: %q", s)
		}
	}
}

// TestReadmeDocumentsExitCodes verifies the exit code table is present.
func TestReadmeDocumentsExitCodes(t *testing.T) {
	content := readReadme(t)
	required := []string{"Exit codes", "usage error"}
	for _, s := range required {
		if !strings.Contains(content, s) {
			t.Errorf("README.md missing exit code documentation: %q", s)
		}
	}
}

func readReadme(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(findRepoRoot(t), "README.md"))
	if err != nil {
		t.Fatalf("README.md not found: %v", err)
	}
	return string(data)
}

// findRepoRoot walks up from the test file to find the repository root
// (the directory containing go.mod).
func findRepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("cannot get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find repository root (no go.mod found)")
		}
		dir = parent
	}
}
