package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCheckDependencies(t *testing.T) {
	orig := lookPathFn
	t.Cleanup(func() { lookPathFn = orig })

	lookPathFn = func(name string) (string, error) { return "/usr/bin/" + name, nil }
	if err := checkDependencies(); err != nil {
		t.Fatalf("checkDependencies() error = %v, want nil", err)
	}

	lookPathFn = func(name string) (string, error) {
		if name == "yt-dlp" {
			return "", errors.New("not found")
		}
		return "/usr/bin/" + name, nil
	}
	err := checkDependencies()
	if err == nil {
		t.Fatal("checkDependencies() = nil, want error")
	}
	if !strings.Contains(err.Error(), "yt-dlp") {
		t.Errorf("error %q does not name the missing tool", err)
	}
	if got := CategoryOf(err); got != CategoryDependency {
		t.Errorf("CategoryOf() = %q, want %q", got, CategoryDependency)
	}
	if got := ExitCode(err); got != 2 {
		t.Errorf("ExitCode() = %d, want 2", got)
	}
}

func TestCanonicalURL(t *testing.T) {
	const want = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	tests := []struct {
		name  string
		input string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"watch url with params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ"},
		{"shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ"},
		{"bare id", "dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := canonicalURL(tt.input)
			if err != nil {
				t.Fatalf("canonicalURL(%q) error = %v", tt.input, err)
			}
			if got != want {
				t.Errorf("canonicalURL(%q) = %q, want %q", tt.input, got, want)
			}
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := canonicalURL("abc")
		if err == nil {
			t.Fatal("canonicalURL(\"abc\") = nil error, want failure")
		}
		if got := CategoryOf(err); got != CategoryDownload {
			t.Errorf("CategoryOf() = %q, want %q", got, CategoryDownload)
		}
	})
}

func TestYtdlpArgs(t *testing.T) {
	const url = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	args := ytdlpArgs(url)

	if got := args[len(args)-1]; got != url {
		t.Errorf("last arg = %q, want the url", got)
	}
	joined := " " + strings.Join(args, " ") + " "
	for _, want := range []string{
		"--no-playlist",
		"--windows-filenames",
		"--extract-audio",
		"--audio-format mp3",
		"--sponsorblock-remove all",
		"--embed-metadata",
		"--write-info-json",
		"--output %(title)s.%(ext)s",
		"--print after_move:filepath",
		"--no-simulate",
		"--quiet",
	} {
		if !strings.Contains(joined, " "+want+" ") {
			t.Errorf("args missing %q in %q", want, joined)
		}
	}
}

func TestFetchTrack(t *testing.T) {
	orig := runCommandFn
	t.Cleanup(func() { runCommandFn = orig })

	t.Run("returns trimmed output path", func(t *testing.T) {
		runCommandFn = func(ctx context.Context, name string, args ...string) (string, error) {
			if name != "yt-dlp" {
				t.Errorf("command = %q, want yt-dlp", name)
			}
			return "Artist - Song.mp3\n", nil
		}
		got, err := fetchTrack(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		if err != nil {
			t.Fatalf("fetchTrack() error = %v", err)
		}
		if got != "Artist - Song.mp3" {
			t.Errorf("fetchTrack() = %q, want %q", got, "Artist - Song.mp3")
		}
	})

	t.Run("empty output is a download failure", func(t *testing.T) {
		runCommandFn = func(ctx context.Context, name string, args ...string) (string, error) {
			return "\n", nil
		}
		_, err := fetchTrack(context.Background(), "url")
		if err == nil {
			t.Fatal("fetchTrack() = nil error, want failure")
		}
		if got := CategoryOf(err); got != CategoryDownload {
			t.Errorf("CategoryOf() = %q, want %q", got, CategoryDownload)
		}
	})

	t.Run("downloader failure carries stderr detail", func(t *testing.T) {
		runCommandFn = func(ctx context.Context, name string, args ...string) (string, error) {
			return "", fmt.Errorf("exit status 1: ERROR: unable to download video")
		}
		_, err := fetchTrack(context.Background(), "url")
		if err == nil {
			t.Fatal("fetchTrack() = nil error, want failure")
		}
		if !strings.Contains(err.Error(), "unable to download video") {
			t.Errorf("error %q lost the downloader detail", err)
		}
		if got := ExitCode(err); got != 2 {
			t.Errorf("ExitCode() = %d, want 2", got)
		}
	})
}
