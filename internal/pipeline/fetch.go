package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kkdai/youtube/v2"
)

// requiredTools must all resolve on PATH before any work starts: yt-dlp
// performs the download and extraction, ffmpeg the audio rewrites.
var requiredTools = []string{"yt-dlp", "ffmpeg"}

// Seams for tests.
var (
	lookPathFn   = exec.LookPath
	runCommandFn = runCommand
)

// checkDependencies confirms every required external tool is resolvable.
func checkDependencies() error {
	for _, tool := range requiredTools {
		if _, err := lookPathFn(tool); err != nil {
			return wrapCategory(CategoryDependency, fmt.Errorf("required dependency %q not found in PATH", tool))
		}
	}
	return nil
}

// canonicalURL reduces any supported YouTube URL shape (watch, youtu.be,
// shorts, embed, bare video id) to the canonical watch URL fed to the
// downloader.
func canonicalURL(rawURL string) (string, error) {
	id, err := youtube.ExtractVideoID(rawURL)
	if err != nil {
		return "", wrapCategory(CategoryDownload, fmt.Errorf("resolve video id from %q: %w", rawURL, err))
	}
	return watchURLForID(id), nil
}

func watchURLForID(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// fetchTrack invokes the downloader once, synchronously, in the working
// directory: audio-only mp3 extraction, SponsorBlock segment removal,
// metadata sidecar. The downloader prints the final audio path on stdout;
// an empty path or a non-zero exit is a download failure.
func fetchTrack(ctx context.Context, url string) (string, error) {
	stdout, err := runCommandFn(ctx, "yt-dlp", ytdlpArgs(url)...)
	if err != nil {
		return "", wrapCategory(CategoryDownload, fmt.Errorf("yt-dlp: %w", err))
	}
	audioPath := strings.TrimSpace(stdout)
	if audioPath == "" {
		return "", wrapCategory(CategoryDownload, errors.New("downloader produced no output path"))
	}
	return audioPath, nil
}

func ytdlpArgs(url string) []string {
	return []string{
		"--no-playlist",
		"--windows-filenames",
		"--extract-audio",
		"--audio-format", "mp3",
		"--sponsorblock-remove", "all",
		"--embed-metadata",
		"--write-info-json",
		"--output", "%(title)s.%(ext)s",
		"--print", "after_move:filepath",
		"--no-simulate",
		"--quiet",
		"--no-warnings",
		url,
	}
}

// runCommand runs a tool synchronously and returns its stdout; trimmed
// stderr is folded into the error on failure.
func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return stdout.String(), fmt.Errorf("%w: %s", err, detail)
		}
		return stdout.String(), err
	}
	return stdout.String(), nil
}
