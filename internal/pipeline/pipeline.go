package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultLoudness is the integrated loudness target in LUFS used when no
// configuration overrides it, matching common streaming-platform practice.
const DefaultLoudness = -14.0

// Options configures a single acquisition run.
type Options struct {
	// Library is the root directory tracks are filed under.
	Library string
	// Album and Genre are optional user-supplied tag values; empty means
	// derive them from metadata where possible.
	Album string
	Genre string
	// Loudness is the integrated loudness target in LUFS. Zero selects
	// DefaultLoudness.
	Loudness float64
	// Rules overrides the built-in filename rewrite catalog when non-empty.
	Rules []Rule
	// Quiet suppresses informational output; warnings, errors and the
	// final path still print.
	Quiet bool
}

// Run acquires one video as a tagged, loudness-normalized track in the
// library and returns the final absolute path. The path is also printed
// to stdout as the command's machine-readable output.
func Run(ctx context.Context, rawURL string, opts Options) (string, error) {
	return run(ctx, rawURL, opts, newPrinter(opts.Quiet))
}

func run(ctx context.Context, rawURL string, opts Options, printer *Printer) (string, error) {
	if opts.Loudness == 0 {
		opts.Loudness = DefaultLoudness
	}
	rules := opts.Rules
	if len(rules) == 0 {
		rules = defaultRules()
	}

	if err := checkDependencies(); err != nil {
		return "", err
	}

	url, err := canonicalURL(rawURL)
	if err != nil {
		return "", err
	}

	printer.Infof("fetching %s", url)
	workPath, err := fetchTrack(ctx, url)
	if err != nil {
		return "", err
	}
	printer.Infof("downloaded %s", filepath.Base(workPath))

	// Metadata problems should not discard an already downloaded track;
	// the affected tags just stay unset further down.
	meta, err := readSidecar(sidecarPath(workPath))
	if err != nil {
		printer.Errorf("reading download metadata: %v", err)
	}

	stem := normalizeFilename(workPath, rules)
	artist, title := splitArtistTitle(stem, meta.Uploader)

	if err := trimSilence(workPath); err != nil {
		return "", err
	}

	artist = reconcileArtistCasing(opts.Library, artist, printer)
	tags := Tags{
		Artist: artist,
		Title:  title,
		Year:   resolveYear(meta, printer),
		Genre:  resolveGenre(opts.Library, artist, opts.Genre, printer),
		Album:  resolveAlbum(meta, opts.Album, printer),
	}
	if err := writeTags(workPath, tags); err != nil {
		return "", err
	}

	if err := os.Remove(sidecarPath(workPath)); err != nil {
		printer.Warnf("could not remove metadata sidecar: %v", err)
	}

	if err := normalizeLoudness(workPath, opts.Loudness); err != nil {
		return "", err
	}

	finalPath, err := fileTrack(workPath, opts.Library, artist, title)
	if err != nil {
		return "", err
	}

	if info, err := os.Stat(finalPath); err == nil {
		printer.Successf("filed %s (%s)", filepath.Base(finalPath), humanBytes(info.Size()))
	}
	printer.Result(finalPath)
	return finalPath, nil
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}
