package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafePathChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// sanitizeComponent makes a tag-derived string safe as a single path
// component. Forbidden filesystem characters become "-"; normalization
// can reintroduce "/" (the "⧸" rule), so this runs on every component.
func sanitizeComponent(name string) string {
	return strings.TrimSpace(unsafePathChars.ReplaceAllString(name, "-"))
}

// canonicalArtist scans the library root for a directory matching artist
// case-insensitively and returns its on-disk name. Directory entries come
// back sorted, so the first match is deterministic.
func canonicalArtist(root, artist string) (string, bool) {
	if artist == "" {
		return artist, false
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return artist, false
	}
	for _, entry := range entries {
		if entry.IsDir() && strings.EqualFold(entry.Name(), artist) {
			return entry.Name(), true
		}
	}
	return artist, false
}

// listTracks returns the .mp3 files directly inside dir, sorted by name.
func listTracks(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var tracks []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".mp3") {
			continue
		}
		tracks = append(tracks, filepath.Join(dir, entry.Name()))
	}
	return tracks
}

// fileTrack copies the working file to <root>/<Artist>/<Title>.mp3 and
// removes the working copy only after the copy succeeded. Returns the
// final absolute path.
func fileTrack(workPath, root, artist, title string) (string, error) {
	artistDir := filepath.Join(root, sanitizeComponent(artist))
	if err := os.MkdirAll(artistDir, 0o755); err != nil {
		return "", wrapCategory(CategoryFilesystem, fmt.Errorf("create artist directory: %w", err))
	}

	name := sanitizeComponent(title)
	if name == "" {
		name = "track"
	}
	destPath := filepath.Join(artistDir, name+".mp3")
	if err := copyFile(workPath, destPath); err != nil {
		return "", wrapCategory(CategoryFilesystem, fmt.Errorf("copy into library: %w", err))
	}
	if err := os.Remove(workPath); err != nil {
		return "", wrapCategory(CategoryFilesystem, fmt.Errorf("remove working copy: %w", err))
	}

	abs, err := filepath.Abs(destPath)
	if err != nil {
		return destPath, nil
	}
	return abs, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
