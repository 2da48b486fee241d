package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSidecarPath(t *testing.T) {
	tests := []struct {
		name  string
		audio string
		want  string
	}{
		{"mp3", "Song Title.mp3", "Song Title.info.json"},
		{"nested path", filepath.Join("work", "Band - Song.mp3"), filepath.Join("work", "Band - Song.info.json")},
		{"dotted stem", "a.b.mp3", "a.b.info.json"},
		{"no extension", "song", "song.info.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sidecarPath(tt.audio); got != tt.want {
				t.Errorf("sidecarPath(%q) = %q, want %q", tt.audio, got, tt.want)
			}
		})
	}
}

func TestReadSidecar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.info.json")
	payload := `{
		"uploader": "The Channel",
		"uploader_id": "@thechannel",
		"upload_date": "20230714",
		"description": "From the album \"Nightfall\", out now.",
		"duration": 215
	}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write sidecar: %v", err)
	}

	meta, err := readSidecar(path)
	if err != nil {
		t.Fatalf("readSidecar() error = %v", err)
	}
	if meta.Uploader != "The Channel" {
		t.Errorf("Uploader = %q, want %q", meta.Uploader, "The Channel")
	}
	if meta.UploaderID != "@thechannel" {
		t.Errorf("UploaderID = %q, want %q", meta.UploaderID, "@thechannel")
	}
	if meta.UploadDate != "20230714" {
		t.Errorf("UploadDate = %q, want %q", meta.UploadDate, "20230714")
	}
	if meta.Description != `From the album "Nightfall", out now.` {
		t.Errorf("Description = %q", meta.Description)
	}
}

func TestReadSidecarMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.info.json")
	if err := os.WriteFile(path, []byte(`{"title": "whatever"}`), 0o644); err != nil {
		t.Fatalf("write sidecar: %v", err)
	}

	meta, err := readSidecar(path)
	if err != nil {
		t.Fatalf("readSidecar() error = %v", err)
	}
	if meta != (Sidecar{}) {
		t.Errorf("readSidecar() = %+v, want zero value", meta)
	}
}

func TestReadSidecarErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := readSidecar(filepath.Join(dir, "absent.info.json")); err == nil {
		t.Error("expected error for missing sidecar")
	}

	bad := filepath.Join(dir, "bad.info.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write sidecar: %v", err)
	}
	if _, err := readSidecar(bad); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
