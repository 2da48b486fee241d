package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// Sidecar carries the downloader-written metadata fields used for tag
// derivation. Fields the sidecar lacks stay empty.
type Sidecar struct {
	Uploader    string
	UploaderID  string
	UploadDate  string
	Description string
}

// sidecarPath derives the metadata sidecar location for a downloaded
// audio file: the audio extension replaced with ".info.json" (the
// downloader writes it next to the audio under the same stem).
func sidecarPath(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".info.json"
}

// readSidecar loads and queries the sidecar JSON. Callers treat failures
// as non-fatal: tagging proceeds with whatever fields are present.
func readSidecar(path string) (Sidecar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sidecar{}, fmt.Errorf("read sidecar: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return Sidecar{}, fmt.Errorf("sidecar %s: not valid JSON", filepath.Base(path))
	}
	return Sidecar{
		Uploader:    gjson.GetBytes(data, "uploader").String(),
		UploaderID:  gjson.GetBytes(data, "uploader_id").String(),
		UploadDate:  gjson.GetBytes(data, "upload_date").String(),
		Description: gjson.GetBytes(data, "description").String(),
	}, nil
}
