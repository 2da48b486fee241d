package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// silenceFilter strips leading and trailing silence: trim the head,
// reverse, trim the new head, reverse back.
const silenceFilter = "silenceremove=start_periods=1:start_threshold=-50dB,areverse,silenceremove=start_periods=1:start_threshold=-50dB,areverse"

// transcodeFn runs the ffmpeg rewrite; tests swap it out.
var transcodeFn = transcode

func loudnormFilter(targetLUFS float64) string {
	return fmt.Sprintf("loudnorm=I=%g:TP=-1.5:LRA=11", targetLUFS)
}

// trimSilence removes leading and trailing silence from the track in place.
func trimSilence(path string) error {
	return rewriteAudio(path, silenceFilter)
}

// normalizeLoudness brings the track to the target integrated loudness
// in place.
func normalizeLoudness(path string, targetLUFS float64) error {
	return rewriteAudio(path, loudnormFilter(targetLUFS))
}

// rewriteAudio runs the track through an ffmpeg filter, writing to a
// temp file next to the original and renaming over it on success.
func rewriteAudio(path, audioFilter string) error {
	tmpPath := filepath.Join(filepath.Dir(path), ".tmp_audio_"+filepath.Base(path))
	if err := transcodeFn(path, tmpPath, audioFilter); err != nil {
		os.Remove(tmpPath)
		return wrapCategory(CategoryAudio, fmt.Errorf("rewrite %s: %w", filepath.Base(path), err))
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return wrapCategory(CategoryAudio, fmt.Errorf("replace %s: %w", filepath.Base(path), err))
	}
	return nil
}

func transcode(inPath, outPath, audioFilter string) error {
	return rewriteStream(inPath, outPath, audioFilter).Run()
}

func rewriteStream(inPath, outPath, audioFilter string) *ffmpeg.Stream {
	return ffmpeg.Input(inPath).
		Output(outPath, ffmpeg.KwArgs{
			"af":     audioFilter,
			"acodec": "libmp3lame",
			"q:a":    "2",
		}).
		OverWriteOutput().
		Silent(true)
}
