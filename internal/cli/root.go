// Package cli wires the ytshelf command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lvcoi/ytshelf/internal/pipeline"
)

// Execute runs the command tree and maps the result to a process exit
// code: 0 on success, 1 for usage errors, 2 for everything else.
func Execute() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if !pipeline.IsReported(err) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return pipeline.ExitCode(err)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ytshelf",
		Short: "File YouTube audio into a tagged music library",
		Long: `ytshelf turns a YouTube video into a library-ready track: it downloads
the audio, derives artist and title from the video title, trims silence,
writes ID3 tags, normalizes loudness and files the result under
<library>/<Artist>/<Title>.mp3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newRunCmd())
	return cmd
}
