package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvcoi/ytshelf/internal/config"
	"github.com/lvcoi/ytshelf/internal/pipeline"
)

const runUsage = "usage: ytshelf run <video-url> [album] [genre]"

func newRunCmd() *cobra.Command {
	var (
		configPath string
		library    string
		loudness   float64
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "run <video-url> [album] [genre]",
		Short: "Fetch one video as a tagged track in the library",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 3 {
				fmt.Fprintln(cmd.ErrOrStderr(), runUsage)
				return pipeline.MarkReported(pipeline.CategorizedError{
					Category: pipeline.CategoryUsage,
					Err:      errors.New("wrong number of arguments"),
				})
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return pipeline.CategorizedError{Category: pipeline.CategoryConfig, Err: err}
			}
			if cmd.Flags().Changed("library") {
				cfg.Library = library
			}
			if cmd.Flags().Changed("loudness") {
				cfg.Loudness = loudness
			}
			if err := cfg.Validate(); err != nil {
				return pipeline.CategorizedError{Category: pipeline.CategoryConfig, Err: err}
			}

			opts := pipeline.Options{
				Library:  cfg.Library,
				Loudness: cfg.Loudness,
				Rules:    cfg.PipelineRules(),
				Quiet:    quiet,
			}
			if len(args) > 1 {
				opts.Album = args[1]
			}
			if len(args) > 2 {
				opts.Genre = args[2]
			}

			_, err = pipeline.Run(cmd.Context(), args[0], opts)
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/ytshelf/config.yaml)")
	cmd.Flags().StringVarP(&library, "library", "L", "", "library root directory")
	cmd.Flags().Float64Var(&loudness, "loudness", pipeline.DefaultLoudness, "integrated loudness target in LUFS")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")

	return cmd
}
