package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tecxbro/videoreimagine/internal/config"
	"github.com/tecxbro/videoreimagine/internal/ffmpeg"
	"github.com/tecxbro/videoreimagine/internal/logging"
	"github.com/tecxbro/videoreimagine/internal/splitter"
	"github.com/tecxbro/videoreimagine/pkg/util"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	ctx := context.Background()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Msg(err.Error())
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes processing failures (2) from usage and input
// errors (1), mirroring the scheme callers already script against.
func exitCode(err error) int {
	kinds := []error{
		splitter.ErrSourceUnreadable,
		splitter.ErrEmptyVideo,
		splitter.ErrDegenerateSceneList,
		splitter.ErrOutputUnwritable,
		splitter.ErrStatsWrite,
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return 2
		}
	}
	return 1
}

var rootCmd = &cobra.Command{
	Use:           "videoreimagine",
	Short:         "videoreimagine - scene detection and splitting toolkit",
	Long:          "Detects scene boundaries in a video with an adaptive rolling-average detector and splits it into per-scene clips.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging
		logging.Init(verbose)

		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// Store config in context
		ctx := config.WithConfig(cmd.Context(), cfg)
		cmd.SetContext(ctx)

		return nil
	},
}

var (
	splitThreshold float64
	splitMinLen    int
	splitWindow    int
	splitOutput    string
	splitDryRun    bool
	splitStatsFile string
)

var splitCmd = &cobra.Command{
	Use:   "split [input video]",
	Short: "Detect scenes and split the video into clips",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		if !util.FileExists(input) {
			return fmt.Errorf("input file not found: %s", input)
		}

		cfg := config.FromContext(cmd.Context())
		detCfg := detectionConfig(cmd, cfg)

		exec, err := ffmpeg.New(log.Logger, ffmpeg.Options{
			FFmpegPath:  cfg.FFmpeg.BinaryPath,
			FFprobePath: cfg.FFmpeg.ProbePath,
			Threads:     cfg.FFmpeg.Threads,
		})
		if err != nil {
			return err
		}

		info, err := exec.ProbeVideo(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", splitter.ErrSourceUnreadable, input, err)
		}

		log.Info().
			Str("input", input).
			Dur("duration", info.Duration).
			Float64("fps", info.FPS).
			Int64("frames", info.FrameCount).
			Msg("starting scene detection")

		writer := &splitter.ExecutorClipWriter{
			Exec:       exec,
			VideoCodec: cfg.FFmpeg.VideoCodec,
			AudioCodec: cfg.FFmpeg.AudioCodec,
			CRF:        cfg.FFmpeg.CRF,
			Preset:     cfg.FFmpeg.Preset,
		}

		sp, err := splitter.New(detCfg, splitter.NewFFmpegSource(exec, input), writer)
		if err != nil {
			return err
		}

		// Dry runs keep their statistics unless told otherwise.
		statsPath := detCfg.StatsFile
		if statsPath == "" && detCfg.DryRun {
			statsPath = util.Stem(input) + "-scenes.csv"
		}

		result, err := sp.Run(cmd.Context(), input, info.FPS, statsPath)
		if err != nil {
			return err
		}

		printSceneTable(result.Scenes, info.FPS)

		log.Info().
			Int("scenes", len(result.Scenes)).
			Int("total_frames", result.TotalFrames).
			Msg("scene detection complete")

		if result.StatsErr != nil {
			log.Error().Err(result.StatsErr).Str("stats_file", statsPath).Msg("statistics not written")
		} else if statsPath != "" {
			log.Info().Str("stats_file", statsPath).Msg("statistics written")
		}

		if result.MaterializeErr != nil {
			log.Error().Err(result.MaterializeErr).
				Int("written", len(result.Materialize.Written)).
				Int("scenes", result.Materialize.SceneCount).
				Msg("clip materialization aborted; clips written so far are kept")
		} else if detCfg.DryRun {
			log.Info().Int("scenes", result.Materialize.SceneCount).Msg("dry run, no clips written")
		} else {
			log.Info().
				Int("clips", len(result.Materialize.Written)).
				Str("output_dir", detCfg.OutputDir).
				Msg("video split into clips")
		}

		if result.Failed() {
			return errors.Join(result.MaterializeErr, result.StatsErr)
		}
		return nil
	},
}

// detectionConfig merges file-backed defaults with explicitly set flags.
func detectionConfig(cmd *cobra.Command, cfg *config.Config) splitter.Config {
	det := splitter.Config{
		Threshold:   cfg.Detect.Threshold,
		MinSceneLen: cfg.Detect.MinSceneLen,
		Window:      cfg.Detect.Window,
		OutputDir:   cfg.Detect.OutputDir,
		DryRun:      splitDryRun,
		StatsFile:   splitStatsFile,
	}

	flags := cmd.Flags()
	if flags.Changed("threshold") {
		det.Threshold = splitThreshold
	}
	if flags.Changed("min-len") {
		det.MinSceneLen = splitMinLen
	}
	if flags.Changed("window") {
		det.Window = splitWindow
	}
	if flags.Changed("output") {
		det.OutputDir = splitOutput
	}
	return det
}

func printSceneTable(scenes []splitter.Scene, fps float64) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCENE\tSTART (s)\tEND (s)\tDURATION (s)\tFRAMES\tSCORE")
	for _, s := range scenes {
		fmt.Fprintf(w, "%03d\t%.2f\t%.2f\t%.2f\t%d\t%.4f\n",
			s.Index,
			util.FrameToSeconds(s.StartFrame, fps),
			util.FrameToSeconds(s.EndFrame, fps),
			util.FrameToSeconds(s.DurationFrames(), fps),
			s.DurationFrames(),
			s.Score,
		)
	}
	w.Flush()
}

var probeCmd = &cobra.Command{
	Use:   "probe [input video]",
	Short: "Print video metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		if !util.FileExists(input) {
			return fmt.Errorf("input file not found: %s", input)
		}

		cfg := config.FromContext(cmd.Context())
		exec, err := ffmpeg.New(log.Logger, ffmpeg.Options{
			FFmpegPath:  cfg.FFmpeg.BinaryPath,
			FFprobePath: cfg.FFmpeg.ProbePath,
			Threads:     cfg.FFmpeg.Threads,
		})
		if err != nil {
			return err
		}

		info, err := exec.ProbeVideo(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", splitter.ErrSourceUnreadable, input, err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "file\t%s\n", info.FilePath)
		fmt.Fprintf(w, "duration\t%s\n", info.Duration)
		fmt.Fprintf(w, "dimensions\t%dx%d\n", info.Width, info.Height)
		fmt.Fprintf(w, "fps\t%.3f\n", info.FPS)
		fmt.Fprintf(w, "frames\t%d\n", info.FrameCount)
		fmt.Fprintf(w, "video codec\t%s\n", info.VideoCodec)
		if info.HasAudio {
			fmt.Fprintf(w, "audio codec\t%s\n", info.AudioCodec)
		}
		return w.Flush()
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Config management commands",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromContext(cmd.Context())
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./videoreimagine.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	defaults := splitter.DefaultConfig()
	splitCmd.Flags().Float64VarP(&splitThreshold, "threshold", "t", defaults.Threshold, "adaptive threshold over the rolling mean score")
	splitCmd.Flags().IntVarP(&splitMinLen, "min-len", "m", defaults.MinSceneLen, "minimum scene length in frames")
	splitCmd.Flags().IntVarP(&splitWindow, "window", "w", defaults.Window, "rolling average window size in frames")
	splitCmd.Flags().StringVarP(&splitOutput, "output", "o", defaults.OutputDir, "output directory for clips")
	splitCmd.Flags().BoolVar(&splitDryRun, "dry-run", false, "detect scenes but do not split the video")
	splitCmd.Flags().StringVar(&splitStatsFile, "stats-file", "", "save scene statistics to CSV file")

	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(configCmd)
}
