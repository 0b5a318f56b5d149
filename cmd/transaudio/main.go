// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/nvik/transaudio/transcode"
)

// Exit codes, one per taxonomy class so scripts can tell failures apart.
const (
	exitGeneric             = 1
	exitUnsupportedFormat   = 2
	exitUnsupportedBitDepth = 3
	exitCorruptInput        = 4
	exitIO                  = 5
	exitExternalToolMissing = 6
	exitExternalToolFailure = 7
)

func exitCode(err error) int {
	switch {
	case errors.Is(err, transcode.ErrUnsupportedFormat):
		return exitUnsupportedFormat
	case errors.Is(err, transcode.ErrUnsupportedBitDepth):
		return exitUnsupportedBitDepth
	case errors.Is(err, transcode.ErrCorruptInput):
		return exitCorruptInput
	case errors.Is(err, transcode.ErrIO):
		return exitIO
	case errors.Is(err, transcode.ErrExternalToolMissing):
		return exitExternalToolMissing
	case errors.Is(err, transcode.ErrExternalToolFailure):
		return exitExternalToolFailure
	default:
		return exitGeneric
	}
}

func newLogger(verbosity int) *slog.Logger {
	level := slog.LevelInfo
	if verbosity > 0 {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func main() {
	app := &cli.App{
		Name:  "transaudio",
		Usage: "transcode audio files between formats",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "input audio file path",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "output audio file path; the extension selects the format",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "codec",
				Usage: "output codec override (forces the external route)",
			},
			&cli.IntFlag{
				Name:  "bitrate",
				Usage: "target bitrate in kbps (external route only)",
			},
			&cli.IntFlag{
				Name:  "sample-rate",
				Usage: "target sample rate in Hz",
			},
			&cli.IntFlag{
				Name:  "channels",
				Usage: "target channel count",
			},
			&cli.StringFlag{
				Name:  "quality-preset",
				Usage: "encoder speed/quality preset (external route only)",
			},
			&cli.IntFlag{
				Name:  "threads",
				Usage: "worker thread count (default: all logical CPUs)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		// Exit codes are carried by cli.Exit; anything else is a flag
		// parsing error already printed by the framework.
		cli.HandleExitCoder(err)
		os.Exit(exitGeneric)
	}
}

func run(c *cli.Context) error {
	verbosity := 0
	if c.Bool("verbose") {
		verbosity = 1
	}
	log := newLogger(verbosity)

	input := c.String("input")
	info, err := os.Stat(input)
	if err != nil {
		return cli.Exit(fmt.Sprintf("input file %s: %v", input, err), exitIO)
	}
	if info.IsDir() {
		return cli.Exit(fmt.Sprintf("input path is not a file: %s", input), exitIO)
	}

	req := transcode.Request{
		Input:         input,
		Output:        c.String("output"),
		Codec:         c.String("codec"),
		BitrateKbps:   c.Int("bitrate"),
		SampleRate:    c.Int("sample-rate"),
		Channels:      c.Int("channels"),
		QualityPreset: c.String("quality-preset"),
		Threads:       c.Int("threads"),
	}

	// An interrupt aborts the whole operation: in-flight workers stop, the
	// external tool is killed, partial output is removed.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := transcode.NewDispatcher(log, nil)
	if err := d.Transcode(ctx, req); err != nil {
		return cli.Exit("transcode failed: "+err.Error(), exitCode(err))
	}

	log.Info("transcode completed", slog.String("output", req.Output))
	return nil
}
