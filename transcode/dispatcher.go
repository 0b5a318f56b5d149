// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"

	"github.com/nvik/transaudio/audio"
	flacfmt "github.com/nvik/transaudio/formats/flac"
	wavfmt "github.com/nvik/transaudio/formats/wav"
	"github.com/nvik/transaudio/internal/probe"
)

// Dispatcher routes transcode requests between the native pipeline and the
// external tool, and executes whichever was chosen.
type Dispatcher struct {
	log     *slog.Logger
	formats *audio.Registry
	runner  Runner
	tool    string
}

// NewDispatcher builds a dispatcher with the native decoders registered.
// A nil runner selects ExecRunner, a nil logger discards output.
func NewDispatcher(log *slog.Logger, runner Runner) *Dispatcher {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if runner == nil {
		runner = ExecRunner{}
	}

	formats := audio.NewRegistry()
	formats.Register(string(probe.FormatWAV), wavfmt.Decoder{})
	formats.Register(string(probe.FormatFLAC), flacfmt.Decoder{})

	return &Dispatcher{
		log:     log,
		formats: formats,
		runner:  runner,
		tool:    DefaultTool,
	}
}

// Plan validates req, probes the input file and resolves the route. It
// performs no processing and creates no output.
func (d *Dispatcher) Plan(req Request) (Plan, error) {
	if err := validate(req); err != nil {
		return Plan{}, err
	}

	info, err := probe.File(req.Input)
	if err != nil {
		if isFilesystemErr(err) {
			return Plan{}, fmt.Errorf("%w: %w", ErrIO, err)
		}
		return Plan{}, fmt.Errorf("%w: %w", ErrCorruptInput, err)
	}

	d.log.Debug("probed input",
		slog.String("path", req.Input),
		slog.String("format", string(info.Format)),
		slog.Int("sampleRate", info.SampleRate),
		slog.Int("channels", info.Channels),
		slog.Int("bitDepth", info.BitDepth))

	return buildPlan(req, info)
}

// Transcode plans and executes req. On any failure after planning it removes
// partial output so the destination path never holds a half-written file.
func (d *Dispatcher) Transcode(ctx context.Context, req Request) error {
	plan, err := d.Plan(req)
	if err != nil {
		return err
	}

	d.log.Info("dispatching",
		slog.String("route", plan.Route.String()),
		slog.String("input", req.Input),
		slog.String("output", req.Output))

	if plan.Route == RouteExternal {
		return d.runExternal(ctx, req)
	}
	return d.runNative(ctx, req, plan)
}

func (d *Dispatcher) runNative(ctx context.Context, req Request, plan Plan) error {
	f, err := os.Open(req.Input)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	dec, ok := d.formats.Get(string(plan.Input.Format))
	if !ok {
		return fmt.Errorf("%w: no native decoder for %q", ErrUnsupportedFormat, plan.Input.Format)
	}

	src, err := dec.Decode(f)
	if err != nil {
		return classifyDecode(err)
	}
	defer src.Close()

	buf, desc, err := audio.ReadAll(src)
	if err != nil {
		return fmt.Errorf("decode: %w", classifyDecode(err))
	}

	d.log.Debug("decoded input",
		slog.Int("frames", desc.Frames),
		slog.Int("sampleRate", desc.SampleRate),
		slog.Int("channels", desc.Channels))

	pool := audio.NewPool(req.Threads)

	if plan.Resample {
		buf, err = audio.Resample(ctx, pool, buf, desc.SampleRate, plan.Target.SampleRate)
		if err != nil {
			return fmt.Errorf("resample: %w", classifyCompute(err))
		}
	}
	if plan.Remix {
		buf, err = audio.MixChannels(ctx, pool, buf, plan.Target.Channels)
		if err != nil {
			return fmt.Errorf("remix: %w", classifyCompute(err))
		}
	}

	if err := wavfmt.Encode(req.Output, buf, plan.Target.SampleRate); err != nil {
		return fmt.Errorf("encode: %w: %w", ErrIO, err)
	}

	d.log.Info("wrote output",
		slog.String("path", req.Output),
		slog.Int("frames", buf.Frames()),
		slog.Int("sampleRate", plan.Target.SampleRate),
		slog.Int("channels", buf.Channels))
	return nil
}

func (d *Dispatcher) runExternal(ctx context.Context, req Request) error {
	args := externalArgs(req)
	d.log.Debug("running external tool",
		slog.String("tool", d.tool),
		slog.Any("args", args))

	code, stderr, err := d.runner.Run(ctx, d.tool, args)
	if err != nil {
		// The tool may have created a partial file before dying.
		os.Remove(req.Output)
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrExternalToolMissing, d.tool)
		}
		return fmt.Errorf("%w: %w", ErrExternalToolFailure, err)
	}
	if code != 0 {
		os.Remove(req.Output)
		return fmt.Errorf("%w: %s exited with status %d: %s", ErrExternalToolFailure, d.tool, code, stderr)
	}
	return nil
}

// classifyDecode maps format-package decode errors onto the taxonomy.
func classifyDecode(err error) error {
	switch {
	case errors.Is(err, wavfmt.ErrUnsupportedBitDepth),
		errors.Is(err, flacfmt.ErrUnsupportedBitDepth):
		return fmt.Errorf("%w: %w", ErrUnsupportedBitDepth, err)
	case isFilesystemErr(err):
		return fmt.Errorf("%w: %w", ErrIO, err)
	default:
		return fmt.Errorf("%w: %w", ErrCorruptInput, err)
	}
}

// classifyCompute maps transform-stage errors onto the taxonomy, leaving
// cancellation untouched so callers can still detect context errors.
func classifyCompute(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrResample, err)
}

func isFilesystemErr(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr)
}
