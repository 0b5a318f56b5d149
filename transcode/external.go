// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// DefaultTool is the external encoder/decoder the dispatcher delegates to
// for format combinations outside the native matrix.
const DefaultTool = "ffmpeg"

// Runner executes an external command and reports its outcome. It exists so
// tests can substitute a fake instead of spawning processes.
type Runner interface {
	// Run executes name with args, waiting for completion. It returns the
	// process exit code and captured stderr. err is non-nil only when the
	// process could not be run at all (not found, context canceled); a
	// nonzero exit is reported through the code, not err.
	Run(ctx context.Context, name string, args []string) (code int, stderr string, err error)
}

// ExecRunner runs commands with os/exec. The child inherits nothing from
// stdin and its stderr is captured for diagnostics.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args []string) (int, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return exitErr.ExitCode(), stderr.String(), nil
		}
		return -1, stderr.String(), fmt.Errorf("%w", err)
	}
	return 0, stderr.String(), nil
}

// externalArgs translates a request into the ffmpeg command line, mirroring
// the flags the CLI exposes. -y overwrites the output, matching the native
// route's replace semantics.
func externalArgs(req Request) []string {
	args := []string{"-i", req.Input}

	if req.Codec != "" {
		args = append(args, "-c:a", req.Codec)
	}
	if req.BitrateKbps > 0 {
		args = append(args, "-b:a", strconv.Itoa(req.BitrateKbps)+"k")
	}
	if req.SampleRate > 0 {
		args = append(args, "-ar", strconv.Itoa(req.SampleRate))
	}
	if req.Channels > 0 {
		args = append(args, "-ac", strconv.Itoa(req.Channels))
	}
	if req.Threads > 0 {
		args = append(args, "-threads", strconv.Itoa(req.Threads))
	}
	if req.QualityPreset != "" {
		args = append(args, "-preset", req.QualityPreset)
	}

	args = append(args, "-y", req.Output)
	return args
}
