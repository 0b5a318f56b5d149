// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nvik/transaudio/audio"
	"github.com/nvik/transaudio/internal/probe"
)

// Request describes one transcode operation. Zero-valued optional fields
// mean "not requested". A Request is never mutated after construction.
type Request struct {
	Input  string
	Output string

	// Codec overrides the output codec. Only meaningful on the external
	// route; setting it forces delegation.
	Codec string
	// BitrateKbps is the target bitrate in kbps, external route only.
	BitrateKbps int
	// SampleRate is the target sample rate in Hz.
	SampleRate int
	// Channels is the target channel count.
	Channels int
	// QualityPreset is an encoder speed/quality preset, external route only.
	QualityPreset string
	// Threads is the worker count for the native compute phases. Zero means
	// all logical CPUs.
	Threads int
}

// Route identifies which pipeline executes a request. It is resolved once
// during planning and never re-checked mid-pipeline.
type Route int

const (
	RouteNative Route = iota
	RouteExternal
)

func (r Route) String() string {
	if r == RouteNative {
		return "native"
	}
	return "external"
}

// Plan is the resolved execution plan for one request: the route, the input
// parameters read from the file's headers, the target stream descriptor, and
// which native stages run. Built once by the dispatcher; immutable.
type Plan struct {
	Route  Route
	Input  probe.Info
	Target audio.StreamDescriptor

	// Resample and Remix select the native pipeline stages. Both false means
	// a direct decode-encode pass; for same-format input that is a lossless
	// passthrough.
	Resample bool
	Remix    bool
}

// nativeInputs are the container formats the native pipeline can decode,
// with the single bit depth supported for each.
var nativeInputs = map[probe.Format]int{
	probe.FormatWAV:  16,
	probe.FormatFLAC: 16,
}

// nativeOutput is the one container format the native pipeline can encode.
const nativeOutput = "wav"

// knownExtensions lists the output (and fallback input) extensions the
// external tool is expected to handle. Anything else is rejected up front
// rather than handed to ffmpeg blind.
var knownExtensions = map[string]bool{
	"wav": true, "flac": true, "mp3": true, "ogg": true, "oga": true,
	"opus": true, "aiff": true, "aif": true, "aac": true, "m4a": true,
	"wma": true, "mka": true, "ac3": true, "mp2": true,
}

// ext extracts the lowercase extension without the leading dot.
func ext(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// validate checks request parameters that require no file access.
// Violations fail fast, before any processing begins.
func validate(req Request) error {
	if req.Input == "" || req.Output == "" {
		return fmt.Errorf("%w: input and output paths are required", ErrIO)
	}
	if ext(req.Output) == "" {
		return fmt.Errorf("%w: output path has no extension: %s", ErrUnsupportedFormat, req.Output)
	}
	if req.SampleRate < 0 {
		return fmt.Errorf("%w: sample rate %d", ErrResample, req.SampleRate)
	}
	if req.Channels < 0 {
		return fmt.Errorf("%w: channel count %d", ErrResample, req.Channels)
	}
	if req.BitrateKbps < 0 {
		return fmt.Errorf("%w: bitrate %d kbps", ErrResample, req.BitrateKbps)
	}
	if req.Threads < 0 {
		return fmt.Errorf("%w: thread count %d", ErrResample, req.Threads)
	}
	return nil
}

// buildPlan resolves the route and native stages for a request given the
// probed input parameters.
//
// The native route is chosen only when the probed input format is natively
// decodable, the output extension is the natively encodable format, and no
// codec override is present. A natively decodable input whose bit depth is
// not the supported one is rejected rather than delegated: the request named
// a combination the matrix covers, and silently re-encoding lossless
// material through a lossy-capable fallback would be surprising.
func buildPlan(req Request, info probe.Info) (Plan, error) {
	outExt := ext(req.Output)
	if !knownExtensions[outExt] {
		return Plan{}, fmt.Errorf("%w: output extension %q", ErrUnsupportedFormat, outExt)
	}

	if info.Format == probe.FormatUnknown {
		// Content sniffing failed; fall back to the input extension for
		// external routing, as long as it is one we recognize.
		inExt := ext(req.Input)
		if !knownExtensions[inExt] {
			return Plan{}, fmt.Errorf("%w: input %q", ErrUnsupportedFormat, req.Input)
		}
		return Plan{Route: RouteExternal, Input: info}, nil
	}

	wantDepth, decodable := nativeInputs[info.Format]
	if !decodable || outExt != nativeOutput || req.Codec != "" {
		return Plan{Route: RouteExternal, Input: info}, nil
	}

	if info.BitDepth != wantDepth {
		return Plan{}, fmt.Errorf("%w: %s input is %d-bit, native pipeline supports %d-bit",
			ErrUnsupportedBitDepth, info.Format, info.BitDepth, wantDepth)
	}

	target := audio.StreamDescriptor{
		SampleRate: info.SampleRate,
		BitDepth:   wantDepth,
		Channels:   info.Channels,
	}

	plan := Plan{Route: RouteNative, Input: info, Target: target}

	if req.SampleRate > 0 && req.SampleRate != info.SampleRate {
		plan.Target.SampleRate = req.SampleRate
		plan.Resample = true
	}
	if req.Channels > 0 && req.Channels != info.Channels {
		plan.Target.Channels = req.Channels
		plan.Remix = true
	}

	return plan, nil
}
