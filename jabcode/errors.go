// Package jabcode wires the four core subsystems — transform, sampler,
// interleave, mask — into the external entry points a detector/decoder
// pipeline calls, per §6.
package jabcode

import (
	"errors"

	"github.com/jabcode-go/jabcode-core/interleave"
	"github.com/jabcode-go/jabcode-core/sampler"
	"github.com/jabcode-go/jabcode-core/transform"
)

// The four error kinds the core distinguishes (§7). The first three are the
// package-local sentinels that actually detect the condition, re-exported
// under the kind's name, so errors.Is matches either name. ErrLengthOverflow
// is declared here.
var (
	// ErrDegenerateQuad means build_transform's denominator is zero: the
	// four source points are collinear or coincident.
	ErrDegenerateQuad = transform.ErrDegenerateQuad

	// ErrOffImage means a sampled module centre mapped outside the raster
	// by more than one pixel; the symbol is mislocated and the caller must
	// re-detect.
	ErrOffImage = sampler.ErrOffImage

	// ErrAllocationFailure means an intermediate buffer could not be
	// obtained.
	ErrAllocationFailure = interleave.ErrAllocationFailure

	// ErrLengthOverflow means C6's data stream ran out before data_map was
	// exhausted. Demask returns it wrapped once demasking has already
	// stopped silently per §7; it is not fatal and callers may discard it.
	ErrLengthOverflow = errors.New("jabcode: demask stream exhausted before data_map")
)
