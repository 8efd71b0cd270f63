package jabcode

import (
	"image"

	"github.com/jabcode-go/jabcode-core/bitmap"
	"github.com/jabcode-go/jabcode-core/raster"
	"github.com/jabcode-go/jabcode-core/sampler"
	"github.com/jabcode-go/jabcode-core/transform"
)

// ImageReader produces a Bitmap from a persisted image. Decoding PNG/TIFF
// containers and CMYK conversion are outside the core (§1, §6); this
// interface is the seam a surrounding application fills in.
type ImageReader interface {
	ReadImage(r image.Image) (*bitmap.Bitmap, error)
}

// FinderDetector locates the four ordered finder-pattern centres of a
// symbol in a bitmap, in clockwise order starting top-left. Finder-pattern
// search heuristics are outside the core (§1, §6).
type FinderDetector interface {
	DetectFinderPatterns(bm *bitmap.Bitmap) ([4]transform.Point, error)
}

// ColorClassifier converts a sampled channel grid into palette indices.
// Colour classification (and CMYK handling) is outside the core (§1).
type ColorClassifier interface {
	Classify(g *sampler.Grid, palette raster.Palette) (*raster.ModuleMatrix, error)
}

// MetadataDecoder recovers the mask id and colour_number a symbol was
// encoded with from its metadata cross area. Metadata wire format is
// outside the core (§1, §6).
type MetadataDecoder interface {
	DecodeMetadata(crossArea *sampler.Grid) (maskID, colorNumber int, err error)
}

// LDPCDecoder consumes the de-interleaved data vector and recovers the
// original payload. LDPC coding internals are outside the core (§1, §6).
type LDPCDecoder interface {
	Decode(data []byte) ([]byte, error)
}
