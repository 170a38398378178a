package prop

import (
	"errors"
	"math"

	"github.com/pion/omnicamera/pkg/driver"
	"github.com/pion/omnicamera/pkg/frame"
)

// AspectRatioEpsilon is the tolerance used when matching aspect ratios.
const AspectRatioEpsilon = 1e-6

// ErrNoFormats is returned when resolving an empty set of formats.
var ErrNoFormats = errors.New("no formats available")

// FormatFilter reports whether a format is preferred.
type FormatFilter func(Format) bool

// FilterNot returns a filter function to negate provided filter.
func FilterNot(filter FormatFilter) FormatFilter {
	return func(f Format) bool {
		return !filter(f)
	}
}

// FilterAnd returns a filter function to take logical conjunction of given filters.
func FilterAnd(filters ...FormatFilter) FormatFilter {
	return func(f Format) bool {
		for _, filter := range filters {
			if !filter(f) {
				return false
			}
		}
		return true
	}
}

// FilterOr returns a filter function to take logical disjunction of given filters.
func FilterOr(filters ...FormatFilter) FormatFilter {
	return func(f Format) bool {
		for _, filter := range filters {
			if filter(f) {
				return true
			}
		}
		return false
	}
}

// inRange checks min <= v <= max. A zero bound is unbounded.
func inRange(v, min, max uint) bool {
	return (min == 0 || v >= min) && (max == 0 || v <= max)
}

// FrameRateRange matches formats with min <= frame rate <= max.
func FrameRateRange(min, max uint) FormatFilter {
	return func(f Format) bool { return inRange(f.FrameRate, min, max) }
}

// WidthRange matches formats with min <= width <= max.
func WidthRange(min, max uint) FormatFilter {
	return func(f Format) bool { return inRange(f.Width, min, max) }
}

// HeightRange matches formats with min <= height <= max.
func HeightRange(min, max uint) FormatFilter {
	return func(f Format) bool { return inRange(f.Height, min, max) }
}

// AspectRatio matches formats whose width / height is within
// AspectRatioEpsilon of ratio.
func AspectRatio(ratio float64) FormatFilter {
	return func(f Format) bool {
		return math.Abs(f.AspectRatio()-ratio) < AspectRatioEpsilon
	}
}

// FrameFormat matches formats encoded as ff.
func FrameFormat(ff frame.Format) FormatFilter {
	return func(f Format) bool { return f.FrameFormat == ff }
}

// Formats is a set of candidate formats. Methods never modify the receiver.
//
// Prefer* methods are soft: they return only the matching formats, or the
// receiver unchanged if nothing matches. Chaining them on a non-empty set
// therefore never yields an empty set. Since a preference that matches
// nothing is skipped, the order of a chain matters once one of its steps
// falls back.
type Formats []Format

// NewFormats converts engine reported formats.
func NewFormats(raws []driver.RawFormat) (Formats, error) {
	fs := make(Formats, 0, len(raws))
	for _, raw := range raws {
		f, err := NewFormat(raw)
		if err != nil {
			return nil, err
		}
		fs = append(fs, f)
	}
	return fs, nil
}

// Prefer keeps the formats matching filter, falling back to fs if none does.
func (fs Formats) Prefer(filter FormatFilter) Formats {
	preferred := make(Formats, 0, len(fs))
	for _, f := range fs {
		if filter(f) {
			preferred = append(preferred, f)
		}
	}
	if len(preferred) == 0 {
		return fs
	}
	return preferred
}

// PreferFrameRateRange prefers formats with min <= frame rate <= max.
// A zero bound is unbounded.
func (fs Formats) PreferFrameRateRange(min, max uint) Formats {
	return fs.Prefer(FrameRateRange(min, max))
}

// PreferWidthRange prefers formats with min <= width <= max.
// A zero bound is unbounded.
func (fs Formats) PreferWidthRange(min, max uint) Formats {
	return fs.Prefer(WidthRange(min, max))
}

// PreferHeightRange prefers formats with min <= height <= max.
// A zero bound is unbounded.
func (fs Formats) PreferHeightRange(min, max uint) Formats {
	return fs.Prefer(HeightRange(min, max))
}

// PreferAspectRatio prefers formats with width / height == ratio.
func (fs Formats) PreferAspectRatio(ratio float64) Formats {
	return fs.Prefer(AspectRatio(ratio))
}

// PreferSidesRatio is the former name of PreferAspectRatio.
//
// Deprecated: use PreferAspectRatio.
func (fs Formats) PreferSidesRatio(ratio float64) Formats {
	deprecated("PreferSidesRatio", "PreferAspectRatio")
	return fs.PreferAspectRatio(ratio)
}

// PreferFrameFormat prefers formats encoded as ff.
func (fs Formats) PreferFrameFormat(ff frame.Format) Formats {
	return fs.Prefer(FrameFormat(ff))
}

// ByWidth is the default Resolve key.
func ByWidth(f Format) float64 { return float64(f.Width) }

// ByFrameRate ranks formats by frame rate.
func ByFrameRate(f Format) float64 { return float64(f.FrameRate) }

// ByArea ranks formats by pixel count.
func ByArea(f Format) float64 { return float64(f.Width) * float64(f.Height) }

// Resolve returns the widest format.
func (fs Formats) Resolve() (Format, error) {
	return fs.ResolveBy(ByWidth)
}

// ResolveBy returns the format maximizing key. Among equal maxima the
// first one in fs wins.
func (fs Formats) ResolveBy(key func(Format) float64) (Format, error) {
	if len(fs) == 0 {
		return Format{}, ErrNoFormats
	}
	best, bestKey := fs[0], key(fs[0])
	for _, f := range fs[1:] {
		if k := key(f); k > bestKey {
			best, bestKey = f, k
		}
	}
	return best, nil
}

// ResolveDefault resolves with DefaultPreferences applied: 25 to 60 fps,
// 4:3 and MJPEG, each dropped when the device has no such format.
func (fs Formats) ResolveDefault() (Format, error) {
	return fs.Apply(DefaultPreferences).Resolve()
}

// ResolveSuggested returns the widest format running at fps or faster. If
// no format is fast enough, the fastest one is returned instead.
func (fs Formats) ResolveSuggested(fps uint) (Format, error) {
	fastEnough := FrameRateRange(fps, 0)
	candidates := fs.Prefer(fastEnough)
	if len(candidates) > 0 && !fastEnough(candidates[0]) {
		return candidates.ResolveBy(ByFrameRate)
	}
	return candidates.Resolve()
}
