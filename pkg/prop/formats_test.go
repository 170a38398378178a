package prop

import (
	"testing"

	"github.com/pion/omnicamera/pkg/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yuyv(w, h, fps uint) Format {
	return Format{Width: w, Height: h, FrameRate: fps, FrameFormat: frame.FormatYUYV}
}

func mjpeg(w, h, fps uint) Format {
	return Format{Width: w, Height: h, FrameRate: fps, FrameFormat: frame.FormatMJPEG}
}

var sample = Formats{
	yuyv(640, 480, 30),
	yuyv(1280, 720, 10),
	mjpeg(640, 480, 60),
	mjpeg(1280, 720, 30),
	mjpeg(1920, 1080, 30),
	mjpeg(320, 240, 120),
}

func TestPreferNeverEmpty(t *testing.T) {
	filters := map[string]FormatFilter{
		"FrameRateNone":   FrameRateRange(200, 300),
		"FrameRateSome":   FrameRateRange(25, 60),
		"WidthNone":       WidthRange(4000, 0),
		"HeightSome":      HeightRange(0, 480),
		"AspectRatioNone": AspectRatio(21.0 / 9.0),
		"AspectRatioSome": AspectRatio(16.0 / 9.0),
		"Nothing":         func(Format) bool { return false },
		"Everything":      func(Format) bool { return true },
	}

	for name, filter := range filters {
		filter := filter
		t.Run(name, func(t *testing.T) {
			got := sample.Prefer(filter)
			assert.NotEmpty(t, got)

			single := Formats{sample[0]}.Prefer(filter)
			assert.Equal(t, Formats{sample[0]}, single)
		})
	}
}

func TestPreferFallbackReturnsInput(t *testing.T) {
	got := sample.PreferFrameRateRange(200, 300)
	assert.Equal(t, sample, got)
}

func TestPreferKeepsOrder(t *testing.T) {
	got := sample.PreferFrameFormat(frame.FormatMJPEG)
	assert.Equal(t, Formats{
		mjpeg(640, 480, 60),
		mjpeg(1280, 720, 30),
		mjpeg(1920, 1080, 30),
		mjpeg(320, 240, 120),
	}, got)
}

func TestPreferDoesNotModifyReceiver(t *testing.T) {
	input := append(Formats(nil), sample...)
	_ = input.PreferFrameFormat(frame.FormatYUYV).PreferWidthRange(1000, 0)
	assert.Equal(t, sample, input)
}

func TestPreferRanges(t *testing.T) {
	testCases := map[string]struct {
		got      Formats
		expected Formats
	}{
		"FrameRateClosed": {
			sample.PreferFrameRateRange(30, 60),
			Formats{yuyv(640, 480, 30), mjpeg(640, 480, 60), mjpeg(1280, 720, 30), mjpeg(1920, 1080, 30)},
		},
		"FrameRateMinOnly": {
			sample.PreferFrameRateRange(61, 0),
			Formats{mjpeg(320, 240, 120)},
		},
		"FrameRateMaxOnly": {
			sample.PreferFrameRateRange(0, 10),
			Formats{yuyv(1280, 720, 10)},
		},
		"Width": {
			sample.PreferWidthRange(1280, 1280),
			Formats{yuyv(1280, 720, 10), mjpeg(1280, 720, 30)},
		},
		"Height": {
			sample.PreferHeightRange(720, 0),
			Formats{yuyv(1280, 720, 10), mjpeg(1280, 720, 30), mjpeg(1920, 1080, 30)},
		},
		"AspectRatio": {
			sample.PreferAspectRatio(4.0 / 3.0),
			Formats{yuyv(640, 480, 30), mjpeg(640, 480, 60), mjpeg(320, 240, 120)},
		},
		"FrameFormat": {
			sample.PreferFrameFormat(frame.FormatYUYV),
			Formats{yuyv(640, 480, 30), yuyv(1280, 720, 10)},
		},
		"Unbounded": {
			sample.PreferWidthRange(0, 0),
			sample,
		},
	}

	for name, c := range testCases {
		c := c
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.expected, c.got)
		})
	}
}

func TestPreferCommutesWhenBothMatch(t *testing.T) {
	a := sample.PreferFrameRateRange(25, 60).PreferFrameFormat(frame.FormatMJPEG)
	b := sample.PreferFrameFormat(frame.FormatMJPEG).PreferFrameRateRange(25, 60)
	assert.Equal(t, a, b)
	assert.Equal(t, Formats{mjpeg(640, 480, 60), mjpeg(1280, 720, 30), mjpeg(1920, 1080, 30)}, a)
}

func TestPreferOrderMattersOnFallback(t *testing.T) {
	candidates := Formats{yuyv(640, 480, 30), mjpeg(640, 480, 60)}

	rateFirst := candidates.PreferFrameRateRange(50, 70).PreferFrameFormat(frame.FormatYUYV)
	assert.Equal(t, Formats{mjpeg(640, 480, 60)}, rateFirst)

	formatFirst := candidates.PreferFrameFormat(frame.FormatYUYV).PreferFrameRateRange(50, 70)
	assert.Equal(t, Formats{yuyv(640, 480, 30)}, formatFirst)
}

func TestFilterCombinators(t *testing.T) {
	f := mjpeg(640, 480, 30)
	yes := func(Format) bool { return true }
	no := func(Format) bool { return false }

	assert.True(t, FilterAnd(yes, yes)(f))
	assert.False(t, FilterAnd(yes, no)(f))
	assert.True(t, FilterAnd()(f))
	assert.True(t, FilterOr(no, yes)(f))
	assert.False(t, FilterOr(no, no)(f))
	assert.False(t, FilterOr()(f))
	assert.False(t, FilterNot(yes)(f))

	got := sample.Prefer(FilterAnd(FrameFormat(frame.FormatMJPEG), FilterNot(AspectRatio(16.0/9.0))))
	assert.Equal(t, Formats{mjpeg(640, 480, 60), mjpeg(320, 240, 120)}, got)
}

func TestResolve(t *testing.T) {
	f, err := sample.Resolve()
	require.NoError(t, err)
	assert.Equal(t, mjpeg(1920, 1080, 30), f)

	f, err = sample.ResolveBy(ByFrameRate)
	require.NoError(t, err)
	assert.Equal(t, mjpeg(320, 240, 120), f)

	f, err = sample.ResolveBy(ByArea)
	require.NoError(t, err)
	assert.Equal(t, mjpeg(1920, 1080, 30), f)
}

func TestResolveFirstAmongMaxima(t *testing.T) {
	candidates := Formats{yuyv(320, 240, 30), yuyv(640, 480, 15), mjpeg(640, 480, 30)}
	for i := 0; i < 10; i++ {
		f, err := candidates.Resolve()
		require.NoError(t, err)
		assert.Equal(t, yuyv(640, 480, 15), f)
	}
}

func TestResolveEmpty(t *testing.T) {
	_, err := Formats{}.Resolve()
	assert.ErrorIs(t, err, ErrNoFormats)

	_, err = Formats(nil).ResolveDefault()
	assert.ErrorIs(t, err, ErrNoFormats)

	_, err = Formats(nil).ResolveSuggested(30)
	assert.ErrorIs(t, err, ErrNoFormats)
}

func TestResolveDefault(t *testing.T) {
	testCases := map[string]struct {
		candidates Formats
		expected   Format
	}{
		"AllPreferencesMatch": {
			sample,
			mjpeg(640, 480, 60),
		},
		"NoFrameRateMatch": {
			Formats{yuyv(640, 480, 5), mjpeg(1280, 720, 15), mjpeg(800, 600, 10)},
			mjpeg(800, 600, 10),
		},
		"NothingMatches": {
			Formats{yuyv(1280, 720, 10), yuyv(1920, 1080, 5)},
			yuyv(1920, 1080, 5),
		},
		"OnlyYUYV43": {
			Formats{yuyv(640, 480, 30), yuyv(960, 720, 30), mjpeg(1920, 1080, 30)},
			yuyv(960, 720, 30),
		},
	}

	for name, c := range testCases {
		c := c
		t.Run(name, func(t *testing.T) {
			f, err := c.candidates.ResolveDefault()
			require.NoError(t, err)
			assert.Equal(t, c.expected, f)

			chained, err := c.candidates.
				PreferFrameRateRange(25, 60).
				PreferAspectRatio(4.0 / 3.0).
				PreferFrameFormat(frame.FormatMJPEG).
				Resolve()
			require.NoError(t, err)
			assert.Equal(t, chained, f)
		})
	}
}

func TestResolveSuggested(t *testing.T) {
	f, err := sample.ResolveSuggested(30)
	require.NoError(t, err)
	assert.Equal(t, mjpeg(1920, 1080, 30), f)

	f, err = sample.ResolveSuggested(60)
	require.NoError(t, err)
	assert.Equal(t, mjpeg(640, 480, 60), f)

	f, err = sample.ResolveSuggested(240)
	require.NoError(t, err)
	assert.Equal(t, mjpeg(320, 240, 120), f)
}

func TestPreferSidesRatio(t *testing.T) {
	var got []Deprecation
	restore := SetDeprecationHandler(func(d Deprecation) {
		got = append(got, d)
	})
	defer restore()

	assert.Equal(t, sample.PreferAspectRatio(16.0/9.0), sample.PreferSidesRatio(16.0/9.0))
	require.Len(t, got, 1)
	assert.Equal(t, Deprecation{Name: "PreferSidesRatio", Replacement: "PreferAspectRatio"}, got[0])
	assert.Equal(t, "PreferSidesRatio has been renamed to PreferAspectRatio", got[0].String())

	_, err := sample.ResolveDefault()
	require.NoError(t, err)
	assert.Len(t, got, 1, "default resolution must not use the deprecated name")
}

func TestPreferSidesRatioDiscardedHandler(t *testing.T) {
	restore := SetDeprecationHandler(nil)
	defer restore()

	assert.Equal(t, Formats{yuyv(640, 480, 30)}, Formats{yuyv(640, 480, 30)}.PreferSidesRatio(2))
}
