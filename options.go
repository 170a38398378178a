package omnicamera

import "github.com/pion/omnicamera/pkg/prop"

// CameraOptions stores parameters used by Camera.
type CameraOptions struct {
	suggestedFrameRate uint
	preferences        prop.Preferences
}

// CameraOption is a type of Camera functional option.
type CameraOption func(*CameraOptions)

// WithSuggestedFrameRate makes a camera opened without an explicit format
// pick the widest format running at fps or faster.
func WithSuggestedFrameRate(fps uint) CameraOption {
	return func(o *CameraOptions) {
		o.suggestedFrameRate = fps
	}
}

// WithPreferences replaces prop.DefaultPreferences when a camera is opened
// without an explicit format.
func WithPreferences(p prop.Preferences) CameraOption {
	return func(o *CameraOptions) {
		o.preferences = p
	}
}

// resolve picks the format a camera is opened with by default.
func (o CameraOptions) resolve(fs prop.Formats) (prop.Format, error) {
	if !o.preferences.IsZero() {
		fs = fs.Apply(o.preferences)
	} else if o.suggestedFrameRate == 0 {
		return fs.ResolveDefault()
	}
	if o.suggestedFrameRate != 0 {
		return fs.ResolveSuggested(o.suggestedFrameRate)
	}
	return fs.Resolve()
}
