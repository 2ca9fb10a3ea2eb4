package filtfilt

// Design limits
const (
	minDesignTaps = 3
	maxDesignTaps = 8191

	halfDivisor = 2.0
)

// Demo band-pass used by the command-line tools: 0.66-4 Hz at 30 Hz,
// a heart-rate band for camera photoplethysmography.
const (
	DemoNumTaps    = 61
	DemoLowHz      = 0.66
	DemoHighHz     = 4.0
	DemoSampleRate = 30.0
)

// Channel constants
const (
	maxChannels = 256 // Maximum supported channel count
)
