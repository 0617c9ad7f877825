package indicator

// RegimeThresholds are the ascending volatility levels that bound each fear
// regime. The volatility index is read as a contrarian indicator: the
// higher the reading, the stronger the bullish score.
type RegimeThresholds struct {
	Normal      float64 `yaml:"normal" json:"normal" jsonschema:"title=Normal,description=Readings below this are a calm market,minimum=0" validate:"required,gt=0"`
	Fear        float64 `yaml:"fear" json:"fear" jsonschema:"title=Fear,description=Readings below this are mild fear,minimum=0" validate:"required,gtfield=Normal"`
	HighFear    float64 `yaml:"high_fear" json:"high_fear" jsonschema:"title=High Fear,description=Readings below this are fear,minimum=0" validate:"required,gtfield=Fear"`
	ExtremeFear float64 `yaml:"extreme_fear" json:"extreme_fear" jsonschema:"title=Extreme Fear,description=Readings at or above this are panic,minimum=0" validate:"required,gtfield=HighFear"`
}

// complacencyLevel is the floor below which the market counts as
// dangerously complacent regardless of the configured bands.
const complacencyLevel = 12.0

// RegimeScore maps a volatility reading onto the step function
// {-2, 0, 1, 2, 3, 4}. The function is monotonically increasing in the
// reading; callers rely on that when treating high volatility as a
// contrarian buy signal.
func RegimeScore(value float64, t RegimeThresholds) int {
	switch {
	case value < complacencyLevel:
		return -2
	case value < t.Normal:
		return 0
	case value < t.Fear:
		return 1
	case value < t.HighFear:
		return 2
	case value < t.ExtremeFear:
		return 3
	default:
		return 4
	}
}

// RegimeLabel names the regime a score belongs to, for report text.
func RegimeLabel(score int) string {
	switch {
	case score <= -2:
		return "extreme complacency"
	case score <= 0:
		return "normal"
	case score == 1:
		return "mild fear"
	case score == 2:
		return "fear"
	case score == 3:
		return "high fear"
	default:
		return "extreme panic"
	}
}
