package constraint

// Level is the severity tier of a Violation.
type Level int

const (
	// LevelError marks geometry that cannot be demolded as drawn.
	LevelError Level = iota
	// LevelWarning marks geometry that is risky but negotiable.
	LevelWarning
	// LevelFeature is informational and never blocks manufacturing.
	LevelFeature
)

// String returns the upper-case tier name.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	case LevelFeature:
		return "FEATURE"
	default:
		return "UNKNOWN"
	}
}

// MarshalYAML encodes the level by name.
func (l Level) MarshalYAML() (any, error) {
	return l.String(), nil
}
