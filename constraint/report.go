package constraint

import "fmt"

// Suggestion texts attached by the Report helpers.
const (
	SuggestionError   = "This region requires revision to eliminate physical impossibility"
	SuggestionWarning = "Consider adjusting geometry for better manufacturability"
	SuggestionFeature = "This is an aesthetic feature - mathematical tension"
)

// Violation is one finding on one face.
type Violation struct {
	Level       Level   `yaml:"level"`
	Description string  `yaml:"description"`
	FaceID      int     `yaml:"face"`
	Severity    float64 `yaml:"severity"`
	Suggestion  string  `yaml:"suggestion"`
}

// Report is the ordered list of violations produced by one validation.
// Entries are only ever appended. The zero value is an empty report.
type Report struct {
	violations []Violation
}

func (r *Report) add(level Level, desc string, face int, severity float64, suggestion string) {
	r.violations = append(r.violations, Violation{
		Level:       level,
		Description: desc,
		FaceID:      face,
		Severity:    severity,
		Suggestion:  suggestion,
	})
}

// AddError appends an ERROR violation.
func (r *Report) AddError(desc string, face int, severity float64) {
	r.add(LevelError, desc, face, severity, SuggestionError)
}

// AddWarning appends a WARNING violation.
func (r *Report) AddWarning(desc string, face int, severity float64) {
	r.add(LevelWarning, desc, face, severity, SuggestionWarning)
}

// AddFeature appends a FEATURE entry with zero severity.
func (r *Report) AddFeature(desc string, face int) {
	r.add(LevelFeature, desc, face, 0, SuggestionFeature)
}

// Violations returns a copy of the violations in insertion order.
func (r *Report) Violations() []Violation {
	out := make([]Violation, len(r.violations))
	copy(out, r.violations)
	return out
}

// Len returns the number of violations of any level.
func (r *Report) Len() int {
	return len(r.violations)
}

func (r *Report) count(level Level) int {
	n := 0
	for _, v := range r.violations {
		if v.Level == level {
			n++
		}
	}
	return n
}

// HasErrors reports whether any ERROR was recorded.
func (r *Report) HasErrors() bool { return r.count(LevelError) > 0 }

// HasWarnings reports whether any WARNING was recorded.
func (r *Report) HasWarnings() bool { return r.count(LevelWarning) > 0 }

// ErrorCount returns the number of ERROR violations.
func (r *Report) ErrorCount() int { return r.count(LevelError) }

// WarningCount returns the number of WARNING violations.
func (r *Report) WarningCount() int { return r.count(LevelWarning) }

// FeatureCount returns the number of FEATURE entries.
func (r *Report) FeatureCount() int { return r.count(LevelFeature) }

// Summary returns a one-line count of each level.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d errors, %d warnings, %d features",
		r.ErrorCount(), r.WarningCount(), r.FeatureCount())
}
