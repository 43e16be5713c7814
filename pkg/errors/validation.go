package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateThreshold validates a label threshold. The threshold is a
// fraction of the grand total and must lie in [0, 1).
func ValidateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return New(ErrCodeInvalidConfig, "plot threshold must be a finite number")
	}
	if threshold < 0 || threshold >= 1 {
		return New(ErrCodeInvalidConfig, "plot threshold must be in [0, 1), got %v", threshold)
	}
	return nil
}

// ValidateFigureSize validates a canvas size hint in inches.
func ValidateFigureSize(size float64) error {
	if math.IsNaN(size) || math.IsInf(size, 0) {
		return New(ErrCodeInvalidConfig, "figure size must be a finite number")
	}
	if size <= 0 {
		return New(ErrCodeInvalidConfig, "figure size must be positive, got %v", size)
	}
	return nil
}

// ValidateFontSize validates a label font size hint in points.
func ValidateFontSize(size float64) error {
	if math.IsNaN(size) || math.IsInf(size, 0) {
		return New(ErrCodeInvalidConfig, "font size must be a finite number")
	}
	if size <= 0 {
		return New(ErrCodeInvalidConfig, "font size must be positive, got %v", size)
	}
	return nil
}

// ValidateColumnName validates a grouping column name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
//
// Whether the column exists in a given table is checked separately by the
// table aggregation.
func ValidateColumnName(name string) error {
	if name == "" {
		return New(ErrCodeUnknownColumn, "column name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeUnknownColumn, "column name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeUnknownColumn, "column name contains invalid control characters")
		}
	}

	return nil
}

// ValidateLabel validates a wedge label string. Labels may be empty (an
// empty label suppresses the text without suppressing the wedge), but they
// must not contain control characters other than newlines, which are used
// to stack the label, percentage, and count lines.
func ValidateLabel(label string) error {
	for _, r := range label {
		if r != '\n' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains invalid control characters: %q", label)
		}
	}
	return nil
}

// ValidatePaletteName validates a base colormap identifier. Palette names
// are lowercase alphanumeric, matching the matplotlib-style identifiers
// ("tab10", "tab20") the palette registry uses.
func ValidatePaletteName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPalette, "palette name cannot be empty")
	}

	if strings.ToLower(name) != name {
		return New(ErrCodeInvalidPalette, "palette names are lowercase: %q", name)
	}

	for _, r := range name {
		if !unicode.IsLower(r) && !unicode.IsDigit(r) {
			return New(ErrCodeInvalidPalette, "invalid palette name: %q", name)
		}
	}

	return nil
}
