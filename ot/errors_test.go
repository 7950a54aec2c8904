package ot

import "testing"

// TestErrorSeverity verifies the ErrorSeverity String() method.
func TestErrorSeverity(t *testing.T) {
	tests := []struct {
		severity ErrorSeverity
		expected string
	}{
		{SeverityCritical, "CRITICAL"},
		{SeverityMajor, "MAJOR"},
		{SeverityMinor, "MINOR"},
		{ErrorSeverity(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.severity.String()
		if result != tt.expected {
			t.Errorf("ErrorSeverity(%d).String() = %q; want %q", tt.severity, result, tt.expected)
		}
	}
}

// TestFontError verifies FontError creation and formatting.
func TestFontError(t *testing.T) {
	tests := []struct {
		name     string
		err      FontError
		expected string
	}{
		{
			name: "Error with offset",
			err: FontError{
				Table:    T("glyf"),
				Section:  "Bounds",
				Issue:    "bounds exceed font size",
				Severity: SeverityCritical,
				Offset:   1234,
			},
			expected: "[CRITICAL] glyf/Bounds at offset 1234: bounds exceed font size",
		},
		{
			name: "Error without offset",
			err: FontError{
				Table:    T(""),
				Section:  "Header",
				Issue:    "font type not supported",
				Severity: SeverityMajor,
				Offset:   0,
			},
			expected: "[MAJOR]     /Header: font type not supported",
		},
		{
			name: "Minor error",
			err: FontError{
				Table:    T("cvt"),
				Section:  "Offset",
				Issue:    "unaligned",
				Severity: SeverityMinor,
				Offset:   0,
			},
			expected: "[MINOR] cvt /Offset: unaligned",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("FontError.Error() = %q; want %q", result, tt.expected)
			}
		})
	}
}

// TestFontWarning verifies FontWarning creation and formatting.
func TestFontWarning(t *testing.T) {
	tests := []struct {
		name     string
		warning  FontWarning
		expected string
	}{
		{
			name: "Warning with offset",
			warning: FontWarning{
				Table:  T("kern"),
				Issue:  "empty table",
				Offset: 5678,
			},
			expected: "[WARNING] kern at offset 5678: empty table",
		},
		{
			name: "Warning without offset",
			warning: FontWarning{
				Table:  T("DSIG"),
				Issue:  "tag contains non-printable characters",
				Offset: 0,
			},
			expected: "[WARNING] DSIG: tag contains non-printable characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.warning.String()
			if result != tt.expected {
				t.Errorf("FontWarning.String() = %q; want %q", result, tt.expected)
			}
		})
	}
}
