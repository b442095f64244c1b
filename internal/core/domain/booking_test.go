package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already clean",
			input:    "DOE, JANE",
			expected: "DOE, JANE",
		},
		{
			name:     "surrounding whitespace",
			input:    "  DOE, JANE  ",
			expected: "DOE, JANE",
		},
		{
			name:     "internal whitespace collapsed",
			input:    "DOE,   JANE\tA",
			expected: "DOE, JANE A",
		},
		{
			name:     "single trailing period stripped",
			input:    "DOE, JANE A.",
			expected: "DOE, JANE A",
		},
		{
			name:     "only one trailing period stripped",
			input:    "DOE, JANE A..",
			expected: "DOE, JANE A.",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanName(tt.input))
		})
	}
}

func TestCleanName_Idempotent(t *testing.T) {
	inputs := []string{
		"DOE,  JANE A.",
		"  ROE,JOHN  ",
		"LEE, SAM",
	}
	for _, in := range inputs {
		once := CleanName(in)
		assert.Equal(t, once, CleanName(once))
	}
}

func TestBookingRecord_FormatLine(t *testing.T) {
	rec := BookingRecord{
		ID:         "2024-001234",
		Name:       "DOE, JANE",
		BookedAt:   "03:42 01/15/2024",
		ReleasedAt: NotReleased,
		Charges:    []string{"THEFT UNDER $500", "CRIMINAL MISCHIEF"},
	}

	line := rec.FormatLine()
	assert.Contains(t, line, "[2024-001234]")
	assert.Contains(t, line, "DOE, JANE")
	assert.Contains(t, line, "booked 03:42 01/15/2024")
	assert.Contains(t, line, "released Not Released")
	assert.Contains(t, line, "THEFT UNDER $500; CRIMINAL MISCHIEF")
}

func TestBookingRecord_FormatLine_NoCharges(t *testing.T) {
	rec := BookingRecord{
		ID:         "B1",
		Name:       "ROE, JOHN",
		BookedAt:   DateUnknown,
		ReleasedAt: NotReleased,
	}

	line := rec.FormatLine()
	assert.NotContains(t, line, "charges:")
}

func TestBookingRecord_SortedCharges(t *testing.T) {
	rec := BookingRecord{
		Charges: []string{"B CHARGE", "A CHARGE", "C CHARGE"},
	}

	sorted := rec.SortedCharges()
	assert.Equal(t, []string{"A CHARGE", "B CHARGE", "C CHARGE"}, sorted)
	// Original order untouched.
	assert.Equal(t, []string{"B CHARGE", "A CHARGE", "C CHARGE"}, rec.Charges)
}
